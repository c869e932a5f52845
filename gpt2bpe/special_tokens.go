package gpt2bpe

import (
	"regexp"
	"sort"
	"strings"
)

// buildSpecialSplitter compiles an alternation that matches any of the
// declared special tokens, longest first so that a token which is a prefix
// of another (e.g. "<|x|>" vs "<|x|>2") never shadows the longer match.
// No lookahead is required here, so the stdlib regexp (RE2) suffices.
func buildSpecialSplitter(specials []string) *regexp.Regexp {
	if len(specials) == 0 {
		return nil
	}

	sorted := make([]string, len(specials))
	copy(sorted, specials)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// splitOnSpecialTokens splits text on any declared special token, returning
// the alternating non-special/special segments with special tokens kept as
// their own elements (used by the encoder). If splitter is nil, text is
// returned as a single segment.
func splitOnSpecialTokens(text string, splitter *regexp.Regexp) []string {
	if text == "" {
		return nil
	}
	if splitter == nil {
		return []string{text}
	}

	matches := splitter.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	segments := make([]string, 0, len(matches)*2+1)
	lastEnd := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > lastEnd {
			segments = append(segments, text[lastEnd:start])
		}
		segments = append(segments, text[start:end])
		lastEnd = end
	}
	if lastEnd < len(text) {
		segments = append(segments, text[lastEnd:])
	}
	return segments
}

// isSpecialSegment reports whether segment is exactly one of specials.
func isSpecialSegment(segment string, specialSet map[string]struct{}) bool {
	_, ok := specialSet[segment]
	return ok
}

func toSpecialSet(specials []string) map[string]struct{} {
	set := make(map[string]struct{}, len(specials))
	for _, s := range specials {
		set[s] = struct{}{}
	}
	return set
}
