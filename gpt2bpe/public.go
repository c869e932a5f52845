package gpt2bpe

// Pretokenize exposes the §4.A pretokenization regex for callers (notably
// package train) that need to pretokenize text without constructing a full
// Tokenizer.
func Pretokenize(text string) ([]string, error) {
	return pretokenize(text)
}

// SplitOnSpecials splits text on any of the given special-token strings
// (longest-first) and returns only the non-special segments, discarding the
// delimiters themselves. This is the trainer's view of special tokens
// (pure splitters, §4.D); contrast with the encoder's splitOnSpecialTokens,
// which keeps the special tokens as atomic segments.
func SplitOnSpecials(text string, specials []string) []string {
	splitter := buildSpecialSplitter(specials)
	segments := splitOnSpecialTokens(text, splitter)
	if splitter == nil {
		return segments
	}

	set := toSpecialSet(specials)
	out := segments[:0]
	for _, seg := range segments {
		if !isSpecialSegment(seg, set) {
			out = append(out, seg)
		}
	}
	return out
}

// BytePrintableEncode exposes the §4.B byte<->printable-codepoint codec for
// persistence and CLI tooling.
func BytePrintableEncode(data []byte) string { return encodeBytePrintable(data) }

// BytePrintableDecode is the inverse of BytePrintableEncode.
func BytePrintableDecode(s string) []byte { return decodeBytePrintable(s) }

// EndOfTextDelimiter is the fixed training corpus split delimiter (§4.C/§6).
const EndOfTextDelimiter = endOfTextDelimiter
