package gpt2bpe

import (
	"github.com/dlclark/regexp2"
)

// gpt2Pattern is the fixed six-alternative pretokenization regex from §4.A.
// The last alternative's negative lookahead, \s+(?!\S), cannot be expressed
// in Go's stdlib regexp (RE2 has no lookaround), so pretokenization is built
// on regexp2, a backtracking engine with full lookahead support.
const gpt2Pattern = `'(?:[sdmt]|ll|ve|re)| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

var pretokenRegex = regexp2.MustCompile(gpt2Pattern, regexp2.None)

// pretokenize splits text into pretokens using the fixed Unicode-aware regex
// of §4.A. It does not consider special tokens; callers split on special
// tokens first (see splitOnSpecialTokens) and call pretokenize on the
// segments in between.
func pretokenize(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	pretokens := make([]string, 0, defaultPretokenSliceCapacity)
	m, err := pretokenRegex.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return nil, err
		}
		pretokens = append(pretokens, m.String())
		m, err = pretokenRegex.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return pretokens, nil
}
