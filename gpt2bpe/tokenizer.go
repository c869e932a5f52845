package gpt2bpe

import "regexp"

// Tokenizer implements the GPT-2 family BPE encoder/decoder over a trained
// (or loaded) vocabulary and merge list (§4.F/§4.G).
type Tokenizer struct {
	vocab    *Vocab
	merges   Merges
	mergeIdx *mergeIndex

	specials        []string
	specialSet      map[string]struct{}
	specialSplitter *regexp.Regexp

	cache bpeCache
}

// New constructs a Tokenizer from a vocabulary, merge list, and the set of
// special tokens it should treat atomically. Any special token not already
// present in vocab is appended at the end, with id equal to the vocabulary
// size at the moment of insertion (§6).
func New(vocab *Vocab, merges Merges, specials []string, opts ...Option) (*Tokenizer, error) {
	if vocab == nil {
		return nil, NewConfigError("vocab", nil, ErrDataNotFound)
	}

	cfg := defaultTokenizerConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	vocab.EnsureSpecials(specials)

	t := &Tokenizer{
		vocab:           vocab,
		merges:          merges,
		mergeIdx:        buildMergeIndex(vocab, merges),
		specials:        specials,
		specialSet:      toSpecialSet(specials),
		specialSplitter: buildSpecialSplitter(specials),
	}

	if cfg.cacheSize == 0 {
		t.cache = newSimpleCache()
	} else {
		t.cache = newLRUCache(cfg.cacheSize)
	}

	return t, nil
}

// VocabSize returns the size of the vocabulary, including special tokens.
func (t *Tokenizer) VocabSize() int { return t.vocab.Len() }

// SpecialTokenID returns the id assigned to a declared special token.
func (t *Tokenizer) SpecialTokenID(token string) (int, error) {
	if _, ok := t.specialSet[token]; !ok {
		return 0, NewTokenError("get special token id", token, ErrInvalidToken)
	}
	id, ok := t.vocab.ID([]byte(token))
	if !ok {
		return 0, NewTokenError("get special token id", token, ErrTokenNotFound)
	}
	return id, nil
}

// Merges returns the tokenizer's merge list in priority order.
func (t *Tokenizer) Merges() Merges { return t.merges }

// Vocab returns the tokenizer's underlying vocabulary.
func (t *Tokenizer) Vocab() *Vocab { return t.vocab }
