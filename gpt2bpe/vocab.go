package gpt2bpe

// Vocab is the id <-> byte-string mapping described in §3. ByID[i] holds
// the raw bytes for token id i; ByString is its reverse index. Both the
// trainer and the encoder operate on raw bytes here -- the byte-printable
// codec in bytelevel.go is used only when reading/writing files (§6).
type Vocab struct {
	ByID     [][]byte
	ByString map[string]int
}

// NewBaseVocab builds the canonical starting vocabulary: ids 0..255 are the
// single-byte strings, followed by the UTF-8 encoding of each special token
// in the order supplied (§3). It is the starting point for training.
func NewBaseVocab(specials []string) *Vocab {
	v := &Vocab{
		ByID:     make([][]byte, 0, baseByteVocabSize+len(specials)),
		ByString: make(map[string]int, baseByteVocabSize+len(specials)),
	}
	for b := 0; b < baseByteVocabSize; b++ {
		v.add([]byte{byte(b)})
	}
	for _, s := range specials {
		v.add([]byte(s))
	}
	return v
}

// add appends bytes as a new vocabulary entry and returns its id. The caller
// is responsible for ensuring uniqueness; duplicate inserts would otherwise
// silently shadow an existing id in ByString.
func (v *Vocab) add(bytes []byte) int {
	id := len(v.ByID)
	v.ByID = append(v.ByID, bytes)
	v.ByString[string(bytes)] = id
	return id
}

// Len returns the current vocabulary size.
func (v *Vocab) Len() int { return len(v.ByID) }

// Bytes returns the byte-string for id, if present.
func (v *Vocab) Bytes(id int) ([]byte, bool) {
	if id < 0 || id >= len(v.ByID) {
		return nil, false
	}
	return v.ByID[id], true
}

// ID returns the id for a byte-string, if present.
func (v *Vocab) ID(bytes []byte) (int, bool) {
	id, ok := v.ByString[string(bytes)]
	return id, ok
}

// Has reports whether bytes already has an assigned id.
func (v *Vocab) Has(bytes []byte) bool {
	_, ok := v.ByString[string(bytes)]
	return ok
}

// EnsureSpecials appends any special token in specials that is not already
// present in the vocabulary, with id equal to the vocabulary size at the
// moment of insertion (monotonic), per §6's from-files constructor rule.
// Returns the ids of all tokens in specials, in order.
func (v *Vocab) EnsureSpecials(specials []string) []int {
	ids := make([]int, len(specials))
	for i, s := range specials {
		b := []byte(s)
		if id, ok := v.ID(b); ok {
			ids[i] = id
			continue
		}
		ids[i] = v.add(b)
	}
	return ids
}
