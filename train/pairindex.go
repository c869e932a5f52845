package train

// trainPairKey identifies an adjacent (left id, right id) pair while
// training. It mirrors gpt2bpe's internal pairKey but is kept separate
// since the trainer's index has different lifetime and mutation needs
// (incremental decrement/rebuild) than the encoder's static lookup table.
type trainPairKey struct {
	left, right int
}

// pairIndex is the trainer's incremental pair-frequency index (§3): for
// every surviving word and every adjacent pair within it, freqs accounts
// for the word's multiplicity, and words[pair] holds the set of word keys
// containing that pair at least once.
type pairIndex struct {
	freqs map[trainPairKey]int
	words map[trainPairKey]map[string]struct{}
}

func newPairIndex() *pairIndex {
	return &pairIndex{
		freqs: make(map[trainPairKey]int),
		words: make(map[trainPairKey]map[string]struct{}),
	}
}

// addWord folds one word's adjacent-pair contributions into the index,
// scaled by its count.
func (idx *pairIndex) addWord(key string, w *word) {
	for i := 0; i+1 < len(w.ids); i++ {
		pk := trainPairKey{w.ids[i], w.ids[i+1]}
		idx.freqs[pk] += w.count
		set, ok := idx.words[pk]
		if !ok {
			set = make(map[string]struct{})
			idx.words[pk] = set
		}
		set[key] = struct{}{}
	}
}

// removeWord undoes one word's adjacent-pair contributions, scaled by its
// count, and drops the word from every pair's reverse set. Pairs whose
// frequency falls to zero are deleted outright so pair selection never
// considers a dead pair.
func (idx *pairIndex) removeWord(key string, w *word) {
	for i := 0; i+1 < len(w.ids); i++ {
		pk := trainPairKey{w.ids[i], w.ids[i+1]}
		idx.freqs[pk] -= w.count
		if idx.freqs[pk] <= 0 {
			delete(idx.freqs, pk)
		}
		if set, ok := idx.words[pk]; ok {
			delete(set, key)
			if len(set) == 0 {
				delete(idx.words, pk)
			}
		}
	}
}

// snapshotWords returns a stable copy of the word keys currently recorded
// against pk, so that the caller can safely mutate wordFreqs/pairIndex
// while iterating (§9's "snapshot of pretokens-containing-p" guidance).
func (idx *pairIndex) snapshotWords(pk trainPairKey) []string {
	set := idx.words[pk]
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	return keys
}
