package gpt2bpe

// Merge is a single recorded merge: the byte-strings of the left and right
// vocabulary entries that were combined. Order within a Merges value defines
// priority: earlier entries are higher priority (§3).
type Merge struct {
	Left  []byte
	Right []byte
}

// Merges is the ordered merge list produced by training and consumed by the
// encoder.
type Merges []Merge

// pairKey identifies an adjacent (left id, right id) pair for the encoder's
// rank and merge-target indexes.
type pairKey struct {
	left, right int
}

// mergeIndex is the encoder's precomputed view of a Merges list: the
// priority (lower is better) and resulting id for every mergeable pair of
// ids, built once from vocab+merges (§4.F).
type mergeIndex struct {
	rank map[pairKey]int
	into map[pairKey]int
}

// buildMergeIndex resolves each merge's byte-strings against vocab to ids
// and assigns ranks equal to position in merges (0 = highest priority). A
// merge whose operands or concatenated result are not present in vocab is
// skipped and never applied by the encoder; LoadMerges does not check this.
func buildMergeIndex(vocab *Vocab, merges Merges) *mergeIndex {
	idx := &mergeIndex{
		rank: make(map[pairKey]int, len(merges)),
		into: make(map[pairKey]int, len(merges)),
	}
	for rank, m := range merges {
		leftID, leftOK := vocab.ID(m.Left)
		rightID, rightOK := vocab.ID(m.Right)
		if !leftOK || !rightOK {
			continue
		}
		merged := append(append([]byte{}, m.Left...), m.Right...)
		mergedID, ok := vocab.ID(merged)
		if !ok {
			continue
		}
		key := pairKey{leftID, rightID}
		idx.rank[key] = rank
		idx.into[key] = mergedID
	}
	return idx
}
