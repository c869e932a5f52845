package train

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
)

// Config holds the parameters of a training run (§4.C/§4.E).
type Config struct {
	// VocabSize is the target total vocabulary size, including the 256
	// base byte tokens and any special tokens.
	VocabSize int

	// Specials lists the special tokens to reserve ids for before training
	// begins, in the order they should receive ids.
	Specials []string

	// Workers bounds the number of parallel partitions used for counting.
	// Zero selects runtime.GOMAXPROCS(0).
	Workers int
}

// Train runs the greedy byte-pair merge loop over inputPath and returns the
// resulting vocabulary and ordered merge list (§4.E). It partitions the
// corpus, counts pretoken frequencies in parallel, and then repeatedly
// merges the most frequent adjacent pair until VocabSize is reached or no
// mergeable pair remains.
func Train(ctx context.Context, inputPath string, cfg Config) (*gpt2bpe.Vocab, gpt2bpe.Merges, error) {
	vocab := gpt2bpe.NewBaseVocab(cfg.Specials)
	if cfg.VocabSize < vocab.Len() {
		return nil, nil, &TrainError{
			Op:  "validate config",
			Err: fmt.Errorf("vocab_size %d is below the %d ids already reserved for bytes and specials", cfg.VocabSize, vocab.Len()),
		}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	boundaries, err := partitionFile(ctx, inputPath, workers, []byte(gpt2bpe.EndOfTextDelimiter))
	if err != nil {
		return nil, nil, &TrainError{Op: "partition corpus", Err: err}
	}

	wordFreqs, err := countFrequencies(ctx, inputPath, toRanges(boundaries), cfg.Specials)
	if err != nil {
		return nil, nil, &TrainError{Op: "count pretoken frequencies", Err: err}
	}

	words := make(map[string]*word, len(wordFreqs))
	idx := newPairIndex()
	for pt, count := range wordFreqs {
		w := &word{ids: bytesToIDs([]byte(pt)), count: count}
		key := encodeWordKey(w.ids)
		if existing, ok := words[key]; ok {
			existing.count += count
			continue
		}
		words[key] = w
		idx.addWord(key, w)
	}

	var merges gpt2bpe.Merges

	for vocab.Len() < cfg.VocabSize {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		best, ok := selectBestPair(idx, vocab)
		if !ok {
			break
		}

		leftBytes, _ := vocab.Bytes(best.left)
		rightBytes, _ := vocab.Bytes(best.right)
		merged := append(append([]byte{}, leftBytes...), rightBytes...)
		mergedID := vocab.add(merged)
		merges = append(merges, gpt2bpe.Merge{Left: leftBytes, Right: rightBytes})

		rewriteWordsContainingPair(words, idx, best, mergedID)
	}

	return vocab, merges, nil
}

// rewriteWordsContainingPair applies one merge step to every word recorded
// against best at step entry (a snapshot, per §9's "snapshot of
// pretokens-containing-p" guidance: the set is fixed before any mutation so
// that the scan never observes a partially updated index).
//
// Words are staged in a pending map before touching the live index: counts
// of rewritten words that share an id sequence are summed first, and a
// sequence already present in words has its old contribution removed
// before being re-added at the combined count, so each id sequence is
// indexed exactly once, at its final total.
func rewriteWordsContainingPair(words map[string]*word, idx *pairIndex, best trainPairKey, mergedID int) {
	type pendingRewrite struct {
		ids   []int
		count int
	}
	pending := make(map[string]*pendingRewrite)

	for _, key := range idx.snapshotWords(best) {
		w, ok := words[key]
		if !ok {
			continue
		}
		idx.removeWord(key, w)
		delete(words, key)

		newIDs := applyPairMerge(w.ids, best, mergedID)
		newKey := encodeWordKey(newIDs)

		if p, exists := pending[newKey]; exists {
			p.count += w.count
		} else {
			pending[newKey] = &pendingRewrite{ids: newIDs, count: w.count}
		}
	}

	for newKey, p := range pending {
		if existing, exists := words[newKey]; exists {
			idx.removeWord(newKey, existing)
			existing.count += p.count
			idx.addWord(newKey, existing)
			continue
		}
		w := &word{ids: p.ids, count: p.count}
		words[newKey] = w
		idx.addWord(newKey, w)
	}
}

// selectBestPair picks the pair maximizing (frequency, byte-lexicographic
// order of (left, right)) as its tie-break, matching §4.E's deterministic
// selection rule exactly.
func selectBestPair(idx *pairIndex, vocab *gpt2bpe.Vocab) (trainPairKey, bool) {
	var (
		best     trainPairKey
		bestFreq int
		found    bool
	)

	for pk, freq := range idx.freqs {
		if freq <= 0 {
			continue
		}
		if !found || freq > bestFreq || (freq == bestFreq && greaterPair(vocab, pk, best)) {
			best, bestFreq, found = pk, freq, true
		}
	}

	return best, found
}

// greaterPair reports whether candidate should be preferred over current
// under the tie-break: the selection rule maximizes (count, (bytes_a,
// bytes_b)), so the lexicographically LARGER (left-bytes, right-bytes) wins
// a tie on frequency.
func greaterPair(vocab *gpt2bpe.Vocab, candidate, current trainPairKey) bool {
	cl, _ := vocab.Bytes(candidate.left)
	crr, _ := vocab.Bytes(candidate.right)
	bl, _ := vocab.Bytes(current.left)
	br, _ := vocab.Bytes(current.right)

	if c := bytes.Compare(cl, bl); c != 0 {
		return c > 0
	}
	return bytes.Compare(crr, br) > 0
}

// applyPairMerge rewrites every non-overlapping left-to-right occurrence of
// pk within ids into mergedID, returning a new slice. A freshly merged id
// is never itself reconsidered as the left half of another merge within the
// same pass, matching the encoder's single left-to-right sweep semantics.
func applyPairMerge(ids []int, pk trainPairKey, mergedID int) []int {
	out := make([]int, 0, len(ids))
	for i := 0; i < len(ids); i++ {
		if i+1 < len(ids) && ids[i] == pk.left && ids[i+1] == pk.right {
			out = append(out, mergedID)
			i++
			continue
		}
		out = append(out, ids[i])
	}
	return out
}
