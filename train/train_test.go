package train

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
)

func TestApplyPairMergeRewritesNonOverlapping(t *testing.T) {
	// "aaaa" with pair (a,a) must merge left-to-right without overlap:
	// aa|aa -> two merged tokens, not three.
	ids := []int{10, 10, 10, 10}
	out := applyPairMerge(ids, trainPairKey{10, 10}, 99)
	require.Equal(t, []int{99, 99}, out)
}

func TestApplyPairMergeLeavesNonMatchingIDsAlone(t *testing.T) {
	ids := []int{1, 2, 3}
	out := applyPairMerge(ids, trainPairKey{5, 6}, 99)
	require.Equal(t, ids, out)
}

func TestSelectBestPairPicksHighestFrequency(t *testing.T) {
	vocab := gpt2bpe.NewBaseVocab(nil)
	idx := newPairIndex()
	idx.freqs[trainPairKey{'a', 'b'}] = 3
	idx.freqs[trainPairKey{'c', 'd'}] = 7

	best, ok := selectBestPair(idx, vocab)
	require.True(t, ok)
	require.Equal(t, trainPairKey{'c', 'd'}, best)
}

func TestSelectBestPairTieBreaksByGreaterByteString(t *testing.T) {
	vocab := gpt2bpe.NewBaseVocab(nil)
	idx := newPairIndex()
	// ' ' (32) + 'l' (108) vs 'e' (101) + 's' (115): both occur 5 times.
	// (" ", "l") > ("e", "s") bytewise on the first element, so it must win.
	idx.freqs[trainPairKey{' ', 'l'}] = 5
	idx.freqs[trainPairKey{'e', 's'}] = 5

	best, ok := selectBestPair(idx, vocab)
	require.True(t, ok)
	require.Equal(t, trainPairKey{' ', 'l'}, best)
}

func TestSelectBestPairEmptyIndex(t *testing.T) {
	vocab := gpt2bpe.NewBaseVocab(nil)
	_, ok := selectBestPair(newPairIndex(), vocab)
	require.False(t, ok)
}

func TestTrainRejectsUndersizedVocab(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	_, _, err := Train(context.Background(), path, Config{VocabSize: 10, Specials: []string{"<|endoftext|>"}})
	require.Error(t, err)
}

func TestTrainOnSmallCorpusIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	corpus := "low low low low low lower lower newest newest newest newest newest newest widest widest widest"
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0o644))

	cfg := Config{VocabSize: 262, Workers: 1}

	vocab1, merges1, err := Train(context.Background(), path, cfg)
	require.NoError(t, err)

	vocab2, merges2, err := Train(context.Background(), path, cfg)
	require.NoError(t, err)

	require.Equal(t, vocab1.ByID, vocab2.ByID, "two runs on identical input must produce byte-identical vocabularies")
	require.Equal(t, merges1, merges2, "two runs on identical input must produce byte-identical merge lists")

	require.Equal(t, 262, vocab1.Len())

	// Every merge operand must already be a vocabulary entry introduced
	// earlier than the merge result (property 3).
	seen := make(map[string]bool)
	for b := 0; b < 256; b++ {
		seen[string([]byte{byte(b)})] = true
	}
	for _, m := range merges1 {
		require.True(t, seen[string(m.Left)], "merge operand %q must already be in the vocabulary", m.Left)
		require.True(t, seen[string(m.Right)], "merge operand %q must already be in the vocabulary", m.Right)
		seen[string(m.Left)+string(m.Right)] = true
	}
}

func TestTrainVocabularyGrowsMonotonically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick brown fox jumps over the lazy dog repeatedly and often"), 0o644))

	sizes := []int{256, 270, 300}
	var prev int
	for _, target := range sizes {
		vocab, _, err := Train(context.Background(), path, Config{VocabSize: target, Workers: 1})
		require.NoError(t, err)
		require.GreaterOrEqual(t, vocab.Len(), prev)
		prev = vocab.Len()
	}
}
