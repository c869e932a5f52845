package train

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairIndexAddAndRemove(t *testing.T) {
	idx := newPairIndex()
	w := &word{ids: []int{1, 2, 3}, count: 5}
	key := encodeWordKey(w.ids)

	idx.addWord(key, w)

	require.Equal(t, 5, idx.freqs[trainPairKey{1, 2}])
	require.Equal(t, 5, idx.freqs[trainPairKey{2, 3}])
	require.Contains(t, idx.snapshotWords(trainPairKey{1, 2}), key)

	idx.removeWord(key, w)

	_, ok := idx.freqs[trainPairKey{1, 2}]
	require.False(t, ok, "pair frequency should be deleted once it reaches zero")
	require.Empty(t, idx.snapshotWords(trainPairKey{1, 2}))
}

func TestPairIndexAccumulatesAcrossWords(t *testing.T) {
	idx := newPairIndex()
	w1 := &word{ids: []int{1, 2}, count: 3}
	w2 := &word{ids: []int{1, 2}, count: 4}

	idx.addWord("k1", w1)
	idx.addWord("k2", w2)

	require.Equal(t, 7, idx.freqs[trainPairKey{1, 2}])
	require.ElementsMatch(t, []string{"k1", "k2"}, idx.snapshotWords(trainPairKey{1, 2}))
}

func TestPairIndexSingleIDWordContributesNoPairs(t *testing.T) {
	idx := newPairIndex()
	w := &word{ids: []int{42}, count: 10}
	idx.addWord("solo", w)
	require.Empty(t, idx.freqs)
}
