package train

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionFileSingleChunkSpansWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	boundaries, err := partitionFile(context.Background(), path, 1, []byte("<|endoftext|>"))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 11}, boundaries)
}

func TestPartitionFileAlignsOnDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	delim := "<|endoftext|>"
	doc := "aaaaaaaaaa"
	content := doc + delim + doc + delim + doc
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	boundaries, err := partitionFile(context.Background(), path, 2, []byte(delim))
	require.NoError(t, err)

	// Every interior boundary must land exactly at the start of a delimiter
	// occurrence (or at EOF), never inside a document.
	for _, b := range boundaries[1 : len(boundaries)-1] {
		require.True(t, b == int64(len(doc)) || b == int64(len(doc)*2+len(delim)),
			"boundary %d does not align with a delimiter occurrence", b)
	}
}

func TestToRangesSkipsEmptySpans(t *testing.T) {
	ranges := toRanges([]int64{0, 0, 5, 5, 10})
	require.Equal(t, []byteRange{{Start: 0, End: 5}, {Start: 5, End: 10}}, ranges)
}

func TestToRangesTooFewBoundaries(t *testing.T) {
	require.Nil(t, toRanges([]int64{5}))
}

func TestIndexOf(t *testing.T) {
	require.Equal(t, 3, indexOf([]byte("abcXYZdef"), []byte("XYZ")))
	require.Equal(t, -1, indexOf([]byte("abcdef"), []byte("XYZ")))
	require.Equal(t, 0, indexOf([]byte("abc"), nil))
}
