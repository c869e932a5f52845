// Package train implements the BPE trainer (§4.C-§4.E of the spec): corpus
// partitioning, parallel frequency counting, and the greedy merge loop that
// grows a vocabulary from byte-pair frequencies.
package train

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"
)

const boundaryScanStep = 4096 // bytes scanned per probe while hunting for the delimiter.

// partitionFile computes up to chunkCount+1 byte offsets that split path
// into ranges each beginning either at file start or at an occurrence of
// delimiter (§4.C). Interior candidates are evenly spaced, then nudged
// forward to the next delimiter occurrence so no range splits a document.
func partitionFile(ctx context.Context, path string, chunkCount int, delimiter []byte) ([]int64, error) {
	if chunkCount < 1 {
		chunkCount = 1
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	size := info.Size()

	candidates := make([]int64, chunkCount+1)
	for i := range candidates {
		candidates[i] = int64(i) * size / int64(chunkCount)
	}
	candidates[len(candidates)-1] = size

	boundaries := make([]int64, len(candidates))
	boundaries[0] = 0
	boundaries[len(candidates)-1] = size

	g, gctx := errgroup.WithContext(ctx)
	for i := 1; i < len(candidates)-1; i++ {
		i := i
		g.Go(func() error {
			off, err := nextDelimiterOffset(gctx, path, candidates[i], size, delimiter)
			if err != nil {
				return err
			}
			boundaries[i] = off
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupSortedBoundaries(boundaries), nil
}

// nextDelimiterOffset scans forward from start in boundaryScanStep-sized
// increments until delimiter is found, returning its offset, or size if
// EOF is reached first. Each candidate is scanned independently with its
// own file handle and read buffer: workers share no mutable state (§5).
func nextDelimiterOffset(ctx context.Context, path string, start, size int64, delimiter []byte) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	overlap := int64(len(delimiter)) - 1
	if overlap < 0 {
		overlap = 0
	}

	pos := start
	buf := make([]byte, boundaryScanStep+overlap)
	for pos < size {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		readStart := pos
		n, err := f.ReadAt(buf[:min64(int64(len(buf)), size-readStart)], readStart)
		if n == 0 && err != nil {
			break
		}

		if idx := indexOf(buf[:n], delimiter); idx >= 0 {
			return readStart + int64(idx), nil
		}

		advance := int64(boundaryScanStep)
		if advance > int64(n) {
			advance = int64(n)
		}
		pos += advance
		if advance == 0 {
			break
		}
	}

	return size, nil
}

func indexOf(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func dedupSortedBoundaries(boundaries []int64) []int64 {
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })
	out := boundaries[:0]
	var last int64 = -1
	for _, b := range boundaries {
		if b != last {
			out = append(out, b)
			last = b
		}
	}
	return out
}
