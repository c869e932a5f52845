package train

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
)

// byteRange is a half-open [Start, End) slice of a file, guaranteed by
// partitionFile to begin at a special-token boundary.
type byteRange struct {
	Start, End int64
}

// countFrequencies reads each range of path in parallel, pretokenizes its
// content, and returns the summed pretoken->count map (§4.D). Workers are
// pure functions with no shared mutable state; ordering does not matter
// because counts commute (§5).
func countFrequencies(ctx context.Context, path string, ranges []byteRange, specials []string) (map[string]int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	partials := make([]map[string]int, len(ranges))
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			counts, err := countRange(gctx, path, r, specials)
			if err != nil {
				return err
			}
			partials[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]int)
	for _, partial := range partials {
		for k, c := range partial {
			merged[k] += c
		}
	}
	return merged, nil
}

// countRange implements one worker of component D: read the slice, decode
// as UTF-8, split on special tokens, pretokenize each resulting document,
// and accumulate counts keyed by the pretoken's raw bytes.
func countRange(ctx context.Context, path string, r byteRange, specials []string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	buf := make([]byte, r.End-r.Start)
	if _, err := f.ReadAt(buf, r.Start); err != nil {
		return nil, fmt.Errorf("read range [%d,%d): %w", r.Start, r.End, err)
	}

	if !utf8.Valid(buf) {
		return nil, &TrainError{Op: "decode corpus chunk", Err: fmt.Errorf("non-UTF-8 bytes in range [%d,%d)", r.Start, r.End)}
	}

	counts := make(map[string]int)
	for _, doc := range gpt2bpe.SplitOnSpecials(string(buf), specials) {
		pretokens, err := gpt2bpe.Pretokenize(doc)
		if err != nil {
			return nil, fmt.Errorf("pretokenize: %w", err)
		}
		for _, pt := range pretokens {
			counts[pt]++
		}
	}
	return counts, nil
}

func toRanges(boundaries []int64) []byteRange {
	if len(boundaries) < 2 {
		return nil
	}
	ranges := make([]byteRange, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		if boundaries[i] == boundaries[i+1] {
			continue
		}
		ranges = append(ranges, byteRange{Start: boundaries[i], End: boundaries[i+1]})
	}
	return ranges
}
