package bpecmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
	"github.com/corpusml/gpt2bpe/train"
)

var (
	trainInput      string
	trainVocabSize  int
	trainSpecials   []string
	trainVocabOut   string
	trainMergesOut  string
	trainWorkers    int
	trainShowTiming bool
)

// newTrainCmd creates the train subcommand.
func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a byte-pair encoding vocabulary from a corpus",
		Long: `Train a GPT-2 family BPE vocabulary and merge list from a plain-text
corpus file.

The corpus is split on the end-of-text delimiter into chunks, pretokenized
and counted in parallel, then merged greedily until the target vocabulary
size is reached.`,
		Example: `  # Train a 10,000 token vocabulary
  gpt2bpe train --input corpus.txt --vocab-size 10000 \
    --vocab-out vocab.json --merges-out merges.txt

  # Train with a special token reserved
  gpt2bpe train --input corpus.txt --vocab-size 10000 \
    --special-tokens "<|endoftext|>" --vocab-out vocab.json --merges-out merges.txt`,
		RunE: runTrain,
	}

	cmd.Flags().StringVar(&trainInput, "input", "", "Path to the training corpus (required)")
	cmd.Flags().IntVar(&trainVocabSize, "vocab-size", 0, "Target vocabulary size, including 256 base bytes and specials (required)")
	cmd.Flags().StringSliceVar(&trainSpecials, "special-tokens", nil, "Special tokens to reserve, in order")
	cmd.Flags().StringVar(&trainVocabOut, "vocab-out", "vocab.json", "Output path for the trained vocabulary")
	cmd.Flags().StringVar(&trainMergesOut, "merges-out", "merges.txt", "Output path for the trained merge list")
	cmd.Flags().IntVar(&trainWorkers, "workers", 0, "Number of parallel partitions (0 selects GOMAXPROCS)")
	cmd.Flags().BoolVar(&trainShowTiming, "timing", false, "Print elapsed training time")

	return cmd
}

func runTrain(_ *cobra.Command, _ []string) error {
	if err := requireFlag("input", trainInput); err != nil {
		return err
	}
	if trainVocabSize <= 0 {
		return fmt.Errorf("--vocab-size must be positive")
	}

	start := time.Now()

	vocab, merges, err := train.Train(context.Background(), trainInput, train.Config{
		VocabSize: trainVocabSize,
		Specials:  trainSpecials,
		Workers:   trainWorkers,
	})
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	if err := gpt2bpe.SaveVocab(vocab, trainVocabOut); err != nil {
		return fmt.Errorf("save vocab: %w", err)
	}
	if err := gpt2bpe.SaveMerges(merges, trainMergesOut); err != nil {
		return fmt.Errorf("save merges: %w", err)
	}

	fmt.Printf("trained vocabulary of %d tokens (%d merges)\n", vocab.Len(), len(merges))
	fmt.Printf("  vocab:  %s\n", trainVocabOut)
	fmt.Printf("  merges: %s\n", trainMergesOut)
	if trainShowTiming {
		fmt.Printf("  elapsed: %s\n", time.Since(start))
	}

	return nil
}
