package bpecmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
)

var (
	decVocab    string
	decMerges   string
	decSpecials []string
)

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to text using a trained vocabulary.

Token IDs can be provided as arguments or piped from stdin, separated by
whitespace.`,
		Example: `  # Decode token IDs from arguments
  gpt2bpe decode --vocab vocab.json --merges merges.txt 72 101 108 108 111

  # Decode from encode output
  gpt2bpe encode --vocab vocab.json --merges merges.txt "hi" | \
    gpt2bpe decode --vocab vocab.json --merges merges.txt`,
		RunE: runDecode,
	}

	cmd.Flags().StringVar(&decVocab, "vocab", "", "Path to vocab.json (required)")
	cmd.Flags().StringVar(&decMerges, "merges", "", "Path to merges.txt (required)")
	cmd.Flags().StringSliceVar(&decSpecials, "special-tokens", nil, "Special tokens to recognize atomically")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	if err := requireFlag("vocab", decVocab); err != nil {
		return err
	}
	if err := requireFlag("merges", decMerges); err != nil {
		return err
	}

	tok, err := gpt2bpe.NewFromFiles(decVocab, decMerges, decSpecials)
	if err != nil {
		return fmt.Errorf("load tokenizer: %w", err)
	}

	ids, err := readDecodeInput(args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no token IDs provided")
	}

	text, err := tok.Decode(ids)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Print(text)
	return nil
}

func readDecodeInput(args []string) ([]int, error) {
	if len(args) > 0 {
		ids := make([]int, len(args))
		for i, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid token ID %q: %w", arg, err)
			}
			ids[i] = id
		}
		return ids, nil
	}

	var ids []int
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		id, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("invalid token ID %q: %w", scanner.Text(), err)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return ids, nil
}
