package bpecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpusml/gpt2bpe/gpt2bpe"
)

var (
	encVocab    string
	encMerges   string
	encSpecials []string
	encOutput   string
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text into token IDs using a trained vocabulary and merge list.

If no text is provided as an argument, reads from stdin.`,
		Example: `  # Encode a simple string
  gpt2bpe encode --vocab vocab.json --merges merges.txt "Hello, world!"

  # Encode from stdin
  echo "Hello, world!" | gpt2bpe encode --vocab vocab.json --merges merges.txt

  # Output as JSON
  gpt2bpe encode --vocab vocab.json --merges merges.txt -o json "Hello"`,
		RunE: runEncode,
	}

	cmd.Flags().StringVar(&encVocab, "vocab", "", "Path to vocab.json (required)")
	cmd.Flags().StringVar(&encMerges, "merges", "", "Path to merges.txt (required)")
	cmd.Flags().StringSliceVar(&encSpecials, "special-tokens", nil, "Special tokens to recognize atomically")
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "Output format: space, newline, json")

	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
	if err := requireFlag("vocab", encVocab); err != nil {
		return err
	}
	if err := requireFlag("merges", encMerges); err != nil {
		return err
	}

	tok, err := gpt2bpe.NewFromFiles(encVocab, encMerges, encSpecials)
	if err != nil {
		return fmt.Errorf("load tokenizer: %w", err)
	}

	text, err := readEncodeInput(args)
	if err != nil {
		return err
	}

	ids, err := tok.Encode(text)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return printTokens(ids, encOutput)
}

func readEncodeInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printTokens(ids []int, format string) error {
	switch format {
	case "json":
		data, err := json.Marshal(map[string]any{"tokens": ids, "count": len(ids)})
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		for _, id := range ids {
			fmt.Println(id)
		}
	case "space":
		for i, id := range ids {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(id)
		}
		fmt.Println()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}
