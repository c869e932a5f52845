package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpusml/gpt2bpe/cmd/gpt2bpe/bpecmd"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gpt2bpe",
	Short: "A GPT-2 family byte-pair encoding tokenizer CLI",
	Long: `gpt2bpe trains and runs a GPT-2 family byte-level BPE tokenizer.

Available operations:
  - train:  Learn a vocabulary and merge list from a text corpus
  - encode: Convert text to token IDs
  - decode: Convert token IDs back to text
  - info:   Display vocabulary information`,
	Example: `  # Train a vocabulary
  gpt2bpe train --input corpus.txt --vocab-size 10000 --vocab-out vocab.json --merges-out merges.txt

  # Encode text
  gpt2bpe encode --vocab vocab.json --merges merges.txt "Hello, world!"

  # Decode tokens
  gpt2bpe decode --vocab vocab.json --merges merges.txt 18435 11 995 0`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gpt2bpe version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bpecmd.Commands()...)
}
