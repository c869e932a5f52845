// Package bpecmd provides the subcommands of the gpt2bpe CLI.
package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Commands returns every top-level subcommand the gpt2bpe CLI exposes:
// train, encode, decode, and info.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		newTrainCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newInfoCmd(),
	}
}

// requireFlag returns an error if a required string flag was left empty,
// since cobra's MarkFlagRequired only checks presence on the command line,
// not an explicitly empty value.
func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
