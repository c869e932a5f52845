package gpt2bpe

import (
	"io"

	"github.com/corpusml/gpt2bpe/gpt2bpe/scanner"
)

// Scanner streams token ids out of an io.Reader without holding the whole
// input in memory. See package scanner for the streaming/buffering policy.
type Scanner = scanner.Scanner

// ScannerOption configures a Scanner.
type ScannerOption = scanner.Option

// Re-exported scanner option constructors.
var (
	WithBufferSize = scanner.WithBufferSize
	WithMaxBuffer  = scanner.WithMaxBuffer
)

// NewScanner creates a Scanner for streaming tokenization with default options.
func (t *Tokenizer) NewScanner(r io.Reader) Scanner {
	return scanner.New(t, r)
}

// NewScannerOptions creates a Scanner with custom options.
func (t *Tokenizer) NewScannerOptions(r io.Reader, opts ...ScannerOption) Scanner {
	return scanner.NewWithOptions(t, r, opts...)
}
