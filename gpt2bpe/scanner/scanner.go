// Package scanner provides buffered, streaming tokenization over an
// io.Reader, in the shape of bufio.Scanner, so large inputs can be
// tokenized without reading the whole corpus into memory up front.
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Tokenizer is the minimal interface a streaming source needs.
type Tokenizer interface {
	Encode(text string) ([]int, error)
}

// Scanner streams token ids out of an io.Reader one at a time.
type Scanner interface {
	// Scan advances to the next token. It returns false at EOF or on error.
	Scan() bool
	// Token returns the token id produced by the most recent Scan.
	Token() int
	// Err returns the first error encountered while scanning, if any.
	Err() error
}

type scanner struct {
	t Tokenizer
	r *bufio.Reader

	buf bytes.Buffer

	tokens   []int
	tokIndex int

	bufSize   int
	maxBuffer int

	done bool
	err  error
}

// Option configures a Scanner.
type Option func(*scanner)

// WithBufferSize sets the internal read buffer size. Default is 4096 bytes.
func WithBufferSize(size int) Option {
	return func(s *scanner) {
		if size > 0 {
			s.bufSize = size
		}
	}
}

// WithMaxBuffer sets the maximum amount of text accumulated before a forced
// tokenization pass, bounding memory for pathological (no-whitespace)
// inputs. Default is 1MiB.
func WithMaxBuffer(size int) Option {
	return func(s *scanner) {
		if size > 0 {
			s.maxBuffer = size
		}
	}
}

// New creates a Scanner with default options.
func New(t Tokenizer, r io.Reader) Scanner {
	return NewWithOptions(t, r)
}

// NewWithOptions creates a Scanner with the given options applied.
func NewWithOptions(t Tokenizer, r io.Reader, opts ...Option) Scanner {
	s := &scanner{
		t:         t,
		bufSize:   4096,
		maxBuffer: 1 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.r = bufio.NewReaderSize(r, s.bufSize)
	return s
}

// Scan reads and tokenizes enough of the input to produce the next token,
// buffering up to a whitespace boundary so that a word is not split across
// reads. When the max-buffer limit is reached first, the buffered text is
// tokenized as it is, even mid-word. Even at a whitespace boundary, a chunk boundary landing right after the space that
// starts the next pretoken (" word" tokenizes differently from "word") can
// still diverge from a single whole-document Encode call.
func (s *scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.tokIndex < len(s.tokens) {
		s.tokIndex++
		return true
	}

	if s.done && s.buf.Len() == 0 {
		return false
	}

	s.tokens = s.tokens[:0]
	s.tokIndex = 0

	if err := s.fill(); err != nil {
		s.err = fmt.Errorf("scanner: fill buffer: %w", err)
		return false
	}

	text := s.buf.String()
	s.buf.Reset()

	if text == "" {
		return false
	}

	tokens, err := s.t.Encode(text)
	if err != nil {
		s.err = fmt.Errorf("scanner: encode: %w", err)
		return false
	}
	s.tokens = tokens

	if len(s.tokens) == 0 {
		return s.Scan()
	}

	s.tokIndex = 1
	return true
}

// fill reads from r until a whitespace boundary is seen, EOF is reached, or
// maxBuffer is exceeded.
func (s *scanner) fill() error {
	chunk := make([]byte, s.bufSize)
	for {
		n, err := s.r.Read(chunk)
		if n > 0 {
			s.buf.Write(chunk[:n])
		}
		if err == io.EOF {
			s.done = true
			return nil
		}
		if err != nil {
			return err
		}
		if s.buf.Len() >= s.maxBuffer {
			return nil
		}
		if b := s.buf.Bytes(); len(b) > 0 && isBoundaryByte(b[len(b)-1]) {
			return nil
		}
	}
}

func isBoundaryByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// Token returns the current token id.
func (s *scanner) Token() int {
	if s.tokIndex > 0 && s.tokIndex <= len(s.tokens) {
		return s.tokens[s.tokIndex-1]
	}
	return 0
}

// Err returns the first error encountered during scanning, if any.
func (s *scanner) Err() error {
	return s.err
}
