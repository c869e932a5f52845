// Package gpt2bpe implements a GPT-2 family byte-pair-encoding tokenizer:
// training a vocabulary and merge list from a raw UTF-8 corpus, and
// encoding/decoding text against that vocabulary.
//
// # Overview
//
// Tokenization proceeds in three stages:
//
//  1. Pre-tokenization: text is split on declared special tokens, then
//     each remaining segment is split into pretokens with a fixed
//     Unicode-aware regular expression.
//  2. Byte-level encoding: each pretoken's UTF-8 bytes become its initial
//     symbols, byte value b being vocabulary id b (0-255). The fixed
//     byte<->printable-codepoint bijection is used only when reading and
//     writing vocabulary and merge files.
//  3. BPE merging: adjacent symbol pairs are repeatedly replaced by the
//     learned merge of highest priority (lowest rank) until none apply.
//
// Training (see package train) runs the same pre-tokenization stage over
// a corpus, then greedily grows the vocabulary by repeatedly merging the
// most frequent adjacent pair, recording each merge in priority order.
//
// # Basic usage
//
//	vocab, err := gpt2bpe.LoadVocab("vocab.json")
//	merges, err := gpt2bpe.LoadMerges("merges.txt")
//	tok, err := gpt2bpe.New(vocab, merges, []string{"<|endoftext|>"})
//	ids, err := tok.Encode("Hello, world!")
//	text, err := tok.Decode(ids)
//
// # Thread safety
//
// A *Tokenizer is immutable after construction and safe for concurrent
// Encode/Decode calls from multiple goroutines; the per-pretoken cache is
// internally synchronized.
package gpt2bpe
