package gpt2bpe

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SaveVocab writes vocab to path as the JSON object described in §6: a
// mapping from the byte-printable form of each token's bytes to its id.
func SaveVocab(vocab *Vocab, path string) error {
	obj := make(map[string]int, vocab.Len())
	for id, bytes := range vocab.ByID {
		obj[encodeBytePrintable(bytes)] = id
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return NewDataError("marshal vocab", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewDataError("write vocab", path, err)
	}
	return nil
}

// SaveMerges writes merges to path as the plain-text format of §6: one
// merge per line, two whitespace-separated byte-printable tokens, in
// priority order.
func SaveMerges(merges Merges, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewDataError("create merges file", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, m := range merges {
		if _, err := fmt.Fprintf(w, "%s %s\n", encodeBytePrintable(m.Left), encodeBytePrintable(m.Right)); err != nil {
			return NewDataError("write merges", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return NewDataError("flush merges file", path, err)
	}
	return nil
}

// LoadVocab reads a vocab.json file written by SaveVocab into a Vocab. Ids
// must be dense and start at 0; ByID is built by inverting the JSON map.
func LoadVocab(path string) (*Vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDataError("read vocab", path, err)
	}

	var obj map[string]int
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, NewDataError("unmarshal vocab", path, err)
	}

	byID := make([][]byte, len(obj))
	byString := make(map[string]int, len(obj))
	for printable, id := range obj {
		if id < 0 || id >= len(obj) {
			return nil, NewDataError("load vocab", path, fmt.Errorf("id %d out of range [0,%d)", id, len(obj)))
		}
		raw := decodeBytePrintable(printable)
		byID[id] = raw
		byString[string(raw)] = id
	}

	return &Vocab{ByID: byID, ByString: byString}, nil
}

// LoadMerges reads a merges.txt file written by SaveMerges into a Merges
// list, preserving line order as priority.
func LoadMerges(path string) (Merges, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDataError("open merges", path, err)
	}
	defer f.Close()

	var merges Merges
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return nil, NewDataError("parse merges", path, fmt.Errorf("malformed merge line: %q", line))
		}
		merges = append(merges, Merge{
			Left:  decodeBytePrintable(parts[0]),
			Right: decodeBytePrintable(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, NewDataError("read merges", path, err)
	}
	return merges, nil
}

// NewFromFiles loads vocab and merges from disk and constructs a Tokenizer,
// appending any special token not already present in the loaded vocab
// (§6).
func NewFromFiles(vocabPath, mergesPath string, specials []string, opts ...Option) (*Tokenizer, error) {
	vocab, err := LoadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	merges, err := LoadMerges(mergesPath)
	if err != nil {
		return nil, err
	}
	return New(vocab, merges, specials, opts...)
}
