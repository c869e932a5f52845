package gpt2bpe

import (
	"reflect"
	"testing"
)

func TestSplitOnSpecialTokens(t *testing.T) {
	splitter := buildSpecialSplitter([]string{"<|endoftext|>", "<|pad|>"})

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"no_special", "hello world", []string{"hello world"}},
		{"leading_special", "<|endoftext|>hello", []string{"<|endoftext|>", "hello"}},
		{"trailing_special", "hello<|pad|>", []string{"hello", "<|pad|>"}},
		{"surrounded", "a<|endoftext|>b", []string{"a", "<|endoftext|>", "b"}},
		{"adjacent_specials", "<|endoftext|><|pad|>", []string{"<|endoftext|>", "<|pad|>"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := splitOnSpecialTokens(c.text, splitter)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("splitOnSpecialTokens(%q) = %q, want %q", c.text, got, c.want)
			}
		})
	}
}

func TestSplitOnSpecialTokensNilSplitter(t *testing.T) {
	got := splitOnSpecialTokens("hello", nil)
	want := []string{"hello"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSpecialSplitterLongestFirst(t *testing.T) {
	splitter := buildSpecialSplitter([]string{"<|x|>", "<|x|>2"})
	got := splitOnSpecialTokens("<|x|>2rest", splitter)
	want := []string{"<|x|>2", "rest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSpecialSplitterEmpty(t *testing.T) {
	if splitter := buildSpecialSplitter(nil); splitter != nil {
		t.Errorf("expected nil splitter for empty specials, got %v", splitter)
	}
}
