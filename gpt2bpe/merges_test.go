package gpt2bpe

import "testing"

func TestBuildMergeIndex(t *testing.T) {
	v := NewBaseVocab(nil)
	th := v.add([]byte("th"))
	the := v.add([]byte("the"))

	merges := Merges{
		{Left: []byte("t"), Right: []byte("h")},
		{Left: []byte("th"), Right: []byte("e")},
	}

	idx := buildMergeIndex(v, merges)

	tID, _ := v.ID([]byte("t"))
	hID, _ := v.ID([]byte("h"))
	eID, _ := v.ID([]byte("e"))

	rank, ok := idx.rank[pairKey{tID, hID}]
	if !ok || rank != 0 {
		t.Errorf("rank of (t,h) = (%d, %v), want (0, true)", rank, ok)
	}
	into, ok := idx.into[pairKey{tID, hID}]
	if !ok || into != th {
		t.Errorf("into of (t,h) = (%d, %v), want (%d, true)", into, ok, th)
	}

	rank, ok = idx.rank[pairKey{th, eID}]
	if !ok || rank != 1 {
		t.Errorf("rank of (th,e) = (%d, %v), want (1, true)", rank, ok)
	}
	into, ok = idx.into[pairKey{th, eID}]
	if !ok || into != the {
		t.Errorf("into of (th,e) = (%d, %v), want (%d, true)", into, ok, the)
	}
}

func TestBuildMergeIndexSkipsUnresolvableMerges(t *testing.T) {
	v := NewBaseVocab(nil)
	merges := Merges{
		{Left: []byte("ghost1"), Right: []byte("ghost2")},
	}
	idx := buildMergeIndex(v, merges)
	if len(idx.rank) != 0 || len(idx.into) != 0 {
		t.Errorf("expected empty index for unresolvable operands, got rank=%v into=%v", idx.rank, idx.into)
	}
}
