package gpt2bpe

import "container/heap"

// Encode converts text into a sequence of token ids (§4.F). Special tokens
// declared on the tokenizer are matched longest-first and passed through
// atomically; everything else is pre-tokenized and BPE-merged.
func (t *Tokenizer) Encode(text string) ([]int, error) {
	if text == "" {
		return nil, nil
	}

	output := make([]int, 0, len(text)/estimatedTokensPerCharacter)

	segments := splitOnSpecialTokens(text, t.specialSplitter)
	for _, segment := range segments {
		if isSpecialSegment(segment, t.specialSet) {
			id, ok := t.vocab.ID([]byte(segment))
			if !ok {
				return nil, NewTokenError("encode special token", segment, ErrTokenNotFound)
			}
			output = append(output, id)
			continue
		}

		pretokens, err := pretokenize(segment)
		if err != nil {
			return nil, err
		}
		for _, pt := range pretokens {
			if pt == "" {
				continue
			}
			ids := t.performBPE([]byte(pt))
			output = append(output, ids...)
		}
	}

	return output, nil
}

// performBPE runs the greedy, priority-ordered merge loop of §4.F over a
// single pretoken's bytes, caching the result.
func (t *Tokenizer) performBPE(pretoken []byte) []int {
	key := string(pretoken)
	if t.cache != nil {
		if cached, ok := t.cache.get(key); ok {
			return cached
		}
	}

	tokenIDs := make([]int, len(pretoken))
	for i, b := range pretoken {
		tokenIDs[i] = int(b)
	}

	if len(tokenIDs) <= 1 {
		t.cacheResult(key, tokenIDs)
		return tokenIDs
	}

	h := &mergeHeap{}
	first := t.buildMergeList(tokenIDs, h)

	for h.Len() > 0 {
		left := heap.Pop(h).(*mergeNode)
		if left.deleted || left.next == nil || left.next.deleted {
			continue
		}
		first = t.applyMerge(left, first, h)
	}

	result := make([]int, 0, len(tokenIDs))
	for n := first; n != nil; n = n.next {
		result = append(result, n.tokenID)
	}

	t.cacheResult(key, result)
	return result
}

// buildMergeList builds the initial doubly linked list of token ids and
// seeds the heap with every adjacent pair that has a recorded merge.
func (t *Tokenizer) buildMergeList(tokenIDs []int, h *mergeHeap) *mergeNode {
	first := &mergeNode{tokenID: tokenIDs[0], origPos: 0}
	prev := first
	for i := 1; i < len(tokenIDs); i++ {
		node := &mergeNode{tokenID: tokenIDs[i], origPos: i, prev: prev}
		prev.next = node
		t.enqueueMerge(prev, h)
		prev = node
	}
	return first
}

// enqueueMerge pushes left onto the heap if (left, left.next) has a
// recorded merge rank.
func (t *Tokenizer) enqueueMerge(left *mergeNode, h *mergeHeap) {
	if left.next == nil {
		return
	}
	rank, ok := t.mergeIdx.rank[pairKey{left.tokenID, left.next.tokenID}]
	if !ok {
		return
	}
	left.mergeRank = rank
	heap.Push(h, left)
}

// applyMerge replaces left and left.next with their merged id. The previous
// node is not mutated in place: it is marked deleted and replaced with a
// fresh copy, so that any heap entry still pointing at the old previous
// node (pushed for a pair that no longer exists once this merge lands) is
// reliably caught by the `deleted` check on pop, instead of silently
// reading a mutated `.next` and acting on a stale rank.
func (t *Tokenizer) applyMerge(left, first *mergeNode, h *mergeHeap) *mergeNode {
	right := left.next
	mergedID, ok := t.mergeIdx.into[pairKey{left.tokenID, right.tokenID}]
	if !ok {
		return first
	}

	left.deleted = true
	right.deleted = true

	if left.prev != nil {
		oldPrev := left.prev
		oldPrev.deleted = true
		newPrev := &mergeNode{tokenID: oldPrev.tokenID, origPos: oldPrev.origPos, prev: oldPrev.prev}
		left.prev = newPrev
		if newPrev.prev != nil {
			newPrev.prev.next = newPrev
		} else {
			first = newPrev
		}
	}

	merged := &mergeNode{tokenID: mergedID, origPos: left.origPos, prev: left.prev, next: right.next}

	if merged.prev != nil {
		merged.prev.next = merged
		t.enqueueMerge(merged.prev, h)
	} else {
		first = merged
	}
	if merged.next != nil {
		merged.next.prev = merged
		t.enqueueMerge(merged, h)
	}

	return first
}

func (t *Tokenizer) cacheResult(key string, result []int) {
	if t.cache != nil {
		t.cache.put(key, result)
	}
}
