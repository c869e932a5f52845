package gpt2bpe

// mergeNode is one position in the doubly linked list of token ids that
// performBPE rewrites in place as merges are applied.
type mergeNode struct {
	tokenID   int
	origPos   int
	prev      *mergeNode
	next      *mergeNode
	deleted   bool
	mergeRank int
	heapIndex int
}

// mergeHeap is a min-heap of mergeNode ordered by merge rank (lower rank
// means higher priority), with original position as a deterministic
// tie-break so that, on the rare occasion two pushes share a rank, the
// leftmost occurrence pops first.
type mergeHeap []*mergeNode

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	if h[i].mergeRank != h[j].mergeRank {
		return h[i].mergeRank < h[j].mergeRank
	}
	return h[i].origPos < h[j].origPos
}

func (h mergeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *mergeHeap) Push(x any) {
	node := x.(*mergeNode)
	node.heapIndex = len(*h)
	*h = append(*h, node)
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIndex = -1
	*h = old[:n-1]
	return node
}
