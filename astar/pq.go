package astar

// openItem is a heap entry for one cell on the open frontier.
// cell is the row-major index of the cell; g and f are its current costs;
// seq is the order in which the cell first entered the open set.
type openItem struct {
	cell    int
	g, f    float64
	seq     int
	heapIdx int // maintained by the heap for openPQ.Fix
}

// openPQ is a min-heap of *openItem ordered by f ascending, with ties
// broken by seq ascending. The seq tie-break reproduces the behavior of a
// left-to-right scan over an insertion-ordered open list with a strict <
// comparison: among equal-f cells, the one that entered the open set first
// wins. seq is assigned once, when a cell is first pushed, and kept when
// its costs improve, exactly as an in-place list entry would keep its slot.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less defines the priority: smaller f first; on equal f, earlier seq first.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and updates their heap indices.
func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (pq *openPQ) Push(x interface{}) {
	item := x.(*openItem)
	item.heapIdx = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the minimum element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *openItem.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
