package dijkstra

import "container/heap"

// Entry pairs a vertex with a tentative distance from the source.
// It is an immutable value; entries are ordered by distance only.
type Entry struct {
	vertex   int     // vertex index in [0, N)
	distance float64 // tentative distance, may be +Inf
}

// NewEntry returns the entry (v, d).
func NewEntry(v int, d float64) Entry {
	return Entry{vertex: v, distance: d}
}

// Vertex returns the vertex index.
func (e Entry) Vertex() int { return e.vertex }

// Distance returns the tentative distance.
func (e Entry) Distance() float64 { return e.distance }

// Less orders entries by distance. Equal distances are not ordered.
func (e Entry) Less(o Entry) bool { return e.distance < o.distance }

// Frontier is a min-ordered multiset of entries.
//
// It deliberately has no decrease-key: when a shorter distance to a vertex
// is found, the caller inserts a new entry and leaves the old one in place.
// The caller discards stale entries on extraction (“lazy invalidation”), so
// the frontier may hold up to O(E) entries.
//
// Entries with equal distance are extracted in insertion order, which makes
// every run on the same input reproducible.
type Frontier struct {
	pq  entryPQ
	seq uint64 // next insertion sequence number
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{pq: make(entryPQ, 0, capacity)}
}

// Insert adds e. O(log n).
func (f *Frontier) Insert(e Entry) {
	heap.Push(&f.pq, queued{Entry: e, seq: f.seq})
	f.seq++
}

// ExtractMin removes and returns the entry with the smallest distance.
// Returns ErrEmptyFrontier when the frontier has no entries. O(log n).
func (f *Frontier) ExtractMin() (Entry, error) {
	if f.pq.Len() == 0 {
		return Entry{}, ErrEmptyFrontier
	}

	return heap.Pop(&f.pq).(queued).Entry, nil
}

// IsEmpty reports whether no entries remain.
func (f *Frontier) IsEmpty() bool { return f.pq.Len() == 0 }

// Len returns the number of entries, stale ones included.
func (f *Frontier) Len() int { return f.pq.Len() }

// queued is an Entry plus its insertion sequence number for tie-breaking.
type queued struct {
	Entry
	seq uint64
}

// entryPQ is a min-heap of queued, ordered by (distance, seq) ascending.
type entryPQ []queued

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less: smaller distance first; on ties the earlier insertion wins.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].distance != pq[j].distance {
		return pq[i].Entry.Less(pq[j].Entry)
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type queued.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(queued)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
