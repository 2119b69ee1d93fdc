package engine

import (
	"sort"
	"sync"
	"time"
)

// FrameFunc receives the timestamp of the frame it runs in
type FrameFunc func(now time.Time)

// FrameHandle identifies a pending frame request; zero is never issued
type FrameHandle uint64

// Scheduler delivers frame callbacks
// A request runs at most once, on the next frame after it was made
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameQueue is a Scheduler pumped by its owner
// The main loop fires it from the frame ticker; tests fire it with chosen timestamps
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]FrameFunc
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]FrameFunc)}
}

// RequestFrame queues fn for the next Fire
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a pending request; unknown or already fired handles are ignored
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	q.mu.Lock()
	delete(q.pending, h)
	q.mu.Unlock()
}

// Pending returns the number of queued requests
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Fire runs every request queued before the call, in request order, and returns how many ran
// Requests made by the callbacks wait for the next Fire
func (q *FrameQueue) Fire(now time.Time) int {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return 0
	}
	handles := make([]FrameHandle, 0, len(q.pending))
	for h := range q.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]FrameFunc, len(handles))
	for i, h := range handles {
		fns[i] = q.pending[h]
	}
	clear(q.pending)
	q.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}
