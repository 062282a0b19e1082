package model

const defaultHistoryCap = 100

// TransitionHistory is a fixed-size ring buffer of delivered transitions,
// backing the console's `alerts` command. When the buffer is full, new
// pushes overwrite the oldest entry. It is UI-side history only and is
// never consulted by the poller or the store.
type TransitionHistory struct {
	buf  []Transition
	head int // index of the next write position
	size int // number of valid entries
}

// NewTransitionHistory creates a TransitionHistory with the given capacity.
// If capacity <= 0, the defaultHistoryCap (100) is used.
func NewTransitionHistory(capacity int) *TransitionHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &TransitionHistory{
		buf: make([]Transition, capacity),
	}
}

// Push appends a transition, overwriting the oldest if full.
func (h *TransitionHistory) Push(t Transition) {
	h.buf[h.head] = t
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries.
func (h *TransitionHistory) Len() int {
	return h.size
}

// Recent returns up to n transitions in chronological order (oldest first).
// n <= 0 or n > Len returns all valid entries.
func (h *TransitionHistory) Recent(n int) []Transition {
	if n <= 0 || n > h.size {
		n = h.size
	}
	out := make([]Transition, n)
	// oldest requested entry sits at (head - n + cap) % cap
	start := (h.head - n + len(h.buf)) % len(h.buf)
	for i := 0; i < n; i++ {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}
