package session

import "intent-router/internal/model"

// Ring is a fixed-capacity history buffer. Pushing into a full ring evicts
// the oldest turn.
type Ring struct {
	buf  []model.SessionTurn
	head int // index of the oldest turn
	size int
}

func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]model.SessionTurn, capacity)}
}

func (r *Ring) Push(t model.SessionTurn) {
	if r.size < len(r.buf) {
		r.buf[(r.head+r.size)%len(r.buf)] = t
		r.size++
		return
	}
	r.buf[r.head] = t
	r.head = (r.head + 1) % len(r.buf)
}

// Last returns up to n of the most recent turns, oldest first.
func (r *Ring) Last(n int) []model.SessionTurn {
	n = max(0, min(n, r.size))
	out := make([]model.SessionTurn, n)
	skip := r.size - n
	for i := range n {
		out[i] = r.buf[(r.head+skip+i)%len(r.buf)]
	}
	return out
}

func (r *Ring) Len() int { return r.size }

func (r *Ring) Cap() int { return len(r.buf) }
