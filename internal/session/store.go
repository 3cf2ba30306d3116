// Package session keeps the bounded per-conversation history and slot memory
// that tie classification turns together.
package session

import (
	"context"
	"sync"
	"time"

	"intent-router/internal/model"
	pkgLog "intent-router/pkg/log"
)

type state struct {
	mu       sync.Mutex
	turns    *Ring
	slots    model.SlotMap
	lastSeen time.Time
	dropped  bool // set once the state is removed from the store
}

// Store maps session ids to their state. The store lock guards the map; each
// session has its own lock for read-modify-write of its history.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*state

	l             pkgLog.Logger
	idleTTL       time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// New creates a Store. idleTTL 0 keeps sessions for the process lifetime.
func New(l pkgLog.Logger, idleTTL, sweepInterval time.Duration) *Store {
	return &Store{
		sessions:      make(map[string]*state),
		l:             l,
		idleTTL:       idleTTL,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Tx is the view of one session handed to Update. It must not be retained
// after the callback returns.
type Tx struct {
	st  *state
	now time.Time
}

func (tx *Tx) Recent(n int) []model.SessionTurn {
	return cloneTurns(tx.st.turns.Last(n))
}

func (tx *Tx) RecentIntents(n int) []string {
	turns := tx.st.turns.Last(n)
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = t.Intent
	}
	return out
}

func (tx *Tx) SlotMemory() model.SlotMap {
	return tx.st.slots.Clone()
}

// Append pushes a turn and merges its slots into slot memory.
func (tx *Tx) Append(turn model.SessionTurn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = tx.now
	}
	turn = cloneTurn(turn)
	tx.st.turns.Push(turn)
	for k, v := range turn.Slots {
		tx.st.slots[k] = v
	}
	tx.st.lastSeen = tx.now
}

// Update runs fn with exclusive access to the session. Calls for the same id
// are serialized; calls for different ids run in parallel. A session that is
// still empty when fn returns is not kept.
func (s *Store) Update(id string, fn func(tx *Tx) error) error {
	for {
		st := s.getOrCreate(id)
		st.mu.Lock()
		if st.dropped {
			st.mu.Unlock()
			continue
		}
		err := fn(&Tx{st: st, now: s.now()})
		empty := st.turns.Len() == 0 && len(st.slots) == 0
		if empty {
			s.remove(id, st)
		}
		st.mu.Unlock()
		return err
	}
}

// Append records a turn for the session, creating it on first use.
func (s *Store) Append(id string, turn model.SessionTurn) {
	_ = s.Update(id, func(tx *Tx) error {
		tx.Append(turn)
		return nil
	})
}

// Recent returns up to n of the latest turns, oldest first.
func (s *Store) Recent(id string, n int) []model.SessionTurn {
	out := []model.SessionTurn{}
	s.view(id, func(tx *Tx) { out = tx.Recent(n) })
	return out
}

// RecentIntents returns the intents of up to n of the latest turns.
func (s *Store) RecentIntents(id string, n int) []string {
	out := []string{}
	s.view(id, func(tx *Tx) { out = tx.RecentIntents(n) })
	return out
}

func (s *Store) SlotMemory(id string) model.SlotMap {
	out := model.SlotMap{}
	s.view(id, func(tx *Tx) { out = tx.SlotMemory() })
	return out
}

// Pending returns the sub-intents of the latest turn that were not handled,
// i.e. all but the first.
func (s *Store) Pending(id string) []string {
	out := []string{}
	s.view(id, func(tx *Tx) {
		last := tx.st.turns.Last(1)
		if len(last) == 1 && len(last[0].SubIntents) > 1 {
			out = append(out, last[0].SubIntents[1:]...)
		}
	})
	return out
}

// Clear drops history and slot memory. Unknown ids are a no-op.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if ok {
		st.mu.Lock()
		st.dropped = true
		st.mu.Unlock()
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps idle sessions until ctx is done. It returns at once when no idle
// TTL is configured.
func (s *Store) Run(ctx context.Context) {
	if s.idleTTL <= 0 || s.sweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.l.Infof(ctx, "%s: "+LogMsgSessionsSwept, LogPrefixSweep, n)
			}
		}
	}
}

// sweep removes sessions idle for longer than the TTL.
func (s *Store) sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	candidates := make(map[string]*state, len(s.sessions))
	for id, st := range s.sessions {
		candidates[id] = st
	}
	s.mu.Unlock()

	removed := 0
	for id, st := range candidates {
		st.mu.Lock()
		if !st.dropped && st.lastSeen.Before(cutoff) {
			if s.remove(id, st) {
				removed++
			}
		}
		st.mu.Unlock()
	}
	return removed
}

func (s *Store) view(id string, fn func(tx *Tx)) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.dropped {
		return
	}
	fn(&Tx{st: st})
}

func (s *Store) getOrCreate(id string) *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		st = &state{
			turns:    NewRing(Capacity),
			slots:    make(model.SlotMap),
			lastSeen: s.now(),
		}
		s.sessions[id] = st
	}
	return st
}

// remove deletes st if it is still the state registered for id. The caller
// holds st.mu.
func (s *Store) remove(id string, st *state) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] != st {
		return false
	}
	delete(s.sessions, id)
	st.dropped = true
	return true
}

func cloneTurns(turns []model.SessionTurn) []model.SessionTurn {
	for i := range turns {
		turns[i] = cloneTurn(turns[i])
	}
	return turns
}

func cloneTurn(t model.SessionTurn) model.SessionTurn {
	t.Slots = t.Slots.Clone()
	t.SubIntents = append([]string{}, t.SubIntents...)
	return t
}
