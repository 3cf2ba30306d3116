package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"intent-router/internal/model"
	pkgLog "intent-router/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore() *Store {
	return New(pkgLog.NewNop(), 0, 0)
}

func turn(utterance, intent string) model.SessionTurn {
	return model.SessionTurn{Utterance: utterance, Intent: intent}
}

func TestRing(t *testing.T) {
	r := NewRing(3)
	assert.Empty(t, r.Last(5))

	for i := range 5 {
		r.Push(turn(fmt.Sprintf("u%d", i), "claims"))
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())
	last := r.Last(10)
	require.Len(t, last, 3)
	assert.Equal(t, "u2", last[0].Utterance)
	assert.Equal(t, "u4", last[2].Utterance)

	two := r.Last(2)
	assert.Equal(t, "u3", two[0].Utterance)
	assert.Empty(t, r.Last(0))
	assert.Empty(t, r.Last(-1))
}

func TestStore_HistoryBound(t *testing.T) {
	s := newTestStore()
	for i := range 15 {
		s.Append("s1", turn(fmt.Sprintf("u%d", i), "claims"))
	}

	got := s.Recent("s1", 100)
	require.Len(t, got, Capacity)
	for i, turn := range got {
		assert.Equal(t, fmt.Sprintf("u%d", i+5), turn.Utterance)
	}
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestStore_UnknownSession(t *testing.T) {
	s := newTestStore()

	assert.NotNil(t, s.Recent("nope", 5))
	assert.Empty(t, s.Recent("nope", 5))
	assert.Empty(t, s.RecentIntents("nope", 3))
	assert.NotNil(t, s.SlotMemory("nope"))
	assert.Empty(t, s.SlotMemory("nope"))
	assert.Empty(t, s.Pending("nope"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_SlotMemoryOverride(t *testing.T) {
	s := newTestStore()
	t1 := turn("first", "claims")
	t1.Slots = model.SlotMap{"a": {Value: "1"}}
	t2 := turn("second", "claims")
	t2.Slots = model.SlotMap{"a": {Value: "2"}, "b": {Value: "3"}}
	t3 := turn("third", "claims")

	s.Append("s1", t1)
	s.Append("s1", t2)
	s.Append("s1", t3)

	mem := s.SlotMemory("s1")
	assert.Equal(t, "2", mem["a"].Value)
	assert.Equal(t, "3", mem["b"].Value)
	assert.Len(t, mem, 2)

	mem["a"] = model.SlotValue{Value: "mutated"}
	assert.Equal(t, "2", s.SlotMemory("s1")["a"].Value)
}

func TestStore_RecentIntentsAndPending(t *testing.T) {
	s := newTestStore()
	s.Append("s1", turn("a", "pharmacy"))
	s.Append("s1", turn("b", "claims"))
	s.Append("s1", turn("c", "copay"))
	compound := turn("d", "claims")
	compound.SubIntents = []string{"claims", "deductible", "copay"}
	s.Append("s1", compound)

	assert.Equal(t, []string{"claims", "copay", "claims"}, s.RecentIntents("s1", 3))
	assert.Equal(t, []string{"deductible", "copay"}, s.Pending("s1"))

	s.Append("s1", turn("e", "copay"))
	assert.Empty(t, s.Pending("s1"))
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore()
	tr := turn("hi there", "claims")
	tr.Slots = model.SlotMap{"claim_number": {Value: "1234567890"}}
	s.Append("s1", tr)
	s.Append("s2", turn("other", "copay"))
	require.Equal(t, 2, s.Len())

	s.Clear("s1")
	s.Clear("s1")
	s.Clear("missing")

	assert.Empty(t, s.Recent("s1", 10))
	assert.Empty(t, s.SlotMemory("s1"))
	assert.Len(t, s.Recent("s2", 10), 1)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newTestStore()
	tr := turn("x y", "claims")
	tr.SubIntents = []string{"claims", "copay"}
	tr.Slots = model.SlotMap{"a": {Value: "1"}}
	s.Append("s1", tr)

	tr.SubIntents[0] = "changed"
	tr.Slots["a"] = model.SlotValue{Value: "changed"}

	got := s.Recent("s1", 1)
	got[0].SubIntents[1] = "changed"

	again := s.Recent("s1", 1)
	assert.Equal(t, []string{"claims", "copay"}, again[0].SubIntents)
	assert.Equal(t, "1", again[0].Slots["a"].Value)
}

func TestStore_UpdateWithoutAppendLeavesNoSession(t *testing.T) {
	s := newTestStore()
	errBoom := errors.New("boom")

	err := s.Update("s1", func(tx *Tx) error {
		assert.Empty(t, tx.Recent(3))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ConcurrentUpdatesSameSession(t *testing.T) {
	s := newTestStore()
	const workers = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update("shared", func(tx *Tx) error {
				n, _ := strconv.Atoi(tx.SlotMemory()["count"].Value)
				tr := turn("tick", "claims")
				tr.Slots = model.SlotMap{"count": {Value: strconv.Itoa(n + 1)}}
				tx.Append(tr)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, strconv.Itoa(workers), s.SlotMemory("shared")["count"].Value)
	assert.Len(t, s.Recent("shared", 100), Capacity)
}

func TestStore_ConcurrentDistinctSessions(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			for range 5 {
				s.Append(id, turn("hello there", "claims"))
			}
			if i%2 == 0 {
				s.Clear(id)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	assert.Len(t, s.Recent("s1", 10), 5)
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(pkgLog.NewNop(), time.Minute, time.Second)
	s.now = func() time.Time { return now }

	s.Append("old", turn("a b", "claims"))
	now = now.Add(2 * time.Minute)
	s.Append("fresh", turn("a b", "claims"))

	assert.Equal(t, 1, s.sweep())
	assert.Empty(t, s.Recent("old", 10))
	assert.Len(t, s.Recent("fresh", 10), 1)
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := New(pkgLog.NewNop(), time.Millisecond, time.Millisecond)
	s.Append("s1", turn("a b", "claims"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestStore_RunWithoutTTLReturns(t *testing.T) {
	s := newTestStore()
	s.Run(context.Background())
}
