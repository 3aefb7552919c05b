// Package debounce provides slot-keyed cancellable delayed actions: the
// hover-preview delay and the editor auto-save both coalesce bursts of
// triggers into the single action scheduled last.
package debounce

import (
	"sync"
	"time"
)

// Scheduler keeps at most one pending action per slot. Scheduling into an
// occupied slot cancels the pending action first, so only the last action
// of a burst ever fires.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	slots map[string]Timer
}

func NewScheduler() *Scheduler {
	return NewSchedulerWithClock(realClock{})
}

func NewSchedulerWithClock(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		slots: make(map[string]Timer),
	}
}

// Schedule arms slot to run fn after delay, replacing any pending action in
// the same slot.
func (s *Scheduler) Schedule(slot string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.slots[slot]; ok {
		pending.Stop()
	}

	var timer Timer
	timer = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.slots[slot] == timer {
			delete(s.slots, slot)
		}
		s.mu.Unlock()
		fn()
	})
	s.slots[slot] = timer
}

// Cancel drops the pending action in slot, if any.
func (s *Scheduler) Cancel(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.slots[slot]; ok {
		pending.Stop()
		delete(s.slots, slot)
	}
}

// Close cancels every pending action.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for slot, pending := range s.slots {
		pending.Stop()
		delete(s.slots, slot)
	}
}
