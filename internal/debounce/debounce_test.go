package debounce

import (
	"testing"
	"time"
)

func TestScheduleBurstFiresOnlyLast(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	var got []string
	for _, content := range []string{"draft 1", "draft 2", "draft 3"} {
		content := content
		s.Schedule("autosave", time.Second, func() {
			got = append(got, content)
		})
	}

	clock.Advance(2 * time.Second)

	if len(got) != 1 || got[0] != "draft 3" {
		t.Fatalf("expected only the last action to fire, got %v", got)
	}
}

func TestScheduleDoesNotFireBeforeDelay(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	fired := false
	s.Schedule("slot", time.Second, func() { fired = true })

	clock.Advance(999 * time.Millisecond)
	if fired {
		t.Fatalf("fired before the delay elapsed")
	}

	clock.Advance(time.Millisecond)
	if !fired {
		t.Fatalf("did not fire at the deadline")
	}
}

func TestCancelDropsPendingAction(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	fired := false
	s.Schedule("slot", time.Second, func() { fired = true })
	s.Cancel("slot")

	clock.Advance(time.Minute)
	if fired {
		t.Fatalf("cancelled action fired")
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	var preview, save bool
	s.Schedule("preview", 300*time.Millisecond, func() { preview = true })
	s.Schedule("autosave", time.Second, func() { save = true })
	s.Cancel("preview")

	clock.Advance(2 * time.Second)

	if preview {
		t.Fatalf("cancelled preview slot fired")
	}
	if !save {
		t.Fatalf("autosave slot should have fired")
	}
}

func TestRescheduleAfterFire(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	count := 0
	s.Schedule("slot", time.Second, func() { count++ })
	clock.Advance(time.Second)
	s.Schedule("slot", time.Second, func() { count++ })
	clock.Advance(time.Second)

	if count != 2 {
		t.Fatalf("expected two quiet periods to produce two fires, got %d", count)
	}
}

func TestCloseCancelsEverything(t *testing.T) {
	clock := NewManualClock()
	s := NewSchedulerWithClock(clock)

	fired := false
	s.Schedule("a", time.Second, func() { fired = true })
	s.Schedule("b", time.Second, func() { fired = true })
	s.Close()

	clock.Advance(time.Minute)
	if fired {
		t.Fatalf("actions fired after Close")
	}
}
