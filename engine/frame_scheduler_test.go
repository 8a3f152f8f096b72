package engine

import (
	"testing"
	"time"
)

// TestFrameSchedulerDefersRequeue verifies callbacks requested during a tick run on the next tick
func TestFrameSchedulerDefersRequeue(t *testing.T) {
	s := NewFrameScheduler()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0

	var loop FrameCallback
	loop = func(time.Time) {
		calls++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	for i := 1; i <= 3; i++ {
		if ran := s.Tick(now); ran != 1 {
			t.Fatalf("tick %d: expected 1 callback, got %d", i, ran)
		}
		if calls != i {
			t.Errorf("tick %d: expected %d calls, got %d", i, i, calls)
		}
		if s.Pending() != 1 {
			t.Errorf("tick %d: expected 1 pending, got %d", i, s.Pending())
		}
	}
	if s.FrameNumber() != 3 {
		t.Errorf("Expected frame number 3, got %d", s.FrameNumber())
	}
}

// TestFrameSchedulerCancel verifies pending and in-flight cancellation
func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler()
	now := time.Now()

	h := s.RequestFrame(func(time.Time) { t.Error("canceled callback ran") })
	s.CancelFrame(h)
	if s.Pending() != 0 {
		t.Fatalf("Expected no pending after cancel, got %d", s.Pending())
	}
	s.Tick(now)

	// A callback earlier in the batch cancels a later one
	var second FrameHandle
	ran := 0
	s.RequestFrame(func(time.Time) {
		ran++
		s.CancelFrame(second)
	})
	second = s.RequestFrame(func(time.Time) { ran++ })

	if got := s.Tick(now); got != 1 || ran != 1 {
		t.Errorf("Expected only the first callback to run, ran=%d reported=%d", ran, got)
	}

	// Unknown and zero handles are ignored
	s.CancelFrame(0)
	s.CancelFrame(9999)
}

// TestFrameSchedulerTimestamp verifies callbacks receive the tick time
func TestFrameSchedulerTimestamp(t *testing.T) {
	s := NewFrameScheduler()
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var got time.Time
	s.RequestFrame(func(now time.Time) { got = now })
	s.Tick(want)

	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if h := s.RequestFrame(nil); h != 0 {
		t.Errorf("Expected zero handle for nil callback, got %d", h)
	}
}
