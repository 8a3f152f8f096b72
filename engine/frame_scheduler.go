package engine

import "time"

// FrameHandle identifies a pending frame request, zero is never issued
type FrameHandle uint64

// FrameCallback receives the frame timestamp
type FrameCallback func(now time.Time)

type frameRequest struct {
	handle FrameHandle
	cb     FrameCallback
}

// FrameScheduler queues one-shot per-frame callbacks, the host's equivalent of requestAnimationFrame
// Callbacks requested while a tick is running are deferred to the next tick
// Not safe for concurrent use: owned by the host loop goroutine
type FrameScheduler struct {
	pending  []frameRequest
	running  []frameRequest
	canceled map[FrameHandle]struct{} // Cancellations targeting the batch in flight
	next     FrameHandle
	frames   uint64
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		canceled: make(map[FrameHandle]struct{}),
	}
}

// RequestFrame schedules cb for the next tick
func (s *FrameScheduler) RequestFrame(cb FrameCallback) FrameHandle {
	if cb == nil {
		return 0
	}
	s.next++
	s.pending = append(s.pending, frameRequest{handle: s.next, cb: cb})
	return s.next
}

// CancelFrame drops a pending request, no-op for unknown or already-run handles
func (s *FrameScheduler) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i, r := range s.pending {
		if r.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for _, r := range s.running {
		if r.handle == h {
			s.canceled[h] = struct{}{}
			return
		}
	}
}

// Tick runs every callback requested before the call and returns how many ran
func (s *FrameScheduler) Tick(now time.Time) int {
	s.frames++
	s.running, s.pending = s.pending, s.running[:0]

	ran := 0
	for _, r := range s.running {
		if _, dead := s.canceled[r.handle]; dead {
			continue
		}
		r.cb(now)
		ran++
	}

	s.running = s.running[:0]
	clear(s.canceled)
	return ran
}

// Pending returns the number of callbacks waiting for the next tick
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// FrameNumber returns the number of ticks run so far
func (s *FrameScheduler) FrameNumber() uint64 {
	return s.frames
}
