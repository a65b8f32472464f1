package watchdog

import (
	"container/list"
	"sync"
	"time"
)

// Handler is a client-supplied watchdog action, invoked when an Event's
// deadline elapses. Handlers must not reschedule or allocate outside the
// scheduler's free list.
type Handler func()

// SetFlagHandler returns a Handler that stores v into *abandon when
// invoked. It is the handler AbandonToken-based cancellation
// (conversion) uses.
func SetFlagHandler(abandon *AbandonToken, v error) Handler {
	return func() { abandon.Set(v) }
}

// Event is a scheduled deadline: (deadline, handler, expired flag). The
// deadline is an absolute offset from the Scheduler's monotonic baseline.
type Event struct {
	deadline time.Duration
	handler  Handler
	expired  bool
	elem     *list.Element // position in the scheduler's pending list
}

// Expired reports whether this event has already fired.
func (e *Event) Expired() bool { return e.expired }

// microsecondsEqual compares two durations at microsecond granularity.
// Deliberately compares x against y, not against itself.
func microsecondsEqual(x, y time.Duration) bool {
	return x.Microseconds() == y.Microseconds()
}

// Scheduler is a single process-wide interval-timer-driven deadline queue.
// The zero value is not usable; construct with New.
type Scheduler struct {
	mu sync.Mutex

	pending *list.List // of *Event, non-decreasing deadline order
	free    []*Event

	timer      *time.Timer
	armedUntil time.Time
	running    bool

	timeSoFar     time.Duration
	lastRequested time.Duration
}

// New returns an idle Scheduler ready to accept Schedule calls.
func New() *Scheduler {
	return &Scheduler{pending: list.New()}
}

func (s *Scheduler) newEvent(deadline time.Duration, h Handler) *Event {
	var e *Event
	if n := len(s.free); n > 0 {
		e = s.free[n-1]
		s.free = s.free[:n-1]
		*e = Event{}
	} else {
		e = &Event{}
	}
	e.deadline = deadline
	e.handler = h
	return e
}

// insertSorted inserts e into the pending list keeping non-decreasing
// deadline order, and returns true if e became the new head.
func (s *Scheduler) insertSorted(e *Event) bool {
	for el := s.pending.Front(); el != nil; el = el.Next() {
		existing := el.Value.(*Event)
		if e.deadline < existing.deadline {
			e.elem = s.pending.InsertBefore(e, el)
			return s.pending.Front() == e.elem
		}
	}
	e.elem = s.pending.PushBack(e)
	return s.pending.Front() == e.elem
}

// Schedule arms an event that fires after units elapse, invoking handler
// on expiry: if the clock is idle, the event is inserted fresh and the
// timer programmed for units;
// otherwise the new event's absolute deadline is computed from the
// elapsed time since the timer was last programmed, inserted at its
// sorted position, and the timer is reprogrammed only if the new event
// would now fire first.
func (s *Scheduler) Schedule(units time.Duration, handler Handler) (*Event, error) {
	if units <= 0 {
		return nil, ErrNonPositiveUnits
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		e := s.newEvent(units, handler)
		s.pending.PushFront(e)
		e.elem = s.pending.Front()
		s.timeSoFar = 0
		s.armTimer(units)
		s.running = true
		return e, nil
	}

	tR := s.remaining()
	elapsed := s.lastRequested - tR
	deadline := s.timeSoFar + elapsed + units
	e := s.newEvent(deadline, handler)
	becameHead := s.insertSorted(e)
	if becameHead {
		s.timeSoFar += elapsed
		s.armTimer(deadline - s.timeSoFar)
	}
	return e, nil
}

// remaining returns the time left on the currently armed timer.
func (s *Scheduler) remaining() time.Duration {
	if s.timer == nil {
		return 0
	}
	r := s.armedUntil.Sub(time.Now())
	if r < 0 {
		return 0
	}
	return r
}

func (s *Scheduler) armTimer(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.lastRequested = d
	s.armedUntil = time.Now().Add(d)
	if s.timer == nil {
		s.timer = time.AfterFunc(d, s.onExpiry)
		return
	}
	s.timer.Reset(d)
}

// Cancel removes an unexpired event e. If e was the head of the pending
// list, the timer is reprogrammed for the new head's relative deadline (or
// stopped if the list empties). Cancelling an already-expired event is a
// no-op; Cancel still reports ErrAlreadyExpired so callers can tell the
// two cases apart.
func (s *Scheduler) Cancel(e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.expired {
		return ErrAlreadyExpired
	}
	if e.elem == nil {
		return ErrUnknownEvent
	}

	wasHead := s.pending.Front() == e.elem
	s.pending.Remove(e.elem)
	e.elem = nil
	s.free = append(s.free, e)

	if !wasHead {
		return nil
	}

	if s.pending.Len() == 0 {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.running = false
		return nil
	}

	tR := s.remaining()
	elapsed := s.lastRequested - tR
	s.timeSoFar += elapsed
	head := s.pending.Front().Value.(*Event)
	s.armTimer(head.deadline - s.timeSoFar)
	return nil
}

// onExpiry is invoked by the underlying timer. mu already excludes any
// concurrent Schedule/Cancel call: onExpiry cannot acquire the lock until
// one finishes and releases it, so the pending list is never touched
// while either is mutating it.
func (s *Scheduler) onExpiry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timeSoFar += s.lastRequested
	for s.pending.Len() > 0 {
		head := s.pending.Front().Value.(*Event)
		if head.deadline > s.timeSoFar && !microsecondsEqual(head.deadline, s.timeSoFar) {
			break
		}
		s.pending.Remove(head.elem)
		head.elem = nil
		head.expired = true
		s.free = append(s.free, head)
		if head.handler != nil {
			head.handler()
		}
	}

	if s.pending.Len() == 0 {
		s.running = false
		return
	}
	head := s.pending.Front().Value.(*Event)
	s.armTimer(head.deadline - s.timeSoFar)
}
