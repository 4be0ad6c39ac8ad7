// Package sched runs deferred one-shot callbacks.
//
// Every task has a kind. Scheduling a task cancels whatever task of the same
// kind is still pending, so a later toast, fade or navigation always wins over
// an earlier one. Callbacks run on timer goroutines; UI callers are expected to
// hand the work back to their event loop (for example via tea.Program.Send).
package sched

import (
	"sync"
	"time"
)

// Kind names a family of tasks that replace each other.
type Kind string

// Timer is the subset of *time.Timer the scheduler needs.
type Timer interface {
	Stop() bool
}

// AfterFunc matches time.AfterFunc. Tests inject a fake clock.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type task struct {
	seq   uint64
	timer Timer
}

type Scheduler struct {
	afterFunc AfterFunc
	dispatch  func(func())

	mu      sync.Mutex
	seq     uint64
	pending map[Kind]task
	stopped bool
}

type Option func(*Scheduler)

// WithClock replaces time.AfterFunc.
func WithClock(af AfterFunc) Option {
	return func(s *Scheduler) { s.afterFunc = af }
}

// WithDispatch routes fired callbacks through d, which must eventually call
// the function it is given on the owner's event loop. The "still current"
// check happens inside the dispatched function, so a task replaced after its
// timer fired but before the event loop got to it is still dropped.
func WithDispatch(d func(func())) Option {
	return func(s *Scheduler) { s.dispatch = d }
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{afterFunc: realAfterFunc, pending: map[Kind]task{}}
	for _, o := range opts {
		o(s)
	}
	if s.afterFunc == nil {
		s.afterFunc = realAfterFunc
	}
	return s
}

// Schedule runs fn once after delay unless another task of the same kind is
// scheduled, the kind is cancelled, or the scheduler is stopped first.
func (s *Scheduler) Schedule(kind Kind, delay time.Duration, fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if prev, ok := s.pending[kind]; ok {
		prev.timer.Stop()
	}
	s.seq++
	seq := s.seq
	t := s.afterFunc(delay, func() {
		if s.dispatch != nil {
			s.dispatch(func() { s.fire(kind, seq, fn) })
			return
		}
		s.fire(kind, seq, fn)
	})
	s.pending[kind] = task{seq: seq, timer: t}
}

func (s *Scheduler) fire(kind Kind, seq uint64, fn func()) {
	s.mu.Lock()
	cur, ok := s.pending[kind]
	// A timer that lost the race with Stop still fires; drop it by sequence.
	if s.stopped || !ok || cur.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.pending, kind)
	s.mu.Unlock()

	fn()
}

// Cancel drops the pending task of kind. It reports whether one was pending.
func (s *Scheduler) Cancel(kind Kind) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[kind]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.pending, kind)
	return true
}

func (s *Scheduler) Pending(kind Kind) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[kind]
	return ok
}

// Stop cancels everything and rejects further scheduling.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for k, t := range s.pending {
		t.timer.Stop()
		delete(s.pending, k)
	}
}
