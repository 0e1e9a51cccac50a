package schedule

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"bankist/internal/clock"
	"bankist/internal/id"
)

var ErrStopped = errors.New("scheduler stopped")

type task struct {
	owner string
	timer clock.Timer
}

// Scheduler runs one-shot tasks after a delay, each at most once. Tasks are
// grouped by owner so every task of an owner can be cancelled together.
type Scheduler struct {
	clock   clock.Clock
	execute func(fn func())

	mu      sync.Mutex
	tasks   map[uuid.UUID]task
	stopped bool
}

// New returns a Scheduler whose tasks run through execute.
func New(c clock.Clock, execute func(fn func())) *Scheduler {
	return &Scheduler{
		clock:   c,
		execute: execute,
		tasks:   make(map[uuid.UUID]task),
	}
}

func (s *Scheduler) Schedule(owner string, delay time.Duration, fn func()) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return uuid.Nil, ErrStopped
	}

	taskID := id.Request()
	s.tasks[taskID] = task{
		owner: owner,
		timer: s.clock.AfterFunc(delay, func() {
			s.execute(func() { s.run(taskID, fn) })
		}),
	}

	return taskID, nil
}

// Cancel reports whether the task was still pending.
func (s *Scheduler) Cancel(taskID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok {
		return false
	}

	t.timer.Stop()
	delete(s.tasks, taskID)
	return true
}

// CancelOwner cancels every pending task of owner and returns how many there
// were.
func (s *Scheduler) CancelOwner(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := 0
	for taskID, t := range s.tasks {
		if t.owner != owner {
			continue
		}
		t.timer.Stop()
		delete(s.tasks, taskID)
		cancelled++
	}

	return cancelled
}

func (s *Scheduler) Pending(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := 0
	for _, t := range s.tasks {
		if t.owner == owner {
			pending++
		}
	}

	return pending
}

// Stop cancels everything pending and refuses new tasks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for taskID, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, taskID)
	}
	s.stopped = true
}

func (s *Scheduler) run(taskID uuid.UUID, fn func()) {
	s.mu.Lock()
	_, ok := s.tasks[taskID]
	delete(s.tasks, taskID)
	s.mu.Unlock()

	if ok {
		fn()
	}
}
