// Package sched runs cooperative, frame-stepped tasks on the single logic thread.
// A task is resumed at most once per Advance call, which is its only suspension point.
package sched

import "time"

// Routine is resumed once per frame until it reports completion.
type Routine interface {
	Resume(now, dt time.Duration) (done bool)
}

// RoutineFunc adapts a plain function to Routine.
type RoutineFunc func(now, dt time.Duration) bool

func (f RoutineFunc) Resume(now, dt time.Duration) bool {
	return f(now, dt)
}

// Task is a handle to a routine running on a Scheduler.
type Task struct {
	routine   Routine
	cancelled bool
	paused    bool
	done      bool
}

// Cancel stops the task. It is safe to call on a nil, finished or already
// cancelled task, including from inside the routine itself.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// SetPaused holds the task without losing its progress.
func (t *Task) SetPaused(paused bool) {
	if t == nil {
		return
	}
	t.paused = paused
}

// Paused reports whether the task is currently held.
func (t *Task) Paused() bool {
	return t != nil && t.paused
}

// Cancelled reports whether Cancel was called before the routine finished.
func (t *Task) Cancelled() bool {
	return t != nil && t.cancelled && !t.done
}

// Done reports whether the routine ran to completion.
func (t *Task) Done() bool {
	return t != nil && t.done
}

// Running reports whether the task will be resumed again.
func (t *Task) Running() bool {
	return t != nil && !t.done && !t.cancelled
}

// Scheduler owns simulation time and the set of live tasks.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Go registers a routine. It is first resumed on the next Advance.
func (s *Scheduler) Go(r Routine) *Task {
	t := &Task{routine: r}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves simulation time forward by dt and resumes every live task once.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt

	// Tasks started during this pass wait for the next frame.
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if !t.Running() || t.paused {
			continue
		}
		if t.routine.Resume(s.now, dt) && !t.cancelled {
			t.done = true
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Running() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}
