package sched

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func countingRoutine(limit int, calls *int) RoutineFunc {
	return func(now, dt time.Duration) bool {
		*calls++
		return *calls >= limit
	}
}

func TestAdvanceResumesOncePerFrame(t *testing.T) {
	s := New()
	calls := 0
	task := s.Go(countingRoutine(3, &calls))

	if calls != 0 {
		t.Fatalf("routine ran before first Advance: %d calls", calls)
	}
	for i := 1; i <= 3; i++ {
		s.Advance(frame)
		if calls != i {
			t.Fatalf("after %d frames got %d calls", i, calls)
		}
	}
	if !task.Done() {
		t.Fatal("task should be done after reporting completion")
	}
	if s.Len() != 0 {
		t.Fatalf("finished task still scheduled, len=%d", s.Len())
	}

	s.Advance(frame)
	if calls != 3 {
		t.Fatalf("finished task resumed again, calls=%d", calls)
	}
	if got, want := s.Now(), 4*frame; got != want {
		t.Fatalf("Now() = %v, want %v", got, want)
	}
}

func TestCancelStopsTask(t *testing.T) {
	s := New()
	calls := 0
	task := s.Go(countingRoutine(100, &calls))

	s.Advance(frame)
	task.Cancel()
	task.Cancel()
	s.Advance(frame)
	s.Advance(frame)

	if calls != 1 {
		t.Fatalf("cancelled task kept running, calls=%d", calls)
	}
	if !task.Cancelled() || task.Done() || task.Running() {
		t.Fatalf("unexpected task flags: cancelled=%v done=%v running=%v", task.Cancelled(), task.Done(), task.Running())
	}

	var nilTask *Task
	nilTask.Cancel()
	nilTask.SetPaused(true)
}

func TestCancelFromInsideRoutine(t *testing.T) {
	s := New()
	var task *Task
	calls := 0
	task = s.Go(RoutineFunc(func(now, dt time.Duration) bool {
		calls++
		task.Cancel()
		return false
	}))

	s.Advance(frame)
	s.Advance(frame)
	if calls != 1 {
		t.Fatalf("self-cancelled task resumed %d times", calls)
	}
}

func TestPausedTaskKeepsProgress(t *testing.T) {
	s := New()
	calls := 0
	task := s.Go(countingRoutine(100, &calls))

	s.Advance(frame)
	task.SetPaused(true)
	s.Advance(frame)
	s.Advance(frame)
	if calls != 1 {
		t.Fatalf("paused task resumed, calls=%d", calls)
	}
	task.SetPaused(false)
	s.Advance(frame)
	if calls != 2 {
		t.Fatalf("unpaused task not resumed, calls=%d", calls)
	}
}

func TestTaskStartedDuringAdvanceWaitsOneFrame(t *testing.T) {
	s := New()
	inner := 0
	s.Go(RoutineFunc(func(now, dt time.Duration) bool {
		s.Go(countingRoutine(1, &inner))
		return true
	}))

	s.Advance(frame)
	if inner != 0 {
		t.Fatalf("nested task ran in the same frame")
	}
	s.Advance(frame)
	if inner != 1 {
		t.Fatalf("nested task did not run on the next frame, calls=%d", inner)
	}
}
