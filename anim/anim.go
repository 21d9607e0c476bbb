// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim schedules interpolated property changes.

A Scheduler is driven by the host's frame clock: each call to Frame
advances every running Task. Tasks are fire-and-forget; a Task that is
superseded is cancelled by its owner, which then resets whatever the
task was animating.

All methods must be called from the goroutine that owns the widgets
being animated.
*/
package anim

import (
	"time"
)

// Step is one segment of a Task.
type Step struct {
	Duration time.Duration
	// Curve eases the linear progress of the step. Nil means linear.
	Curve Curve
	// Update receives the eased progress of the step. It is called
	// with 1 exactly once, when the step completes.
	Update func(t float32)
}

// Scheduler runs Tasks against a frame clock.
type Scheduler struct {
	tasks []*Task
}

// Task is a running sequence of Steps.
type Task struct {
	steps   []Step
	idx     int
	start   time.Time
	started bool
	done    bool
	then    func()
}

// Run schedules steps to run in order, starting at the next Frame.
func (s *Scheduler) Run(steps ...Step) *Task {
	t := &Task{steps: steps}
	s.tasks = append(s.tasks, t)
	return t
}

// Frame advances all tasks to now and reports whether any task is still
// running, in which case the host should schedule another frame.
func (s *Scheduler) Frame(now time.Time) bool {
	// Updates may run or cancel tasks.
	tasks := append([]*Task(nil), s.tasks...)
	for _, t := range tasks {
		t.advance(now)
	}
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	return len(s.tasks) > 0
}

// Active reports whether any task is running.
func (s *Scheduler) Active() bool {
	for _, t := range s.tasks {
		if !t.done {
			return true
		}
	}
	return false
}

// Then registers f to be called when t completes. It is not called if
// t is cancelled.
func (t *Task) Then(f func()) *Task {
	t.then = f
	return t
}

// Cancel stops t without further updates. Cancelling a nil or
// completed task is a no-op.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.done = true
	t.then = nil
}

// Active reports whether t is still running.
func (t *Task) Active() bool {
	return t != nil && !t.done
}

func (t *Task) advance(now time.Time) {
	if t.done {
		return
	}
	if !t.started {
		t.started = true
		t.start = now
	}
	for t.idx < len(t.steps) {
		st := t.steps[t.idx]
		el := now.Sub(t.start)
		if el >= st.Duration {
			if st.Update != nil {
				st.Update(1)
			}
			if t.done {
				// Cancelled by the update.
				return
			}
			t.start = t.start.Add(st.Duration)
			t.idx++
			continue
		}
		p := float32(el) / float32(st.Duration)
		if st.Curve != nil {
			p = st.Curve(p)
		}
		if st.Update != nil {
			st.Update(p)
		}
		return
	}
	t.done = true
	if f := t.then; f != nil {
		t.then = nil
		f()
	}
}
