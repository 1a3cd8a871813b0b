// Package deferred runs a side effect once after a fixed delay and exposes its completion as a future.
package deferred

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAlreadyStarted is returned when Start is called on a task that has already been started.
var ErrAlreadyStarted = errors.New("deferred task already started")

// Task applies fn exactly once after delay. Once started it cannot be cancelled.
type Task[T any] struct {
	delay time.Duration
	fn    func() (T, error)

	once    sync.Once
	started chan struct{}
	done    chan struct{}
	result  T
	err     error
}

// New prepares a task; nothing runs until Start.
func New[T any](delay time.Duration, fn func() (T, error)) *Task[T] {
	return &Task[T]{
		delay:   delay,
		fn:      fn,
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start schedules the task. Only the first call has an effect.
func (t *Task[T]) Start() error {
	err := ErrAlreadyStarted
	t.once.Do(func() {
		err = nil
		close(t.started)
		go t.run()
	})
	return err
}

func (t *Task[T]) run() {
	defer close(t.done)
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		<-timer.C
	}
	t.result, t.err = t.fn()
}

// Done is closed once the effect has been applied.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx ends. A ctx error does not stop the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Started reports whether Start has been called.
func (t *Task[T]) Started() bool {
	select {
	case <-t.started:
		return true
	default:
		return false
	}
}
