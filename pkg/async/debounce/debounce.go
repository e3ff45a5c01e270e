package debounce

import (
	"errors"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

var ErrStopped = errors.New("debouncer stopped")

// Debouncer wraps an operation with a quiet interval. Calls arriving
// inside the window enqueue their handler and push the deadline back;
// when the window finally elapses the source runs once and its outcome
// is delivered to every queued handler.
type Debouncer[T any] struct {
	mu       sync.Mutex
	source   op.Op[T]
	interval time.Duration
	timer    *time.Timer
	waiters  *queue.Queue
	stopped  bool
}

func New[T any](source op.Op[T], interval time.Duration) *Debouncer[T] {
	return &Debouncer[T]{
		source:   source,
		interval: interval,
		waiters:  queue.New(),
	}
}

// Call registers a handler for the next firing and resets the quiet
// window. After Stop, handlers fail immediately with ErrStopped.
func (d *Debouncer[T]) Call(h op.Handler[T]) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		h(async.Err[T](ErrStopped))
		return
	}

	d.waiters.Add(h)
	if d.timer == nil {
		d.timer = time.AfterFunc(d.interval, d.fire)
	} else {
		d.timer.Reset(d.interval)
	}
	d.mu.Unlock()
}

// Op adapts the debouncer so it composes like any other operation.
func (d *Debouncer[T]) Op() op.Op[T] {
	return func(h op.Handler[T]) {
		d.Call(h)
	}
}

// Flush fires the pending window immediately.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil && d.timer.Stop() {
		d.mu.Unlock()
		d.fire()
		return
	}
	d.mu.Unlock()
}

// Stop cancels the pending window. Queued handlers fail with ErrStopped
// so the single-invocation contract still holds for every caller.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	handlers := d.drain()
	d.mu.Unlock()

	for _, h := range handlers {
		h(async.Err[T](ErrStopped))
	}
}

// Pending reports how many handlers wait for the next firing.
func (d *Debouncer[T]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.waiters.Length()
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	d.timer = nil
	handlers := d.drain()
	d.mu.Unlock()

	if len(handlers) == 0 {
		return
	}

	d.source(func(out async.Outcome[T]) {
		for _, h := range handlers {
			h(out)
		}
	})
}

// drain empties the waiter queue; callers hold d.mu.
func (d *Debouncer[T]) drain() []op.Handler[T] {
	handlers := make([]op.Handler[T], 0, d.waiters.Length())
	for d.waiters.Length() > 0 {
		handlers = append(handlers, d.waiters.Remove().(op.Handler[T]))
	}
	return handlers
}
