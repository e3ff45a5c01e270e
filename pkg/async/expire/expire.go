package expire

import (
	"sync"
	"time"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

// Value holds a single value that becomes unavailable once its ttl
// elapses after the last Set.
type Value[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	value    T
	deadline time.Time
	hasValue bool
}

func NewValue[T any](ttl time.Duration) *Value[T] {
	return &Value[T]{ttl: ttl}
}

// Set stores val and restarts the expiration window.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.value = val
	v.deadline = time.Now().Add(v.ttl)
	v.hasValue = true
	v.mu.Unlock()
}

// Get returns the stored value and whether it is still fresh.
func (v *Value[T]) Get() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.hasValue || time.Now().After(v.deadline) {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Reset drops the stored value immediately.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	v.hasValue = false
	v.mu.Unlock()
}

// Cached wraps source so a successful outcome is reused until ttl
// elapses, then the source is invoked again. Error outcomes are never
// cached; concurrent cache misses may each invoke the source.
func Cached[T any](source op.Op[T], ttl time.Duration) op.Op[T] {
	cached := NewValue[async.Outcome[T]](ttl)

	return func(h op.Handler[T]) {
		if out, ok := cached.Get(); ok {
			h(out)
			return
		}

		source(func(out async.Outcome[T]) {
			if out.IsValue() {
				cached.Set(out)
			}
			h(out)
		})
	}
}
