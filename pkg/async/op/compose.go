package op

import (
	"github.com/ib-77/arop/pkg/async"
)

// Seq runs first, then feeds its value to second. An error outcome from
// first is forwarded unchanged and second is never invoked; otherwise
// whatever outcome second delivers is forwarded verbatim. The final
// handler is invoked exactly once as long as first and second honor the
// single-invocation contract; misbehaving operands are not guarded
// against.
func Seq[T, U any](first Op[T], second UnaryOp[T, U]) Op[U] {
	return func(h Handler[U]) {
		first(func(out async.Outcome[T]) {
			if out.IsError() {
				h(async.ErrFrom[T, U](out))
				return
			}
			second(out.Value(), h)
		})
	}
}

// Map runs first and transforms its value synchronously. Errors
// short-circuit past transform. A panicking transform propagates to the
// invoking context; it is not converted to an error outcome.
func Map[T, U any](first Op[T], transform func(T) U) Op[U] {
	return func(h Handler[U]) {
		first(func(out async.Outcome[T]) {
			if out.IsError() {
				h(async.ErrFrom[T, U](out))
				return
			}
			h(async.Of(transform(out.Value())))
		})
	}
}

// Then continues with an operation derived from the value, flattening
// the result. Error outcomes skip onValue.
func Then[T, U any](first Op[T], onValue func(T) Op[U]) Op[U] {
	return func(h Handler[U]) {
		first(func(out async.Outcome[T]) {
			if out.IsError() {
				h(async.ErrFrom[T, U](out))
				return
			}
			onValue(out.Value())(h)
		})
	}
}

// Seq3 chains three steps left to right.
func Seq3[T, U, V any](first Op[T], second UnaryOp[T, U], third UnaryOp[U, V]) Op[V] {
	return Seq(Seq(first, second), third)
}

// Seq4 chains four steps left to right.
func Seq4[T, U, V, W any](first Op[T], second UnaryOp[T, U], third UnaryOp[U, V], fourth UnaryOp[V, W]) Op[W] {
	return Seq(Seq3(first, second, third), fourth)
}

// Tee runs a side effect with the outcome without changing it.
func Tee[T any](first Op[T], sideEffect func(async.Outcome[T])) Op[T] {
	return func(h Handler[T]) {
		first(func(out async.Outcome[T]) {
			sideEffect(out)
			h(out)
		})
	}
}

// Recover substitutes an error outcome with the operation produced by
// onError; values pass through untouched.
func Recover[T any](first Op[T], onError func(err error) Op[T]) Op[T] {
	return func(h Handler[T]) {
		first(func(out async.Outcome[T]) {
			if out.IsError() {
				onError(out.Cause())(h)
				return
			}
			h(out)
		})
	}
}

// Retry re-invokes first on error, up to attempts invocations total.
// The last error outcome is delivered when every attempt fails. Context
// errors are terminal: a canceled or timed-out step is never retried.
func Retry[T any](first Op[T], attempts int) Op[T] {
	return func(h Handler[T]) {
		var run func(left int)
		run = func(left int) {
			first(func(out async.Outcome[T]) {
				if out.IsError() && left > 1 && !async.IsContextError(out.Cause()) {
					run(left - 1)
					return
				}
				h(out)
			})
		}
		if attempts < 1 {
			attempts = 1
		}
		run(attempts)
	}
}
