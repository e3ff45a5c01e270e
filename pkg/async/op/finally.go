package op

import (
	"context"

	"github.com/ib-77/arop/pkg/async"
)

// Await invokes first and blocks until its handler fires or ctx is
// done, whichever happens first. A context error wins only when the
// operation has not yet delivered.
func Await[T any](ctx context.Context, first Op[T]) async.Outcome[T] {
	ch := make(chan async.Outcome[T], 1)
	first(func(out async.Outcome[T]) {
		ch <- out
	})

	// an outcome already delivered beats a done context
	select {
	case out := <-ch:
		return out
	default:
	}

	select {
	case out := <-ch:
		return out
	case <-ctx.Done():
		return async.Err[T](ctx.Err())
	}
}

// Finally collapses an operation to a concrete value via both branch
// handlers. Every consumption site names both variants.
func Finally[In, Out any](ctx context.Context, first Op[In],
	onValue func(r In) Out,
	onError func(err error) Out) Out {

	out := Await(ctx, first)
	if out.IsValue() {
		return onValue(out.Value())
	}
	return onError(out.Cause())
}

// Match collapses an already delivered outcome the same way.
func Match[In, Out any](out async.Outcome[In],
	onValue func(r In) Out,
	onError func(err error) Out) Out {

	if out.IsValue() {
		return onValue(out.Value())
	}
	return onError(out.Cause())
}
