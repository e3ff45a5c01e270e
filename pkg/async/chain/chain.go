package chain

import (
	"context"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

// Chain wraps an op.Op to enable fluent chaining
type Chain[T any] struct {
	operation op.Op[T]
}

// Start creates a new chain from an operation
func Start[T any](operation op.Op[T]) *Chain[T] {
	return &Chain[T]{
		operation: operation,
	}
}

// FromValue creates a new chain from an immediately successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		operation: op.Of(value),
	}
}

// Op returns the underlying operation
func (c *Chain[T]) Op() op.Op[T] {
	return c.operation
}

// Then chains a unary operation
func Then[T, U any](c *Chain[T], next op.UnaryOp[T, U]) *Chain[U] {
	return &Chain[U]{
		operation: op.Seq(c.operation, next),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnValue func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		operation: op.Seq(c.operation, op.Try(tryOnValue)),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(T) U) *Chain[U] {
	return &Chain[U]{
		operation: op.Map(c.operation, onValue),
	}
}

// Ensure performs a side effect on success without changing the outcome
func (c *Chain[T]) Ensure(onValue func(T)) *Chain[T] {
	return &Chain[T]{
		operation: op.Tee(c.operation,
			func(out async.Outcome[T]) {
				if out.IsValue() {
					onValue(out.Value())
				}
			}),
	}
}

// Recover substitutes error outcomes with a fallback operation
func (c *Chain[T]) Recover(onError func(err error) op.Op[T]) *Chain[T] {
	return &Chain[T]{
		operation: op.Recover(c.operation, onError),
	}
}

// Await invokes the chain and blocks until it resolves
func (c *Chain[T]) Await(ctx context.Context) async.Outcome[T] {
	return op.Await(ctx, c.operation)
}

// Finally collapses the chain into a final result using op.Finally
func Finally[T, U any](ctx context.Context, c *Chain[T],
	onValue func(T) U, onError func(err error) U) U {
	return op.Finally(ctx, c.operation, onValue, onError)
}
