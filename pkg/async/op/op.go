package op

import (
	"errors"

	"github.com/ib-77/arop/pkg/async"
)

// Handler delivers the outcome of one asynchronous step. An operation
// invokes its handler exactly once, never zero times, never twice.
type Handler[T any] func(async.Outcome[T])

// Op is an asynchronous operation with no input. Invoking it registers
// the handler and returns; the handler may run on the same call stack
// (synchronous operation) or later from another goroutine.
type Op[T any] func(Handler[T])

// UnaryOp is an asynchronous operation parameterized by one input value.
type UnaryOp[In, Out any] func(In, Handler[Out])

// Of returns an operation that immediately yields v.
func Of[T any](v T) Op[T] {
	return func(h Handler[T]) {
		h(async.Of(v))
	}
}

// Fail returns an operation that immediately yields err.
func Fail[T any](err error) Op[T] {
	return func(h Handler[T]) {
		h(async.Err[T](err))
	}
}

// Try adapts a plain fallible function to a unary operation.
func Try[In, Out any](f func(In) (Out, error)) UnaryOp[In, Out] {
	return func(in In, h Handler[Out]) {
		out, err := f(in)
		if err != nil {
			h(async.Err[Out](err))
			return
		}
		h(async.Of(out))
	}
}

// Validate adapts a predicate to a unary operation that passes the
// input through on success and fails with the message otherwise.
func Validate[T any](validate func(in T) (valid bool, errMsg string)) UnaryOp[T, T] {
	return func(in T, h Handler[T]) {
		if valid, errMsg := validate(in); valid {
			h(async.Of(in))
		} else {
			h(async.Err[T](errors.New(errMsg)))
		}
	}
}

// ValidateAll runs every validator against the input and joins the
// failures into one cause. With breakOnError set, the first failure
// stops the sweep and becomes the only cause.
func ValidateAll[T any](breakOnError bool,
	validators ...func(in T) (valid bool, errMsg string)) UnaryOp[T, T] {

	return func(in T, h Handler[T]) {
		var err error
		for _, validate := range validators {
			if valid, errMsg := validate(in); !valid {
				e := async.Causes(err)
				e = append(e, errors.New(errMsg))
				err = errors.Join(e...)
				if breakOnError {
					break
				}
			}
		}

		if async.IsNil(err) {
			h(async.Of(in))
			return
		}
		h(async.Err[T](err))
	}
}

// Pure lifts a total function to a unary operation.
func Pure[In, Out any](f func(In) Out) UnaryOp[In, Out] {
	return func(in In, h Handler[Out]) {
		h(async.Of(f(in)))
	}
}

// Bind fixes the input of a unary operation, yielding an Op.
func Bind[In, Out any](u UnaryOp[In, Out], in In) Op[Out] {
	return func(h Handler[Out]) {
		u(in, h)
	}
}
