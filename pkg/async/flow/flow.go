package flow

import (
	"context"
	"sync"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

// Pump runs a unary operation over every outcome arriving on in, with
// lines parallel workers. Error outcomes bypass the operation and are
// forwarded unchanged; the output channel closes once the input drains.
// On cancellation remaining inputs are converted to context-error
// outcomes so pipeline accounting stays intact; disable that with
// WithProcessOptions(ctx, false) to drop them instead. With lines <= 0
// the worker count is taken from the context via WithWorkerOptions,
// defaulting to 1.
func Pump[In, Out any](ctx context.Context, in <-chan async.Outcome[In],
	u op.UnaryOp[In, Out], lines int) <-chan async.Outcome[Out] {

	if lines <= 0 {
		lines = WorkerMaxCount(ctx, 1)
	}

	out := make(chan async.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, in, out, u, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// PumpSame is Pump for operations that keep the element type.
func PumpSame[T any](ctx context.Context, in <-chan async.Outcome[T],
	u op.UnaryOp[T, T], lines int) <-chan async.Outcome[T] {
	return Pump(ctx, in, u, lines)
}

// locomotive is one worker line: pull an input, resolve the async step,
// push the result. Context cancellation stops the line; the element in
// flight and everything still queued are forwarded as context errors
// unless remaining processing is disabled.
func locomotive[In, Out any](ctx context.Context, in <-chan async.Outcome[In],
	out chan<- async.Outcome[Out], u op.UnaryOp[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		if ctx.Err() != nil {
			cancelRemaining(ctx, in, out)
			return
		}

		select {
		case <-ctx.Done():
			cancelRemaining(ctx, in, out)
			return
		case next, ok := <-in:
			if !ok {
				return
			}

			res := step(ctx, next, u)

			select {
			case <-ctx.Done():
				if ProcessRemainingEnabled(ctx, true) {
					out <- res
				}
				cancelRemaining(ctx, in, out)
				return
			case out <- res:
			}
		}
	}
}

// cancelRemaining converts every input left after cancellation into a
// context-error outcome. Inputs that already failed keep their cause.
func cancelRemaining[In, Out any](ctx context.Context, in <-chan async.Outcome[In],
	out chan<- async.Outcome[Out]) {

	if !ProcessRemainingEnabled(ctx, true) {
		return
	}

	for next := range in {
		if next.IsError() {
			out <- async.ErrFrom[In, Out](next)
		} else {
			out <- async.Err[Out](ctx.Err())
		}
	}
}

func step[In, Out any](ctx context.Context, in async.Outcome[In],
	u op.UnaryOp[In, Out]) async.Outcome[Out] {

	if in.IsError() {
		return async.ErrFrom[In, Out](in)
	}
	return op.Await(ctx, op.Bind(u, in.Value()))
}

// Finalize collapses each outcome into a plain value via both branch
// handlers; use it as the terminal pipeline stage.
func Finalize[In, Out any](ctx context.Context, in <-chan async.Outcome[In],
	onValue func(r In) Out,
	onError func(err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case next, ok := <-in:
				if !ok {
					return
				}

				res := op.Match(next, onValue, onError)

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
