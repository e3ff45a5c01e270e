package flow

import (
	"context"
	"sync"

	"github.com/ib-77/arop/pkg/async"
)

// SourceValues feeds values into a channel of successful outcomes.
// The channel is closed after the last value or when ctx is done.
func SourceValues[T any](ctx context.Context, values ...T) <-chan async.Outcome[T] {
	in := make(chan async.Outcome[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- async.Of(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func Source[T any](ctx context.Context, values []T) <-chan async.Outcome[T] {
	return SourceValues(ctx, values...)
}

// Collect drains a channel into a slice, stopping early when ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// FirstOrDefault returns the first delivered element or defaultV when the
// channel closes or ctx is done before anything arrives.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
			return
		case <-ctx.Done():
			return
		}
	}()

	wg.Wait()
	return res
}
