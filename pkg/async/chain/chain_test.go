package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(7).Await(ctx)
	if !out.IsValue() || out.Value() != 7 {
		t.Fatalf("expected value 7, got: value=%v, val=%v, err=%v", out.IsValue(), out.Value(), out.Cause())
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue(3), func(v int, h op.Handler[int]) {
		h(async.Of(v * 2))
	})

	out := c.Await(ctx)
	if !out.IsValue() || out.Value() != 6 {
		t.Fatalf("expected value 6, got: value=%v, val=%v, err=%v", out.IsValue(), out.Value(), out.Cause())
	}
}

func TestThen_ShortCircuitOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cause := errors.New("boom")

	called := false
	c := Then(Start(op.Fail[int](cause)), func(v int, h op.Handler[int]) {
		called = true
		h(async.Of(v + 1))
	})

	out := c.Await(ctx)
	if out.IsValue() || !errors.Is(out.Cause(), cause) {
		t.Fatalf("expected failure 'boom', got: value=%v, err=%v", out.IsValue(), out.Cause())
	}
	if called {
		t.Fatalf("next step should not run when the chain already failed")
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := ThenTry(FromValue(10), func(v int) (int, error) {
		return 0, errors.New("try-error")
	})

	out := c.Await(ctx)
	if out.IsValue() || out.Cause() == nil || out.Cause().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: value=%v, err=%v", out.IsValue(), out.Cause())
	}
}

func TestMap_TypeSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Map(FromValue(5), func(v int) string {
		if v > 3 {
			return "big"
		}
		return "small"
	})

	out := c.Await(ctx)
	if !out.IsValue() || out.Value() != "big" {
		t.Fatalf("expected \"big\", got: value=%v, val=%v, err=%v", out.IsValue(), out.Value(), out.Cause())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := FromValue(11).
		Ensure(func(v int) { called = true }).
		Await(ctx)
	if !out.IsValue() || out.Value() != 11 {
		t.Fatalf("expected unchanged value 11, got: %v, %v", out.IsValue(), out.Cause())
	}
	if !called {
		t.Fatalf("expected side effect on success")
	}

	called = false
	out = Start(op.Fail[int](errors.New("bad"))).
		Ensure(func(v int) { called = true }).
		Await(ctx)
	if out.IsValue() || called {
		t.Fatalf("expected no side effect on failure; called=%v", called)
	}
}

func TestRecover_Fallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(op.Fail[int](errors.New("down"))).
		Recover(func(err error) op.Op[int] { return op.Of(-1) }).
		Await(ctx)
	if !out.IsValue() || out.Value() != -1 {
		t.Fatalf("expected fallback -1, got: value=%v, err=%v", out.IsValue(), out.Cause())
	}
}

func TestFinally_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(ctx, FromValue(3),
		func(v int) int { return v + 100 },
		func(err error) int { return -1 },
	)
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(ctx, Start(op.Fail[int](errors.New("x"))),
		func(v int) int { return v },
		func(err error) int { return -1 },
	)
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}
