package expire

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

func TestValue_FreshAndStale(t *testing.T) {
	t.Parallel()

	v := NewValue[string](30 * time.Millisecond)

	_, ok := v.Get()
	assert.False(t, ok, "empty value must not be fresh")

	v.Set("hot")
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "hot", got)

	time.Sleep(50 * time.Millisecond)
	_, ok = v.Get()
	assert.False(t, ok, "value must expire after ttl")
}

func TestValue_SetRestartsWindow(t *testing.T) {
	t.Parallel()

	v := NewValue[int](40 * time.Millisecond)
	v.Set(1)
	time.Sleep(25 * time.Millisecond)
	v.Set(2)
	time.Sleep(25 * time.Millisecond)

	got, ok := v.Get()
	assert.True(t, ok, "second Set must restart the window")
	assert.Equal(t, 2, got)
}

func TestValue_Reset(t *testing.T) {
	t.Parallel()

	v := NewValue[int](time.Hour)
	v.Set(1)
	v.Reset()

	_, ok := v.Get()
	assert.False(t, ok)
}

func TestCached_ReusesValueWithinTTL(t *testing.T) {
	t.Parallel()

	invocations := 0
	source := op.Op[int](func(h op.Handler[int]) {
		invocations++
		h(async.Of(invocations))
	})

	cached := Cached(source, time.Hour)

	resolve := func() async.Outcome[int] {
		var out async.Outcome[int]
		cached(func(o async.Outcome[int]) { out = o })
		return out
	}

	assert.Equal(t, 1, resolve().Value())
	assert.Equal(t, 1, resolve().Value())
	assert.Equal(t, 1, invocations)
}

func TestCached_RefreshesAfterTTL(t *testing.T) {
	t.Parallel()

	invocations := 0
	source := op.Op[int](func(h op.Handler[int]) {
		invocations++
		h(async.Of(invocations))
	})

	cached := Cached(source, 20*time.Millisecond)

	var out async.Outcome[int]
	cached(func(o async.Outcome[int]) { out = o })
	assert.Equal(t, 1, out.Value())

	time.Sleep(40 * time.Millisecond)
	cached(func(o async.Outcome[int]) { out = o })
	assert.Equal(t, 2, out.Value())
}

func TestCached_ErrorsNeverCached(t *testing.T) {
	t.Parallel()

	invocations := 0
	source := op.Op[int](func(h op.Handler[int]) {
		invocations++
		h(async.Err[int](errors.New("down")))
	})

	cached := Cached(source, time.Hour)

	var out async.Outcome[int]
	cached(func(o async.Outcome[int]) { out = o })
	cached(func(o async.Outcome[int]) { out = o })

	assert.True(t, out.IsError())
	assert.Equal(t, 2, invocations, "each call must retry a failing source")
}
