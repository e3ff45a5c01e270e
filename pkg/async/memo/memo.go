package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/ib-77/arop/pkg/async"
	"github.com/ib-77/arop/pkg/async/op"
)

// Memoize wraps a pure function with a bounded LRU cache. The wrapped
// function must be deterministic; capacity must be positive.
func Memoize[K comparable, V any](f func(K) V, capacity int) (func(K) V, error) {
	cache, err := lru.New[K, V](capacity)
	if err != nil {
		return nil, err
	}

	return func(k K) V {
		if v, ok := cache.Get(k); ok {
			return v
		}
		v := f(k)
		cache.Add(k, v)
		return v
	}, nil
}

// MemoizeErr wraps a fallible function with a bounded LRU cache and
// deduplicates concurrent computations of the same key, so a slow f is
// invoked once per key even under contention. Errors are returned but
// never cached.
//
// Deduplication groups calls by the key's %#v representation; distinct
// keys whose %#v output coincides (possible with interface-typed or
// unexported reference fields) may share one computation during a
// concurrent window. The cache itself is always exact.
func MemoizeErr[K comparable, V any](f func(K) (V, error), capacity int) (func(K) (V, error), error) {
	cache, err := lru.New[K, V](capacity)
	if err != nil {
		return nil, err
	}

	group := &singleflight.Group{}

	return func(k K) (V, error) {
		if v, ok := cache.Get(k); ok {
			return v, nil
		}

		v, err, _ := group.Do(fmt.Sprintf("%#v", k), func() (interface{}, error) {
			if v, ok := cache.Get(k); ok {
				return v, nil
			}
			v, err := f(k)
			if err != nil {
				return nil, err
			}
			cache.Add(k, v)
			return v, nil
		})
		if err != nil {
			var zero V
			return zero, err
		}
		return v.(V), nil
	}, nil
}

// Unary memoizes the successful outcomes of a unary operation by input
// key. Error outcomes pass through uncached, so a failed key is retried
// on the next call.
func Unary[K comparable, V any](u op.UnaryOp[K, V], capacity int) (op.UnaryOp[K, V], error) {
	cache, err := lru.New[K, async.Outcome[V]](capacity)
	if err != nil {
		return nil, err
	}

	return func(k K, h op.Handler[V]) {
		if out, ok := cache.Get(k); ok {
			h(out)
			return
		}

		u(k, func(out async.Outcome[V]) {
			if out.IsValue() {
				cache.Add(k, out)
			}
			h(out)
		})
	}, nil
}
