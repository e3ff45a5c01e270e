// Package expire provides time-boxed values: a Value[T] container whose
// content goes stale after a ttl, and Cached for reusing the successful
// outcome of an operation within the same window.
package expire
