// Package memo caches results of deterministic functions and unary
// operations in a bounded LRU, with singleflight deduplication for the
// fallible variant.
package memo
