// Package op contains the core asynchronous, callback-based combinators
// operating on Outcome[T]. An Op[T] is a unit of work that eventually
// invokes its completion handler exactly once; combinators compose such
// units in sequence while short-circuiting on error.
//
// Highlights:
// - Of/Fail: immediate sources
// - Seq/Seq3/Seq4: run operations in sequence, error skips the rest
// - Map: transform the successful value synchronously
// - Then: continue with an operation derived from the value
// - Try/Validate/ValidateAll: adapt plain Go functions to unary operations
// - Tee/Recover/Retry: side effects and error-branch handling
// - Await/Finally: bridge back to synchronous code
package op
