// Package chain provides a fluent wrapper around op.Op[T]
// for building asynchronous error-short-circuiting chains.
//
// It composes combinators like Seq, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with handler plumbing at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from an operation or value
// - Then: continue with a unary operation
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the outcome
// - Recover: substitute error outcomes with a fallback operation
// - Await/Finally: resolve the chain into an Outcome or final value
package chain
