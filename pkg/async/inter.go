package async

import "time"

type OutcomeProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithCause defines an interface for types that can return a value or an error
type WithCause[T any] interface {
	OutcomeProvider[T]
	// Cause returns the error if the step failed
	Cause() error
	// IsValue returns true if the step produced a value
	IsValue() bool
}
