package async

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal result of one asynchronous step: either a
// successful value or an error cause, never both.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isValue   bool
}

func Of[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isValue:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isValue:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom carries an error outcome across a type boundary, keeping the
// original id and creation time so a failure stays traceable through a
// chain of differently typed steps.
func ErrFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isValue:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Cause() error {
	return o.err
}

func (o Outcome[T]) IsValue() bool {
	return o.isValue
}

func (o Outcome[T]) IsError() bool {
	return !o.isValue
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
