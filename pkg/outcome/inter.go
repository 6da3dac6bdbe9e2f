package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Container is the surface shared by both shapes: extraction, the
// non-panicking shape probe, and the construction metadata.
type Container[T any] interface {
	// Unwrap returns the carried value, panicking on the empty variant
	Unwrap() T
	// UnwrapOr returns the carried value or def on the empty variant
	UnwrapOr(def T) T
	// IsValid reports whether the value is one of the two variants
	IsValid() bool
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
	// Id identifies the container across metadata-preserving transforms
	Id() uuid.UUID
}

// WithErr extends Container for the shape that carries an error channel
type WithErr[T any] interface {
	Container[T]
	// UnwrapErr returns the error, panicking on the success variant
	UnwrapErr() error
	// IsSuccess reports the success variant
	IsSuccess() bool
	// IsFailure reports the failure variant
	IsFailure() bool
}
