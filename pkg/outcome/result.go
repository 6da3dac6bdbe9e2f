package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant container: success carrying a value of T,
// or failure carrying an error. The zero value is neither variant; algebra
// operations treat it as a malformed shape and panic with ErrInvalidShape.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isFailure bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Wrap is Success under the name pipelines read best: it lifts a plain value
// into the algebra unconditionally, with no shape check on v.
func Wrap[T any](v T) Result[T] {
	return Success(v)
}

// NotNil lifts v into a Result, collapsing the absence marker to a failure
// tagged ErrNotFound. A non-nil v, including zero values, is a success.
func NotNil[T any](v T) Result[T] {
	return NotNilTag(v, ErrNotFound)
}

// NotNilTag is NotNil with a caller-supplied error tag. The tag is opaque to
// the algebra and round-trips unchanged.
func NotNilTag[T any](v T, tag error) Result[T] {
	if IsNil(v) {
		return Fail[T](tag)
	}
	return Success(v)
}

// FailFrom carries a failure across a payload type change, preserving the
// error and the container metadata.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isFailure: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Unwrap returns the success payload. It panics with ErrNotSuccess on a
// failure and ErrInvalidShape on a malformed container.
func (r Result[T]) Unwrap() T {
	r.mustShape()
	if !r.isSuccess {
		panic(ErrNotSuccess)
	}
	return r.value
}

// UnwrapOr returns the success payload, or def on a failure.
func (r Result[T]) UnwrapOr(def T) T {
	r.mustShape()
	if !r.isSuccess {
		return def
	}
	return r.value
}

// UnwrapErr returns the failure payload. It panics with ErrNotFailure on a
// success and ErrInvalidShape on a malformed container.
func (r Result[T]) UnwrapErr() error {
	r.mustShape()
	if !r.isFailure {
		panic(ErrNotFailure)
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	r.mustShape()
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	r.mustShape()
	return r.isFailure
}

// IsValid reports whether r is one of the two variants. It is the only
// query safe to call on a container of unknown provenance.
func (r Result[T]) IsValid() bool {
	return r.isSuccess != r.isFailure
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) mustShape() {
	if !r.IsValid() {
		panic(ErrInvalidShape)
	}
}
