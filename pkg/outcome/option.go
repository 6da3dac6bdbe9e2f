package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Option is the presence/absence counterpart of Result: some carrying a
// value of T, or none. Some of a nil value is legal and distinct from None;
// that distinction is the point of the type. The zero value is malformed,
// same as Result.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isSome    bool
	isNone    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		isSome:    true,
		isNone:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		isSome:    false,
		isNone:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// WrapOption lifts a plain value into an Option unconditionally.
func WrapOption[T any](v T) Option[T] {
	return Some(v)
}

// SomeNotNil lifts v into an Option, collapsing the absence marker to None.
// There is no error channel, so no tag is taken.
func SomeNotNil[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func noneFrom[In, Out any](from Option[In]) Option[Out] {
	return Option[Out]{
		isSome:    false,
		isNone:    true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Unwrap returns the contained value. It panics with ErrNotSome on None and
// ErrInvalidShape on a malformed container.
func (o Option[T]) Unwrap() T {
	o.mustShape()
	if !o.isSome {
		panic(ErrNotSome)
	}
	return o.value
}

// UnwrapOr returns the contained value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	o.mustShape()
	if !o.isSome {
		return def
	}
	return o.value
}

func (o Option[T]) IsSome() bool {
	o.mustShape()
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	o.mustShape()
	return o.isNone
}

// IsValid reports whether o is one of the two variants.
func (o Option[T]) IsValid() bool {
	return o.isSome != o.isNone
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

func (o Option[T]) mustShape() {
	if !o.IsValid() {
		panic(ErrInvalidShape)
	}
}
