package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// OptChain wraps an outcome.Option with context to enable fluent chaining
type OptChain[T any] struct {
	ctx context.Context
	opt outcome.Option[T]
}

// StartOption creates a new chain from an outcome.Option
func StartOption[T any](ctx context.Context, opt outcome.Option[T]) *OptChain[T] {
	return &OptChain[T]{
		ctx: ctx,
		opt: opt,
	}
}

// OptionFromValue creates a new chain from a present value
func OptionFromValue[T any](ctx context.Context, value T) *OptChain[T] {
	return &OptChain[T]{
		ctx: ctx,
		opt: outcome.Some(value),
	}
}

// Option returns the underlying outcome.Option
func (c *OptChain[T]) Option() outcome.Option[T] {
	return c.opt
}

// ThenOption chains a function that returns outcome.Option[U]
func ThenOption[T, U any](c *OptChain[T], onSome func(context.Context, T) outcome.Option[U]) *OptChain[U] {
	if c.opt.IsNone() {
		return &OptChain[U]{ctx: c.ctx, opt: outcome.None[U]()}
	}
	return &OptChain[U]{ctx: c.ctx, opt: onSome(c.ctx, c.opt.Unwrap())}
}

// MapOption chains a pure transformation function
func MapOption[T, U any](c *OptChain[T], onSome func(context.Context, T) U) *OptChain[U] {
	if c.opt.IsNone() {
		return &OptChain[U]{ctx: c.ctx, opt: outcome.None[U]()}
	}
	return &OptChain[U]{ctx: c.ctx, opt: outcome.Some(onSome(c.ctx, c.opt.Unwrap()))}
}

// Ensure performs a side effect without changing the option
func (c *OptChain[T]) Ensure(onSome func(context.Context, T)) *OptChain[T] {
	if c.opt.IsSome() {
		onSome(c.ctx, c.opt.Unwrap())
	}
	return c
}

// OrElse chains an alternative invoked only on the none path
func (c *OptChain[T]) OrElse(onNone func(context.Context) outcome.Option[T]) *OptChain[T] {
	if c.opt.IsSome() {
		return c
	}
	return &OptChain[T]{ctx: c.ctx, opt: onNone(c.ctx)}
}

// FinallyOption collapses the chain into a final value
func FinallyOption[T, U any](c *OptChain[T], onSome func(context.Context, T) U, onNone func(context.Context) U) U {
	if c.opt.IsSome() {
		return onSome(c.ctx, c.opt.Unwrap())
	}
	return onNone(c.ctx)
}
