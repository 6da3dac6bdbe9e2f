package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.Result[T] {
	return outcome.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Unwrap()); isValid {
			return outcome.Success(input.Unwrap())
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Unwrap())
	}
	return outcome.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(ctx, input.Unwrap()))
	}
	return outcome.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input outcome.Result[T],
	onSuccess func(ctx context.Context, r outcome.Result[T])) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Unwrap())
	} else {
		onError(ctx, input.UnwrapErr())
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Unwrap())
		if err != nil {
			return outcome.Fail[Out](err)
		}

		return outcome.Success(out)
	}

	return outcome.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input outcome.Result[T],
	maybeErr func(ctx context.Context, in T) error) outcome.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Unwrap())
		if err != nil {
			return outcome.Fail[T](err)
		}
		return input
	}
	return input
}

// Recover is the error-path switch: on a failure it hands the error to
// onFailure and returns its result verbatim, on a success it returns the
// input untouched.
func Recover[T any](ctx context.Context, input outcome.Result[T],
	onFailure func(ctx context.Context, err error) outcome.Result[T]) outcome.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return onFailure(ctx, input.UnwrapErr())
}

func Finally[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Unwrap())
	}
	return onError(ctx, input.UnwrapErr())
}
