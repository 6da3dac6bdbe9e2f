package outcome

// Map applies f to the success payload and re-wraps the output; a failure
// passes through untouched and f is not invoked. Package-level because the
// output type parameter cannot live on a method.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	r.mustShape()
	if r.isFailure {
		return FailFrom[In, Out](r)
	}
	return Success(f(r.value))
}

// Bind applies f to the success payload and returns f's result verbatim,
// without re-wrapping; the step decides for itself whether it succeeds. A
// failure passes through untouched and f is not invoked.
func Bind[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	r.mustShape()
	if r.isFailure {
		return FailFrom[In, Out](r)
	}
	return f(r.value)
}

// BindError is the mirror of Bind: on a failure it returns f() verbatim, on
// a success it returns r untouched and f is not invoked. f takes no
// arguments; recovery that needs the error goes through UnwrapErr on the
// input before entering the pipeline, or through solo.Recover.
func BindError[T any](r Result[T], f func() Result[T]) Result[T] {
	r.mustShape()
	if r.isSuccess {
		return r
	}
	return f()
}

// MapOption is Map over the presence channel: f is applied to a some value,
// None passes through untouched.
func MapOption[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	o.mustShape()
	if o.isNone {
		return noneFrom[In, Out](o)
	}
	return Some(f(o.value))
}

// BindOption is Bind over the presence channel. There is no error-path
// counterpart: None carries nothing to recover with.
func BindOption[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	o.mustShape()
	if o.isNone {
		return noneFrom[In, Out](o)
	}
	return f(o.value)
}
