// Package solo contains single-value, synchronous combinators that operate
// on outcome.Result[T] while threading a context to every caller-supplied
// step. These functions form the building blocks for error-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - FailOnError: demote a success when a check yields an error
// - Recover: error-path switch back to a Result
// - Finally: reduce to a concrete value via success/error handlers
package solo
