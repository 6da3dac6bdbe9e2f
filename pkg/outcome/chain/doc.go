// Package chain provides fluent wrappers around outcome.Result[T] and
// outcome.Option[T] for building synchronous pipelines using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, Recover, and Finally
// behind convenient Chain[T] and OptChain[T] types. This enables ergonomic
// pipelines without dealing directly with branching at each step.
//
// Key operations:
// - Start/FromValue, StartOption/OptionFromValue: begin a chain
// - Then/ThenOption: switch to a new container via a step function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapOption: transform the carried value (T -> U)
// - Ensure: run side effects on the present path without changing the result
// - OrElse: recover on the failure/none path
// - Finally/FinallyOption: collapse the chain into a final value via handlers
package chain
