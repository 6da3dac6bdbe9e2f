package outcome

import "errors"

// Contract violations. These are panicked, never returned: passing a
// malformed container into the algebra, extracting the wrong variant, or
// handing a non-map to the dynamic map lookup are programmer errors, and
// they are never downgraded to a domain failure or None.
var (
	ErrInvalidShape = errors.New("outcome: value is neither variant of the container")
	ErrNotSuccess   = errors.New("outcome: unwrap of a failure result")
	ErrNotFailure   = errors.New("outcome: unwrap-err of a success result")
	ErrNotSome      = errors.New("outcome: unwrap of a none option")
	ErrNotMap       = errors.New("outcome: lookup target is not a map")
)

// ErrNotFound is a domain outcome, not a violation: the default tag carried
// by a failure produced from an absent value or a missed lookup.
var ErrNotFound = errors.New("outcome: not found")
