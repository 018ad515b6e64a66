package times

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidCount is returned when a range is requested with a count that is not a positive number.
	ErrInvalidCount errorkit.Error = "times: count must be greater than 0"
	// ErrUnboundedReverse is the panic value when an unbounded range is traversed backwards,
	// as there is no last number to count down from.
	ErrUnboundedReverse errorkit.Error = "times: unbounded range can't be traversed in reverse"
)
