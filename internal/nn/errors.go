package nn

import "errors"

// Sentinel errors for network and layer operations.
//
// Every error returned by this package wraps one of these values, so
// callers can classify a failure with errors.Is while the message still
// carries the specific widths or state involved.
var (
	// ErrDimensionMismatch reports an input, target, gradient, or
	// parameter slice whose length does not match the widths a layer or
	// network was built with.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidState reports a backward pass requested while no forward
	// activations are cached.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidTopology reports construction of a network whose layer
	// widths, activations, or loss do not line up.
	ErrInvalidTopology = errors.New("invalid topology")
)
