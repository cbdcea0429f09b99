package rand

import "errors"

var (
	// ErrUnavailable is returned when the secure random provider cannot be acquired
	ErrUnavailable = errors.New("secure random provider unavailable")

	// ErrDrawFailed is returned when a random draw fails mid-operation
	ErrDrawFailed = errors.New("secure random draw failed")

	// ErrReleased is returned when a draw is attempted on a released handle
	ErrReleased = errors.New("random source handle already released")

	// ErrInvalidLength is returned when requested length is invalid
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrZeroBound is returned when a bounded draw is requested with bound 0
	ErrZeroBound = errors.New("bound must be positive")
)
