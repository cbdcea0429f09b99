// Package rand provides cryptographically secure random number generation
// with handle-scoped acquisition and unbiased bounded draws.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader is the default cryptographically secure random number generator.
// Tests may substitute it; production code must never point it at a
// non-cryptographic source.
var Reader io.Reader = rand.Reader

// Source is a handle on the secure random provider. Each generation call
// acquires its own Source and releases it on every exit path. A Source is
// not safe for concurrent use.
type Source struct {
	r io.Reader
}

// Acquire opens a handle on the secure random provider. It draws a probe
// byte to verify the provider is actually able to produce randomness, so a
// broken provider fails here rather than mid-generation.
func Acquire() (*Source, error) {
	var probe [1]byte
	if _, err := io.ReadFull(Reader, probe[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	probe[0] = 0
	return &Source{r: Reader}, nil
}

// Release invalidates the handle. Any draw after Release fails with
// ErrReleased. Release is idempotent.
func (s *Source) Release() {
	s.r = nil
}

// FillBytes draws n cryptographically secure random bytes.
func (s *Source) FillBytes(n int) ([]byte, error) {
	if s.r == nil {
		return nil, ErrReleased
	}
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(s.r, bytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDrawFailed, err)
	}

	return bytes, nil
}

// UniformUint32 returns a uniformly distributed value in [0, bound).
//
// Naive modulo reduction of a single draw is biased whenever bound does not
// evenly divide the 32-bit draw space. This uses rejection sampling instead:
// draws at or above RejectionThreshold(bound) are discarded and redrawn, so
// every accepted draw maps to [0, bound) with exactly equal probability.
// Expected redraws are ~0 for realistic bounds.
func (s *Source) UniformUint32(bound uint32) (uint32, error) {
	if s.r == nil {
		return 0, ErrReleased
	}
	if bound == 0 {
		return 0, ErrZeroBound
	}
	if bound == 1 {
		// Only one possible value; no entropy needed.
		return 0, nil
	}

	threshold := RejectionThreshold(bound)
	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrDrawFailed, err)
		}
		draw := binary.BigEndian.Uint32(buf[:])
		if draw < threshold {
			return draw % bound, nil
		}
	}
}

// RejectionThreshold returns the largest multiple of bound that fits in
// [0, MaxUint32]. Draws below the threshold map evenly onto [0, bound);
// draws at or above it would cause modulo bias and must be rejected.
func RejectionThreshold(bound uint32) uint32 {
	return math.MaxUint32 - (math.MaxUint32 % bound)
}
