// Package security provides security utilities for protecting sensitive data
package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureZero securely zeros out a byte slice to prevent generated passwords
// or raw entropy from remaining in memory. It uses subtle.ConstantTimeCopy so
// the compiler cannot optimize the zeroing away.
func SecureZero(data []byte) {
	if len(data) == 0 {
		return
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	// Force a memory barrier
	runtime.KeepAlive(data)
}
