// Package password implements configurable, cryptographically secure password
// generation: validated category configuration, secure character assembly and
// an unbiased in-place shuffle of the result.
package password

import (
	"github.com/winpass/winpass/internal/security"
)

// Length constraints shared by both generation modes.
const (
	// MinLength is the minimum total password length.
	MinLength = 4

	// MaxLength is the maximum total password length.
	MaxLength = 1024

	// MaxCategoryLength is the exclusive upper bound for a per-category count.
	MaxCategoryLength = 1024

	// DefaultBatchLength is the length batch-mode callers substitute when
	// given a non-positive length. The substitution is a convenience of the
	// batch entry layer, not of validation.
	DefaultBatchLength = 16
)

// CategoryConfig configures one character category for advanced generation.
// Count is only meaningful while Enabled; a disabled category contributes
// nothing and consumes no entropy.
type CategoryConfig struct {
	Enabled bool
	Count   int
}

// AdvancedConfig is a full per-category generation request.
type AdvancedConfig struct {
	Letters CategoryConfig
	Numbers CategoryConfig
	Symbols CategoryConfig
}

// Password is the finished result of a generation call. The buffer is
// exclusively owned by the caller once returned; call Destroy to wipe it.
type Password struct {
	chars []byte

	// Effective per-category counts. Zero for batch mode, where characters
	// are drawn from a single combined pool.
	Letters int
	Numbers int
	Symbols int
}

// String returns the password characters.
func (p *Password) String() string {
	return string(p.chars)
}

// Len returns the password length.
func (p *Password) Len() int {
	return len(p.chars)
}

// Destroy wipes the password buffer. The Password must not be used after.
func (p *Password) Destroy() {
	security.SecureZero(p.chars)
	p.chars = nil
}
