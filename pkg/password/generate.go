package password

import (
	"github.com/winpass/winpass/internal/security"
	"github.com/winpass/winpass/pkg/crypto/rand"
)

// GenerateBatch generates a password of totalLength characters drawn from a
// single combined pool: the full pool when includeSymbols is set, otherwise
// the alphanumeric pool.
func GenerateBatch(totalLength int, includeSymbols bool) (*Password, error) {
	p, err := validateBatch(totalLength, includeSymbols)
	if err != nil {
		return nil, err
	}
	return generate(p)
}

// GenerateAdvanced generates a password with per-category control. Each
// enabled category contributes exactly its configured count of characters;
// the final arrangement carries no trace of category order.
func GenerateAdvanced(cfg AdvancedConfig) (*Password, error) {
	p, err := validateAdvanced(cfg)
	if err != nil {
		return nil, err
	}
	return generate(p)
}

// generate runs the validated plan through assemble and shuffle. The random
// source handle is scoped to this call and released on every exit path; any
// failure discards the buffer, so a failed call never yields a password.
func generate(p plan) (*Password, error) {
	src, err := rand.Acquire()
	if err != nil {
		return nil, err
	}
	defer src.Release()

	buf, err := assemble(p, src)
	if err != nil {
		return nil, err
	}

	if err := shuffle(buf, src); err != nil {
		security.SecureZero(buf)
		return nil, err
	}

	return &Password{
		chars:   buf,
		Letters: p.letters,
		Numbers: p.numbers,
		Symbols: p.symbols,
	}, nil
}
