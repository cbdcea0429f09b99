package password

import (
	"fmt"

	"github.com/winpass/winpass/pkg/charset"
)

// plan is a validated generation request, ready for assembly. Counts are the
// effective per-category contributions; for batch mode they are zero and the
// whole length is drawn from a single pool.
type plan struct {
	total int

	// Advanced mode: fixed assembly order letters, numbers, symbols.
	letters int
	numbers int
	symbols int

	// Batch mode: the single pool the whole password is drawn from.
	batch     bool
	batchPool charset.Pool
}

// validateBatch checks a batch request and produces its plan. Validation
// happens before any randomness is consumed.
func validateBatch(totalLength int, includeSymbols bool) (plan, error) {
	if totalLength < MinLength {
		return plan{}, fmt.Errorf("%w: got %d, minimum is %d", ErrBelowMinimumLength, totalLength, MinLength)
	}
	if totalLength > MaxLength {
		return plan{}, fmt.Errorf("%w: got %d, maximum is %d", ErrAboveMaximumLength, totalLength, MaxLength)
	}

	pool := charset.Lookup(charset.Alphanumeric)
	if includeSymbols {
		pool = charset.Lookup(charset.Full)
	}

	return plan{total: totalLength, batch: true, batchPool: pool}, nil
}

// validateAdvanced checks a per-category request and produces its plan.
func validateAdvanced(cfg AdvancedConfig) (plan, error) {
	for _, c := range []struct {
		name  string
		count int
	}{
		{"letters", cfg.Letters.Count},
		{"numbers", cfg.Numbers.Count},
		{"symbols", cfg.Symbols.Count},
	} {
		if c.count < 0 || c.count >= MaxCategoryLength {
			return plan{}, fmt.Errorf("%w: %s count %d not in [0, %d)", ErrInvalidCategoryCount, c.name, c.count, MaxCategoryLength)
		}
	}

	p := plan{}
	if cfg.Letters.Enabled {
		p.letters = cfg.Letters.Count
	}
	if cfg.Numbers.Enabled {
		p.numbers = cfg.Numbers.Count
	}
	if cfg.Symbols.Enabled {
		p.symbols = cfg.Symbols.Count
	}

	if p.letters == 0 && p.numbers == 0 && p.symbols == 0 {
		return plan{}, ErrNoCategoryEnabled
	}

	p.total = p.letters + p.numbers + p.symbols
	if p.total < MinLength {
		return plan{}, fmt.Errorf("%w: got %d, minimum is %d", ErrBelowMinimumLength, p.total, MinLength)
	}
	if p.total > MaxLength {
		return plan{}, fmt.Errorf("%w: got %d, maximum is %d", ErrAboveMaximumLength, p.total, MaxLength)
	}

	return p, nil
}
