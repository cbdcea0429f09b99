package password

import (
	"github.com/winpass/winpass/internal/security"
	"github.com/winpass/winpass/pkg/charset"
	"github.com/winpass/winpass/pkg/crypto/rand"
)

// assemble draws plan.total random bytes and maps them through the plan's
// character pools into a fresh buffer. Advanced-mode categories contribute
// contiguous runs in fixed order (letters, numbers, symbols); the shuffle
// pass erases those boundaries afterwards.
//
// Characters are selected by reducing a random byte modulo the pool size.
// The small modulo bias this leaves (pool sizes 10..84 against a 256-value
// byte) is an accepted trade-off: positional uniformity, which determines
// the permutation space, is handled with full rejection sampling in shuffle.
func assemble(p plan, src *rand.Source) ([]byte, error) {
	raw, err := src.FillBytes(p.total)
	if err != nil {
		return nil, err
	}
	defer security.SecureZero(raw)

	buf := make([]byte, 0, p.total)

	if p.batch {
		for _, b := range raw {
			buf = append(buf, p.batchPool.Members[int(b)%p.batchPool.Size()])
		}
		return buf, nil
	}

	offset := 0
	for _, run := range []struct {
		pool  charset.Pool
		count int
	}{
		{charset.Lookup(charset.Letters), p.letters},
		{charset.Lookup(charset.Digits), p.numbers},
		{charset.Lookup(charset.Symbols), p.symbols},
	} {
		for i := 0; i < run.count; i++ {
			buf = append(buf, run.pool.Members[int(raw[offset+i])%run.pool.Size()])
		}
		offset += run.count
	}

	return buf, nil
}
