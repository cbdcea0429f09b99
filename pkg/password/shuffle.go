package password

import (
	"github.com/winpass/winpass/pkg/crypto/rand"
)

// shuffle performs an in-place Fisher-Yates permutation of buf. Every index
// is chosen with rejection sampling (rand.Source.UniformUint32), so every
// permutation of the buffer is exactly equiprobable.
//
// On a draw failure the shuffle aborts immediately; the caller must discard
// the partially shuffled buffer rather than return it.
func shuffle(buf []byte, src *rand.Source) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := src.UniformUint32(uint32(i + 1))
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
