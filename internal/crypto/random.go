package crypto

import (
	"crypto/rand"
	"fmt"

	"sigbench/internal/domain"
)

// FillRandom fills buf with bytes from the system CSPRNG.
func FillRandom(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return nil
}

// NewSeed returns a fresh random seed.
func NewSeed() (seed domain.Seed, err error) {
	err = FillRandom(seed[:])
	return
}
