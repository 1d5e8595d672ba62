package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"sigbench/internal/domain"
)

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519() (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if err = FillRandom(priv[:]); err != nil {
		return priv, pub, fmt.Errorf("%w: %v", ErrKeypairGeneration, err)
	}
	clamp(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return priv, pub, fmt.Errorf("%w: %v", ErrKeypairGeneration, err)
	}
	copy(pub[:], pb)
	return priv, pub, nil
}

// NewExchangeKeyPair is GenerateX25519 returning a domain.ExchangeKeyPair.
func NewExchangeKeyPair() (domain.ExchangeKeyPair, error) {
	priv, pub, err := GenerateX25519()
	return domain.ExchangeKeyPair{Public: pub, Private: priv}, err
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
