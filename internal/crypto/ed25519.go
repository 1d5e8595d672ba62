package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"sigbench/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 signing key pair.
func GenerateEd25519() (priv domain.Ed25519Private, pub domain.Ed25519Public, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, fmt.Errorf("%w: %v", ErrKeypairGeneration, err)
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// NewSigningKeyPair is GenerateEd25519 returning a domain.SigningKeyPair.
func NewSigningKeyPair() (domain.SigningKeyPair, error) {
	priv, pub, err := GenerateEd25519()
	return domain.SigningKeyPair{Public: pub, Private: priv}, err
}

// SignDetached signs msg with sk and returns the signature alone.
func SignDetached(msg []byte, sk domain.Ed25519Private) (sig domain.Signature, err error) {
	if sk == (domain.Ed25519Private{}) {
		return sig, fmt.Errorf("%w: empty secret key", ErrSignFailure)
	}
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(sk[:]), msg))
	return sig, nil
}

// VerifyDetached checks sig over msg with pk. It returns ErrVerifyFailure
// when the signature does not validate.
func VerifyDetached(sig domain.Signature, msg []byte, pk domain.Ed25519Public) error {
	if !ed25519.Verify(ed25519.PublicKey(pk[:]), msg, sig[:]) {
		return ErrVerifyFailure
	}
	return nil
}

// Sign returns the attached form sig || msg. The result is always
// len(msg)+domain.SignatureSize bytes long.
func Sign(msg []byte, sk domain.Ed25519Private) ([]byte, error) {
	sig, err := SignDetached(msg, sk)
	if err != nil {
		return nil, err
	}
	sm := make([]byte, 0, domain.SignatureSize+len(msg))
	sm = append(sm, sig[:]...)
	return append(sm, msg...), nil
}

// Open checks an attached signature and returns a copy of the embedded
// message. Truncated input, a wrong key, or any tampering yields
// ErrVerifyFailure.
func Open(sm []byte, pk domain.Ed25519Public) ([]byte, error) {
	if len(sm) < domain.SignatureSize {
		return nil, fmt.Errorf("%w: signed message is %d bytes", ErrVerifyFailure, len(sm))
	}
	var sig domain.Signature
	copy(sig[:], sm[:domain.SignatureSize])
	msg := sm[domain.SignatureSize:]
	if err := VerifyDetached(sig, msg, pk); err != nil {
		return nil, err
	}
	return append([]byte{}, msg...), nil
}
