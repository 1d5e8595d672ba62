package domain

import "fmt"

// Sizes of the primitive buffers, in bytes.
const (
	SeedSize           = 32
	X25519KeySize      = 32
	Ed25519PublicSize  = 32
	Ed25519PrivateSize = 64
	SignatureSize      = 64
)

// ------------- X25519 -------------

// X25519Private is a clamped Curve25519 private key.
type X25519Private [X25519KeySize]byte

// X25519Public is a Curve25519 public key.
type X25519Public [X25519KeySize]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

// ------------- Ed25519 -------------

// Ed25519Private is a signing private key (ed25519.PrivateKey layout: seed || public).
type Ed25519Private [Ed25519PrivateSize]byte

// Ed25519Public is a signing public key.
type Ed25519Public [Ed25519PublicSize]byte

func (k Ed25519Private) Slice() []byte { return k[:] }
func (k Ed25519Public) Slice() []byte  { return k[:] }

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

func (s Signature) Slice() []byte { return s[:] }

// Seed is a block of random bytes.
type Seed [SeedSize]byte

func (s Seed) Slice() []byte { return s[:] }

// ParseEd25519Public copies b into an Ed25519Public.
func ParseEd25519Public(b []byte) (Ed25519Public, error) {
	var out Ed25519Public
	if len(b) != Ed25519PublicSize {
		return out, fmt.Errorf("Ed25519 public: want %d bytes, got %d", Ed25519PublicSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ParseSignature copies b into a Signature.
func ParseSignature(b []byte) (Signature, error) {
	var out Signature
	if len(b) != SignatureSize {
		return out, fmt.Errorf("signature: want %d bytes, got %d", SignatureSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}
