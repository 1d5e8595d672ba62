package crypto

import "errors"

var (
	// ErrSignFailure is returned when a message cannot be signed.
	ErrSignFailure = errors.New("sign failed")

	// ErrVerifyFailure is returned when a signature does not validate for the
	// given message and public key.
	ErrVerifyFailure = errors.New("signature verification failed")

	// ErrDecodeFailure is returned for malformed hex or base64 text.
	ErrDecodeFailure = errors.New("decode failed")

	// ErrKeypairGeneration is returned when a key pair cannot be derived.
	ErrKeypairGeneration = errors.New("key pair generation failed")

	// ErrRandom is returned when the system CSPRNG cannot be read.
	ErrRandom = errors.New("random source failed")
)
