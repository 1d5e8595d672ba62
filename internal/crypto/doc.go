// Package crypto exposes the primitives exercised by sigbench.
//
// Contents
//
//   - Secure random seeds (NewSeed, FillRandom)
//   - X25519 key-exchange key generation (GenerateX25519)
//   - Ed25519 key generation, attached signing (Sign, Open) and detached
//     signing (SignDetached, VerifyDetached)
//   - Lowercase hex and unpadded base64 helpers (ToHex, FromHex,
//     DecodeBase64, EncodeBase64)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Errors
//
// Every failure wraps one of the sentinel errors declared in errors.go so
// callers can branch with errors.Is. ErrVerifyFailure is an ordinary outcome
// for forged or tampered input and must not be treated as fatal.
package crypto
