package crypto

import "crypto/sha256"

const fingerprintBytes = 10

// Fingerprint returns a short identifier for a public key: the first 10
// bytes of its SHA-256 digest as lowercase hex.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return ToHex(sum[:fingerprintBytes])
}
