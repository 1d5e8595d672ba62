package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ToHex returns two lowercase hex characters per byte of b, with no prefix
// or separators.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes hex text produced by ToHex.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return b, nil
}

// EncodeBase64 returns the unpadded standard-alphabet encoding of b.
func EncodeBase64(b []byte) string { return base64.RawStdEncoding.EncodeToString(b) }

// DecodeBase64 decodes unpadded standard-alphabet base64. The output buffer
// is sized for the worst case of len(s) and trimmed to what was decoded.
func DecodeBase64(s string) ([]byte, error) {
	enc := base64.RawStdEncoding
	buf := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(buf, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return buf[:n], nil
}
