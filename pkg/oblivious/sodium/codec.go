package sodium

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidEncoding reports a hex or base64 string that cannot be decoded.
var ErrInvalidEncoding = errors.New("oblivious: invalid encoding")

// ToHex returns the lowercase hexadecimal encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hexadecimal string of even length.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return b, nil
}

// ToBase64 returns the padded standard-alphabet base64 encoding of b.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes a padded standard-alphabet base64 string.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return b, nil
}

// ToString returns the bytes of b unchanged as a string. Go strings hold
// arbitrary bytes, so the conversion is lossless even when b is not valid
// UTF-8.
func ToString(b []byte) string {
	return string(b)
}

// FromString returns the bytes of s.
func FromString(s string) []byte {
	return []byte(s)
}

// Fixed decodes s with decode and requires exactly n bytes.
func Fixed(decode func(string) ([]byte, error), s string, n int) ([]byte, error) {
	b, err := decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrWrongLength, n, len(b))
	}
	return b, nil
}
