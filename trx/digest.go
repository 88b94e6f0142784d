package trx

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DigestSize is the width of a transaction digest (SHA-224).
const DigestSize = sha256.Size224

// Digest identifies a transaction and is the message every unlock proof signs.
type Digest [DigestSize]byte

// HashBytes returns the SHA-224 digest of data.
func HashBytes(data []byte) Digest {
	return Digest(sha256.Sum224(data))
}

// String returns the lowercase hex form.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether every byte is zero.
func (d Digest) IsZero() bool { return d == Digest{} }

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := DigestFromHex(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DigestFromHex parses a 56-character hex digest.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("%w: digest hex: %w", ErrMalformedEncoding, err)
	}
	if len(raw) != DigestSize {
		return d, fmt.Errorf("%w: digest must be %d bytes, got %d", ErrMalformedEncoding, DigestSize, len(raw))
	}
	copy(d[:], raw)
	return d, nil
}
