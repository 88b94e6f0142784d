// Package address derives claim addresses from secp256k1 public keys.
//
// An address is RIPEMD-160(SHA-512(compressed public key)). Its text form
// reuses the Base58Check encoding of a P2PKH address so it can be copied
// between wallets.
package address

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address format is fixed by the chain
)

// Size is the width of an address in bytes.
const Size = ripemd160.Size

// Address identifies who may claim an output locked by address.
type Address [Size]byte

// FromPublicKey derives the address of pub.
func FromPublicKey(pub *ec.PublicKey) (Address, error) {
	if pub == nil {
		return Address{}, fmt.Errorf("%w: public key", ErrNilParam)
	}
	return FromCompressedKey(pub.Compressed())
}

// FromCompressedKey derives the address of a 33-byte compressed public key.
func FromCompressedKey(compressed []byte) (Address, error) {
	if len(compressed) != CompressedPubKeyLen {
		return Address{}, fmt.Errorf("%w: compressed key must be %d bytes, got %d",
			ErrInvalidPublicKey, CompressedPubKeyLen, len(compressed))
	}
	wide := sha512.Sum512(compressed)
	h := ripemd160.New()
	h.Write(wide[:])

	var a Address
	copy(a[:], h.Sum(nil))
	return a, nil
}

// FromBytes copies a 20-byte slice into an Address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Parse decodes the Base58Check text form produced by String.
func Parse(s string) (Address, error) {
	parsed, err := script.NewAddressFromString(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return FromBytes([]byte(parsed.PublicKeyHash))
}

// String returns the Base58Check text form, or hex if encoding fails.
func (a Address) String() string {
	encoded, err := script.NewAddressFromPublicKeyHash(a[:], true)
	if err != nil {
		return a.Hex()
	}
	return encoded.AddressString
}

// Hex returns the lowercase hex form of the raw bytes.
func (a Address) Hex() string { return hex.EncodeToString(a[:]) }

// Bytes returns a copy of the hash.
func (a Address) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, a[:])
	return b
}

// IsZero reports whether the address is all zero bytes.
func (a Address) IsZero() bool { return a == Address{} }
