package address

import "errors"

// CompressedPubKeyLen is the length of a compressed secp256k1 public key.
const CompressedPubKeyLen = 33

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("address: required parameter is nil")

	// ErrInvalidPublicKey indicates the public key bytes are malformed.
	ErrInvalidPublicKey = errors.New("address: invalid public key")

	// ErrInvalidAddress indicates the address bytes or text are malformed.
	ErrInvalidAddress = errors.New("address: invalid address")
)
