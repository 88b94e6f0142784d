package trx

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"

	"github.com/bitfsorg/libtrx-go/address"
)

// CompactSignatureSize is the width of a recoverable compact signature:
// one header byte carrying the recovery id, then R and S.
const CompactSignatureSize = 65

// CompactSignature is a secp256k1 signature from which the signing public
// key can be recovered, so inputs need not carry the key itself.
type CompactSignature [CompactSignatureSize]byte

// String returns the lowercase hex form.
func (s CompactSignature) String() string { return hex.EncodeToString(s[:]) }

// SignDigest produces a compact signature over d for a compressed key.
func SignDigest(key *ec.PrivateKey, d Digest) (CompactSignature, error) {
	var sig CompactSignature
	if key == nil {
		return sig, fmt.Errorf("%w: private key", ErrNilParam)
	}
	raw, err := ec.SignCompact(ec.S256(), key, d[:], true)
	if err != nil {
		return sig, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	if len(raw) != CompactSignatureSize {
		return sig, fmt.Errorf("%w: compact signature is %d bytes", ErrSigningFailed, len(raw))
	}
	copy(sig[:], raw)
	return sig, nil
}

// RecoverPublicKey recovers the key that produced sig over d.
func RecoverPublicKey(sig CompactSignature, d Digest) (*ec.PublicKey, error) {
	pub, _, err := ec.RecoverCompact(sig[:], d[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if pub == nil {
		return nil, ErrInvalidSignature
	}
	return pub, nil
}

// RecoverAddress recovers the signer's address from sig over d.
func RecoverAddress(sig CompactSignature, d Digest) (address.Address, error) {
	pub, err := RecoverPublicKey(sig, d)
	if err != nil {
		return address.Address{}, err
	}
	addr, err := address.FromPublicKey(pub)
	if err != nil {
		return address.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return addr, nil
}
