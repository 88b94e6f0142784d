package trx

import (
	"fmt"

	"github.com/bitfsorg/libtrx-go/address"
)

// ByAddressLock locks an output to the holder of Address.
type ByAddressLock struct {
	Address address.Address
}

// ClaimKind implements OutputClaim.
func (ByAddressLock) ClaimKind() ClaimKind { return ClaimByAddress }

// ByAddressUnlock proves control of an address with a compact signature
// over the transaction digest. The public key is recovered from the
// signature rather than carried alongside it.
type ByAddressUnlock struct {
	Signature CompactSignature
}

// ClaimKind implements InputClaim.
func (ByAddressUnlock) ClaimKind() ClaimKind { return ClaimByAddress }

type byAddressCodec struct{}

func (byAddressCodec) Kind() ClaimKind { return ClaimByAddress }

func (byAddressCodec) Name() string { return "by_address" }

func (byAddressCodec) SizeClass() SizeClass {
	return SizeClass{Lock: address.Size, Unlock: CompactSignatureSize}
}

func (byAddressCodec) EncodeLock(w *Writer, lock OutputClaim) error {
	l, ok := lock.(ByAddressLock)
	if !ok {
		return fmt.Errorf("%w: by_address lock has type %T", ErrClaimMismatch, lock)
	}
	w.WriteFixed(l.Address[:])
	return nil
}

func (byAddressCodec) DecodeLock(r *Reader) (OutputClaim, error) {
	var l ByAddressLock
	if err := r.ReadFixedInto(l.Address[:], "claim address"); err != nil {
		return nil, err
	}
	return l, nil
}

func (byAddressCodec) EncodeUnlock(w *Writer, unlock InputClaim) error {
	u, ok := unlock.(ByAddressUnlock)
	if !ok {
		return fmt.Errorf("%w: by_address unlock has type %T", ErrClaimMismatch, unlock)
	}
	w.WriteFixed(u.Signature[:])
	return nil
}

func (byAddressCodec) DecodeUnlock(r *Reader) (InputClaim, error) {
	var u ByAddressUnlock
	if err := r.ReadFixedInto(u.Signature[:], "address signature"); err != nil {
		return nil, err
	}
	return u, nil
}

// Verify recovers the signer from the signature and compares its address
// with the lock. A signature that does not recover is ErrInvalidSignature;
// one that recovers to another address is ErrClaimMismatch.
func (byAddressCodec) Verify(unlock InputClaim, lock OutputClaim, d Digest) error {
	u, ok := unlock.(ByAddressUnlock)
	if !ok {
		return fmt.Errorf("%w: unlock has type %T", ErrClaimMismatch, unlock)
	}
	l, ok := lock.(ByAddressLock)
	if !ok {
		return fmt.Errorf("%w: lock has type %T", ErrClaimMismatch, lock)
	}
	signer, err := RecoverAddress(u.Signature, d)
	if err != nil {
		return err
	}
	if signer != l.Address {
		return fmt.Errorf("%w: signed by %s, locked to %s", ErrClaimMismatch, signer.Hex(), l.Address.Hex())
	}
	return nil
}
