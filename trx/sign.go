package trx

import (
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// Sign signs every input of env over its canonical hash.
//
// keys must have the same length as env.Inputs and are matched to inputs
// by position (keys[i] signs input i). Every input must be of a kind whose
// unlock proof is a single compact signature.
func Sign(env *TransactionEnvelope, keys []*ec.PrivateKey) (*SignedTransaction, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: envelope", ErrNilParam)
	}
	if len(keys) != len(env.Inputs) {
		return nil, fmt.Errorf("%w: have %d keys but envelope has %d inputs",
			ErrSigningFailed, len(keys), len(env.Inputs))
	}

	digest := env.CanonicalHash()
	var sigs []CompactSignature
	if len(keys) > 0 {
		sigs = make([]CompactSignature, len(keys))
	}
	for i, key := range keys {
		if key == nil {
			return nil, fmt.Errorf("%w: key[%d]", ErrNilParam, i)
		}
		in, err := env.Input(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
		}
		codec, err := LookupClaim(in.Kind)
		if err != nil {
			return nil, err
		}
		if codec.SizeClass().Unlock != CompactSignatureSize {
			return nil, fmt.Errorf("%w: input %d: %s unlock is not a single signature",
				ErrSigningFailed, i, codec.Name())
		}
		sig, err := SignDigest(key, digest)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		sigs[i] = sig
	}

	return &SignedTransaction{
		Envelope: TransactionEnvelope{
			Version:     env.Version,
			ExpireBlock: env.ExpireBlock,
			Inputs:      cloneRecords(env.Inputs),
			Outputs:     cloneRecords(env.Outputs),
		},
		Sigs: sigs,
	}, nil
}
