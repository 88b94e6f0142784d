package trx

import "fmt"

// EnvelopeBuilder collects inputs and outputs for a new transaction. It is
// owned by a single goroutine until Build; the envelope it returns shares
// no memory with the builder.
type EnvelopeBuilder struct {
	version     uint16
	expireBlock uint32
	inputs      []Record
	outputs     []Record
}

// NewEnvelopeBuilder creates a builder for a transaction valid up to and
// including expireBlock.
func NewEnvelopeBuilder(expireBlock uint32) *EnvelopeBuilder {
	return &EnvelopeBuilder{
		version:     CurrentVersion,
		expireBlock: expireBlock,
	}
}

// SetVersion overrides the envelope version.
func (b *EnvelopeBuilder) SetVersion(v uint16) {
	b.version = v
}

// SetExpireBlock sets the last block height the transaction may be included at.
func (b *EnvelopeBuilder) SetExpireBlock(h uint32) {
	b.expireBlock = h
}

// AddInput appends an input. Any attached unlock proof is ignored; proofs
// are produced by Sign over the finished envelope.
func (b *EnvelopeBuilder) AddInput(in TransactionInput) error {
	rec, err := in.Record()
	if err != nil {
		return fmt.Errorf("input %d: %w", len(b.inputs), err)
	}
	b.inputs = append(b.inputs, rec)
	return nil
}

// AddOutput appends an output and returns its index.
func (b *EnvelopeBuilder) AddOutput(out TransactionOutput) (uint32, error) {
	rec, err := out.Record()
	if err != nil {
		return 0, fmt.Errorf("output %d: %w", len(b.outputs), err)
	}
	b.outputs = append(b.outputs, rec)
	return uint32(len(b.outputs) - 1), nil
}

// Build returns the finished envelope.
func (b *EnvelopeBuilder) Build() (*TransactionEnvelope, error) {
	if len(b.outputs) == 0 {
		return nil, ErrNoOutputs
	}
	return &TransactionEnvelope{
		Version:     b.version,
		ExpireBlock: b.expireBlock,
		Inputs:      cloneRecords(b.inputs),
		Outputs:     cloneRecords(b.outputs),
	}, nil
}
