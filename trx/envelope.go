package trx

import "fmt"

// CurrentVersion is the envelope version written by EnvelopeBuilder.
const CurrentVersion uint16 = 1

// TransactionEnvelope is the unsigned body of a transaction: the unit that
// is hashed and signed. Input and output order is part of its identity.
// A nil and an empty record list encode the same and decode to nil, as
// EnvelopeBuilder produces them.
type TransactionEnvelope struct {
	Version     uint16
	ExpireBlock uint32
	Inputs      []Record
	Outputs     []Record
}

// EncodeTo writes the envelope.
//
// Layout: version(2) | expire_block(4) | varint(n) | n input records |
// varint(m) | m output records
func (e *TransactionEnvelope) EncodeTo(w *Writer) {
	w.WriteUint16(e.Version)
	w.WriteUint32(e.ExpireBlock)
	w.WriteVarint(uint64(len(e.Inputs)))
	for _, r := range e.Inputs {
		r.EncodeTo(w)
	}
	w.WriteVarint(uint64(len(e.Outputs)))
	for _, r := range e.Outputs {
		r.EncodeTo(w)
	}
}

// DecodeEnvelope reads an envelope written by EncodeTo.
func DecodeEnvelope(rd *Reader) (*TransactionEnvelope, error) {
	version, err := rd.ReadUint16("envelope version")
	if err != nil {
		return nil, err
	}
	expire, err := rd.ReadUint32("envelope expire block")
	if err != nil {
		return nil, err
	}
	inputs, err := decodeRecords(rd, "inputs")
	if err != nil {
		return nil, err
	}
	outputs, err := decodeRecords(rd, "outputs")
	if err != nil {
		return nil, err
	}
	return &TransactionEnvelope{
		Version:     version,
		ExpireBlock: expire,
		Inputs:      inputs,
		Outputs:     outputs,
	}, nil
}

func decodeRecords(rd *Reader, what string) ([]Record, error) {
	n, err := rd.ReadCount(what+" count", minRecordSize)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	records := make([]Record, n)
	for i := range records {
		rec, err := DecodeRecord(rd)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", what, i, err)
		}
		records[i] = rec
	}
	return records, nil
}

// Bytes returns the canonical encoding.
func (e *TransactionEnvelope) Bytes() []byte {
	w := NewWriter()
	e.EncodeTo(w)
	return w.Bytes()
}

// CanonicalHash returns the SHA-224 digest of the canonical encoding. It is
// the message every unlock proof signs and the transaction's identity.
func (e *TransactionEnvelope) CanonicalHash() Digest {
	return HashBytes(e.Bytes())
}

// IsExpired reports whether the envelope may no longer be included at height.
func (e *TransactionEnvelope) IsExpired(height uint32) bool {
	return height > e.ExpireBlock
}

// CheckExpiry returns ErrTransactionExpired when IsExpired(height).
func (e *TransactionEnvelope) CheckExpiry(height uint32) error {
	if e.IsExpired(height) {
		return fmt.Errorf("%w: expire block %d, height %d", ErrTransactionExpired, e.ExpireBlock, height)
	}
	return nil
}

// InputCount returns the number of inputs.
func (e *TransactionEnvelope) InputCount() int { return len(e.Inputs) }

// OutputCount returns the number of outputs.
func (e *TransactionEnvelope) OutputCount() int { return len(e.Outputs) }

// Input decodes input i. No unlock proof is attached.
func (e *TransactionEnvelope) Input(i int) (TransactionInput, error) {
	if i < 0 || i >= len(e.Inputs) {
		return TransactionInput{}, fmt.Errorf("%w: input %d of %d", ErrIndexOutOfRange, i, len(e.Inputs))
	}
	in, err := DecodeInputRecord(e.Inputs[i])
	if err != nil {
		return TransactionInput{}, fmt.Errorf("input %d: %w", i, err)
	}
	return in, nil
}

// Output decodes output i.
func (e *TransactionEnvelope) Output(i int) (TransactionOutput, error) {
	if i < 0 || i >= len(e.Outputs) {
		return TransactionOutput{}, fmt.Errorf("%w: output %d of %d", ErrIndexOutOfRange, i, len(e.Outputs))
	}
	out, err := DecodeOutputRecord(e.Outputs[i])
	if err != nil {
		return TransactionOutput{}, fmt.Errorf("output %d: %w", i, err)
	}
	return out, nil
}

// DecodeInputs decodes every input, failing on the first bad record.
func (e *TransactionEnvelope) DecodeInputs() ([]TransactionInput, error) {
	inputs := make([]TransactionInput, len(e.Inputs))
	for i := range e.Inputs {
		in, err := e.Input(i)
		if err != nil {
			return nil, err
		}
		inputs[i] = in
	}
	return inputs, nil
}

// DecodeOutputs decodes every output, failing on the first bad record.
func (e *TransactionEnvelope) DecodeOutputs() ([]TransactionOutput, error) {
	outputs := make([]TransactionOutput, len(e.Outputs))
	for i := range e.Outputs {
		out, err := e.Output(i)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

// OutputReference returns the reference naming output i of this envelope.
func (e *TransactionEnvelope) OutputReference(i uint32) OutputReference {
	return OutputReference{TxHash: e.CanonicalHash(), OutputIndex: i}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *TransactionEnvelope) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *TransactionEnvelope) UnmarshalBinary(data []byte) error {
	rd := NewReader(data)
	decoded, err := DecodeEnvelope(rd)
	if err != nil {
		return err
	}
	if err := rd.Finish(); err != nil {
		return err
	}
	*e = *decoded
	return nil
}
