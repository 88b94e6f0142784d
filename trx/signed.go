package trx

import "fmt"

// SignedTransaction is an envelope plus its detached signatures, one per
// input in input order. It is the unit peers exchange and the chain state
// applies.
type SignedTransaction struct {
	Envelope TransactionEnvelope
	Sigs     []CompactSignature
}

// TxID returns the envelope's canonical hash. Signatures are not covered.
func (s *SignedTransaction) TxID() Digest { return s.Envelope.CanonicalHash() }

// InputCount returns the number of inputs.
func (s *SignedTransaction) InputCount() int { return len(s.Envelope.Inputs) }

// SignatureCount returns the number of signatures.
func (s *SignedTransaction) SignatureCount() int { return len(s.Sigs) }

// CheckSignatureCount fails with ErrSignatureCountMismatch unless there is
// exactly one signature per input.
func (s *SignedTransaction) CheckSignatureCount() error {
	if len(s.Sigs) != len(s.Envelope.Inputs) {
		return fmt.Errorf("%w: %d signatures for %d inputs",
			ErrSignatureCountMismatch, len(s.Sigs), len(s.Envelope.Inputs))
	}
	return nil
}

// Input decodes input i and attaches signature i as its unlock proof,
// shaped by the input's claim kind.
func (s *SignedTransaction) Input(i int) (TransactionInput, error) {
	in, err := s.Envelope.Input(i)
	if err != nil {
		return TransactionInput{}, err
	}
	if i >= len(s.Sigs) {
		return TransactionInput{}, fmt.Errorf("%w: no signature for input %d", ErrSignatureCountMismatch, i)
	}
	codec, err := LookupClaim(in.Kind)
	if err != nil {
		return TransactionInput{}, err
	}
	rd := NewReader(s.Sigs[i][:])
	unlock, err := codec.DecodeUnlock(rd)
	if err != nil {
		return TransactionInput{}, fmt.Errorf("input %d unlock: %w", i, err)
	}
	if err := rd.Finish(); err != nil {
		return TransactionInput{}, fmt.Errorf("input %d unlock: %w", i, err)
	}
	in.Unlock = unlock
	return in, nil
}

// Inputs decodes every input with its unlock proof attached.
func (s *SignedTransaction) Inputs() ([]TransactionInput, error) {
	if err := s.CheckSignatureCount(); err != nil {
		return nil, err
	}
	inputs := make([]TransactionInput, len(s.Envelope.Inputs))
	for i := range inputs {
		in, err := s.Input(i)
		if err != nil {
			return nil, err
		}
		inputs[i] = in
	}
	return inputs, nil
}

// VerifyInput checks input i's unlock proof against lock, the predicate of
// the output it spends.
func (s *SignedTransaction) VerifyInput(i int, lock OutputClaim) error {
	in, err := s.Input(i)
	if err != nil {
		return err
	}
	if err := in.VerifyUnlock(s.TxID(), lock); err != nil {
		return fmt.Errorf("input %d: %w", i, err)
	}
	return nil
}

// EncodeTo writes the signed transaction.
//
// Layout: envelope | varint(k) | k * signature(65)
func (s *SignedTransaction) EncodeTo(w *Writer) {
	s.Envelope.EncodeTo(w)
	w.WriteVarint(uint64(len(s.Sigs)))
	for _, sig := range s.Sigs {
		w.WriteFixed(sig[:])
	}
}

// DecodeSignedTransaction reads a signed transaction written by EncodeTo.
// The signature count is not checked against the inputs here; call
// CheckSignatureCount before accepting it.
func DecodeSignedTransaction(rd *Reader) (*SignedTransaction, error) {
	env, err := DecodeEnvelope(rd)
	if err != nil {
		return nil, err
	}
	n, err := rd.ReadCount("signature count", CompactSignatureSize)
	if err != nil {
		return nil, err
	}
	var sigs []CompactSignature
	if n > 0 {
		sigs = make([]CompactSignature, n)
		for i := range sigs {
			if err := rd.ReadFixedInto(sigs[i][:], "signature"); err != nil {
				return nil, err
			}
		}
	}
	return &SignedTransaction{Envelope: *env, Sigs: sigs}, nil
}

// Bytes returns the wire encoding.
func (s *SignedTransaction) Bytes() []byte {
	w := NewWriter()
	s.EncodeTo(w)
	return w.Bytes()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *SignedTransaction) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SignedTransaction) UnmarshalBinary(data []byte) error {
	rd := NewReader(data)
	decoded, err := DecodeSignedTransaction(rd)
	if err != nil {
		return err
	}
	if err := rd.Finish(); err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// ParseSignedTransaction decodes a complete signed transaction.
func ParseSignedTransaction(data []byte) (*SignedTransaction, error) {
	var s SignedTransaction
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &s, nil
}
