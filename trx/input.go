package trx

import (
	"fmt"
	"strconv"
	"strings"
)

// AddressingMode selects how an input names the output it spends.
type AddressingMode uint8

const (
	// ByTableIndex names the output by its slot in the chain's deterministic
	// unspent-output table. Only outputs past the maturity window may be
	// named this way: younger slots can still move in a reorganization.
	ByTableIndex AddressingMode = 0
	// ByReference names the output by (transaction hash, output index).
	ByReference AddressingMode = 1
)

func (m AddressingMode) String() string {
	switch m {
	case ByTableIndex:
		return "table_index"
	case ByReference:
		return "reference"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// OutputSource is the addressing part of an input. Exactly one of the
// table index or the output reference is set; the zero value sets neither
// and is rejected wherever it is used.
type OutputSource struct {
	mode  AddressingMode
	index uint64
	ref   OutputReference
	valid bool
}

// NewOutputSource builds a source from optional addressing payloads and
// fails with ErrInvalidAddressing unless exactly one is given.
func NewOutputSource(tableIndex *uint64, ref *OutputReference) (OutputSource, error) {
	switch {
	case tableIndex != nil && ref != nil:
		return OutputSource{}, fmt.Errorf("%w: both set", ErrInvalidAddressing)
	case tableIndex != nil:
		return SourceByTableIndex(*tableIndex), nil
	case ref != nil:
		return SourceByReference(*ref), nil
	default:
		return OutputSource{}, fmt.Errorf("%w: neither set", ErrInvalidAddressing)
	}
}

// SourceByTableIndex addresses an output by unspent-output table slot.
func SourceByTableIndex(idx uint64) OutputSource {
	return OutputSource{mode: ByTableIndex, index: idx, valid: true}
}

// SourceByReference addresses an output by transaction hash and index.
func SourceByReference(ref OutputReference) OutputSource {
	return OutputSource{mode: ByReference, ref: ref, valid: true}
}

// Mode returns the addressing mode.
func (s OutputSource) Mode() AddressingMode { return s.mode }

// Valid reports whether the source carries an addressing payload.
func (s OutputSource) Valid() bool { return s.valid }

// TableIndex returns the table slot when Mode is ByTableIndex.
func (s OutputSource) TableIndex() (uint64, bool) {
	return s.index, s.valid && s.mode == ByTableIndex
}

// Reference returns the output reference when Mode is ByReference.
func (s OutputSource) Reference() (OutputReference, bool) {
	return s.ref, s.valid && s.mode == ByReference
}

func (s OutputSource) String() string {
	if !s.valid {
		return "unset"
	}
	if s.mode == ByTableIndex {
		return fmt.Sprintf("#%d", s.index)
	}
	return s.ref.String()
}

// ParseOutputSource parses the "#index" or "hash:index" form produced by
// String.
func ParseOutputSource(s string) (OutputSource, error) {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		idx, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return OutputSource{}, fmt.Errorf("%w: table index %q", ErrInvalidAddressing, rest)
		}
		return SourceByTableIndex(idx), nil
	}
	ref, err := ParseOutputReference(s)
	if err != nil {
		return OutputSource{}, fmt.Errorf("%w: %w", ErrInvalidAddressing, err)
	}
	return SourceByReference(ref), nil
}

// EncodeTo writes the source.
//
// Layout:
//
//	mode(1)=0 | varint(table_index)
//	mode(1)=1 | output_reference
func (s OutputSource) EncodeTo(w *Writer) error {
	if !s.valid {
		return fmt.Errorf("%w: source unset", ErrInvalidAddressing)
	}
	w.WriteUint8(uint8(s.mode))
	if s.mode == ByTableIndex {
		w.WriteVarint(s.index)
		return nil
	}
	s.ref.EncodeTo(w)
	return nil
}

// DecodeOutputSource reads a source written by EncodeTo.
func DecodeOutputSource(rd *Reader) (OutputSource, error) {
	mode, err := rd.ReadUint8("addressing mode")
	if err != nil {
		return OutputSource{}, err
	}
	switch AddressingMode(mode) {
	case ByTableIndex:
		idx, err := rd.ReadVarint("table index")
		if err != nil {
			return OutputSource{}, err
		}
		return SourceByTableIndex(idx), nil
	case ByReference:
		ref, err := DecodeOutputReference(rd)
		if err != nil {
			return OutputSource{}, err
		}
		return SourceByReference(ref), nil
	default:
		return OutputSource{}, fmt.Errorf("%w: addressing mode %d", ErrMalformedEncoding, mode)
	}
}

// TransactionInput spends one earlier output.
//
// Unlock is the detached unlock proof. It is not part of the input record
// that the transaction digest covers; SignedTransaction.Input attaches it
// from the signature at the same position.
type TransactionInput struct {
	Source OutputSource
	Kind   ClaimKind
	Unlock InputClaim
}

// NewTransactionInput validates the addressing payloads and claim kind.
func NewTransactionInput(tableIndex *uint64, ref *OutputReference, kind ClaimKind) (TransactionInput, error) {
	src, err := NewOutputSource(tableIndex, ref)
	if err != nil {
		return TransactionInput{}, err
	}
	if _, err := LookupClaim(kind); err != nil {
		return TransactionInput{}, err
	}
	return TransactionInput{Source: src, Kind: kind}, nil
}

// NewInputByTableIndex spends the mature output in table slot idx.
func NewInputByTableIndex(idx uint64, kind ClaimKind) (TransactionInput, error) {
	return NewTransactionInput(&idx, nil, kind)
}

// NewInputByReference spends the output named by ref.
func NewInputByReference(ref OutputReference, kind ClaimKind) (TransactionInput, error) {
	return NewTransactionInput(nil, &ref, kind)
}

// WithUnlock returns a copy of in carrying unlock. The proof's kind must
// match the input's and its codec must accept it as an unlock proof.
func (in TransactionInput) WithUnlock(unlock InputClaim) (TransactionInput, error) {
	if unlock == nil {
		return TransactionInput{}, fmt.Errorf("%w: unlock proof", ErrNilParam)
	}
	if unlock.ClaimKind() != in.Kind {
		return TransactionInput{}, fmt.Errorf("%w: unlock kind %s on %s input",
			ErrClaimMismatch, unlock.ClaimKind(), in.Kind)
	}
	if err := checkUnlock(unlock); err != nil {
		return TransactionInput{}, err
	}
	in.Unlock = unlock
	return in, nil
}

// Record encodes the input into its wire record.
func (in TransactionInput) Record() (Record, error) {
	if _, err := LookupClaim(in.Kind); err != nil {
		return Record{}, err
	}
	w := NewWriter()
	if err := in.Source.EncodeTo(w); err != nil {
		return Record{}, err
	}
	return Record{Tag: uint8(in.Kind), Data: w.Bytes()}, nil
}

// DecodeInputRecord decodes a record into a typed input with no unlock
// proof attached. On error the returned input is the zero value.
func DecodeInputRecord(rec Record) (TransactionInput, error) {
	if _, err := LookupClaim(rec.Kind()); err != nil {
		return TransactionInput{}, err
	}
	rd := NewReader(rec.Data)
	src, err := DecodeOutputSource(rd)
	if err != nil {
		return TransactionInput{}, err
	}
	if err := rd.Finish(); err != nil {
		return TransactionInput{}, err
	}
	return TransactionInput{Source: src, Kind: rec.Kind()}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The unlock proof is
// detached and not included, so a decoded input equals the original only
// when Unlock is nil. SignedTransaction carries the proofs.
func (in TransactionInput) MarshalBinary() ([]byte, error) {
	rec, err := in.Record()
	if err != nil {
		return nil, err
	}
	return rec.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (in *TransactionInput) UnmarshalBinary(data []byte) error {
	var rec Record
	if err := rec.UnmarshalBinary(data); err != nil {
		return err
	}
	decoded, err := DecodeInputRecord(rec)
	if err != nil {
		return err
	}
	*in = decoded
	return nil
}

// VerifyUnlock checks that the attached unlock proof satisfies lock for a
// transaction with digest d.
func (in TransactionInput) VerifyUnlock(d Digest, lock OutputClaim) error {
	if lock == nil {
		return fmt.Errorf("%w: lock predicate", ErrNilParam)
	}
	if lock.ClaimKind() != in.Kind {
		return fmt.Errorf("%w: %s input claims %s output", ErrClaimMismatch, in.Kind, lock.ClaimKind())
	}
	if in.Unlock == nil {
		return fmt.Errorf("%w: no unlock proof attached", ErrInvalidSignature)
	}
	if in.Unlock.ClaimKind() != in.Kind {
		return fmt.Errorf("%w: %s unlock on %s input", ErrClaimMismatch, in.Unlock.ClaimKind(), in.Kind)
	}
	codec, err := LookupClaim(in.Kind)
	if err != nil {
		return err
	}
	return codec.Verify(in.Unlock, lock, d)
}
