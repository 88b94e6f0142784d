package trx

import (
	"fmt"

	"github.com/bitfsorg/libtrx-go/address"
	"github.com/bitfsorg/libtrx-go/units"
)

// TransactionOutput is a new claimable amount. Only the fields of its own
// claim kind are present, so every output of a kind has the same encoded
// size.
type TransactionOutput struct {
	Amount uint64
	Unit   units.Unit
	Lock   OutputClaim
}

// NewTransactionOutput validates that lock is a lock predicate of a
// registered kind.
// A zero amount is accepted here; rejecting it is validator policy.
func NewTransactionOutput(amount uint64, unit units.Unit, lock OutputClaim) (TransactionOutput, error) {
	if lock == nil {
		return TransactionOutput{}, fmt.Errorf("%w: lock predicate", ErrNilParam)
	}
	if err := checkLock(lock); err != nil {
		return TransactionOutput{}, err
	}
	return TransactionOutput{Amount: amount, Unit: unit, Lock: lock}, nil
}

// NewOutputByAddress locks amount of unit to addr.
func NewOutputByAddress(amount uint64, unit units.Unit, addr address.Address) TransactionOutput {
	return TransactionOutput{Amount: amount, Unit: unit, Lock: ByAddressLock{Address: addr}}
}

// Kind returns the claim kind of the output's lock.
func (o TransactionOutput) Kind() ClaimKind {
	if o.Lock == nil {
		return 0
	}
	return o.Lock.ClaimKind()
}

// Record encodes the output into its wire record.
//
// Data layout: amount(8) | unit(1) | kind(1) | lock predicate
func (o TransactionOutput) Record() (Record, error) {
	if o.Lock == nil {
		return Record{}, fmt.Errorf("%w: lock predicate", ErrNilParam)
	}
	kind := o.Lock.ClaimKind()
	codec, err := LookupClaim(kind)
	if err != nil {
		return Record{}, err
	}
	w := NewWriter()
	w.WriteUint64(o.Amount)
	w.WriteUint8(uint8(o.Unit))
	w.WriteUint8(uint8(kind))
	if err := codec.EncodeLock(w, o.Lock); err != nil {
		return Record{}, err
	}
	return Record{Tag: uint8(kind), Data: w.Bytes()}, nil
}

// DecodeOutputRecord decodes a record into a typed output. The header kind
// must match the record tag and the payload must be exactly the kind's
// stride; nothing is truncated or padded. On error the returned output is
// the zero value.
func DecodeOutputRecord(rec Record) (TransactionOutput, error) {
	codec, err := LookupClaim(rec.Kind())
	if err != nil {
		return TransactionOutput{}, err
	}
	stride := OutputHeaderSize + codec.SizeClass().Lock
	if len(rec.Data) != stride {
		return TransactionOutput{}, fmt.Errorf("%w: %s output is %d bytes, want %d",
			ErrMalformedEncoding, codec.Name(), len(rec.Data), stride)
	}

	rd := NewReader(rec.Data)
	amount, err := rd.ReadUint64("output amount")
	if err != nil {
		return TransactionOutput{}, err
	}
	unit, err := rd.ReadUint8("output unit")
	if err != nil {
		return TransactionOutput{}, err
	}
	kind, err := rd.ReadUint8("output claim kind")
	if err != nil {
		return TransactionOutput{}, err
	}
	if kind != rec.Tag {
		return TransactionOutput{}, fmt.Errorf("%w: output header kind %d under record tag %d",
			ErrMalformedEncoding, kind, rec.Tag)
	}
	lock, err := codec.DecodeLock(rd)
	if err != nil {
		return TransactionOutput{}, err
	}
	if err := rd.Finish(); err != nil {
		return TransactionOutput{}, err
	}
	return TransactionOutput{Amount: amount, Unit: units.Unit(unit), Lock: lock}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (o TransactionOutput) MarshalBinary() ([]byte, error) {
	rec, err := o.Record()
	if err != nil {
		return nil, err
	}
	return rec.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (o *TransactionOutput) UnmarshalBinary(data []byte) error {
	var rec Record
	if err := rec.UnmarshalBinary(data); err != nil {
		return err
	}
	decoded, err := DecodeOutputRecord(rec)
	if err != nil {
		return err
	}
	*o = decoded
	return nil
}
