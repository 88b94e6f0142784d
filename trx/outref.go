package trx

import (
	"fmt"
	"strconv"
	"strings"
)

// OutputReference names an output by the transaction that created it and
// its position in that transaction's output list.
type OutputReference struct {
	TxHash      Digest
	OutputIndex uint32
}

// Equal reports whether r and o name the same output.
func (r OutputReference) Equal(o OutputReference) bool {
	return r.TxHash == o.TxHash && r.OutputIndex == o.OutputIndex
}

// String returns "hash:index".
func (r OutputReference) String() string {
	return fmt.Sprintf("%s:%d", r.TxHash, r.OutputIndex)
}

// ParseOutputReference parses the "hash:index" form produced by String.
func ParseOutputReference(s string) (OutputReference, error) {
	hashPart, idxPart, ok := strings.Cut(s, ":")
	if !ok {
		return OutputReference{}, fmt.Errorf("%w: output reference %q", ErrMalformedEncoding, s)
	}
	hash, err := DigestFromHex(hashPart)
	if err != nil {
		return OutputReference{}, err
	}
	idx, err := strconv.ParseUint(idxPart, 10, 32)
	if err != nil {
		return OutputReference{}, fmt.Errorf("%w: output index %q", ErrMalformedEncoding, idxPart)
	}
	return OutputReference{TxHash: hash, OutputIndex: uint32(idx)}, nil
}

// EncodeTo writes the reference.
//
// Layout: tx_hash(28) | varint(output_index)
func (r OutputReference) EncodeTo(w *Writer) {
	w.WriteFixed(r.TxHash[:])
	w.WriteVarint(uint64(r.OutputIndex))
}

// DecodeOutputReference reads a reference written by EncodeTo.
func DecodeOutputReference(rd *Reader) (OutputReference, error) {
	var r OutputReference
	if err := rd.ReadFixedInto(r.TxHash[:], "output reference hash"); err != nil {
		return OutputReference{}, err
	}
	idx, err := rd.ReadVarint32("output reference index")
	if err != nil {
		return OutputReference{}, err
	}
	r.OutputIndex = idx
	return r, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r OutputReference) MarshalBinary() ([]byte, error) {
	w := NewWriter()
	r.EncodeTo(w)
	return w.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *OutputReference) UnmarshalBinary(data []byte) error {
	rd := NewReader(data)
	decoded, err := DecodeOutputReference(rd)
	if err != nil {
		return err
	}
	if err := rd.Finish(); err != nil {
		return err
	}
	*r = decoded
	return nil
}
