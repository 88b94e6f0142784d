package trx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// maxVarintLen is the longest LEB128 encoding of a uint64.
const maxVarintLen = binary.MaxVarintLen64

// Writer appends wire-format fields to an in-memory buffer. Fixed-width
// integers are little-endian; counts and indices are unsigned LEB128.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

func (w *Writer) WriteUint8(v uint8) { w.buf.WriteByte(v) }

func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteVarint writes v using the minimal LEB128 encoding.
func (w *Writer) WriteVarint(v uint64) {
	var b [maxVarintLen]byte
	n := binary.PutUvarint(b[:], v)
	w.buf.Write(b[:n])
}

// WriteFixed writes p verbatim; the reader must know its width.
func (w *Writer) WriteFixed(p []byte) { w.buf.Write(p) }

// WriteVarBytes writes a length prefix followed by p.
func (w *Writer) WriteVarBytes(p []byte) {
	w.WriteVarint(uint64(len(p)))
	w.buf.Write(p)
}

// Reader consumes wire-format fields from a byte slice. Every read that
// would run past the end fails with ErrMalformedEncoding.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Finish fails if unread bytes remain.
func (r *Reader) Finish() error {
	if n := r.Remaining(); n != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedEncoding, n)
	}
	return nil
}

func (r *Reader) take(n int, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", ErrMalformedEncoding, what, n, r.Remaining())
	}
	p := r.data[r.off : r.off+n]
	r.off += n
	return p, nil
}

func (r *Reader) ReadUint8(what string) (uint8, error) {
	p, err := r.take(1, what)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (r *Reader) ReadUint16(what string) (uint16, error) {
	p, err := r.take(2, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

func (r *Reader) ReadUint32(what string) (uint32, error) {
	p, err := r.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

func (r *Reader) ReadUint64(what string) (uint64, error) {
	p, err := r.take(8, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// ReadVarint reads a minimally encoded LEB128 value.
func (r *Reader) ReadVarint(what string) (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	switch {
	case n == 0:
		return 0, fmt.Errorf("%w: %s varint truncated", ErrMalformedEncoding, what)
	case n < 0:
		return 0, fmt.Errorf("%w: %s varint overflows 64 bits", ErrMalformedEncoding, what)
	}
	// A final group of zero is only legal for the single byte 0x00.
	if n > 1 && r.data[r.off+n-1] == 0 {
		return 0, fmt.Errorf("%w: %s varint not minimally encoded", ErrMalformedEncoding, what)
	}
	r.off += n
	return v, nil
}

// ReadVarint32 reads a varint that must fit in 32 bits.
func (r *Reader) ReadVarint32(what string) (uint32, error) {
	v, err := r.ReadVarint(what)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s value %d exceeds 32 bits", ErrMalformedEncoding, what, v)
	}
	return uint32(v), nil
}

// ReadCount reads an element count and rejects counts that could not
// possibly be satisfied by the remaining bytes, given each element
// occupies at least minSize bytes.
func (r *Reader) ReadCount(what string, minSize int) (int, error) {
	v, err := r.ReadVarint(what)
	if err != nil {
		return 0, err
	}
	if minSize < 1 {
		minSize = 1
	}
	if v > uint64(r.Remaining()/minSize) {
		return 0, fmt.Errorf("%w: %s count %d exceeds remaining data", ErrMalformedEncoding, what, v)
	}
	return int(v), nil
}

// ReadFixed reads exactly n bytes and returns a copy.
func (r *Reader) ReadFixed(n int, what string) ([]byte, error) {
	p, err := r.take(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p)
	return out, nil
}

// ReadFixedInto fills dst from the stream.
func (r *Reader) ReadFixedInto(dst []byte, what string) error {
	p, err := r.take(len(dst), what)
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// ReadVarBytes reads a length-prefixed byte string.
func (r *Reader) ReadVarBytes(what string) ([]byte, error) {
	n, err := r.ReadCount(what+" length", 1)
	if err != nil {
		return nil, err
	}
	return r.ReadFixed(n, what)
}
