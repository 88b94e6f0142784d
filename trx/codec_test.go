package trx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarint_MinimalEncoding(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, tc := range tests {
		w := NewWriter()
		w.WriteVarint(tc.value)
		assert.Equal(t, tc.want, w.Bytes(), "encode %d", tc.value)

		got, err := NewReader(tc.want).ReadVarint("v")
		require.NoError(t, err)
		assert.Equal(t, tc.value, got)
	}
}

func TestVarint_MaxUint64(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(math.MaxUint64)
	assert.Len(t, w.Bytes(), maxVarintLen)

	got, err := NewReader(w.Bytes()).ReadVarint("v")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestVarint_RejectsNonMinimal(t *testing.T) {
	_, err := NewReader([]byte{0x80, 0x00}).ReadVarint("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	_, err = NewReader([]byte{0x81, 0x80, 0x00}).ReadVarint("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestVarint_Truncated(t *testing.T) {
	_, err := NewReader(nil).ReadVarint("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	_, err = NewReader([]byte{0x80}).ReadVarint("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestVarint_Overflow(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	_, err := NewReader(data).ReadVarint("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestReadVarint32_Overflow(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(math.MaxUint32 + 1)
	_, err := NewReader(w.Bytes()).ReadVarint32("v")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestFixedWidth_LittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteUint16(0x0102)
	w.WriteUint32(0x03040506)
	w.WriteUint64(0x0708090a0b0c0d0e)
	assert.Equal(t, []byte{
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07,
	}, w.Bytes())

	rd := NewReader(w.Bytes())
	v16, err := rd.ReadUint16("a")
	require.NoError(t, err)
	v32, err := rd.ReadUint32("b")
	require.NoError(t, err)
	v64, err := rd.ReadUint64("c")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)
	assert.Equal(t, uint32(0x03040506), v32)
	assert.Equal(t, uint64(0x0708090a0b0c0d0e), v64)
	assert.NoError(t, rd.Finish())
}

func TestReader_TruncatedFixed(t *testing.T) {
	rd := NewReader([]byte{0x01, 0x02, 0x03})
	_, err := rd.ReadUint32("x")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestReader_FinishTrailing(t *testing.T) {
	rd := NewReader([]byte{0x01, 0x02})
	_, err := rd.ReadUint8("x")
	require.NoError(t, err)
	assert.ErrorIs(t, rd.Finish(), ErrMalformedEncoding)
}

func TestReadCount_BoundedByRemaining(t *testing.T) {
	// Claims a billion elements with two bytes of data left.
	w := NewWriter()
	w.WriteVarint(1_000_000_000)
	w.WriteFixed([]byte{0x00, 0x00})
	_, err := NewReader(w.Bytes()).ReadCount("items", 2)
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestVarBytes_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteVarBytes([]byte("payload"))
	rd := NewReader(w.Bytes())
	got, err := rd.ReadVarBytes("p")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
	assert.NoError(t, rd.Finish())
}

func TestDigestFromHex(t *testing.T) {
	d := testDigest(7)
	parsed, err := DigestFromHex(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = DigestFromHex("abcd")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
	_, err = DigestFromHex("zz")
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	text, err := d.MarshalText()
	require.NoError(t, err)
	var back Digest
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
	assert.False(t, d.IsZero())
	assert.True(t, Digest{}.IsZero())
}
