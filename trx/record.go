package trx

// minRecordSize is the smallest encoded record: a tag and an empty length.
const minRecordSize = 2

// Record is the wire form of an input or output before kind-specific
// decoding: a claim kind tag and the opaque payload for that kind. Keeping
// records opaque lets a node store and relay payloads of kinds it cannot
// interpret yet.
type Record struct {
	Tag  uint8
	Data []byte
}

// Kind returns the record's claim kind.
func (r Record) Kind() ClaimKind { return ClaimKind(r.Tag) }

// EncodeTo writes the record.
//
// Layout: tag(1) | varint(len) | data(len)
func (r Record) EncodeTo(w *Writer) {
	w.WriteUint8(r.Tag)
	w.WriteVarBytes(r.Data)
}

// DecodeRecord reads a record written by EncodeTo.
func DecodeRecord(rd *Reader) (Record, error) {
	tag, err := rd.ReadUint8("record tag")
	if err != nil {
		return Record{}, err
	}
	data, err := rd.ReadVarBytes("record data")
	if err != nil {
		return Record{}, err
	}
	if len(data) == 0 {
		data = nil
	}
	return Record{Tag: tag, Data: data}, nil
}

// Clone returns a deep copy. Empty data comes back nil.
func (r Record) Clone() Record {
	if len(r.Data) == 0 {
		return Record{Tag: r.Tag}
	}
	data := make([]byte, len(r.Data))
	copy(data, r.Data)
	return Record{Tag: r.Tag, Data: data}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Record) MarshalBinary() ([]byte, error) {
	w := NewWriter()
	r.EncodeTo(w)
	return w.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Record) UnmarshalBinary(data []byte) error {
	rd := NewReader(data)
	decoded, err := DecodeRecord(rd)
	if err != nil {
		return err
	}
	if err := rd.Finish(); err != nil {
		return err
	}
	*r = decoded
	return nil
}

func cloneRecords(in []Record) []Record {
	if len(in) == 0 {
		return nil
	}
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
