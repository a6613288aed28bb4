package morphdict

import "encoding/binary"

// formSize is the width of one paradigm table record: two little-endian
// uint16 fields, no padding.
const formSize = 4

// Form is one inflectional form of one paradigm: a suffix and a grammatical
// tag, both given as catalog ids.
type Form struct {
	// SuffixID indexes the suffix catalog.
	SuffixID uint16
	// TagID indexes the tag table (gramtab).
	TagID uint16
}

// ParadigmTable is the flat concatenation of every form of every paradigm.
// A paradigm is not addressable on its own; rows are addressed by
// paradigm_id + word_idx (see Dictionary.Resolve).
type ParadigmTable []Form

// DecodeParadigms decodes a paradigms.array resource. The input length must
// be a multiple of 4; trailing bytes are rejected, never dropped.
func DecodeParadigms(data []byte) (ParadigmTable, error) {
	if len(data)%formSize != 0 {
		return nil, malformed("paradigm table length %d is not a multiple of %d", len(data), formSize)
	}
	t := make(ParadigmTable, len(data)/formSize)
	for i := range t {
		rec := data[i*formSize : (i+1)*formSize]
		t[i] = Form{
			SuffixID: binary.LittleEndian.Uint16(rec[0:2]),
			TagID:    binary.LittleEndian.Uint16(rec[2:4]),
		}
	}
	return t, nil
}

// Encode returns the binary form of t, byte-for-byte what DecodeParadigms
// accepts.
func (t ParadigmTable) Encode() []byte {
	buf := make([]byte, len(t)*formSize)
	for i, f := range t {
		binary.LittleEndian.PutUint16(buf[i*formSize:], f.SuffixID)
		binary.LittleEndian.PutUint16(buf[i*formSize+2:], f.TagID)
	}
	return buf
}

// Len returns the number of rows.
func (t ParadigmTable) Len() int { return len(t) }

// At returns row i, or false when i is out of range.
func (t ParadigmTable) At(i uint64) (Form, bool) {
	if i >= uint64(len(t)) {
		return Form{}, false
	}
	return t[i], true
}
