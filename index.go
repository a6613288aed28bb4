package morphdict

import (
	"bytes"
	"encoding/binary"
	"io"
	"slices"
	"unicode/utf8"
)

// indexMagic starts every word-index resource.
//
// Layout after the magic, all integers unsigned varints:
//
//	key count
//	per key, ascending and unique:
//	  key length, key bytes (UTF-8)
//	  record count
//	  per record: paradigm_id, word_idx
const indexMagic = "MDWX"

// IndexOpener turns the bytes of a word-index resource into a WordIndex.
// The slice is only valid during the call and must not be retained.
type IndexOpener func(data []byte) (WordIndex, error)

// OpenTrieIndex is the default IndexOpener: it decodes the MDWX layout into
// a TrieIndex.
func OpenTrieIndex(data []byte) (WordIndex, error) {
	idx, err := DecodeIndex(data)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// EncodeIndex serializes entries in the MDWX layout. Empty keys are skipped.
func EncodeIndex(entries map[string][]Record) []byte {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	buf := []byte(indexMagic)
	buf = binary.AppendUvarint(buf, uint64(len(keys)))
	for _, k := range keys {
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		buf = append(buf, k...)
		recs := entries[k]
		buf = binary.AppendUvarint(buf, uint64(len(recs)))
		for _, r := range recs {
			buf = binary.AppendUvarint(buf, uint64(r.ParadigmID))
			buf = binary.AppendUvarint(buf, uint64(r.WordIdx))
		}
	}
	return buf
}

// WriteIndex writes the MDWX encoding of entries to w.
func WriteIndex(w io.Writer, entries map[string][]Record) error {
	_, err := w.Write(EncodeIndex(entries))
	return err
}

type indexReader struct {
	data []byte
	off  int
}

func (r *indexReader) uvarint(what string) (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		return 0, malformed("word index: bad %s at offset %d", what, r.off)
	}
	r.off += n
	return v, nil
}

func (r *indexReader) remaining() int { return len(r.data) - r.off }

// DecodeIndex decodes an MDWX word-index resource.
func DecodeIndex(data []byte) (*TrieIndex, error) {
	if !bytes.HasPrefix(data, []byte(indexMagic)) {
		return nil, malformed("word index: missing %q magic", indexMagic)
	}
	r := &indexReader{data: data, off: len(indexMagic)}

	count, err := r.uvarint("key count")
	if err != nil {
		return nil, err
	}
	// every key takes at least three bytes
	if count > uint64(r.remaining()/3) {
		return nil, malformed("word index: key count %d exceeds resource size", count)
	}

	idx := NewTrieIndex(nil)
	prev := ""
	for i := uint64(0); i < count; i++ {
		klen, err := r.uvarint("key length")
		if err != nil {
			return nil, err
		}
		if klen == 0 || klen > uint64(r.remaining()) {
			return nil, malformed("word index: key %d has bad length %d", i, klen)
		}
		key := string(r.data[r.off : r.off+int(klen)])
		r.off += int(klen)
		if !utf8.ValidString(key) {
			return nil, malformed("word index: key %d is not valid UTF-8", i)
		}
		if i > 0 && key <= prev {
			return nil, malformed("word index: key %q out of order", key)
		}
		prev = key

		n, err := r.uvarint("record count")
		if err != nil {
			return nil, err
		}
		if n > uint64(r.remaining()/2) {
			return nil, malformed("word index: key %q claims %d records", key, n)
		}
		recs := make([]Record, n)
		for j := range recs {
			pid, err := r.uvarint("paradigm id")
			if err != nil {
				return nil, err
			}
			widx, err := r.uvarint("word index")
			if err != nil {
				return nil, err
			}
			if pid > 0xFFFFFFFF || widx > 0xFFFFFFFF {
				return nil, malformed("word index: key %q record %d overflows", key, j)
			}
			recs[j] = Record{ParadigmID: uint32(pid), WordIdx: uint32(widx)}
		}
		idx.insert(key, recs)
	}
	if r.remaining() != 0 {
		return nil, malformed("word index: %d trailing bytes", r.remaining())
	}
	return idx, nil
}
