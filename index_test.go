package morphdict

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	entries := map[string][]Record{
		"кот":  {{ParadigmID: 0, WordIdx: 0}},
		"кота": {{ParadigmID: 0, WordIdx: 1}, {ParadigmID: 70000, WordIdx: 3}},
		"a":    {},
	}
	idx, err := DecodeIndex(EncodeIndex(entries))
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []Record{{ParadigmID: 0, WordIdx: 1}, {ParadigmID: 70000, WordIdx: 3}}, idx.Lookup("кота"))
	assert.True(t, idx.Contains("a"))
	assert.Empty(t, idx.Lookup("a"))
	assert.False(t, idx.Contains("ко"))
	assert.Nil(t, idx.Lookup("котик"))
}

func TestWriteIndex(t *testing.T) {
	entries := map[string][]Record{"b": {{ParadigmID: 1}}, "a": {{WordIdx: 2}}}
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, entries))
	assert.Equal(t, EncodeIndex(entries), buf.Bytes())
}

func TestEncodeIndexIsSorted(t *testing.T) {
	a := EncodeIndex(map[string][]Record{"b": nil, "a": nil, "c": nil})
	b := EncodeIndex(map[string][]Record{"c": nil, "a": nil, "b": nil})
	assert.Equal(t, a, b)
}

func TestDecodeIndexMalformed(t *testing.T) {
	valid := EncodeIndex(map[string][]Record{"кот": {{ParadigmID: 1, WordIdx: 2}}})

	tests := map[string][]byte{
		"empty":     nil,
		"bad magic": append([]byte("XXXX"), valid[4:]...),
		"truncated": valid[:len(valid)-1],
		"trailing":  append(append([]byte{}, valid...), 0),
		"huge count": append([]byte(indexMagic),
			0xff, 0xff, 0xff, 0xff, 0x0f),
		"unsorted": {'M', 'D', 'W', 'X', 2,
			1, 'b', 0,
			1, 'a', 0},
		"duplicate": {'M', 'D', 'W', 'X', 2,
			1, 'a', 0,
			1, 'a', 0},
		"empty key": {'M', 'D', 'W', 'X', 1, 0, 0, 0},
		"bad utf8":  {'M', 'D', 'W', 'X', 1, 1, 0xff, 0},
	}
	for name, data := range tests {
		_, err := DecodeIndex(data)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrMalformed), "%s: %v", name, err)
	}
}

func TestTrieIndexLookupReturnsCopy(t *testing.T) {
	idx := NewTrieIndex(map[string][]Record{"кот": {{ParadigmID: 1}}})
	got := idx.Lookup("кот")
	got[0].ParadigmID = 42
	assert.Equal(t, []Record{{ParadigmID: 1}}, idx.Lookup("кот"))
}

func TestTrieIndexWalkPrefix(t *testing.T) {
	idx := NewTrieIndex(map[string][]Record{
		"кот":   {{ParadigmID: 1}},
		"кота":  {{ParadigmID: 2}},
		"котом": {{ParadigmID: 3}},
		"пёс":   {{ParadigmID: 4}},
		"":      {{ParadigmID: 5}},
	})
	assert.Equal(t, 4, idx.Len())
	assert.False(t, idx.Contains(""))

	seen := map[string]uint32{}
	idx.WalkPrefix("кот", func(key string, recs []Record) bool {
		seen[key] = recs[0].ParadigmID
		return true
	})
	assert.Equal(t, map[string]uint32{"кот": 1, "кота": 2, "котом": 3}, seen)

	calls := 0
	idx.WalkPrefix("", func(string, []Record) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
