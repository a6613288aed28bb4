package morphdict

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), []byte{1, 2, 3, 4}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.bin"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	src := DirSource(dir)

	var got []byte
	require.NoError(t, src.Load("a.bin", func(data []byte) error {
		got = append([]byte(nil), data...)
		return nil
	}))
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	called := false
	require.NoError(t, src.Load("empty.bin", func(data []byte) error {
		called = true
		assert.Empty(t, data)
		return nil
	}))
	assert.True(t, called)

	err := src.Load("missing.bin", func([]byte) error {
		t.Fatal("decode called for a missing file")
		return nil
	})
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = src.Load("sub", func([]byte) error { return nil })
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	boom := errors.New("boom")
	err = src.Load("a.bin", func([]byte) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestFSSource(t *testing.T) {
	src := FSSource{FS: fstest.MapFS{"x.json": {Data: []byte(`[]`)}}}

	var got string
	require.NoError(t, src.Load("x.json", func(data []byte) error {
		got = string(data)
		return nil
	}))
	assert.Equal(t, "[]", got)

	err := src.Load("y.json", func([]byte) error { return nil })
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCatalog(t *testing.T) {
	c := NewCatalog([]string{"", "а"}, []string{"NOUN"})

	s, ok := c.Suffix(1)
	require.True(t, ok)
	assert.Equal(t, "а", s)
	_, ok = c.Suffix(2)
	assert.False(t, ok)

	tag, ok := c.Tag(0)
	require.True(t, ok)
	assert.Equal(t, "NOUN", tag)
	_, ok = c.Tag(1)
	assert.False(t, ok)

	assert.Equal(t, 2, c.NumSuffixes())
	assert.Equal(t, 1, c.NumTags())
}
