package morphdict

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testMeta = `[
	["format_version", "2.4"],
	["language_code", "ru"],
	["gramtab_formats", {"opencorpora-int": "gramtab-opencorpora-int.json"}],
	["compile_options", {"paradigm_prefixes": ["", "по", "наи"], "max_suffix_length": 5}]
]`

const testGrammemes = `[
	["POST", "", "ЧР", "часть речи"],
	["NOUN", "POST", "СУЩ", "имя существительное"],
	["VERB", "POST", "ГЛ", "глагол (личная форма)"],
	["anim", "ANim", "од", "одушевлённое"],
	["nomn", "CAse", "им", null]
]`

// fixture describes a small dictionary. Its zero value is not usable; start
// from newFixture.
type fixture struct {
	files       map[string][]byte
	predictions map[int]map[string][]Record
}

func newFixture() *fixture {
	f := &fixture{files: map[string][]byte{}}
	f.files["meta.json"] = []byte(testMeta)
	f.files["grammemes.json"] = []byte(testGrammemes)
	f.setJSON("suffixes.json", []string{"", "а", "у", "ом", "е"})
	f.setJSON("gramtab-opencorpora-int.json", []string{
		"NOUN,anim,masc sing,nomn",
		"NOUN,anim,masc sing,gent",
		"NOUN,anim,masc sing,datv",
		"NOUN,anim,masc sing,ablt",
		"NOUN,anim,masc sing,loct",
		"VERB,impf,intr sing,3per,pres,indc",
	})
	f.files["paradigms.array"] = ParadigmTable{
		{SuffixID: 0, TagID: 0},
		{SuffixID: 1, TagID: 1},
		{SuffixID: 2, TagID: 2},
		{SuffixID: 3, TagID: 3},
		{SuffixID: 4, TagID: 4},
		{SuffixID: 0, TagID: 5},
		{SuffixID: 99, TagID: 0}, // suffix out of range
		{SuffixID: 0, TagID: 99}, // tag out of range
	}.Encode()
	f.files["words.idx"] = EncodeIndex(map[string][]Record{
		"кот":   {{ParadigmID: 0, WordIdx: 0}},
		"кота":  {{ParadigmID: 0, WordIdx: 1}},
		"коту":  {{ParadigmID: 0, WordIdx: 2}},
		"котом": {{ParadigmID: 0, WordIdx: 3}},
		"коте":  {{ParadigmID: 0, WordIdx: 4}},
		"спит":  {{ParadigmID: 5, WordIdx: 0}},
		"брак":  {{ParadigmID: 6, WordIdx: 0}},
		"мрак":  {{ParadigmID: 7, WordIdx: 0}},
		"ничто": {{ParadigmID: 100, WordIdx: 0}},
		"три":   {{ParadigmID: 5, WordIdx: 0}, {ParadigmID: 0, WordIdx: 0}, {ParadigmID: 6, WordIdx: 0}},
	})
	f.predictions = map[int]map[string][]Record{
		0: {
			"от":  {{ParadigmID: 0, WordIdx: 0}},
			"ота": {{ParadigmID: 0, WordIdx: 1}},
			"ит":  {{ParadigmID: 5, WordIdx: 0}},
		},
		1: {
			"ит": {{ParadigmID: 5, WordIdx: 0}},
		},
	}
	return f
}

func (f *fixture) setJSON(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	f.files[name] = data
}

func (f *fixture) all() map[string][]byte {
	out := make(map[string][]byte, len(f.files)+len(f.predictions))
	for name, data := range f.files {
		out[name] = data
	}
	for slot, entries := range f.predictions {
		out[DefaultLayout.PredictionName(slot)] = EncodeIndex(entries)
	}
	return out
}

func (f *fixture) source() Source {
	fsys := fstest.MapFS{}
	for name, data := range f.all() {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return FSSource{FS: fsys}
}

func (f *fixture) writeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range f.all() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func (f *fixture) load(t *testing.T, opts ...Option) *Dictionary {
	t.Helper()
	d, err := Load(f.source(), opts...)
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}
