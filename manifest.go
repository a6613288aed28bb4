package morphdict

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Manifest keys and defaults.
const (
	keyFormatVersion  = "format_version"
	keyGramtabFormats = "gramtab_formats"
	keyCompileOptions = "compile_options"

	DefaultGramtabFormat   = "opencorpora-int"
	DefaultMaxSuffixLength = 5
)

// knownFormatVersions lists the manifest versions whose binary layout this
// package decodes.
var knownFormatVersions = []string{"2.4"}

// Manifest is the ordered key/value metadata of a compiled dictionary
// (meta.json). Values are kept as raw JSON.
type Manifest struct {
	keys   []string
	values map[string]json.RawMessage
}

type compileOptions struct {
	ParadigmPrefixes *[]string `json:"paradigm_prefixes"`
	MaxSuffixLength  *int      `json:"max_suffix_length"`
}

// ParseManifest decodes meta.json. Both the list-of-pairs shape written by
// the dictionary compiler and a plain JSON object are accepted; key order is
// preserved and a repeated key keeps its first position and last value.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{values: make(map[string]json.RawMessage)}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, malformed("empty manifest")
	}

	switch trimmed[0] {
	case '[':
		var pairs [][]json.RawMessage
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return nil, malformed("manifest: %v", err)
		}
		for i, p := range pairs {
			if len(p) != 2 {
				return nil, malformed("manifest entry %d has %d elements, want 2", i, len(p))
			}
			var key string
			if err := json.Unmarshal(p[0], &key); err != nil {
				return nil, malformed("manifest entry %d: key is not a string", i)
			}
			m.set(key, p[1])
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return nil, malformed("manifest: %v", err)
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, malformed("manifest: %v", err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, malformed("manifest: unexpected token %v", tok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, malformed("manifest %q: %v", key, err)
			}
			m.set(key, raw)
		}
		if _, err := dec.Token(); err != nil {
			return nil, malformed("manifest: %v", err)
		}
	default:
		return nil, malformed("manifest must be a JSON array of pairs or an object")
	}
	return m, nil
}

func (m *Manifest) set(key string, v json.RawMessage) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Keys returns the manifest keys in file order.
func (m *Manifest) Keys() []string { return slices.Clone(m.keys) }

// Get returns the raw JSON value stored under key.
func (m *Manifest) Get(key string) (json.RawMessage, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Decode unmarshals the value stored under key into v. It reports false
// when the key is absent.
func (m *Manifest) Decode(key string, v any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, malformed("manifest %q: %v", key, err)
	}
	return true, nil
}

// FormatVersion returns format_version as a string. Numeric versions are
// rendered as written in the file.
func (m *Manifest) FormatVersion() string {
	raw, ok := m.values[keyFormatVersion]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// KnownVersion reports whether FormatVersion names a supported layout.
func (m *Manifest) KnownVersion() bool {
	return slices.Contains(knownFormatVersions, m.FormatVersion())
}

// GramtabFile returns the tag-table resource name for format, falling back
// to "gramtab-<format>.json" when gramtab_formats does not list it.
func (m *Manifest) GramtabFile(format string) string {
	var formats map[string]string
	if ok, err := m.Decode(keyGramtabFormats, &formats); ok && err == nil {
		if name := formats[format]; name != "" {
			return name
		}
	}
	return "gramtab-" + format + ".json"
}

func (m *Manifest) compileOptions() compileOptions {
	var opts compileOptions
	_, _ = m.Decode(keyCompileOptions, &opts)
	return opts
}

// ParadigmPrefixes returns compile_options.paradigm_prefixes; its length is
// the number of prediction slots. Defaults to a single empty prefix.
func (m *Manifest) ParadigmPrefixes() []string {
	opts := m.compileOptions()
	if opts.ParadigmPrefixes == nil {
		return []string{""}
	}
	return slices.Clone(*opts.ParadigmPrefixes)
}

// MaxSuffixLength returns compile_options.max_suffix_length, the longest
// word ending (in runes) tried by prediction.
func (m *Manifest) MaxSuffixLength() int {
	opts := m.compileOptions()
	if opts.MaxSuffixLength == nil || *opts.MaxSuffixLength <= 0 {
		return DefaultMaxSuffixLength
	}
	return *opts.MaxSuffixLength
}

// validate checks that the structured values Load relies on decode.
func (m *Manifest) validate() error {
	var opts compileOptions
	if _, err := m.Decode(keyCompileOptions, &opts); err != nil {
		return err
	}
	var formats map[string]string
	if _, err := m.Decode(keyGramtabFormats, &formats); err != nil {
		return err
	}
	return nil
}
