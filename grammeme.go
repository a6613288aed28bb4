package morphdict

import (
	"encoding/json"
	"slices"
)

// Grammeme describes one morphological feature of the grammeme catalog.
type Grammeme struct {
	// Name is the grammeme code, e.g. "nomn".
	Name string
	// Parent is the category the grammeme belongs to, e.g. "CAse".
	Parent string
	// Alias is the human-readable short name.
	Alias string
	// Description is the long description.
	Description string
}

// decodeGrammemes decodes grammemes.json: an array of records, each an
// array of up to four strings (name, parent, alias, description). A null
// field reads as "".
func decodeGrammemes(data []byte) ([]Grammeme, error) {
	var raw [][]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed("%v", err)
	}
	if raw == nil {
		return nil, malformed("expected a JSON array of grammeme records")
	}
	out := make([]Grammeme, len(raw))
	for i, rec := range raw {
		if len(rec) < 1 || len(rec) > 4 {
			return nil, malformed("grammeme record %d has %d fields", i, len(rec))
		}
		var f [4]string
		for j, v := range rec {
			if v != nil {
				f[j] = *v
			}
		}
		out[i] = Grammeme{Name: f[0], Parent: f[1], Alias: f[2], Description: f[3]}
	}
	return out, nil
}

// Grammemes returns a copy of the grammeme catalog in file order.
func (d *Dictionary) Grammemes() []Grammeme {
	return slices.Clone(d.grammemes)
}

// Grammeme looks up a grammeme by its code.
func (d *Dictionary) Grammeme(name string) (Grammeme, bool) {
	i, ok := d.grammemeIdx[name]
	if !ok {
		return Grammeme{}, false
	}
	return d.grammemes[i], true
}
