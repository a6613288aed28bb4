package morphdict

import "encoding/json"

// Catalog holds the suffix strings and the tag table (gramtab). Both are
// plain id-indexed lookups.
type Catalog struct {
	suffixes []string
	gramtab  []string
}

// NewCatalog builds a Catalog over the given tables. The slices are not
// copied and must not be modified afterwards.
func NewCatalog(suffixes, gramtab []string) *Catalog {
	return &Catalog{suffixes: suffixes, gramtab: gramtab}
}

// Suffix returns the suffix text for id, or false when id is out of range.
func (c *Catalog) Suffix(id uint16) (string, bool) {
	if int(id) >= len(c.suffixes) {
		return "", false
	}
	return c.suffixes[id], true
}

// Tag returns the raw tag string for id, e.g. "NOUN,anim,masc sing,nomn",
// or false when id is out of range.
func (c *Catalog) Tag(id uint16) (string, bool) {
	if int(id) >= len(c.gramtab) {
		return "", false
	}
	return c.gramtab[id], true
}

// NumSuffixes returns the size of the suffix catalog.
func (c *Catalog) NumSuffixes() int { return len(c.suffixes) }

// NumTags returns the size of the tag table.
func (c *Catalog) NumTags() int { return len(c.gramtab) }

// decodeStrings decodes a JSON array of strings. Anything else, including
// null, is malformed.
func decodeStrings(data []byte) ([]string, error) {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, malformed("%v", err)
	}
	if out == nil {
		return nil, malformed("expected a JSON array of strings")
	}
	return out, nil
}
