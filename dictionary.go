// Package morphdict reads precompiled morphological dictionaries (the
// OpenCorpora/pymorphy2 layout) and resolves word forms into their
// analyses: a suffix, a gramtab tag string, and its decomposition into part
// of speech and grammemes.
//
// A Dictionary is loaded once, atomically, and is read-only afterwards; it
// is safe for concurrent use without locking.
package morphdict

// Dictionary holds every table of a loaded dictionary.
type Dictionary struct {
	manifest *Manifest

	grammemes   []Grammeme
	grammemeIdx map[string]int

	catalog   *Catalog
	paradigms ParadigmTable

	words       WordIndex
	predictions []PredictionSlot
	gaps        []Gap

	maxSuffixLength int
}

// PredictionSlot is an available prediction index and the paradigm prefix
// it serves.
type PredictionSlot struct {
	Slot   int
	Prefix string
	Index  WordIndex
}

// Gap records a prediction slot whose index resource was missing at load.
type Gap struct {
	Slot     int    `json:"slot"`
	Prefix   string `json:"prefix"`
	Resource string `json:"resource"`
}

// Stats summarizes table sizes. Words is -1 when the word index cannot
// report its size.
type Stats struct {
	Words           int `json:"words"`
	Forms           int `json:"forms"`
	Suffixes        int `json:"suffixes"`
	Tags            int `json:"tags"`
	Grammemes       int `json:"grammemes"`
	PredictionSlots int `json:"prediction_slots"`
}

// Manifest returns the dictionary metadata.
func (d *Dictionary) Manifest() *Manifest { return d.manifest }

// Catalog returns the suffix and tag tables.
func (d *Dictionary) Catalog() *Catalog { return d.catalog }

// Paradigms returns the paradigm table. It must not be modified.
func (d *Dictionary) Paradigms() ParadigmTable { return d.paradigms }

// PredictionSlots returns the available prediction indexes in slot order.
func (d *Dictionary) PredictionSlots() []PredictionSlot {
	out := make([]PredictionSlot, len(d.predictions))
	copy(out, d.predictions)
	return out
}

// Gaps returns the prediction slots that were missing on disk.
func (d *Dictionary) Gaps() []Gap {
	out := make([]Gap, len(d.gaps))
	copy(out, d.gaps)
	return out
}

// Stats reports the size of each table.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Words:           indexLen(d.words),
		Forms:           d.paradigms.Len(),
		Suffixes:        d.catalog.NumSuffixes(),
		Tags:            d.catalog.NumTags(),
		Grammemes:       len(d.grammemes),
		PredictionSlots: len(d.predictions),
	}
}

func indexLen(idx WordIndex) int {
	if l, ok := idx.(interface{ Len() int }); ok {
		return l.Len()
	}
	return -1
}
