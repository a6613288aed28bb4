package morphdict

import (
	"slices"
	"strings"
)

// ParsesOf returns the word index records of word in index order. An
// unknown word yields an empty result.
func (d *Dictionary) ParsesOf(word string) []Record {
	return d.words.Lookup(word)
}

// IsKnown reports whether word is in the word index.
func (d *Dictionary) IsKnown(word string) bool {
	return d.words.Contains(word)
}

// Resolve returns the suffix and tag of paradigm table row
// paradigmID+wordIdx. It reports false when the row, its suffix id or its
// tag id is out of range, checked in that order.
func (d *Dictionary) Resolve(paradigmID, wordIdx uint32) (Parse, bool) {
	form, ok := d.paradigms.At(uint64(paradigmID) + uint64(wordIdx))
	if !ok {
		return Parse{}, false
	}
	suffix, ok := d.catalog.Suffix(form.SuffixID)
	if !ok {
		return Parse{}, false
	}
	tag, ok := d.catalog.Tag(form.TagID)
	if !ok {
		return Parse{}, false
	}
	return Parse{Suffix: suffix, Tag: tag}, true
}

// Predict guesses records for a word through every available prediction
// slot. For a slot with prefix P the word must start with P; endings of the
// remainder are tried from the longest (bounded by the manifest's
// max_suffix_length) down to one rune, and the first ending found wins.
func (d *Dictionary) Predict(word string) []Prediction {
	var out []Prediction
	for _, slot := range d.predictions {
		rest, ok := strings.CutPrefix(word, slot.Prefix)
		if !ok || rest == "" {
			continue
		}
		runes := []rune(rest)
		for n := min(d.maxSuffixLength, len(runes)); n > 0; n-- {
			ending := string(runes[len(runes)-n:])
			recs := slot.Index.Lookup(ending)
			if len(recs) == 0 {
				continue
			}
			for _, r := range recs {
				out = append(out, Prediction{Slot: slot.Slot, Prefix: slot.Prefix, Ending: ending, Record: r})
			}
			break
		}
	}
	return out
}

// Analyze resolves every record of word into an Analysis. Records that do
// not resolve are skipped. When the word is unknown, or none of its records
// resolve, the prediction indexes are consulted.
func (d *Dictionary) Analyze(word string) []Analysis {
	var out []Analysis
	for _, r := range d.ParsesOf(word) {
		if a, ok := d.analysis(word, r); ok {
			out = append(out, a)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, p := range d.Predict(word) {
		a, ok := d.analysis(word, p.Record)
		if !ok {
			continue
		}
		a.Predicted = true
		a.Prefix = p.Prefix
		a.Ending = p.Ending
		out = append(out, a)
	}
	return out
}

func (d *Dictionary) analysis(word string, r Record) (Analysis, bool) {
	p, ok := d.Resolve(r.ParadigmID, r.WordIdx)
	if !ok {
		return Analysis{}, false
	}
	pos, gs := DecomposeTag(p.Tag)
	return Analysis{
		Word:      word,
		Record:    r,
		Suffix:    p.Suffix,
		Tag:       p.Tag,
		POS:       pos,
		Grammemes: gs,
	}, true
}

// Complete returns up to limit known words starting with prefix, sorted.
// A limit <= 0 means no limit. It returns nil when the word index cannot
// enumerate prefixes.
func (d *Dictionary) Complete(prefix string, limit int) []string {
	w, ok := d.words.(PrefixWalker)
	if !ok {
		return nil
	}
	var out []string
	w.WalkPrefix(prefix, func(key string, _ []Record) bool {
		out = append(out, key)
		return true
	})
	slices.Sort(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
