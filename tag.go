package morphdict

import (
	"slices"
	"strings"
)

// UnknownPOS is the part of speech reported for an empty tag.
const UnknownPOS = "UNKN"

// GrammemeSet is an unordered set of grammeme codes.
type GrammemeSet map[string]struct{}

// NewGrammemeSet returns a set holding names.
func NewGrammemeSet(names ...string) GrammemeSet {
	s := make(GrammemeSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether g is in the set.
func (s GrammemeSet) Has(g string) bool {
	_, ok := s[g]
	return ok
}

// HasAll reports whether every one of gs is in the set.
func (s GrammemeSet) HasAll(gs ...string) bool {
	for _, g := range gs {
		if !s.Has(g) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s GrammemeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for g := range s {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// String renders the set as its sorted members joined by commas.
func (s GrammemeSet) String() string {
	return strings.Join(s.Sorted(), ",")
}

// DecomposeTag splits a gramtab tag string into its part of speech and
// grammeme set. Commas and spaces both separate fields; the first field is
// the part of speech and every other non-empty field is a grammeme.
//
//	DecomposeTag("NOUN,anim,masc sing,nomn") // "NOUN", {anim masc nomn sing}
//	DecomposeTag("")                         // "UNKN", {}
//
// A tag with an empty leading field keeps its grammemes under UnknownPOS.
func DecomposeTag(tag string) (string, GrammemeSet) {
	fields := strings.Split(strings.ReplaceAll(tag, " ", ","), ",")
	grammemes := make(GrammemeSet, len(fields)-1)
	for _, f := range fields[1:] {
		if f != "" {
			grammemes[f] = struct{}{}
		}
	}
	pos := fields[0]
	if pos == "" {
		pos = UnknownPOS
	}
	return pos, grammemes
}
