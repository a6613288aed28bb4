package morphdict

import (
	"errors"
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Record is one candidate analysis returned by a word index: the paradigm
// start row and the offset of the form within it.
type Record struct {
	ParadigmID uint32 `json:"paradigm_id"`
	WordIdx    uint32 `json:"word_idx"`
}

// WordIndex maps a word (or word ending, for prediction indexes) to its
// records.
type WordIndex interface {
	// Lookup returns the records stored for key in index order, or nil.
	Lookup(key string) []Record
	// Contains reports whether key is present.
	Contains(key string) bool
}

// PrefixWalker is implemented by indexes that can enumerate the keys
// starting with a prefix.
type PrefixWalker interface {
	// WalkPrefix calls fn for every key starting with prefix until fn
	// returns false. Visiting order is unspecified.
	WalkPrefix(prefix string, fn func(key string, recs []Record) bool)
}

// TrieIndex is a WordIndex held in a patricia trie. It is read-only once
// built and safe for concurrent use.
type TrieIndex struct {
	trie *patricia.Trie
	n    int
}

// NewTrieIndex builds a TrieIndex from entries. Empty keys are ignored.
func NewTrieIndex(entries map[string][]Record) *TrieIndex {
	idx := &TrieIndex{trie: patricia.NewTrie()}
	for key, recs := range entries {
		idx.insert(key, slices.Clone(recs))
	}
	return idx
}

func (t *TrieIndex) insert(key string, recs []Record) {
	if key == "" {
		return
	}
	if t.trie.Insert(patricia.Prefix(key), recs) {
		t.n++
	}
}

// Lookup implements WordIndex.
func (t *TrieIndex) Lookup(key string) []Record {
	if key == "" {
		return nil
	}
	item := t.trie.Get(patricia.Prefix(key))
	if item == nil {
		return nil
	}
	return slices.Clone(item.([]Record))
}

// Contains implements WordIndex.
func (t *TrieIndex) Contains(key string) bool {
	return key != "" && t.trie.Get(patricia.Prefix(key)) != nil
}

// Len returns the number of keys.
func (t *TrieIndex) Len() int { return t.n }

var errStopWalk = errors.New("stop walk")

// WalkPrefix implements PrefixWalker.
func (t *TrieIndex) WalkPrefix(prefix string, fn func(key string, recs []Record) bool) {
	_ = t.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		recs, ok := item.([]Record)
		if !ok {
			return nil
		}
		if !fn(string(p), slices.Clone(recs)) {
			return errStopWalk
		}
		return nil
	})
}
