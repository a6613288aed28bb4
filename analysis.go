package morphdict

// Parse is a resolved form: the inflectional suffix and the raw gramtab tag
// string.
type Parse struct {
	Suffix string
	Tag    string
}

// Prediction is a record found for an unknown word through one prediction
// slot.
type Prediction struct {
	// Slot is the prediction slot index (position in paradigm_prefixes).
	Slot int
	// Prefix is the paradigm prefix of the slot that was stripped from the
	// word.
	Prefix string
	// Ending is the word ending the record was found under.
	Ending string
	Record
}

// Analysis is one fully resolved and decomposed reading of a word.
type Analysis struct {
	Word string
	Record
	Suffix    string
	Tag       string
	POS       string
	Grammemes GrammemeSet
	// Predicted marks analyses guessed from a prediction index. Prefix and
	// Ending are only set for those.
	Predicted bool
	Prefix    string
	Ending    string
}
