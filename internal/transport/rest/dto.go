package rest

import (
	"github.com/cours-de-latin/morphdict"
)

type analysisJSON struct {
	ParadigmID uint32   `json:"paradigm_id"`
	WordIdx    uint32   `json:"word_idx"`
	Suffix     string   `json:"suffix"`
	Tag        string   `json:"tag"`
	POS        string   `json:"pos"`
	Grammemes  []string `json:"grammemes"`
	Predicted  bool     `json:"predicted,omitempty"`
	Prefix     string   `json:"prefix,omitempty"`
	Ending     string   `json:"ending,omitempty"`
}

type parseResponse struct {
	Word     string         `json:"word"`
	Known    bool           `json:"known"`
	Analyses []analysisJSON `json:"analyses"`
}

type knownResponse struct {
	Word    string             `json:"word"`
	Known   bool               `json:"known"`
	Records []morphdict.Record `json:"records"`
}

type resolveResponse struct {
	ParadigmID uint32   `json:"paradigm_id"`
	WordIdx    uint32   `json:"word_idx"`
	Suffix     string   `json:"suffix"`
	Tag        string   `json:"tag"`
	POS        string   `json:"pos"`
	Grammemes  []string `json:"grammemes"`
}

type tagResponse struct {
	Tag       string   `json:"tag"`
	POS       string   `json:"pos"`
	Grammemes []string `json:"grammemes"`
}

type predictionJSON struct {
	Slot       int    `json:"slot"`
	Prefix     string `json:"prefix"`
	Ending     string `json:"ending"`
	ParadigmID uint32 `json:"paradigm_id"`
	WordIdx    uint32 `json:"word_idx"`
}

type predictResponse struct {
	Word        string           `json:"word"`
	Predictions []predictionJSON `json:"predictions"`
}

type completeResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

type infoResponse struct {
	FormatVersion    string          `json:"format_version"`
	KnownVersion     bool            `json:"known_version"`
	LanguageCode     string          `json:"language_code,omitempty"`
	ParadigmPrefixes []string        `json:"paradigm_prefixes"`
	MaxSuffixLength  int             `json:"max_suffix_length"`
	Stats            morphdict.Stats `json:"stats"`
	Gaps             []morphdict.Gap `json:"gaps"`
}

type grammemeJSON struct {
	Name        string `json:"name"`
	Parent      string `json:"parent"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
}

type grammemesResponse struct {
	Grammemes []grammemeJSON `json:"grammemes"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAnalysesJSON(as []morphdict.Analysis) []analysisJSON {
	out := make([]analysisJSON, 0, len(as))
	for _, a := range as {
		out = append(out, analysisJSON{
			ParadigmID: a.ParadigmID,
			WordIdx:    a.WordIdx,
			Suffix:     a.Suffix,
			Tag:        a.Tag,
			POS:        a.POS,
			Grammemes:  a.Grammemes.Sorted(),
			Predicted:  a.Predicted,
			Prefix:     a.Prefix,
			Ending:     a.Ending,
		})
	}
	return out
}

func toPredictionsJSON(ps []morphdict.Prediction) []predictionJSON {
	out := make([]predictionJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, predictionJSON{
			Slot:       p.Slot,
			Prefix:     p.Prefix,
			Ending:     p.Ending,
			ParadigmID: p.ParadigmID,
			WordIdx:    p.WordIdx,
		})
	}
	return out
}

func toGrammemesJSON(gs []morphdict.Grammeme) []grammemeJSON {
	out := make([]grammemeJSON, 0, len(gs))
	for _, g := range gs {
		out = append(out, grammemeJSON(g))
	}
	return out
}
