// Package rest exposes a loaded dictionary as a JSON REST API.
package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cours-de-latin/morphdict"
)

// Dictionary is the read-only query surface the handlers need.
// *morphdict.Dictionary implements it.
type Dictionary interface {
	Analyze(word string) []morphdict.Analysis
	Predict(word string) []morphdict.Prediction
	ParsesOf(word string) []morphdict.Record
	IsKnown(word string) bool
	Resolve(paradigmID, wordIdx uint32) (morphdict.Parse, bool)
	Complete(prefix string, limit int) []string
	Manifest() *morphdict.Manifest
	Grammemes() []morphdict.Grammeme
	Stats() morphdict.Stats
	Gaps() []morphdict.Gap
}

// Options tunes the handler.
type Options struct {
	// CompleteLimit is the default and maximum number of completions.
	CompleteLimit int
	// Version is reported by /health.
	Version string
	Logger  *slog.Logger
}

// Handler serves the dictionary endpoints.
type Handler struct {
	dict   Dictionary
	opts   Options
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewHandler builds the routing table over dict.
func NewHandler(dict Dictionary, opts Options) *Handler {
	if opts.CompleteLimit <= 0 {
		opts.CompleteLimit = 50
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{dict: dict, opts: opts, logger: logger, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/parse", h.get(h.handleParse))
	h.mux.HandleFunc("/api/known", h.get(h.handleKnown))
	h.mux.HandleFunc("/api/resolve", h.get(h.handleResolve))
	h.mux.HandleFunc("/api/tag", h.get(h.handleTag))
	h.mux.HandleFunc("/api/predict", h.get(h.handlePredict))
	h.mux.HandleFunc("/api/complete", h.get(h.handleComplete))
	h.mux.HandleFunc("/api/info", h.get(h.handleInfo))
	h.mux.HandleFunc("/api/grammemes", h.get(h.handleGrammemes))
	h.mux.HandleFunc("/health", h.get(h.handleHealth))
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// ---- helpers ------------------------------------------------------------

func (h *Handler) get(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			h.writeError(w, r, http.StatusMethodNotAllowed, "GET required")
			return
		}
		fn(w, r)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "encode response", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

func (h *Handler) requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		h.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("missing '%s' query parameter", name))
		return "", false
	}
	return v, true
}

func (h *Handler) uint32Param(w http.ResponseWriter, r *http.Request, name string) (uint32, bool) {
	s, ok := h.requireParam(w, r, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("'%s' must be an unsigned 32-bit integer", name))
		return 0, false
	}
	return uint32(v), true
}

// ---- handlers -----------------------------------------------------------

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	word, ok := h.requireParam(w, r, "word")
	if !ok {
		return
	}
	predict := true
	if s := r.URL.Query().Get("predict"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "'predict' must be a boolean")
			return
		}
		predict = v
	}

	analyses := h.dict.Analyze(word)
	if !predict {
		exact := analyses[:0]
		for _, a := range analyses {
			if !a.Predicted {
				exact = append(exact, a)
			}
		}
		analyses = exact
	}

	status := http.StatusOK
	if len(analyses) == 0 {
		status = http.StatusNotFound
	}
	h.writeJSON(w, r, status, parseResponse{
		Word:     word,
		Known:    h.dict.IsKnown(word),
		Analyses: toAnalysesJSON(analyses),
	})
}

func (h *Handler) handleKnown(w http.ResponseWriter, r *http.Request) {
	word, ok := h.requireParam(w, r, "word")
	if !ok {
		return
	}
	records := h.dict.ParsesOf(word)
	if records == nil {
		records = []morphdict.Record{}
	}
	h.writeJSON(w, r, http.StatusOK, knownResponse{
		Word:    word,
		Known:   h.dict.IsKnown(word),
		Records: records,
	})
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	pid, ok := h.uint32Param(w, r, "paradigm_id")
	if !ok {
		return
	}
	widx, ok := h.uint32Param(w, r, "word_idx")
	if !ok {
		return
	}
	p, ok := h.dict.Resolve(pid, widx)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, fmt.Sprintf("record (%d, %d) does not resolve", pid, widx))
		return
	}
	pos, gs := morphdict.DecomposeTag(p.Tag)
	h.writeJSON(w, r, http.StatusOK, resolveResponse{
		ParadigmID: pid,
		WordIdx:    widx,
		Suffix:     p.Suffix,
		Tag:        p.Tag,
		POS:        pos,
		Grammemes:  gs.Sorted(),
	})
}

func (h *Handler) handleTag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("tag") {
		h.writeError(w, r, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	tag := q.Get("tag")
	pos, gs := morphdict.DecomposeTag(tag)
	h.writeJSON(w, r, http.StatusOK, tagResponse{Tag: tag, POS: pos, Grammemes: gs.Sorted()})
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	word, ok := h.requireParam(w, r, "word")
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, predictResponse{
		Word:        word,
		Predictions: toPredictionsJSON(h.dict.Predict(word)),
	})
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	prefix, ok := h.requireParam(w, r, "prefix")
	if !ok {
		return
	}
	limit := h.opts.CompleteLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			h.writeError(w, r, http.StatusBadRequest, "'limit' must be a positive integer")
			return
		}
		limit = min(v, h.opts.CompleteLimit)
	}
	words := h.dict.Complete(prefix, limit)
	if words == nil {
		words = []string{}
	}
	h.writeJSON(w, r, http.StatusOK, completeResponse{Prefix: prefix, Words: words})
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	m := h.dict.Manifest()
	var lang string
	if _, err := m.Decode("language_code", &lang); err != nil {
		h.logger.WarnContext(r.Context(), "language_code is not a string", slog.String("error", err.Error()))
	}
	gaps := h.dict.Gaps()
	if gaps == nil {
		gaps = []morphdict.Gap{}
	}
	h.writeJSON(w, r, http.StatusOK, infoResponse{
		FormatVersion:    m.FormatVersion(),
		KnownVersion:     m.KnownVersion(),
		LanguageCode:     lang,
		ParadigmPrefixes: m.ParadigmPrefixes(),
		MaxSuffixLength:  m.MaxSuffixLength(),
		Stats:            h.dict.Stats(),
		Gaps:             gaps,
	})
}

func (h *Handler) handleGrammemes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, grammemesResponse{Grammemes: toGrammemesJSON(h.dict.Grammemes())})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Version: h.opts.Version})
}
