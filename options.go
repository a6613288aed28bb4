package morphdict

import (
	"fmt"
	"log/slog"
)

// Layout names the resources of a dictionary directory.
type Layout struct {
	Manifest  string
	Grammemes string
	Suffixes  string
	Paradigms string
	Words     string
	// PredictionBase and PredictionExt build the name of prediction slot i
	// as PredictionBase + i + PredictionExt.
	PredictionBase string
	PredictionExt  string
}

// DefaultLayout is the resource naming of a compiled dictionary.
var DefaultLayout = Layout{
	Manifest:       "meta.json",
	Grammemes:      "grammemes.json",
	Suffixes:       "suffixes.json",
	Paradigms:      "paradigms.array",
	Words:          "words.idx",
	PredictionBase: "prediction-suffixes-",
	PredictionExt:  ".idx",
}

// PredictionName returns the resource name of prediction slot i.
func (l Layout) PredictionName(i int) string {
	return fmt.Sprintf("%s%d%s", l.PredictionBase, i, l.PredictionExt)
}

type options struct {
	logger        *slog.Logger
	layout        Layout
	gramtabFormat string
	strictVersion bool
	openIndex     IndexOpener
}

func defaultOptions() options {
	return options{
		logger:        slog.New(slog.DiscardHandler),
		layout:        DefaultLayout,
		gramtabFormat: DefaultGramtabFormat,
		openIndex:     OpenTrieIndex,
	}
}

// Option configures Load.
type Option func(*options)

// WithLogger sends load diagnostics to l. Without it they are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLayout overrides the resource names. Empty fields keep their default.
func WithLayout(l Layout) Option {
	return func(o *options) {
		set := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		set(&o.layout.Manifest, l.Manifest)
		set(&o.layout.Grammemes, l.Grammemes)
		set(&o.layout.Suffixes, l.Suffixes)
		set(&o.layout.Paradigms, l.Paradigms)
		set(&o.layout.Words, l.Words)
		set(&o.layout.PredictionBase, l.PredictionBase)
		set(&o.layout.PredictionExt, l.PredictionExt)
	}
}

// WithGramtabFormat selects the gramtab_formats entry to load.
func WithGramtabFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.gramtabFormat = format
		}
	}
}

// WithStrictVersion makes an unknown manifest format_version a load failure
// instead of a warning.
func WithStrictVersion() Option {
	return func(o *options) { o.strictVersion = true }
}

// WithIndexOpener replaces the decoder used for the word and prediction
// index resources.
func WithIndexOpener(open IndexOpener) Option {
	return func(o *options) {
		if open != nil {
			o.openIndex = open
		}
	}
}
