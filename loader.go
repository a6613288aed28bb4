package morphdict

import (
	"fmt"
	"log/slog"
)

// Open loads the dictionary stored in directory dir.
func Open(dir string, opts ...Option) (*Dictionary, error) {
	return Load(DirSource(dir), opts...)
}

// Load reads every table of a dictionary from src. It either returns a
// fully loaded Dictionary or an error (a *LoadError) and no Dictionary.
//
// Missing prediction indexes are not fatal: they are logged and reported
// by Dictionary.Gaps.
func Load(src Source, opts ...Option) (*Dictionary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &loader{src: src, opts: o, log: o.logger}
	d := &Dictionary{}

	if err := l.loadManifest(d); err != nil {
		return nil, err
	}
	if err := l.loadGrammemes(d); err != nil {
		return nil, err
	}
	if err := l.loadCatalog(d); err != nil {
		return nil, err
	}
	if err := l.loadParadigms(d); err != nil {
		return nil, err
	}
	if err := l.loadWords(d); err != nil {
		return nil, err
	}
	if err := l.loadPredictions(d); err != nil {
		return nil, err
	}

	st := d.Stats()
	l.log.Info("dictionary loaded",
		slog.String("format_version", d.manifest.FormatVersion()),
		slog.Int("words", st.Words),
		slog.Int("forms", st.Forms),
		slog.Int("suffixes", st.Suffixes),
		slog.Int("tags", st.Tags),
		slog.Int("prediction_slots", st.PredictionSlots),
		slog.Int("prediction_gaps", len(d.gaps)),
	)
	return d, nil
}

type loader struct {
	src  Source
	opts options
	log  *slog.Logger
}

// read loads resource name through decode and wraps any failure in a
// *LoadError.
func (l *loader) read(name string, decode func(data []byte) error) error {
	err := l.src.Load(name, decode)
	switch {
	case err == nil:
		return nil
	case isNotExist(err):
		return &LoadError{Resource: name, Err: fmt.Errorf("%w: %w", ErrResourceMissing, err)}
	default:
		return &LoadError{Resource: name, Err: err}
	}
}

func (l *loader) loadManifest(d *Dictionary) error {
	name := l.opts.layout.Manifest
	err := l.read(name, func(data []byte) error {
		m, err := ParseManifest(data)
		if err != nil {
			return err
		}
		if err := m.validate(); err != nil {
			return err
		}
		d.manifest = m
		return nil
	})
	if err != nil {
		return err
	}

	if v := d.manifest.FormatVersion(); !d.manifest.KnownVersion() {
		if l.opts.strictVersion {
			return &LoadError{Resource: name, Err: fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)}
		}
		l.log.Warn("unrecognized dictionary format version",
			slog.String("format_version", v),
			slog.Any("supported", knownFormatVersions),
		)
	}
	d.maxSuffixLength = d.manifest.MaxSuffixLength()
	l.log.Debug("manifest loaded", slog.String("resource", name), slog.Int("keys", len(d.manifest.keys)))
	return nil
}

func (l *loader) loadGrammemes(d *Dictionary) error {
	name := l.opts.layout.Grammemes
	err := l.read(name, func(data []byte) error {
		gs, err := decodeGrammemes(data)
		if err != nil {
			return err
		}
		d.grammemes = gs
		return nil
	})
	if err != nil {
		return err
	}
	d.grammemeIdx = make(map[string]int, len(d.grammemes))
	for i, g := range d.grammemes {
		if _, dup := d.grammemeIdx[g.Name]; !dup {
			d.grammemeIdx[g.Name] = i
		}
	}
	l.log.Debug("grammemes loaded", slog.String("resource", name), slog.Int("count", len(d.grammemes)))
	return nil
}

func (l *loader) loadCatalog(d *Dictionary) error {
	var suffixes, gramtab []string

	sufName := l.opts.layout.Suffixes
	err := l.read(sufName, func(data []byte) (err error) {
		suffixes, err = decodeStrings(data)
		return err
	})
	if err != nil {
		return err
	}
	l.log.Debug("suffixes loaded", slog.String("resource", sufName), slog.Int("count", len(suffixes)))

	tabName := d.manifest.GramtabFile(l.opts.gramtabFormat)
	err = l.read(tabName, func(data []byte) (err error) {
		gramtab, err = decodeStrings(data)
		return err
	})
	if err != nil {
		return err
	}
	l.log.Debug("gramtab loaded",
		slog.String("resource", tabName),
		slog.String("format", l.opts.gramtabFormat),
		slog.Int("count", len(gramtab)),
	)

	d.catalog = NewCatalog(suffixes, gramtab)
	return nil
}

func (l *loader) loadParadigms(d *Dictionary) error {
	name := l.opts.layout.Paradigms
	err := l.read(name, func(data []byte) (err error) {
		d.paradigms, err = DecodeParadigms(data)
		return err
	})
	if err != nil {
		return err
	}
	l.log.Debug("paradigm table loaded", slog.String("resource", name), slog.Int("forms", d.paradigms.Len()))
	return nil
}

func (l *loader) openIndex(name string) (WordIndex, error) {
	var idx WordIndex
	err := l.read(name, func(data []byte) (err error) {
		idx, err = l.opts.openIndex(data)
		if err == nil && idx == nil {
			err = malformed("index opener returned no index")
		}
		return err
	})
	return idx, err
}

func (l *loader) loadWords(d *Dictionary) error {
	name := l.opts.layout.Words
	idx, err := l.openIndex(name)
	if err != nil {
		return err
	}
	d.words = idx
	l.log.Debug("word index loaded", slog.String("resource", name), slog.Int("words", indexLen(idx)))
	return nil
}

// loadPredictions opens one index per paradigm prefix. A missing index
// leaves a gap; a present but undecodable one fails the load.
func (l *loader) loadPredictions(d *Dictionary) error {
	for i, prefix := range d.manifest.ParadigmPrefixes() {
		name := l.opts.layout.PredictionName(i)
		idx, err := l.openIndex(name)
		if err != nil {
			if isNotExist(err) {
				l.log.Warn("prediction index not found",
					slog.String("resource", name),
					slog.Int("slot", i),
					slog.String("prefix", prefix),
				)
				d.gaps = append(d.gaps, Gap{Slot: i, Prefix: prefix, Resource: name})
				continue
			}
			return err
		}
		d.predictions = append(d.predictions, PredictionSlot{Slot: i, Prefix: prefix, Index: idx})
	}
	l.log.Debug("prediction indexes loaded", slog.Int("available", len(d.predictions)), slog.Int("missing", len(d.gaps)))
	return nil
}
