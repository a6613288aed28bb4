// Package cli implements the morphdict command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/morphdict"
)

type rootOptions struct {
	dict          string
	gramtabFormat string
	strict        bool
	logLevel      string
}

// NewRootCommand builds the morphdict command tree.
func NewRootCommand() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "morphdict",
		Short:         "Query and build compiled morphological dictionaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&ro.dict, "dict", os.Getenv("DICT_PATH"), "dictionary directory (default $DICT_PATH)")
	pf.StringVar(&ro.gramtabFormat, "gramtab-format", morphdict.DefaultGramtabFormat, "gramtab_formats entry to load")
	pf.BoolVar(&ro.strict, "strict", false, "reject unknown format versions")
	pf.StringVar(&ro.logLevel, "log-level", "warn", "diagnostics level: debug, info, warn, error")

	cmd.AddCommand(
		newParseCommand(ro),
		newPredictCommand(ro),
		newTagCommand(),
		newInfoCommand(ro),
		newIndexCommand(),
	)
	return cmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (ro *rootOptions) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ro.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func (ro *rootOptions) open(cmd *cobra.Command) (*morphdict.Dictionary, error) {
	if ro.dict == "" {
		return nil, fmt.Errorf("no dictionary: pass --dict or set DICT_PATH")
	}
	logger, err := ro.logger(cmd)
	if err != nil {
		return nil, err
	}
	opts := []morphdict.Option{
		morphdict.WithLogger(logger),
		morphdict.WithGramtabFormat(ro.gramtabFormat),
	}
	if ro.strict {
		opts = append(opts, morphdict.WithStrictVersion())
	}
	return morphdict.Open(ro.dict, opts...)
}
