package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/morphdict"
)

func newParseCommand(ro *rootOptions) *cobra.Command {
	var noPredict bool
	cmd := &cobra.Command{
		Use:   "parse WORD...",
		Short: "Print every reading of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ro.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, word := range args {
				n := 0
				for _, a := range d.Analyze(word) {
					if noPredict && a.Predicted {
						continue
					}
					writeAnalysis(out, a)
					n++
				}
				if n == 0 {
					fmt.Fprintf(out, "%s\t-\n", word)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noPredict, "no-predict", false, "skip prediction for unknown words")
	return cmd
}

func writeAnalysis(w io.Writer, a morphdict.Analysis) {
	fmt.Fprintf(w, "%s\t%d:%d\t%s\t%s", a.Word, a.ParadigmID, a.WordIdx, a.Suffix, a.Tag)
	if a.Predicted {
		fmt.Fprintf(w, "\tpredicted prefix=%q ending=%q", a.Prefix, a.Ending)
	}
	fmt.Fprintln(w)
}

func newPredictCommand(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "predict WORD...",
		Short: "Print prediction index hits for each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ro.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, word := range args {
				ps := d.Predict(word)
				if len(ps) == 0 {
					fmt.Fprintf(out, "%s\t-\n", word)
					continue
				}
				for _, p := range ps {
					fmt.Fprintf(out, "%s\tslot=%d\tprefix=%q\tending=%q\t%d:%d\n",
						word, p.Slot, p.Prefix, p.Ending, p.ParadigmID, p.WordIdx)
				}
			}
			return nil
		},
	}
}

func newTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag TAG...",
		Short: "Split gramtab tags into part of speech and grammemes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range args {
				pos, gs := morphdict.DecomposeTag(tag)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pos, strings.Join(gs.Sorted(), ","))
			}
			return nil
		},
	}
}

func newInfoCommand(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dictionary metadata and table sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := ro.open(cmd)
			if err != nil {
				return err
			}
			m := d.Manifest()
			s := d.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "format_version\t%s\n", m.FormatVersion())
			fmt.Fprintf(out, "known_version\t%t\n", m.KnownVersion())
			fmt.Fprintf(out, "paradigm_prefixes\t%q\n", m.ParadigmPrefixes())
			fmt.Fprintf(out, "max_suffix_length\t%d\n", m.MaxSuffixLength())
			fmt.Fprintf(out, "words\t%d\n", s.Words)
			fmt.Fprintf(out, "forms\t%d\n", s.Forms)
			fmt.Fprintf(out, "suffixes\t%d\n", s.Suffixes)
			fmt.Fprintf(out, "tags\t%d\n", s.Tags)
			fmt.Fprintf(out, "grammemes\t%d\n", s.Grammemes)
			fmt.Fprintf(out, "prediction_slots\t%d\n", s.PredictionSlots)
			for _, g := range d.Gaps() {
				fmt.Fprintf(out, "gap\tslot=%d\tprefix=%q\t%s\n", g.Slot, g.Prefix, g.Resource)
			}
			return nil
		},
	}
}
