package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/morphdict"
)

func newIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Word index tools",
	}
	cmd.AddCommand(newIndexBuildCommand())
	return cmd
}

func newIndexBuildCommand() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a word index from word<TAB>paradigm_id<TAB>word_idx lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := cmd.InOrStdin()
			if in != "-" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			entries, err := readRecords(r)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			if err := writeIndexFile(out, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d words to %s\n", len(entries), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "records file, - for stdin")
	cmd.Flags().StringVar(&out, "out", "", "index file to write")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// readRecords parses word<TAB>paradigm_id<TAB>word_idx lines. Blank lines
// and lines starting with # are skipped. Records keep input order per word.
func readRecords(r io.Reader) (map[string][]morphdict.Record, error) {
	entries := map[string][]morphdict.Record{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 3 || fields[0] == "" {
			return nil, fmt.Errorf("line %d: want word<TAB>paradigm_id<TAB>word_idx", line)
		}
		pid, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: paradigm_id: %w", line, err)
		}
		widx, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: word_idx: %w", line, err)
		}
		entries[fields[0]] = append(entries[fields[0]], morphdict.Record{ParadigmID: uint32(pid), WordIdx: uint32(widx)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func writeIndexFile(path string, entries map[string][]morphdict.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := morphdict.WriteIndex(w, entries); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
