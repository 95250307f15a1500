// 3 August 2020
// Read a multiple sequence alignment and list the deletions, relative
// to a reference, which are shared by more than one sample.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	. "github.com/andrew-torda/seq_dels/pkg/seq/common"
	"github.com/andrew-torda/seq_dels/pkg/shareddel"
)

// usageError marks errors in the command line, so we can exit with
// the right code.
type usageError struct{ error }

func newCmd() *cobra.Command {
	flags := shareddel.DefaultFlags()
	cmd := &cobra.Command{
		Use:   "shareddel [flags] reference [infile [outfile]]",
		Short: "List deletions shared by samples in an alignment",
		Long: `List deletions shared by samples in an alignment

Every sequence is put into the coordinates of the reference by removing
the columns where the reference has a gap. Gapped stretches in the other
sequences are then deletions. Those longer than --min-len are grouped by
position and length and written with the rarest first.

Given no infile, or "-", read from standard input. gzip and xz input is
recognised. Given no outfile, write to standard output.

Example usage:
	shareddel MN908947.3 aligned.fasta.xz deletions.tsv --pairs pairs.tsv
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 3)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infile, outfile string
			flags.RefSeq = args[0]
			if len(args) > 1 {
				infile = args[1]
			}
			if len(args) > 2 {
				outfile = args[2]
			}
			return shareddel.Mymain(flags, infile, outfile)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Gap, "gap", "g", flags.Gap, "gap symbol")
	f.IntVar(&flags.MinPos, "min-pos", flags.MinPos, "start of window in reference positions, counting from 0")
	f.IntVar(&flags.MaxPos, "max-pos", flags.MaxPos, "end of window, exclusive. Negative for the end of the reference")
	f.IntVarP(&flags.MinLen, "min-len", "m", flags.MinLen, "only keep deletions longer than this")
	f.IntVarP(&flags.NWorker, "nworker", "j", flags.NWorker, "goroutines for per-sample work")
	f.BoolVar(&flags.Absolute, "absolute", flags.Absolute, "report reference positions, not positions in the window")
	f.StringVarP(&flags.Format, "format", "f", flags.Format, "output format, tsv or json")
	f.StringVar(&flags.Pairs, "pairs", "", "write pairs of samples sharing deletions to this file")
	f.StringVar(&flags.Profile, "profile", "", "write per-column gap and deletion fractions to this csv file")
	f.StringVar(&flags.Squashed, "squashed", "", "write the normalized alignment to this fasta file")
	f.BoolVarP(&flags.Time, "time", "t", false, "print out timing information")
	f.CountVarP(&flags.Vbsty, "verbose", "v", "more output to stderr, repeat for even more")
	f.SortFlags = false
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error { return usageError{err} })
	return cmd
}

func main() {
	cmd := newCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if _, ok := err.(usageError); ok {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			os.Exit(ExitUsageError)
		}
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
