// 3 August 2020

// Package shareddel does the work behind the shareddel command. Read an
// alignment, put it in the coordinates of a reference sequence, find
// the deletions more than one sample has and write them out.
package shareddel

import (
	"fmt"
	"os"
	"time"

	"github.com/andrew-torda/seq_dels/pkg/deletion"
	"github.com/andrew-torda/seq_dels/pkg/seq"
)

// CmdFlag is filled in from the command line.
type CmdFlag struct {
	RefSeq   string // identifier of the reference sequence
	Gap      string // gap symbol. Must be one byte
	MinPos   int    // start of window, inclusive
	MaxPos   int    // end of window, exclusive. Negative means the end
	MinLen   int    // deletions must be longer than this
	NWorker  int    // goroutines for per-sample work
	Absolute bool   // report reference positions, not window positions
	Format   string // "tsv" or "json"
	Pairs    string // if set, write pairs of samples sharing deletions here
	Profile  string // if set, write the per-column gap profile here
	Squashed string // if set, write the normalized alignment here
	Time     bool   // do we want to print out run time ?
	Vbsty    int    // verbosity
}

// Output formats for the table of deletions.
const (
	FmtTSV  = "tsv"
	FmtJSON = "json"
)

// DefaultFlags gives the same defaults as the command line.
func DefaultFlags() *CmdFlag {
	opts := deletion.DefaultOptions()
	return &CmdFlag{
		Gap:      string(opts.Gap),
		MinPos:   opts.MinPos,
		MaxPos:   opts.MaxPos,
		MinLen:   opts.MinLen,
		NWorker:  opts.NWorker,
		Absolute: true,
		Format:   FmtTSV,
	}
}

// options checks the flags and turns them into deletion.Options.
func (flags *CmdFlag) options() (*deletion.Options, error) {
	if len(flags.Gap) != 1 {
		return nil, fmt.Errorf("gap symbol must be one character, got %q", flags.Gap)
	}
	switch flags.Format {
	case "", FmtTSV, FmtJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q, want %s or %s", flags.Format, FmtTSV, FmtJSON)
	}
	if flags.MinLen < 0 {
		return nil, fmt.Errorf("minimum deletion length %d is negative", flags.MinLen)
	}
	return &deletion.Options{
		Gap:     flags.Gap[0],
		MinPos:  flags.MinPos,
		MaxPos:  flags.MaxPos,
		MinLen:  flags.MinLen,
		NWorker: flags.NWorker,
	}, nil
}

// Mymain reads infile and writes the table of shared deletions to
// outfile. Empty names or "-" mean standard input and output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	opts, err := flags.options()
	if err != nil {
		return err
	}
	s_opts := &seq.Options{Vbsty: flags.Vbsty}
	seqgrp, err := seq.Readfile(infile, s_opts)
	if err != nil {
		return fmt.Errorf("fail reading sequences: %w", err)
	}
	n, err := deletion.Normalize(seqgrp, flags.RefSeq, opts)
	if err != nil {
		return err
	}
	runs, err := deletion.RunsAll(n, opts)
	if err != nil {
		return err
	}
	clusters := deletion.Aggregate(runs, opts.MinLen)

	offset := 0
	if flags.Absolute {
		offset = n.Offset()
	}
	if flags.Vbsty > 0 {
		summary(n, runs, clusters, offset, flags.Vbsty)
	}

	if err = writeClusters(outfile, flags.Format, clusters, offset); err != nil {
		return err
	}
	if flags.Pairs != "" {
		pairs := deletion.Pairs(runs, opts.MinLen)
		if err = writePairs(flags.Pairs, pairs, offset); err != nil {
			return err
		}
	}
	if flags.Profile != "" {
		prof := deletion.Profile(n, runs, opts.Gap, opts.MinLen)
		if err = writeProfile(flags.Profile, prof, offset); err != nil {
			return err
		}
	}
	if flags.Squashed != "" {
		sqgrp := new(seq.SeqGrp)
		for i := 0; i < n.NSeq(); i++ {
			sqgrp.Add(seqgrp.Cmmt(i), n.Row(i)) // rows keep input order
		}
		warnExists(flags.Squashed)
		if err = seq.WriteToF(flags.Squashed, sqgrp.SeqSlc(), s_opts); err != nil {
			return fmt.Errorf("writing squashed alignment: %w", err)
		}
	}
	return nil
}

// summary prints what we found to stderr. With more verbosity, there
// is a line per sample with its length and deletion count.
func summary(n *deletion.Normalized, runs [][]deletion.Run, clusters []deletion.Cluster, offset, vbsty int) {
	w := os.Stderr
	fmt.Fprintf(w, "%d sequences, %d insertion columns removed, window starts at %d, width %d\n",
		n.NSeq(), n.NInsert(), n.Offset(), n.Width())
	fmt.Fprintln(w, len(clusters), "distinct deletions kept, positions offset by", offset)
	if vbsty < 2 {
		return
	}
	fmt.Fprintln(w, "id\tseq_len\tn_runs")
	for i, rr := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\n", n.ID(i), len(n.Row(i)), len(rr))
	}
}
