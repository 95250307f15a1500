// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// For finding deletions, everything is an alignment, so a SeqGrp
// insists that all its sequences have the same length.
package seq

import (
	"fmt"
	"io"
	"os"
	"strings"

	. "github.com/andrew-torda/seq_dels/pkg/seq/common"
)

// seq is the type behind the exported methods.
type seq struct {
	cmmt string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty      int
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
	RmvGapsWrt bool // Remove gaps on output
}

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences, usually a multiple sequence alignment.
type SeqGrp struct {
	seqs []seq
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Cmmt returns the comment, without the leading ">"
func (s seq) Cmmt() string { return s.cmmt }

// Len is the length, including gaps
func (s seq) Len() int { return len(s.seq) }

// ID returns the first word of the comment. This is what
// alignment programs usually keep as the sequence identifier.
func (s seq) ID() string {
	if f := strings.Fields(s.cmmt); len(f) > 0 {
		return f[0]
	}
	return ""
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 128).
func (s *seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the length
// of all sequences.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return len(seqgrp.seqs[0].seq)
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Add appends a sequence to the group. The byte slice is not copied.
func (seqgrp *SeqGrp) Add(cmmt string, s []byte) {
	seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: cmmt, seq: s})
}

// The next few methods let a SeqGrp be used directly as the alignment
// when looking for deletions.

// Width is the number of columns. Same as GetLen.
func (seqgrp *SeqGrp) Width() int { return seqgrp.GetLen() }

// ID is the identifier of sequence i.
func (seqgrp *SeqGrp) ID(i int) string { return seqgrp.seqs[i].ID() }

// Cmmt is the whole comment of sequence i, without the ">".
func (seqgrp *SeqGrp) Cmmt(i int) string { return seqgrp.seqs[i].cmmt }

// Seq is the sequence i, gaps and all.
func (seqgrp *SeqGrp) Seq(i int) []byte { return seqgrp.seqs[i].seq }

// Find returns the index of the sequence whose identifier is exactly id,
// or -1. Compare FindNdx, which is looser.
func (seqgrp *SeqGrp) Find(id string) int {
	for i, s := range seqgrp.seqs {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// FindNdx returns the index of the first sequence whose comment contains
// s. Numbering starts from zero. We remove any ">", space or tab at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")
	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.cmmt, s) {
			return i
		}
	}
	return -1
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// checkLengths is used when we have an alignment, so every
// sequence must have the length of the first one.
func (seqgrp *SeqGrp) checkLengths() error {
	const msg = "%w: first sequence length %d, but sequence %d has length %d. Sequence starts %s"
	if len(seqgrp.seqs) == 0 {
		return fmt.Errorf("%w: no sequences found", ErrMalformed)
	}
	iwant := len(seqgrp.seqs[0].seq)
	for i := 1; i < len(seqgrp.seqs); i++ {
		if ilen := len(seqgrp.seqs[i].seq); ilen != iwant {
			return fmt.Errorf(msg, ErrMalformed, iwant, i+1, ilen, trimStr(seqgrp.seqs[i].cmmt, 40))
		}
	}
	return nil
}

// WriteFasta writes the sequences to w, 60 characters per line.
// Sequences that have been emptied are skipped.
func WriteFasta(w io.Writer, seq_set []seq, s_opts *Options) error {
	const c_per_line = 60
	var t []byte
	for _, seq := range seq_set {
		if len(seq.seq) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, seq.cmmt); err != nil {
			return err
		}
		s := seq.seq
		if s_opts.RmvGapsWrt { // we have to remove gap characters on output
			t = t[:0]
			for _, c := range s {
				if c != GapChar {
					t = append(t, c)
				}
			}
			s = t
		}
		for ; len(s) > c_per_line; s = s[c_per_line:] {
			if _, err := fmt.Fprintf(w, "%s\n", s[:c_per_line]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", s); err != nil {
			return err
		}
	}
	return nil
}

// WriteToF takes a filename and a slice of sequences.
// It writes the sequences to the file, or to standard output if
// the name is empty or "-".
func WriteToF(outseq_fname string, seq_set []seq, s_opts *Options) error {
	var outfile_fp io.Writer
	switch {
	case outseq_fname == "" || outseq_fname == "-":
		outfile_fp = os.Stdout
	default:
		t, err := os.Create(outseq_fname)
		if err != nil {
			return fmt.Errorf("creating output sequence file: %w", err)
		}
		defer t.Close()
		outfile_fp = t
	}
	return WriteFasta(outfile_fp, seq_set, s_opts)
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		seqgrp.Add(fmt.Sprint(base, i), []byte(s))
	}
	return seqgrp
}
