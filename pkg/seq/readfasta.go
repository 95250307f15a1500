// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	. "github.com/andrew-torda/seq_dels/pkg/seq/common"
	"github.com/andrew-torda/seq_dels/pkg/zwrap"
)

const NL = '\n'

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// appendNoWhite appends s to dst, leaving out white space.
func appendNoWhite(dst, s []byte) []byte {
	for _, c := range s {
		if !asciiSpace[c] {
			dst = append(dst, c)
		}
	}
	return dst
}

// parseFasta goes through a buffer which holds a whole fasta file.
// Nothing in seqgrp points into buf afterwards, so buf may be unmapped.
func parseFasta(buf []byte, seqgrp *SeqGrp) error {
	const zeroLen = "%w: zero length sequence after >%s"
	for len(buf) > 0 {
		var line []byte
		if ndx := bytes.IndexByte(buf, NL); ndx == -1 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:ndx], buf[ndx+1:]
		}
		if len(line) > 0 && line[0] == cmmtChar {
			if n := len(seqgrp.seqs); n > 0 && len(seqgrp.seqs[n-1].seq) == 0 {
				return fmt.Errorf(zeroLen, ErrMalformed, seqgrp.seqs[n-1].cmmt)
			}
			seqgrp.Add(string(bytes.TrimRight(line[1:], "\r")), nil)
			continue
		}
		n := len(seqgrp.seqs)
		if n == 0 {
			if len(bytes.TrimSpace(line)) == 0 { // blank lines at the start
				continue
			}
			return fmt.Errorf("%w: sequence data before first comment line", ErrMalformed)
		}
		seqgrp.seqs[n-1].seq = appendNoWhite(seqgrp.seqs[n-1].seq, line)
	}
	n := len(seqgrp.seqs)
	if n == 0 {
		return fmt.Errorf("%w: no sequences found", ErrMalformed)
	}
	if len(seqgrp.seqs[n-1].seq) == 0 {
		return fmt.Errorf(zeroLen, ErrMalformed, seqgrp.seqs[n-1].cmmt)
	}
	return nil
}

// ReadFasta reads fasta formatted sequences from rdr and appends
// them to seqgrp. It does not check lengths.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	return parseFasta(buf, seqgrp)
}

// readStream reads from something we cannot map, like a pipe or
// a compressed file.
func readStream(fp io.ReadCloser, seqgrp *SeqGrp, s_opts *Options) error {
	fz, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return err
	}
	defer fz.Close()
	if s_opts.Vbsty > 1 && fz.Kind() != zwrap.Plain {
		fmt.Fprintln(os.Stderr, "reading", fz.Kind(), "compressed input")
	}
	return ReadFasta(fz, seqgrp, s_opts)
}

// readNamed maps a plain file read-only and parses it in place. If
// the file is compressed, we go through readStream instead.
func readNamed(fname string, seqgrp *SeqGrp, s_opts *Options) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	var magic [6]byte
	n, err := io.ReadFull(fp, magic[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	if n == 0 { // mmap does not like empty files
		return fmt.Errorf("%w: %s is empty", ErrMalformed, fname)
	}
	if zwrap.Sniff(magic[:n]) != zwrap.Plain {
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			return err
		}
		return readStream(io.NopCloser(fp), seqgrp, s_opts)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return parseFasta(mm, seqgrp)
}

// Readfile takes a filename and reads sequences from it.
// An empty name or "-" means standard input. gzip and xz compressed
// input is recognised by its first few bytes.
// Unless DiffLenSeq is set, the sequences must all have the same
// length, otherwise the error wraps common.ErrMalformed.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	var err error
	if fname == "" || fname == "-" {
		err = readStream(io.NopCloser(os.Stdin), seqgrp, s_opts)
	} else {
		err = readNamed(fname, seqgrp, s_opts)
	}
	if err != nil {
		return nil, err
	}
	if !s_opts.DiffLenSeq {
		if err := seqgrp.checkLengths(); err != nil {
			return nil, err
		}
	}
	if s_opts.Vbsty > 2 {
		fmt.Fprintln(os.Stderr, "read", seqgrp.NSeq(), "sequences of length", seqgrp.GetLen())
	}
	return seqgrp, nil
}
