// 31 July 2020

// Package randaln makes random alignments with known answers. There
// is a reference, "ref", and samples "s1", "s2", ... which are copies
// of the reference with some stretches deleted. Then some columns
// are inserted in which the reference has a gap and the samples all
// have a base. Removing those columns and looking for deletions should
// give back exactly what was planted.
package randaln

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/andrew-torda/seq_dels/pkg/seq"
	"github.com/andrew-torda/seq_dels/pkg/seq/common"
)

var letters = []byte("ACGT")

// Planted is a deletion to put in. Start is in reference coordinates,
// counting from zero. Samples are numbered from 1.
type Planted struct {
	Start, Len int
	Samples    []int
}

// Args is the set of arguments to Make.
type Args struct {
	Iseed int64     // random number seed
	Nseq  int       // number of samples, not counting the reference
	Len   int       // length of the reference, without insertions
	NIns  int       // number of insertion columns
	Dels  []Planted // deletions. Two in one sample must not touch
	RefID string    // defaults to "ref"
}

// refID returns the reference identifier Make will use.
func (args *Args) refID() string {
	if args.RefID == "" {
		return "ref"
	}
	return args.RefID
}

func (args *Args) check() error {
	if args.Nseq < 0 || args.Len < 1 || args.NIns < 0 || args.NIns > args.Len+1 {
		return fmt.Errorf("randaln: bad sizes nseq %d len %d nins %d", args.Nseq, args.Len, args.NIns)
	}
	for _, d := range args.Dels {
		if d.Len < 1 || d.Start < 0 || d.Start+d.Len > args.Len {
			return fmt.Errorf("randaln: deletion at %d length %d outside sequence", d.Start, d.Len)
		}
		for _, s := range d.Samples {
			if s < 1 || s > args.Nseq {
				return errors.New("randaln: deletion in sample that does not exist")
			}
		}
	}
	return nil
}

// Make builds the alignment described by args. The reference is the
// first sequence.
func Make(args *Args) (*seq.SeqGrp, error) {
	if err := args.check(); err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	native := make([]byte, args.Len)
	for i := range native {
		native[i] = letters[rnd.Intn(len(letters))]
	}
	rows := make([][]byte, args.Nseq+1)
	for i := range rows {
		rows[i] = append([]byte{}, native...)
	}
	for _, d := range args.Dels {
		for _, s := range d.Samples {
			for p := d.Start; p < d.Start+d.Len; p++ {
				rows[s][p] = common.GapChar
			}
		}
	}

	// An insertion at k goes in front of reference position k. k can be
	// Len, meaning after the last base.
	ins := rnd.Perm(args.Len + 1)[:args.NIns]
	sort.Ints(ins)

	seqgrp := new(seq.SeqGrp)
	for i, row := range rows {
		out := make([]byte, 0, args.Len+args.NIns)
		next := 0
		for j := 0; j <= args.Len; j++ {
			for ; next < len(ins) && ins[next] == j; next++ {
				if i == 0 {
					out = append(out, common.GapChar)
				} else {
					out = append(out, letters[rnd.Intn(len(letters))])
				}
			}
			if j < args.Len {
				out = append(out, row[j])
			}
		}
		id := args.refID()
		if i > 0 {
			id = fmt.Sprint("s", i)
		}
		seqgrp.Add(id, out)
	}
	return seqgrp, nil
}
