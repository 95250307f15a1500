package deletion_test

import (
	"testing"

	"github.com/andrew-torda/seq_dels/pkg/deletion"
	"github.com/andrew-torda/seq_dels/pkg/randaln"
	"github.com/andrew-torda/seq_dels/pkg/seq"
)

// About the size of a SARS-CoV-2 alignment with a modest number of
// insertion columns.
var bigArgs = randaln.Args{
	Iseed: 1637,
	Nseq:  200,
	Len:   29903,
	NIns:  120,
	Dels: []randaln.Planted{
		{Start: 21765, Len: 6, Samples: []int{1, 2, 3}},
		{Start: 11287, Len: 9, Samples: []int{4, 5}},
	},
}

func setupbmark(b *testing.B) *seq.SeqGrp {
	b.Helper()
	seqgrp, err := randaln.Make(&bigArgs)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	return seqgrp
}

func benchRmv(b *testing.B, rmv func([]byte, []int) []byte) {
	seqgrp := setupbmark(b)
	cols := deletion.GapPos(seqgrp.Seq(0), '-')
	for i := 0; i < b.N; i++ {
		rmv(seqgrp.Seq(1+i%bigArgs.Nseq), cols)
	}
}

func BenchmarkRmvCols(b *testing.B)      { benchRmv(b, deletion.RmvCols) }
func BenchmarkRmvColsShift(b *testing.B) { benchRmv(b, deletion.RmvColsShift) }

func benchNormalize(b *testing.B, nworker int) {
	seqgrp := setupbmark(b)
	opts := deletion.DefaultOptions()
	opts.NWorker = nworker
	for i := 0; i < b.N; i++ {
		if _, err := deletion.Normalize(seqgrp, "ref", opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormalize1(b *testing.B) { benchNormalize(b, 1) }
func BenchmarkNormalize4(b *testing.B) { benchNormalize(b, 4) }
func BenchmarkNormalize8(b *testing.B) { benchNormalize(b, 8) }
