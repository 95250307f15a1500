package deletion

import (
	"github.com/andrew-torda/matrix"
)

// Rows of the matrix from Profile.
const (
	ProfGap = iota // fraction of samples with a gap
	ProfDel        // fraction of samples with a long enough deletion here
	profNRow
)

// Profile tallies, for each column of n, how often samples have a gap
// there and how often the column is inside a deletion longer than
// minLen. Both are fractions of the number of sequences, reference
// included. runs must come from RunsAll on the same n.
// The result has profNRow rows and n.Width() columns.
func Profile(n *Normalized, runs [][]Run, gap byte, minLen int) *matrix.FMatrix2d {
	prof := matrix.NewFMatrix2d(profNRow, n.Width())
	nseq := n.NSeq()
	if nseq == 0 || n.Width() == 0 {
		return prof
	}
	for i := 0; i < nseq; i++ {
		for j, c := range n.Row(i) {
			if c == gap {
				prof.Mat[ProfGap][j]++
			}
		}
	}
	for _, rr := range runs {
		for _, r := range rr {
			if r.Len() <= minLen {
				continue
			}
			for _, p := range r.Pos {
				prof.Mat[ProfDel][p]++
			}
		}
	}
	scale := 1 / float32(nseq)
	for _, row := range prof.Mat {
		for j := range row {
			row[j] *= scale
		}
	}
	return prof
}
