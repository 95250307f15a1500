package deletion

import (
	"golang.org/x/sync/errgroup"
)

// Run is one candidate deletion, a maximal stretch of consecutive gap
// positions in one sample.
type Run struct {
	ID  string // sample identifier
	Pos []int  // ascending, each one more than the last
}

// Len is the number of positions in the run.
func (r Run) Len() int { return len(r.Pos) }

// Coord is the span of the run. Pos is sorted, so the ends are the
// minimum and maximum.
func (r Run) Coord() Coord { return Coord{Min: r.Pos[0], Max: r.Pos[len(r.Pos)-1]} }

// Group splits ascending positions into maximal runs of consecutive
// integers. [5 6 7 10 11] becomes [[5 6 7] [10 11]].
func Group(pos []int) [][]int {
	var ret [][]int
	var cur []int
	for _, p := range pos {
		if len(cur) > 0 && p != cur[len(cur)-1]+1 {
			ret = append(ret, cur)
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		ret = append(ret, cur)
	}
	return ret
}

// Runs returns the deletion runs in one normalized sequence.
func Runs(id string, s []byte, gap byte) []Run {
	groups := Group(GapPos(s, gap))
	if len(groups) == 0 {
		return nil
	}
	runs := make([]Run, len(groups))
	for i, g := range groups {
		runs[i] = Run{ID: id, Pos: g}
	}
	return runs
}

// RunsAll calls Runs on every sequence in n, the reference included
// (it has no gaps, so contributes nothing). Element i of the result
// belongs to sequence i.
func RunsAll(n *Normalized, opts *Options) ([][]Run, error) {
	ret := make([][]Run, n.NSeq())
	var g errgroup.Group
	for _, c := range chunks(n.NSeq(), opts.nworker()) {
		c := c // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			for i := c[0]; i < c[1]; i++ {
				ret[i] = Runs(n.ID(i), n.Row(i), opts.Gap)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
