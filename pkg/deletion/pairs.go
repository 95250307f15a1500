package deletion

// Common returns the runs of a which also occur, with exactly the same
// positions, in b.
func Common(a, b []Run) []Run {
	inB := make(map[Coord]bool, len(b))
	for _, r := range b {
		inB[r.Coord()] = true
	}
	var ret []Run
	for _, r := range a {
		if inB[r.Coord()] { // runs are consecutive, so equal spans
			ret = append(ret, r) // mean equal positions
		}
	}
	return ret
}

// Pair is two samples and the deletions they share.
type Pair struct {
	A, B   string
	Shared []Coord
}

// Pairs compares every sample with every other one and lists the pairs
// with at least one deletion longer than minLen in common. The order
// follows runs, so A comes before B in the input. Records sharing an
// identifier are the same sample, so they never make a pair and each
// pair is listed once.
// It is quadratic in the number of samples.
func Pairs(runs [][]Run, minLen int) []Pair {
	long := make([][]Run, len(runs))
	for i, rr := range runs {
		for _, r := range rr {
			if r.Len() > 0 && r.Len() > minLen {
				long[i] = append(long[i], r)
			}
		}
	}
	var ret []Pair
	seen := make(map[[2]string]bool)
	for i := range long {
		if len(long[i]) == 0 {
			continue
		}
		for j := i + 1; j < len(long); j++ {
			if len(long[j]) == 0 || long[j][0].ID == long[i][0].ID {
				continue // a sample is not paired with itself
			}
			c := Common(long[i], long[j])
			if len(c) == 0 {
				continue
			}
			p := Pair{A: c[0].ID, B: long[j][0].ID}
			if seen[[2]string{p.A, p.B}] {
				continue
			}
			seen[[2]string{p.A, p.B}] = true
			for _, r := range c {
				p.Shared = append(p.Shared, r.Coord())
			}
			ret = append(ret, p)
		}
	}
	return ret
}
