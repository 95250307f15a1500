package deletion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Coord is the span of a deletion, first and last gap position.
// Two samples with the same Coord have the same deletion.
type Coord struct {
	Min, Max int
}

// String gives the "min:max" key used in output.
func (c Coord) String() string { return fmt.Sprintf("%d:%d", c.Min, c.Max) }

// Adjust shifts a window relative span back to reference coordinates.
// offset is normally Normalized.Offset(), the start of the window.
func (c Coord) Adjust(offset int) Coord { return Coord{Min: c.Min + offset, Max: c.Max + offset} }

// ParseCoord reads a "min:max" key.
func ParseCoord(s string) (Coord, error) {
	var c Coord
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		return c, fmt.Errorf("coordinate %q is not min:max", s)
	}
	var err error
	if c.Min, err = strconv.Atoi(lo); err != nil {
		return c, fmt.Errorf("coordinate %q: %w", s, err)
	}
	if c.Max, err = strconv.Atoi(hi); err != nil {
		return c, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return c, nil
}

// AdjustKey is Adjust for keys that have already been turned into
// strings.
func AdjustKey(key string, offset int) (string, error) {
	c, err := ParseCoord(key)
	if err != nil {
		return "", err
	}
	return c.Adjust(offset).String(), nil
}

// Cluster is one deletion and every sample that has it.
type Cluster struct {
	Coord   Coord
	Len     int
	Samples []string // distinct, in the order first seen
}

// NSample is the number of samples sharing the deletion.
func (c Cluster) NSample() int { return len(c.Samples) }

// Key is Coord as a string.
func (c Cluster) Key() string { return c.Coord.String() }

// clusterLess sorts by number of samples, then position, then length.
func clusterLess(a, b *Cluster) bool {
	if a.NSample() != b.NSample() {
		return a.NSample() < b.NSample()
	}
	if a.Coord.Min != b.Coord.Min {
		return a.Coord.Min < b.Coord.Min
	}
	if a.Coord.Max != b.Coord.Max {
		return a.Coord.Max < b.Coord.Max
	}
	return a.Len < b.Len
}

// Aggregate throws away runs of minLen or less, then groups the rest by
// span and length. The result is sorted with the rarest deletions
// first.
// runs is normally the output of RunsAll, but any grouping of runs
// works. This is the one step that needs everyone's results, so it runs
// in the caller's goroutine.
func Aggregate(runs [][]Run, minLen int) []Cluster {
	type key struct {
		c Coord
		l int
	}
	ndx := make(map[key]int)
	seen := make(map[key]map[string]bool)
	var clusters []Cluster
	for _, rr := range runs {
		for _, r := range rr {
			if r.Len() == 0 || r.Len() <= minLen {
				continue
			}
			k := key{r.Coord(), r.Len()}
			i, ok := ndx[k]
			if !ok {
				i = len(clusters)
				ndx[k] = i
				seen[k] = make(map[string]bool)
				clusters = append(clusters, Cluster{Coord: k.c, Len: k.l})
			}
			if !seen[k][r.ID] {
				seen[k][r.ID] = true
				clusters[i].Samples = append(clusters[i].Samples, r.ID)
			}
		}
	}
	sort.Slice(clusters, func(i, j int) bool { return clusterLess(&clusters[i], &clusters[j]) })
	return clusters
}
