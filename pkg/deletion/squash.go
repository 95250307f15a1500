// 29 April 2020
// Squash columns out of aligned sequences.

package deletion

// GapPos returns the columns where s has the gap symbol, in order.
// It is used on the reference to find insertions and on samples to
// find deletions.
func GapPos(s []byte, gap byte) []int {
	var pos []int
	for i, c := range s {
		if c == gap {
			pos = append(pos, i)
		}
	}
	return pos
}

// RmvCols returns a copy of s without the columns in cols.
// cols must be strictly increasing and lie inside s. They are
// positions in the original, unshrunk sequence, usually from one call to
// GapPos on the reference. Anything else is a bug in the caller and
// will panic.
// Rather than deleting one column at a time and shifting, we copy the
// stretches between the columns to be removed.
func RmvCols(s []byte, cols []int) []byte {
	t := make([]byte, 0, len(s)-len(cols))
	prev := 0
	for _, c := range cols {
		t = append(t, s[prev:c]...)
		prev = c + 1
	}
	return append(t, s[prev:]...)
}

// RmvColsShift does the same as RmvCols, but one column at a time.
// Each removal moves everything after it one place left, so the i'th
// column to go is found at cols[i] - i in the partly squashed string.
// It is slower and only here to check RmvCols against.
func RmvColsShift(s []byte, cols []int) []byte {
	t := append([]byte{}, s...)
	for i, pos := range cols {
		p := pos - i
		t = append(t[:p], t[p+1:]...)
	}
	return t
}
