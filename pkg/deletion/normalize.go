package deletion

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Alignment is what we need from a multiple sequence alignment.
// Implementations must not change the sequences while we work and
// must be safe for concurrent reads. seq.SeqGrp and Records both do.
type Alignment interface {
	NSeq() int
	Width() int
	ID(i int) string
	Seq(i int) []byte
	Find(id string) int // index of sequence with this identifier, or -1
}

// Record is one aligned sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Records is the simplest Alignment, mostly for callers who already
// have their sequences in memory.
type Records []Record

func (r Records) NSeq() int        { return len(r) }
func (r Records) ID(i int) string  { return r[i].ID }
func (r Records) Seq(i int) []byte { return r[i].Seq }

func (r Records) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0].Seq)
}

func (r Records) Find(id string) int {
	for i := range r {
		if r[i].ID == id {
			return i
		}
	}
	return -1
}

// Normalized holds the squashed and trimmed alignment, one row per
// sample, in the same order as the input. Rows all live in one block
// of memory, like the rows of a matrix.FMatrix2d.
type Normalized struct {
	ids      []string
	rows     [][]byte
	fullData []byte
	ref      int // index of the reference
	offset   int // window start, to get back to reference coordinates
	nInsert  int // number of insertion columns removed
}

// newNormalized allocates n_r rows of length n_c.
func newNormalized(n_r, n_c int) *Normalized {
	n := &Normalized{
		ids:      make([]string, n_r),
		rows:     make([][]byte, n_r),
		fullData: make([]byte, n_r*n_c),
	}
	tmp := n.fullData
	for i := range n.rows {
		n.rows[i] = tmp[:n_c:n_c]
		tmp = tmp[n_c:]
	}
	return n
}

// NSeq is the number of sequences, reference included.
func (n *Normalized) NSeq() int { return len(n.rows) }

// Width is the length of every row.
func (n *Normalized) Width() int {
	if len(n.rows) == 0 {
		return 0
	}
	return len(n.rows[0])
}

func (n *Normalized) ID(i int) string  { return n.ids[i] }
func (n *Normalized) Row(i int) []byte { return n.rows[i] }

// IDs returns the sample identifiers in input order.
func (n *Normalized) IDs() []string { return n.ids }

// Ref is the index of the reference sequence.
func (n *Normalized) Ref() int { return n.ref }

// Offset is the reference position of column zero.
func (n *Normalized) Offset() int { return n.offset }

// NInsert is how many alignment columns were insertions relative to the
// reference.
func (n *Normalized) NInsert() int { return n.nInsert }

// Normalize puts every sequence of aln into the reference's own
// coordinates. Columns where the reference has a gap are insertions
// in the other sequences. They are removed from all of them, after
// which the reference must be gap free. Then all rows are trimmed
// to the window in opts.
// Per-sample squashing is spread over opts.NWorker goroutines.
// aln is not changed, so calling this twice gives the same answer.
func Normalize(aln Alignment, ref string, opts *Options) (*Normalized, error) {
	nseq := aln.NSeq()
	if nseq == 0 {
		return nil, fmt.Errorf("%w: no sequences", ErrMalformed)
	}
	width := aln.Width()
	for i := 0; i < nseq; i++ {
		if l := len(aln.Seq(i)); l != width {
			const msg = "%w: sequence %s has length %d, expected %d"
			return nil, fmt.Errorf(msg, ErrMalformed, aln.ID(i), l, width)
		}
	}
	iref := aln.Find(ref)
	if iref == -1 {
		return nil, fmt.Errorf("%w: %q", ErrRefNotFound, ref)
	}

	refSeq := aln.Seq(iref)
	inserts := GapPos(refSeq, opts.Gap)
	refSquashed := RmvCols(refSeq, inserts)
	if err := CheckRef(ref, refSquashed, opts.Gap); err != nil {
		return nil, err
	}
	lo, hi, err := opts.window(len(refSquashed))
	if err != nil {
		return nil, err
	}

	n := newNormalized(nseq, hi-lo)
	n.ref, n.offset, n.nInsert = iref, lo, len(inserts)
	var g errgroup.Group
	for _, c := range chunks(nseq, opts.nworker()) {
		c := c // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			for i := c[0]; i < c[1]; i++ {
				n.ids[i] = aln.ID(i)
				copy(n.rows[i], RmvCols(aln.Seq(i), inserts)[lo:hi])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return n, nil
}

// CheckRef makes sure a squashed reference has no gaps left. If it
// does, the alignment is broken in a way we cannot repair.
func CheckRef(id string, squashed []byte, gap byte) error {
	if gaps := GapPos(squashed, gap); len(gaps) != 0 {
		const msg = "%w: %d gaps in %s, first at column %d"
		return fmt.Errorf(msg, ErrInvariant, len(gaps), id, gaps[0])
	}
	return nil
}
