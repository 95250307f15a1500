package deletion

import (
	"fmt"
	"runtime"

	"github.com/andrew-torda/seq_dels/pkg/seq/common"
)

// Options are the knobs for Normalize, RunsAll and Aggregate.
type Options struct {
	Gap     byte // gap symbol
	MinPos  int  // window start, inclusive, in reference coordinates
	MaxPos  int  // window end, exclusive. Negative means end of sequence
	MinLen  int  // runs must be longer than this to count
	NWorker int  // goroutines for per-sample work. < 1 means 1
}

// The window is the coding region of the SARS-CoV-2 reference
// (MN908947.3). Change it for anything else.
const (
	DefaultMinPos = 265
	DefaultMaxPos = 29674
	DefaultMinLen = 2
)

// DefaultOptions returns a fresh set of defaults. Callers may change it.
func DefaultOptions() *Options {
	return &Options{
		Gap:     common.GapChar,
		MinPos:  DefaultMinPos,
		MaxPos:  DefaultMaxPos,
		MinLen:  DefaultMinLen,
		NWorker: runtime.NumCPU(),
	}
}

// window returns the half open range [lo, hi) to keep from sequences
// of length width. Like slicing in most scripting languages, a window
// hanging over the end is clipped.
func (opts *Options) window(width int) (lo, hi int, err error) {
	lo, hi = opts.MinPos, opts.MaxPos
	if lo < 0 || (hi >= 0 && lo > hi) {
		return 0, 0, fmt.Errorf("%w: [%d, %d)", ErrBadWindow, opts.MinPos, opts.MaxPos)
	}
	if hi < 0 || hi > width {
		hi = width
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi, nil
}

func (opts *Options) nworker() int {
	if opts.NWorker < 1 {
		return 1
	}
	return opts.NWorker
}

// chunks splits n items into at most nchunk contiguous [lo, hi) pieces.
func chunks(n, nchunk int) [][2]int {
	if nchunk > n {
		nchunk = n
	}
	var ret [][2]int
	for i := 0; i < nchunk; i++ {
		ret = append(ret, [2]int{i * n / nchunk, (i + 1) * n / nchunk})
	}
	return ret
}
