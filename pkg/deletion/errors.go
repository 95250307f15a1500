package deletion

import (
	"errors"

	"github.com/andrew-torda/seq_dels/pkg/seq/common"
)

// All of these are fatal. Callers should check with errors.Is, since
// they come back wrapped with some detail.
var (
	ErrRefNotFound = errors.New("reference sequence not in alignment")
	ErrInvariant   = errors.New("reference still has gaps after removing insertions")
	ErrBadWindow   = errors.New("bad coordinate window")
	ErrMalformed   = common.ErrMalformed // same error the reader gives
)
