// brokenio is a wrapper around an io.ReadCloser which lets us provoke
// read failures in tests.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, until the reader has handed out the allowed
// number of bytes. After that, every Read returns an error.
// A zero length file is simulated by allowing zero bytes and setting
// the error to io.EOF.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is what we return when we break, unless told otherwise.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr is modelled on the various Readers in the standard library,
// but it stops working after a set number of bytes.
type BrknRdrClsr struct {
	rdrOrig io.ReadCloser // Wrapped reader
	nOK     int           // bytes to pass through before failing
	failErr error         // error to return once we are broken
	nCalled int
	nByte   int
	verbose bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// By default it never breaks.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, nOK: -1, failErr: ErrBroken}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFailAfter says how many bytes we pass through before
// every read fails. A negative number means never.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.nOK = n }

// SetErr replaces the error we return when broken.
func (r *BrknRdrClsr) SetErr(err error) { r.failErr = err }

// NByte is the number of bytes handed out so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read passes reads through to the wrapped reader, but truncates the
// data at the break point and then returns the error.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.nOK >= 0 {
		left := r.nOK - r.nByte
		if left <= 0 {
			return 0, r.failErr
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
