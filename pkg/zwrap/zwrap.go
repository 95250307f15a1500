// Package zwrap takes a file pointer and, if the contents are compressed,
// wraps it so reading goes through the decompressor. Calling Close
// closes the decompressor, followed by the underlying file.
// We look at the magic bytes, not the file name, so stdin works too.
// gzip covers bgzip output as well, since bgzf is just a series of
// gzip members.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"

	"github.com/ulikunitz/xz"
)

// Kind says what sort of compression we found.
type Kind byte

const (
	Plain Kind = iota
	Gzip
	Xz
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// String is for error messages and verbose output.
func (k Kind) String() string {
	switch k {
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	}
	return "plain"
}

// Sniff looks at the start of some data and guesses the compression.
func Sniff(magic []byte) Kind {
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return Gzip
	case bytes.HasPrefix(magic, xzMagic):
		return Xz
	}
	return Plain
}

type Fp struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader    // what Read() really reads from
	gz   *gzip.Reader // nil unless gzip, since it needs closing
	kind Kind
}

// Kind tells the caller what we found in the stream.
func (fz *Fp) Kind() Kind { return fz.kind }

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (fz *Fp) Read(p []byte) (int, error) { return fz.rdr.Read(p) }

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fz *Fp) Close() error {
	var e1 error
	if fz.gz != nil {
		e1 = fz.gz.Close()
	}
	return errors.Join(e1, fz.fp.Close())
}

// WrapMaybe peeks at the start of fp and puts a decompressor in front
// of it if needed. Unlike the seeking version, this is happy with pipes,
// since the peeked bytes stay in the bufio buffer.
func WrapMaybe(fp io.ReadCloser) (*Fp, error) {
	br := bufio.NewReader(fp)
	fz := &Fp{fp: fp, rdr: br}
	magic, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF { // A short file is fine. It is just
		return nil, err //              not compressed.
	}
	switch fz.kind = Sniff(magic); fz.kind {
	case Gzip:
		if fz.gz, err = gzip.NewReader(br); err != nil {
			return nil, err
		}
		fz.rdr = fz.gz
	case Xz:
		var xr *xz.Reader
		if xr, err = xz.NewReader(br); err != nil {
			return nil, err
		}
		fz.rdr = xr
	}
	return fz, nil
}
