package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/andrew-torda/seq_dels/pkg/zwrap"
)

const content = ">s1\nACGT\n>s2\nA--T\n"

func gzipped(t *testing.T) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	io.WriteString(w, content)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func xzed(t *testing.T) []byte {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, content)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestWrap reads the same thing plain and compressed.
func TestWrap(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		kind zwrap.Kind
	}{
		{[]byte(content), zwrap.Plain},
		{gzipped(t), zwrap.Gzip},
		{xzed(t), zwrap.Xz},
	} {
		fz, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(tc.in)))
		if err != nil {
			t.Fatal(tc.kind, err)
		}
		if fz.Kind() != tc.kind {
			t.Error("got kind", fz.Kind(), "want", tc.kind)
		}
		b, err := io.ReadAll(fz)
		if err != nil {
			t.Fatal(tc.kind, err)
		}
		if string(b) != content {
			t.Errorf("%s got %q", tc.kind, b)
		}
		if err := fz.Close(); err != nil {
			t.Error(tc.kind, "close", err)
		}
	}
}

// TestShort checks files shorter than the magic number are fine.
func TestShort(t *testing.T) {
	for _, s := range []string{"", ">", ">s\nA"} {
		fz, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader([]byte(s))))
		if err != nil {
			t.Fatalf("%q gave %v", s, err)
		}
		if b, _ := io.ReadAll(fz); string(b) != s {
			t.Errorf("%q came back as %q", s, b)
		}
	}
}

func TestBadGzip(t *testing.T) {
	bad := []byte{0x1f, 0x8b, 0, 0}
	if _, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(bad))); err == nil {
		t.Error("broken gzip header not noticed")
	}
}

func TestSniff(t *testing.T) {
	if zwrap.Sniff(nil) != zwrap.Plain || zwrap.Sniff([]byte{0x1f}) != zwrap.Plain {
		t.Error("short magic should be plain")
	}
	if k := zwrap.Sniff(gzipped(t)); k.String() != "gzip" {
		t.Error("got", k)
	}
}
