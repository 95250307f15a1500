package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_dels/pkg/seq/common"
)

func TestArgs(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"ref", "a", "b", "c"},
		{"--no-such-flag", "ref"},
		{"--min-len", "two", "ref"},
	} {
		cmd := newCmd()
		cmd.SetArgs(args)
		err := cmd.Execute()
		if _, ok := err.(usageError); !ok {
			t.Errorf("args %v gave %v, want a usage error", args, err)
		}
	}
}

func TestRun(t *testing.T) {
	fname, err := common.WrtTemp(">r\nACGTACGT\n>a\nA---ACGT\n>b\nA---ACGT\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outname := filepath.Join(t.TempDir(), "out.tsv")
	cmd := newCmd()
	cmd.SetArgs([]string{"--min-pos=0", "--max-pos=-1", "r", fname, outname})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "1:3\t3\t2\ta|b\n") {
		t.Errorf("unexpected output %q", b)
	}
}
