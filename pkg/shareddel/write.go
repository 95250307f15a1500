package shareddel

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/seq_dels/pkg/deletion"
)

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if fname == "" || fname == "-" {
		return
	}
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// withOutput opens fname, or uses stdout for "" or "-", and hands a
// buffered writer to wrt. Errors from writing, flushing and closing
// are all returned.
func withOutput(fname, what string, wrt func(w io.Writer) error) (err error) {
	var fp io.WriteCloser = os.Stdout
	if fname != "" && fname != "-" {
		warnExists(fname)
		if fp, err = os.Create(fname); err != nil {
			return fmt.Errorf("%s file %v: %w", what, fname, err)
		}
		defer func() {
			if e := fp.Close(); err == nil {
				err = e
			}
		}()
	}
	bw := bufio.NewWriter(fp)
	if err = wrt(bw); err != nil {
		return fmt.Errorf("writing %s: %w", what, err)
	}
	return bw.Flush()
}

// jsonCluster is a Cluster as it appears in json output.
type jsonCluster struct {
	Key     string   `json:"coordinate_key"`
	Len     int      `json:"run_length"`
	NSample int      `json:"sample_count"`
	Samples []string `json:"samples"`
}

// wrtTSV writes one line per deletion, like gofasta's deletions.txt.
// The samples column is "|" separated.
func wrtTSV(w io.Writer, clusters []deletion.Cluster, offset int) error {
	if _, err := fmt.Fprintln(w, "coord\tlength\tn_samples\tsamples"); err != nil {
		return err
	}
	for _, c := range clusters {
		key := c.Coord.Adjust(offset).String()
		smpl := strings.Join(c.Samples, "|")
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", key, c.Len, c.NSample(), smpl); err != nil {
			return err
		}
	}
	return nil
}

func wrtJSON(w io.Writer, clusters []deletion.Cluster, offset int) error {
	out := make([]jsonCluster, len(clusters))
	for i, c := range clusters {
		out[i] = jsonCluster{
			Key:     c.Coord.Adjust(offset).String(),
			Len:     c.Len,
			NSample: c.NSample(),
			Samples: c.Samples,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeClusters writes the table of shared deletions in the format
// asked for.
func writeClusters(fname, format string, clusters []deletion.Cluster, offset int) error {
	return withOutput(fname, "deletions", func(w io.Writer) error {
		if format == FmtJSON {
			return wrtJSON(w, clusters, offset)
		}
		return wrtTSV(w, clusters, offset)
	})
}

// writePairs writes two sample names and the deletions they share.
func writePairs(fname string, pairs []deletion.Pair, offset int) error {
	return withOutput(fname, "pairs", func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "sample_a\tsample_b\tshared"); err != nil {
			return err
		}
		for _, p := range pairs {
			keys := make([]string, len(p.Shared))
			for i, c := range p.Shared {
				keys[i] = c.Adjust(offset).String()
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", p.A, p.B, strings.Join(keys, "|")); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeProfile writes a csv file for plotting with some other program.
// Like the entropy output, it has a header line.
func writeProfile(fname string, prof *matrix.FMatrix2d, offset int) error {
	return withOutput(fname, "profile", func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, `"pos","gap frac","deletion frac"`); err != nil {
			return err
		}
		gaps, dels := prof.Mat[deletion.ProfGap], prof.Mat[deletion.ProfDel]
		for i := range gaps {
			if _, err := fmt.Fprintf(w, "%d,%.2f,%.2f\n", i+offset, gaps[i], dels[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
