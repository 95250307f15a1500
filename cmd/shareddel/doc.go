// 3 August 2020

/*
Shareddel finds deletions shared by more than one sample in a multiple
sequence alignment.

One sequence is the reference. Any column where it has a gap is an
insertion in some other sequence, so it is removed from every sequence.
After that, the reference has no gaps and positions are reference
positions. Everything is cut down to a window, by default [265, 29674),
which is the coding part of the SARS-CoV-2 reference MN908947.3.
A stretch of gaps in a sample is then a deletion.
Deletions of --min-len (default 2) or fewer positions are ignored.
The rest are grouped by where they start and end, and each group is
written with the samples that have it.

Usage:
	shareddel [flags] reference [input [output]]

If no output file is given, stdout will be used.
If no input file is given, or it is "-", stdin will be used. Input may be
gzip or xz compressed.

The reference argument is the sequence identifier, the first word of the
comment line, without the ">". It must match exactly.

Output is tab separated with a header line
	coord	length	n_samples	samples
coord is "first:last", counting from zero. The samples are separated by "|".
The rarest deletions come first. Ties are sorted by position.
With --format json, the same information is written as a list of objects.
By default, coordinates are in the reference. Give --absolute=false to
number them from the start of the window.

The flags are:
	-g gap
		The gap symbol, default "-"
	--min-pos, --max-pos
		The window. A negative max-pos means the end of the reference
	-m min-len
		Keep deletions longer than this
	-j nworker
		Number of goroutines for the per-sample work
	--pairs file
		Write every pair of samples with at least one deletion in common
	--profile file
		Write a csv file with the fraction of samples that have a gap, and
		the fraction inside a kept deletion, at each position
	--squashed file
		Write the alignment, after removing insertions and cutting to the
		window, in fasta format
	-t
		Print run time
	-v
		Print a summary to stderr. Say -vv for a line per sample
*/
package main
