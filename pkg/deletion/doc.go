/*
Package deletion finds deletions shared by samples in a multiple sequence
alignment, relative to one reference sequence (patient zero).

The steps are

	Normalize	remove every column where the reference has a gap, so
			positions are reference positions again, then trim to a
			window
	Runs		find maximal runs of consecutive gaps in each sample
	Aggregate	drop short runs and group samples whose runs have the
			same span

Positions in the results are relative to the start of the window.
Coord.Adjust and AdjustKey add the window offset back on.

Nothing here reads files. The alignment comes in through the
Alignment interface, which seq.SeqGrp satisfies.
*/
package deletion
