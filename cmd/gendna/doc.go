// 19 Oct 2026

/*

Gendna writes one big fasta file of random nucleotide sequence. It is
for testing programs which have to cope with large inputs, where the
content does not matter.
Usage:
	gendna [options]
will write example_data/big-file.fasta with a header line and a
million lines of 80 bases.

Flags:
	-s, --size
		approximate file size in GiB. If given, the number of lines is
		worked out from this and the line length and -n is ignored.
	-n, --num-lines
		number of sequence lines, default 1000000
	-l, --line-length
		bases per line, default 80
	-f, --file-name
		output goes to example_data/<file-name>.fasta, default big-file
	-v, --verbose
		debug logging on stderr

Every flag can also be set by an environment variable, GENDNA_SIZE,
GENDNA_NUM_LINES and so on.

Bases are A, C, G and T, each equally likely. There is no seed, so
every run gives a different file with the same shape.
A 1 GiB file with the default line length has 13256071 lines.

*/
package main
