package dsum

import (
	"dex-checksum-tools/dex/dheader"
)

// Current returns the checksum as stored in the header, unmodified.
func Current(header *dheader.Header) uint32 {
	return header.Checksum()
}

// Expected computes the checksum the header should store: Adler-32
// over everything after the checksum field through end of file.
func Expected(header *dheader.Header) Result {
	region := header.ChecksumRegion()
	return Result{
		Sum:    Adler32(region),
		Length: len(region),
	}
}

// Validate reports whether the stored checksum matches the computed
// one.
func Validate(header *dheader.Header) bool {
	return Current(header) == Expected(header).Sum
}

// Correct rewrites the checksum field with the expected value when the
// stored one is wrong, and reports whether a rewrite happened. Calling
// it again on the corrected buffer is always a no-op.
func Correct(header *dheader.Header) bool {
	expected := Expected(header)
	if Current(header) == expected.Sum {
		return false
	}
	dheader.PutChecksum(header.Raw(), expected.Sum)
	return true
}
