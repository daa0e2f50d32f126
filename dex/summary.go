package dex

import (
	"dex-checksum-tools/dex/dheader"
	"dex-checksum-tools/dex/dsum"
)

type (
	// Summary describes the checksum state of one DEX buffer.
	Summary struct {
		Version      string `json:"version"`
		Current      uint32 `json:"current_checksum"`
		Expected     uint32 `json:"expected_checksum"`
		RegionLength int    `json:"region_length"`
		Valid        bool   `json:"valid"`
	}
)

func Summarize(bs []byte) (*Summary, error) {
	header, err := dheader.Parse(bs)
	if err != nil {
		return nil, err
	}
	expected := dsum.Expected(header)
	return &Summary{
		Version:      header.Version(),
		Current:      dsum.Current(header),
		Expected:     expected.Sum,
		RegionLength: expected.Length,
		Valid:        dsum.Current(header) == expected.Sum,
	}, nil
}

// CorrectChecksum parses bs, rewrites its checksum field in place when
// the stored value is wrong, and reports whether a rewrite happened.
func CorrectChecksum(bs []byte) (bool, error) {
	header, err := dheader.Parse(bs)
	if err != nil {
		return false, err
	}
	return dsum.Correct(header), nil
}
