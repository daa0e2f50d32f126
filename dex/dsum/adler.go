package dsum

// AdlerMod is the largest prime below 2^16, per the Adler-32 definition.
const AdlerMod = 65521

type (
	// Result pairs a computed checksum with the length of the region
	// it covered.
	Result struct {
		Sum    uint32 `json:"sum"`
		Length int    `json:"length"`
	}
)

// Adler32 computes the Adler-32 checksum of bs: two running sums
// modulo 65521, a starting at 1 and b at 0, combined as (b<<16)|a.
// The empty input yields 0x00000001.
func Adler32(bs []byte) uint32 {
	var a, b uint32 = 1, 0
	for _, c := range bs {
		a = (a + uint32(c)) % AdlerMod
		b = (b + a) % AdlerMod
	}
	return b<<16 | a
}
