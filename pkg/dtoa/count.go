package dtoa

import "math/bits"

var powersOf10 = [20]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// DigitCount returns the number of decimal digits of n. Zero has one digit.
func DigitCount(n uint64) int {
	if n == 0 {
		return 1
	}
	// bits.Len64 × log10(2), corrected by one table lookup.
	approx := (bits.Len64(n) * 1233) >> 12
	if n < powersOf10[approx] {
		return approx
	}
	return approx + 1
}
