package dtoa

import "math/big"

// Range of decimal exponents k for which 10^-k has to be approximated.
// It covers every binary64 exponent, and binary32 is a subset.
const (
	kMin = -324
	kMax = 292
)

const mask63 = 1<<63 - 1

// scaledPow10 holds g = floor(10^-k × 2^-r) + 1 split into 63-bit halves,
// where r is chosen so that 2^125 <= g < 2^126.
type scaledPow10 struct {
	hi, lo uint64
}

var pow10Table [kMax - kMin + 1]scaledPow10

func init() {
	ten := big.NewInt(10)
	low := new(big.Int).SetUint64(mask63)
	for k := kMin; k <= kMax; k++ {
		e := -k
		r := flog2pow10(e) - 125

		num := big.NewInt(1)
		den := big.NewInt(1)
		if e >= 0 {
			num.Exp(ten, big.NewInt(int64(e)), nil)
		} else {
			den.Exp(ten, big.NewInt(int64(-e)), nil)
		}
		if r >= 0 {
			den.Lsh(den, uint(r))
		} else {
			num.Lsh(num, uint(-r))
		}

		g := num.Quo(num, den)
		g.Add(g, big.NewInt(1))

		pow10Table[k-kMin] = scaledPow10{
			hi: new(big.Int).Rsh(g, 63).Uint64(),
			lo: new(big.Int).And(g, low).Uint64(),
		}
	}
}

// g returns the halves of the scaled approximation of 10^-k.
func g(k int) (uint64, uint64) {
	p := pow10Table[k-kMin]
	return p.hi, p.lo
}

// flog10pow2 returns floor(q × log10(2)).
func flog10pow2(q int) int {
	return int((int64(q) * 661_971_961_083) >> 41)
}

// flog10threeQuartersPow2 returns floor(log10(3/4 × 2^q)).
func flog10threeQuartersPow2(q int) int {
	return int((int64(q)*661_971_961_083 - 274_743_187_321) >> 41)
}

// flog2pow10 returns floor(e × log2(10)).
func flog2pow10(e int) int {
	return int((int64(e) * 913_124_641_741) >> 38)
}
