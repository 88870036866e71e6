package dtoa

import "math/bits"

// binaryFormat describes an IEEE 754 binary interchange format. A finite
// value is c × 2^q with integer significand c.
type binaryFormat struct {
	precision int  // significand bits including the hidden bit
	expBits   uint // width of the biased exponent field
	qMin      int  // q of subnormal values
}

var (
	binary64 = binaryFormat{precision: 53, expBits: 11, qMin: -1074}
	binary32 = binaryFormat{precision: 24, expBits: 8, qMin: -149}
)

// shortest returns the shortest decimal digits × 10^exp for the finite,
// non-zero magnitude encoded in b (sign bit already cleared).
func (f binaryFormat) shortest(b uint64) (uint64, int) {
	mantBits := uint(f.precision - 1)
	t := b & (1<<mantBits - 1)
	bq := int(b>>mantBits) & (1<<f.expBits - 1)

	if bq != 0 {
		mq := -f.qMin + 1 - bq
		c := 1<<mantBits | t
		// Integers below 2^precision are their own shortest form.
		if 0 < mq && mq < f.precision {
			n := c >> uint(mq)
			if n<<uint(mq) == c {
				return trimZeros(n, 0)
			}
		}
		return f.toDecimal(-mq, c)
	}
	return f.toDecimal(f.qMin, t)
}

func (f binaryFormat) toDecimal(q int, c uint64) (uint64, int) {
	// Odd significands exclude the interval bounds.
	out := c & 1
	cb := c << 2
	cbr := cb + 2

	var cbl uint64
	var k int
	if c != 1<<uint(f.precision-1) || q == f.qMin {
		cbl = cb - 2
		k = flog10pow2(q)
	} else {
		// The gap below a power of two is half the gap above it.
		cbl = cb - 1
		k = flog10threeQuartersPow2(q)
	}
	h := uint(q + flog2pow10(-k) + 2)

	g1, g0 := g(k)
	vb := rop(g1, g0, cb<<h)
	vbl := rop(g1, g0, cbl<<h)
	vbr := rop(g1, g0, cbr<<h)

	// The interval is narrower than 10 × 10^k, so it holds at most one
	// multiple of ten and that one beats both s and s+1 on length.
	s := vb >> 2
	if s >= 10 {
		sp10 := s / 10 * 10
		tp10 := sp10 + 10
		upin := vbl+out <= sp10<<2
		wpin := tp10<<2+out <= vbr
		if upin != wpin {
			if upin {
				return trimZeros(sp10, k)
			}
			return trimZeros(tp10, k)
		}
	}

	t := s + 1
	uin := vbl+out <= s<<2
	win := t<<2+out <= vbr
	if uin != win {
		if uin {
			return trimZeros(s, k)
		}
		return trimZeros(t, k)
	}

	cmp := int64(vb) - int64((s+t)<<1)
	if cmp < 0 || cmp == 0 && s&1 == 0 {
		return trimZeros(s, k)
	}
	return trimZeros(t, k)
}

// rop computes floor(g × cp / 2^127) with the lowest bit forced to one when
// the discarded fraction is non-zero (round to odd).
func rop(g1, g0, cp uint64) uint64 {
	x1, _ := bits.Mul64(g0, cp)
	y1, y0 := bits.Mul64(g1, cp)
	z := y0>>1 + x1
	vbp := y1 + z>>63
	return vbp | ((z&mask63)+mask63)>>63
}

func trimZeros(d uint64, exp int) (uint64, int) {
	for d%10 == 0 {
		d /= 10
		exp++
	}
	return d, exp
}
