package dtoa

import "math"

// Style selects how integral fixed-point results are written.
type Style uint8

const (
	// Plain writes integral values without a fraction: 1, 100.
	Plain Style = iota
	// Typed appends ".0" to integral fixed-point values: 1.0, 100.0.
	Typed
)

// Fixed-point notation is used for leading-digit exponents in
// [minFixedExp, maxFixedExp).
const (
	minFixedExp = -4
	maxFixedExp = 21
)

// Literal tokens for values without a decimal expansion.
const (
	NaN         = "NaN"
	PosInfinity = "Infinity"
	NegInfinity = "-Infinity"
)

// Format returns the shortest round-trip decimal form of x in [Plain] style.
func Format(x float64) string {
	return string(Append(make([]byte, 0, 24), x, Plain))
}

// FormatTyped returns the shortest round-trip decimal form of x in [Typed]
// style.
func FormatTyped(x float64) string {
	return string(Append(make([]byte, 0, 26), x, Typed))
}

// Format32 returns the shortest decimal form of x that parses back to the
// same float32, in [Plain] style.
func Format32(x float32) string {
	return string(Append32(make([]byte, 0, 16), x, Plain))
}

// Append appends the formatted x to dst and returns the extended buffer.
func Append(dst []byte, x float64, style Style) []byte {
	b := math.Float64bits(x)
	return appendFloat(dst, binary64, b>>63 != 0, b&^(1<<63), math.IsNaN(x), math.IsInf(x, 0), style)
}

// Append32 appends the formatted x to dst and returns the extended buffer.
func Append32(dst []byte, x float32, style Style) []byte {
	b := math.Float32bits(x)
	f := float64(x)
	return appendFloat(dst, binary32, b>>31 != 0, uint64(b&^(1<<31)), math.IsNaN(f), math.IsInf(f, 0), style)
}

// Shortest returns the decimal digits and exponent of x such that
// digits × 10^exp is the shortest decimal that parses back to |x|.
// digits carries no trailing zeros. It panics if x is zero, infinite or NaN.
func Shortest(x float64) (digits uint64, exp int) {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		panic("dtoa: Shortest requires a finite non-zero value")
	}
	return binary64.shortest(math.Float64bits(x) &^ (1 << 63))
}

// Shortest32 is [Shortest] for float32 values.
func Shortest32(x float32) (digits uint64, exp int) {
	f := float64(x)
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic("dtoa: Shortest32 requires a finite non-zero value")
	}
	return binary32.shortest(uint64(math.Float32bits(x) &^ (1 << 31)))
}

func appendFloat(dst []byte, f binaryFormat, neg bool, mag uint64, nan, inf bool, style Style) []byte {
	switch {
	case nan:
		return append(dst, NaN...)
	case inf && neg:
		return append(dst, NegInfinity...)
	case inf:
		return append(dst, PosInfinity...)
	}
	if neg {
		dst = append(dst, '-')
	}
	if mag == 0 {
		return append(dst, "0.0"...)
	}
	digits, exp := f.shortest(mag)
	return appendDecimal(dst, digits, exp, style)
}

// appendDecimal writes digits × 10^exp in fixed or scientific notation.
func appendDecimal(dst []byte, digits uint64, exp int, style Style) []byte {
	var buf [20]byte
	n := DigitCount(digits)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte('0' + digits%10)
		digits /= 10
	}
	d := buf[:n]

	lead := n - 1 + exp
	if lead < minFixedExp || lead >= maxFixedExp {
		dst = append(dst, d[0])
		if n > 1 {
			dst = append(dst, '.')
			dst = append(dst, d[1:]...)
		}
		dst = append(dst, 'e')
		if lead < 0 {
			dst = append(dst, '-')
			lead = -lead
		} else {
			dst = append(dst, '+')
		}
		return appendSmall(dst, lead)
	}

	switch {
	case exp >= 0:
		dst = append(dst, d...)
		for range exp {
			dst = append(dst, '0')
		}
		if style == Typed {
			dst = append(dst, ".0"...)
		}
	case lead >= 0:
		dst = append(dst, d[:lead+1]...)
		dst = append(dst, '.')
		dst = append(dst, d[lead+1:]...)
	default:
		dst = append(dst, '0', '.')
		for range -lead - 1 {
			dst = append(dst, '0')
		}
		dst = append(dst, d...)
	}
	return dst
}

// appendSmall appends a non-negative exponent below 1000.
func appendSmall(dst []byte, v int) []byte {
	switch {
	case v >= 100:
		return append(dst, byte('0'+v/100), byte('0'+v/10%10), byte('0'+v%10))
	case v >= 10:
		return append(dst, byte('0'+v/10), byte('0'+v%10))
	default:
		return append(dst, byte('0'+v))
	}
}
