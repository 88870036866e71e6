package dtoa

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

// Operands of a runtime sum; a constant 0.1 + 0.2 folds to exactly 0.3.
var tenth, fifth = 0.1, 0.2

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"tenth", 0.1, "0.1"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"zero", 0, "0.0"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"one", 1, "1"},
		{"hundred", 100, "100"},
		{"negative fraction", -2.5, "-2.5"},
		{"point inside", 123.456, "123.456"},
		{"third", 1.0 / 3, "0.3333333333333333"},
		{"two thirds", 2.0 / 3, "0.6666666666666666"},
		{"sum rounding", tenth + fifth, "0.30000000000000004"},
		{"smallest fixed", 1e-4, "0.0001"},
		{"first scientific small", 1e-5, "1e-5"},
		{"small with digits", 1.5e-7, "1.5e-7"},
		{"largest fixed", 1e20, "100000000000000000000"},
		{"first scientific large", 1e21, "1e+21"},
		{"two to the 53", 1 << 53, "9007199254740992"},
		{"max float", math.MaxFloat64, "1.7976931348623157e+308"},
		{"smallest subnormal", math.SmallestNonzeroFloat64, "5e-324"},
		{"twice smallest subnormal", 2 * math.SmallestNonzeroFloat64, "1e-323"},
		{"eighteen smallest subnormals", 18 * math.SmallestNonzeroFloat64, "9e-323"},
		{"smallest normal", 0x1p-1022, "2.2250738585072014e-308"},
		{"min float", -math.MaxFloat64, "-1.7976931348623157e+308"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTyped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{100, "100.0"},
		{-7, "-7.0"},
		{0.5, "0.5"},
		{0, "0.0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
	}

	for _, tt := range tests {
		if got := FormatTyped(tt.in); got != tt.want {
			t.Errorf("FormatTyped(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat32(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0.1, "0.1"},
		{1.0 / 3, "0.33333334"},
		{16777216, "16777216"},
		{math.MaxFloat32, "3.4028235e+38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{float32(math.Copysign(0, -1)), "-0.0"},
	}

	for _, tt := range tests {
		if got := Format32(tt.in); got != tt.want {
			t.Errorf("Format32(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendReusesBuffer(t *testing.T) {
	buf := []byte("x=")
	buf = Append(buf, 0.25, Plain)
	buf = append(buf, ',')
	buf = Append(buf, 2, Typed)
	if got := string(buf); got != "x=0.25,2.0" {
		t.Errorf("Append chain = %q, want %q", got, "x=0.25,2.0")
	}
}

// edgeValues are the boundary cases of the binary64 encoding.
var edgeValues = []float64{
	math.SmallestNonzeroFloat64,
	2 * math.SmallestNonzeroFloat64,
	0x1p-1022,
	math.Nextafter(0x1p-1022, 0),
	math.MaxFloat64,
	-math.MaxFloat64,
	1,
	math.Nextafter(1, 2),
	math.Nextafter(1, 0),
	1 << 53,
	1<<53 + 2,
	5e-324,
	9007199254740993,
	0.1,
	1e23,
	8.41e21,
	5.0e-10,
	2.98023223876953125e-8,
}

// randomFloats returns finite, non-zero values drawn uniformly over bit patterns.
func randomFloats(n int) []float64 {
	r := rand.New(rand.NewPCG(1, 2))
	out := make([]float64, 0, n)
	for len(out) < n {
		f := math.Float64frombits(r.Uint64())
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	values := append(append([]float64{0, math.Copysign(0, -1)}, edgeValues...), randomFloats(50000)...)
	for _, x := range values {
		s := Format(x)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("Format(%b) = %q parses to %b", x, s, got)
		}
	}
}

// decompose splits a strconv 'e' formatted value into digits and exponent.
func decompose(s string) (string, int) {
	s = strings.TrimPrefix(s, "-")
	mant, e, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(e)
	digits := strings.Replace(mant, ".", "", 1)
	return digits, exp - (len(digits) - 1)
}

func TestShortestMatchesStrconv(t *testing.T) {
	for _, x := range append(edgeValues, randomFloats(100000)...) {
		digits, exp := Shortest(x)
		wantDigits, wantExp := decompose(strconv.FormatFloat(x, 'e', -1, 64))
		if got := strconv.FormatUint(digits, 10); got != wantDigits || exp != wantExp {
			t.Errorf("Shortest(%v) = %se%d, want %se%d", x, got, exp, wantDigits, wantExp)
		}
	}
}

func TestShortest32MatchesStrconv(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	checked := 0
	for checked < 100000 {
		x := math.Float32frombits(r.Uint32())
		f := float64(x)
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		checked++
		digits, exp := Shortest32(x)
		wantDigits, wantExp := decompose(strconv.FormatFloat(f, 'e', -1, 32))
		if got := strconv.FormatUint(digits, 10); got != wantDigits || exp != wantExp {
			t.Errorf("Shortest32(%v) = %se%d, want %se%d", x, got, exp, wantDigits, wantExp)
		}
	}
}

func TestShortestIsMinimal(t *testing.T) {
	for _, x := range append(edgeValues, randomFloats(20000)...) {
		digits, exp := Shortest(x)
		if digits < 10 {
			continue
		}
		// The two nearest candidates with one digit less bracket every
		// shorter decimal, so neither may round-trip.
		lo := digits / 10
		for _, c := range []uint64{lo, lo + 1} {
			s := strconv.FormatUint(c, 10) + "e" + strconv.Itoa(exp+1)
			// Out-of-range candidates parse to ±Inf and fail the check below.
			got, _ := strconv.ParseFloat(s, 64)
			if got == math.Abs(x) {
				t.Errorf("Shortest(%v) = %de%d, but shorter %s round-trips", x, digits, exp, s)
			}
		}
	}
}

func TestShortestPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shortest(0) did not panic")
		}
	}()
	Shortest(0)
}
