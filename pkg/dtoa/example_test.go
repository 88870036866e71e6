package dtoa_test

import (
	"fmt"
	"math"

	"github.com/matzehuels/prettydoc/pkg/dtoa"
)

func ExampleFormat() {
	a, b := 0.1, 0.2
	fmt.Println(dtoa.Format(a))
	fmt.Println(dtoa.Format(a + b))
	fmt.Println(dtoa.Format(1e21))
	fmt.Println(dtoa.Format(math.Copysign(0, -1)))
	fmt.Println(dtoa.Format(math.NaN()))
	// Output:
	// 0.1
	// 0.30000000000000004
	// 1e+21
	// -0.0
	// NaN
}

func ExampleFormatTyped() {
	fmt.Println(dtoa.Format(42), dtoa.FormatTyped(42))
	// Output:
	// 42 42.0
}

func ExampleShortest() {
	digits, exp := dtoa.Shortest(123.45)
	fmt.Println(digits, exp)
	// Output:
	// 12345 -2
}
