// Package dtoa converts binary floating-point values to their shortest
// round-trip decimal representation.
//
// # Overview
//
// For every finite, non-zero input the formatter produces the decimal digit
// string d and exponent e such that d × 10^e parses back to exactly the same
// float, d has the minimum number of digits among all such strings, and among
// the minimal candidates d is the one closest to the exact binary value (ties
// go to the even digit).
//
// The conversion follows Raffaello Giulietti's Schubfach algorithm: the float
// is decomposed into an integer significand c and binary exponent q, the
// rounding interval around c × 2^q is scaled by a 126-bit approximation of a
// power of ten, and the shortest decimal inside the interval is selected with
// integer arithmetic only. The powers of ten are computed exactly with
// math/big when the package is initialized.
//
// # Notation
//
// Let E be the decimal exponent of the leading digit (d.ddd × 10^E).
// Fixed-point notation is used when -4 <= E < 21, scientific notation
// otherwise:
//
//	0.0001                  1e-5
//	123.456                 1.5e+300
//	100000000000000000000   1e+21
//
// Special values render as NaN, Infinity, -Infinity, 0.0 and -0.0. Zero
// always carries its fraction so that the sign of negative zero stays visible.
//
// # Styles
//
// [Plain] leaves integral values bare (1, 100). [Typed] appends ".0" to an
// integral fixed-point result (1.0, 100.0) so the output reads as a float;
// scientific results are already unambiguous and are never changed.
//
//	dtoa.Format(0.1)       // "0.1"
//	dtoa.Format(3)         // "3"
//	dtoa.FormatTyped(3)    // "3.0"
//	dtoa.Format32(0.1)     // "0.1"
package dtoa
