// Package value turns Go values and structured text into documents.
//
// # Go Values
//
// [From] describes any Go value by reflection. Types that implement
// [doc.Documenter] describe themselves; errors and [fmt.Stringer]
// implementations print their text; everything else is laid out by kind:
//
//	value.From(Point{X: 1, Y: 2})        // Point{X: 1, Y: 2}
//	value.From(map[string]int{"b": 2})   // {"b": 2}
//	value.From([]float64{1, 0.5})        // [1, 0.5]
//
// Map entries are sorted by key. Struct fields can be controlled with the
// pprint tag, a pointer that leads back to a value already being printed is
// shown as <cycle>:
//
//	type User struct {
//	    Name     string `pprint:"name"` // printed as name: "..."
//	    Password string `pprint:"-"`    // never printed
//	}
//
// # Structured Text
//
// [FromJSON], [FromYAML] and [FromTOML] decode their input and keep the key
// order of the source. Malformed input is reported with the INVALID_INPUT
// error code. Integers keep their literal digits; floating-point numbers are
// reprinted in shortest round-trip form, with a ".0" suffix for integral
// YAML and TOML floats so the type stays visible.
//
// # Lists
//
// Lists and objects are groups: they stay on one line when they fit and put
// one element per line otherwise. With [WithJustify], a list of scalars that
// does not fit is instead packed into lines of balanced length:
//
//	value.From(fib, value.WithJustify(20))
//
//	[
//	    1, 1, 2, 3, 5,
//	    8, 13, 21, 34,
//	    55, 89, 144
//	]
package value
