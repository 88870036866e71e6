// Package pkg provides the libraries of prettydoc, a width-aware pretty
// printer for structured data.
//
// # Overview
//
// Printing is split into two steps. A caller first describes the output as a
// document: a tree of text, possible line breaks, indentation and groups.
// The layout engine then resolves every group against a maximum line width,
// printing it on one line when it fits and breaking it otherwise.
//
//	Go value / JSON / YAML / TOML
//	         ↓
//	    [value] package (build a document)
//	         ↓
//	    [doc] package (document tree + combinators)
//	         ↓
//	    [render] package (fit groups to the width)
//	         ↓
//	    string
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/prettydoc/pkg/doc"
//	    "github.com/matzehuels/prettydoc/pkg/render"
//	)
//
//	items := []*doc.Node{doc.Int(1), doc.Int(2), doc.Int(3)}
//	d := doc.Wrap("[", "]", doc.Join(doc.Concat(doc.Text(","), doc.Softline()), items))
//
//	out, err := render.Render(d, render.Config{MaxWidth: 80, IndentWidth: 2})
//	// out == "[1, 2, 3]"
//
// # Main Packages
//
// [doc] - The immutable document tree: Text, Hardline, Softline, Concat,
// Nest, Group and IfBreak nodes, plus Join, Wrap, Indent, Dedent and
// SmartJoin combinators and numeric leaves.
//
// [render] - The Wadler/Lindig layout engine. Uses an explicit work stack,
// so deeply nested documents do not recurse.
//
// [dtoa] - Shortest round-trip formatting of float64 and float32 values
// (Schubfach). Every numeric leaf of a document goes through it.
//
// [justify] - Minimum-raggedness line breaking. Backs [doc.SmartJoin], which
// packs short items into lines of balanced length.
//
// [value] - Documents from Go values by reflection, and from JSON, YAML and
// TOML input with the key order preserved.
//
// [errors] - Structured error codes shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [doc]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/doc
// [render]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/render
// [dtoa]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/dtoa
// [justify]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/justify
// [value]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/value
// [errors]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/errors
// [doc.SmartJoin]: https://pkg.go.dev/github.com/matzehuels/prettydoc/pkg/doc#SmartJoin
package pkg
