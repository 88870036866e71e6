// Package render lays out a document tree within a maximum line width.
//
// # Overview
//
// [Render] walks a [doc.Node] tree and decides, group by group, whether the
// group is printed on one line (flat) or with its soft breaks turned into
// newlines (broken). The decision follows Wadler's "prettier printer" as
// refined by Lindig: a group is flat when its flat rendering, together with
// whatever follows it up to the next possible line break, fits in the width
// left on the current line. A group that fits exactly at the boundary counts
// as fitting, and a group that contains a hard line break is always broken.
//
//	d := doc.Wrap("[", "]", doc.Join(
//	    doc.Concat(doc.Text(","), doc.Softline()),
//	    []*doc.Node{doc.Int(1), doc.Int(2), doc.Int(3)},
//	))
//	out, err := render.Render(d, render.DefaultConfig())   // "[1, 2, 3]"
//
// The walk keeps its pending work on an explicit stack of (indentation, mode,
// node) items instead of recursing, so arbitrarily deep trees render without
// growing the goroutine stack.
//
// # Configuration
//
// [Config] carries the maximum width, the number of columns per indentation
// level, whether levels are written as tabs, and whether overlong text may be
// wrapped at blanks. A configuration can be decoded from TOML with
// [ParseConfig]:
//
//	max_width = 80
//	indent_width = 2
//	use_tabs = false
//	break_long_text = true
//
// # Output
//
// Blanks at the end of a line are removed when the line is terminated, so a
// separator such as ", " followed by a break leaves no trailing space. A tab
// counts as one indentation level worth of columns.
//
// # Errors
//
// Rendering fails only on malformed documents: text containing a line
// terminator (MULTILINE_TEXT) or indentation driven below zero
// (NEGATIVE_INDENT). The tree is checked before any output is produced, so a
// failed call never returns partial output.
//
// # Concurrency
//
// A [Printer] holds no per-call state. One printer, one configuration and one
// document may be shared by any number of goroutines.
package render
