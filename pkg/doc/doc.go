// Package doc defines the document tree that describes what can be printed
// and where a layout engine may choose to break lines.
//
// # Overview
//
// A document is an immutable tree of [*Node] values. Leaves hold text or line
// breaks; inner nodes concatenate, indent or group their children. Nothing in
// the tree decides the final layout: a [Group] only marks a region that the
// printer renders either entirely on one line (flat) or with all of its
// optional breaks taken (broken).
//
//	list := doc.Wrap("[", "]", doc.Join(
//	    doc.Concat(doc.Text(","), doc.Softline()),
//	    []*doc.Node{doc.Int(1), doc.Int(2), doc.Int(3)},
//	))
//
// Rendered by the render package at a wide enough width this prints
// "[1, 2, 3]"; at a narrow width every element moves to its own indented line.
//
// # Node Kinds
//
//   - [KindNil]: renders nothing
//   - [KindText]: a single-line string
//   - [KindHardline]: a line break that is always taken
//   - [KindSoftline]: a break when its group is broken, a space or nothing when flat
//   - [KindLiteralline]: a forced break that ignores the current indentation
//   - [KindConcat]: children in order
//   - [KindNest]: a child rendered with the indentation level shifted by a delta
//   - [KindGroup]: a layout-choice boundary
//   - [KindIfBreak]: one of two children, chosen by the mode of the enclosing group
//
// Indentation is counted in levels. The printer turns a level into spaces or
// tabs when a line is started.
//
// # Sharing
//
// Nodes have no mutable state. A subtree may appear any number of times in one
// document or in several documents, and the same tree may be rendered from
// many goroutines at once. The constructors only link to nodes that already
// exist, so a tree can never contain a cycle.
//
// # Width
//
// Text width is the number of user-perceived characters (grapheme clusters),
// so "é" written with a combining accent and a flag emoji each count as one
// column.
//
// # Validation
//
// Text containing a line terminator and a [Nest] that drives the indentation
// below zero are contract violations. [Validate] reports them with the
// MULTILINE_TEXT and NEGATIVE_INDENT codes of the errors package; the printer
// runs the same checks before producing any output.
package doc
