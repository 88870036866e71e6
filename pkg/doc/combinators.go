package doc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/prettydoc/pkg/dtoa"
	"github.com/matzehuels/prettydoc/pkg/justify"
)

// Join places sep between consecutive docs.
func Join(sep *Node, docs []*Node) *Node {
	if len(docs) == 0 {
		return nilNode
	}
	parts := make([]*Node, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Wrap surrounds d with open and close. The result is a group: when it does
// not fit, d moves to its own lines one level deeper and close returns to the
// outer indentation.
//
//	[1, 2, 3]      [
//	                   1,
//	                   2,
//	                   3
//	               ]
func Wrap(open, close string, d *Node) *Node {
	return Group(Concat(
		Text(open),
		Indent(Concat(Softbreak(), d)),
		Softbreak(),
		Text(close),
	))
}

// Indent renders d one level deeper.
func Indent(d *Node) *Node { return Nest(1, d) }

// Dedent renders d one level shallower.
func Dedent(d *Node) *Node { return Nest(-1, d) }

// SmartJoin joins docs with sep like [Join], but distributes them over lines
// of balanced length instead of one per line. The line breaks are chosen once,
// at construction, by minimizing the cube of the unused width of every line
// at the given width; each line except the last ends with sep followed by a
// hard line break. The flat widths of docs and sep are used as their lengths.
func SmartJoin(width int, sep *Node, docs []*Node) *Node {
	if len(docs) == 0 {
		return nilNode
	}

	sepWidth := FlatWidth(sep)
	widths := make([]int, len(docs))
	for i, d := range docs {
		widths[i] = FlatWidth(d)
	}

	// Leave room for the separator that closes a line.
	budget := max(width-sepWidth, 1)

	lines := make([]*Node, 0, len(docs))
	start := 0
	for _, end := range justify.Breaks(widths, budget, sepWidth) {
		lines = append(lines, Join(sep, docs[start:end]))
		start = end
	}
	return Join(Concat(sep, Hardline()), lines)
}

// Textf formats according to a format specifier and returns the result as a
// Text leaf.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Lines splits s at line terminators (\n, \r\n or \r) and joins the pieces
// with hard line breaks.
func Lines(s string) *Node {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	parts := strings.Split(s, "\n")
	docs := make([]*Node, len(parts))
	for i, p := range parts {
		docs[i] = Text(p)
	}
	return Join(Hardline(), docs)
}

// Int returns the decimal form of n.
func Int(n int64) *Node { return Text(strconv.FormatInt(n, 10)) }

// Uint returns the decimal form of n.
func Uint(n uint64) *Node { return Text(strconv.FormatUint(n, 10)) }

// Float returns the shortest round-trip decimal form of x; integral values
// print without a fraction.
func Float(x float64) *Node { return Text(dtoa.Format(x)) }

// FloatTyped is like [Float] but integral values keep a ".0" suffix.
func FloatTyped(x float64) *Node { return Text(dtoa.FormatTyped(x)) }

// Float32 returns the shortest decimal form of x that parses back to the same
// float32.
func Float32(x float32) *Node { return Text(dtoa.Format32(x)) }

// Bool returns "true" or "false".
func Bool(b bool) *Node { return Text(strconv.FormatBool(b)) }
