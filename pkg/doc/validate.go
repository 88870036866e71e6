package doc

import (
	"strings"

	"github.com/matzehuels/prettydoc/pkg/errors"
)

type levelNode struct {
	level int
	node  *Node
}

// Validate walks every branch of d and reports the first contract violation
// in document order: a Text containing a line terminator (MULTILINE_TEXT) or
// a Nest that drives the indentation level below zero (NEGATIVE_INDENT).
// Both branches of an IfBreak are checked.
func Validate(d *Node) error {
	stack := []levelNode{{0, orNil(d)}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := it.node
		switch n.kind {
		case KindText:
			if err := CheckText(n.text); err != nil {
				return err
			}
		case KindNest:
			level := it.level + n.delta
			if level < 0 {
				return NegativeIndent(it.level, n.delta)
			}
			stack = append(stack, levelNode{level, n.children[0]})
		case KindConcat, KindGroup, KindIfBreak:
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, levelNode{it.level, n.children[i]})
			}
		}
	}
	return nil
}

// CheckText returns a MULTILINE_TEXT error if s contains a line terminator.
func CheckText(s string) error {
	if i := strings.IndexAny(s, "\n\r"); i >= 0 {
		return errors.New(errors.ErrCodeMultilineText, "text %q has a line terminator at byte %d", s, i)
	}
	return nil
}

// NegativeIndent returns the NEGATIVE_INDENT error for applying delta at the
// given level.
func NegativeIndent(level, delta int) error {
	return errors.New(errors.ErrCodeNegativeIndent, "nest by %d at indentation level %d", delta, level)
}

// FlatWidth returns the width of d rendered on a single line: softlines take
// their flat text, IfBreak nodes their flat branch, and hard breaks count as
// zero.
func FlatWidth(d *Node) int {
	width := 0
	stack := []*Node{orNil(d)}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.kind {
		case KindText, KindSoftline:
			width += n.width
		case KindConcat:
			stack = append(stack, n.children...)
		case KindNest, KindGroup, KindIfBreak:
			stack = append(stack, n.children[0])
		}
	}
	return width
}
