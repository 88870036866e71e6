package doc

import (
	"github.com/rivo/uniseg"
)

// Kind identifies the variant of a [Node].
type Kind uint8

const (
	// KindNil renders as empty text.
	KindNil Kind = iota
	// KindText is an atomic single-line string.
	KindText
	// KindHardline is an unconditional line break followed by indentation.
	KindHardline
	// KindSoftline breaks in broken mode and renders its flat text otherwise.
	KindSoftline
	// KindLiteralline is an unconditional line break without indentation.
	KindLiteralline
	// KindConcat renders its children in order.
	KindConcat
	// KindNest shifts the indentation level of its child.
	KindNest
	// KindGroup renders its child flat if it fits, broken otherwise.
	KindGroup
	// KindIfBreak picks a child by the mode of the enclosing group.
	KindIfBreak
)

var kindNames = [...]string{
	KindNil:         "nil",
	KindText:        "text",
	KindHardline:    "hardline",
	KindSoftline:    "softline",
	KindLiteralline: "literalline",
	KindConcat:      "concat",
	KindNest:        "nest",
	KindGroup:       "group",
	KindIfBreak:     "ifbreak",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a document tree node. Use the constructors in this package to build
// one; the zero value and the nil pointer both behave as [Nil].
type Node struct {
	kind     Kind
	text     string // Text content, or the flat rendering of a Softline
	width    int    // columns of text
	delta    int    // Nest only
	children []*Node
}

// Doc is an alias for [Node] for callers that prefer to spell the type
// doc.Doc.
type Doc = Node

// Documenter is implemented by values that know how to describe themselves
// as a document.
type Documenter interface {
	Doc() *Node
}

var (
	nilNode     = &Node{kind: KindNil}
	hardline    = &Node{kind: KindHardline}
	literalline = &Node{kind: KindLiteralline}
	softline    = &Node{kind: KindSoftline, text: " ", width: 1}
	softbreak   = &Node{kind: KindSoftline}
)

// Nil returns the empty document.
func Nil() *Node { return nilNode }

// Text returns a leaf holding s. s must not contain a line terminator; use
// [Lines] for multi-line strings.
func Text(s string) *Node {
	if s == "" {
		return nilNode
	}
	return &Node{kind: KindText, text: s, width: uniseg.GraphemeClusterCount(s)}
}

// Hardline returns a line break that is taken in every mode.
func Hardline() *Node { return hardline }

// Literalline returns a forced line break after which the line starts at
// column zero, whatever the current indentation.
func Literalline() *Node { return literalline }

// Softline returns a break that renders as a single space in flat mode.
func Softline() *Node { return softline }

// Softbreak returns a break that renders as nothing in flat mode.
func Softbreak() *Node { return softbreak }

// Concat returns the concatenation of docs. Nil entries are dropped, and a
// single remaining child is returned as is.
func Concat(docs ...*Node) *Node {
	children := make([]*Node, 0, len(docs))
	for _, d := range docs {
		if d == nil || d.kind == KindNil {
			continue
		}
		children = append(children, d)
	}
	switch len(children) {
	case 0:
		return nilNode
	case 1:
		return children[0]
	}
	return &Node{kind: KindConcat, children: children}
}

// Nest renders d with the indentation level shifted by delta. A negative delta
// dedents; the effective level must never drop below zero.
func Nest(delta int, d *Node) *Node {
	if delta == 0 {
		return orNil(d)
	}
	return &Node{kind: KindNest, delta: delta, children: []*Node{orNil(d)}}
}

// Group marks d as a unit that is rendered either entirely flat or broken.
func Group(d *Node) *Node {
	d = orNil(d)
	if d.kind == KindGroup {
		return d
	}
	return &Node{kind: KindGroup, children: []*Node{d}}
}

// IfBreak renders flat when the nearest enclosing group is flat and broken
// otherwise. Outside of any group flat is chosen.
func IfBreak(flat, broken *Node) *Node {
	return &Node{kind: KindIfBreak, children: []*Node{orNil(flat), orNil(broken)}}
}

func orNil(d *Node) *Node {
	if d == nil {
		return nilNode
	}
	return d
}

// Kind returns the variant of n.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNil
	}
	return n.kind
}

// Str returns the text of a Text node or the flat rendering of a Softline.
func (n *Node) Str() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Width returns the column width of [Node.Str].
func (n *Node) Width() int {
	if n == nil {
		return 0
	}
	return n.width
}

// Delta returns the indentation shift of a Nest node.
func (n *Node) Delta() int {
	if n == nil {
		return 0
	}
	return n.delta
}

// Len returns the number of children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child. It panics if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Flat returns the flat branch of an IfBreak node, or nil.
func (n *Node) Flat() *Node {
	if n.Kind() != KindIfBreak {
		return nil
	}
	return n.children[0]
}

// Broken returns the broken branch of an IfBreak node, or nil.
func (n *Node) Broken() *Node {
	if n.Kind() != KindIfBreak {
		return nil
	}
	return n.children[1]
}
