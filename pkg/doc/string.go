package doc

import (
	"fmt"
	"strings"
)

// String returns the tree structure of n as indented markup, one node per
// line. It is meant for debugging document construction, not for output.
//
//	<group>
//		<text width=1 content="["/>
//		<nest delta=1>
//			<softline flat=""/>
//	...
func (n *Node) String() string {
	type item struct {
		depth int
		node  *Node
		close bool
	}

	var sb strings.Builder
	stack := []item{{0, orNil(n), false}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(strings.Repeat("\t", it.depth))
		d := it.node
		if it.close {
			fmt.Fprintf(&sb, "</%s>\n", d.kind)
			continue
		}

		switch d.kind {
		case KindText:
			fmt.Fprintf(&sb, "<text width=%d content=%q/>\n", d.width, d.text)
		case KindSoftline:
			fmt.Fprintf(&sb, "<softline flat=%q/>\n", d.text)
		case KindNil, KindHardline, KindLiteralline:
			fmt.Fprintf(&sb, "<%s/>\n", d.kind)
		default:
			if d.kind == KindNest {
				fmt.Fprintf(&sb, "<nest delta=%d>\n", d.delta)
			} else {
				fmt.Fprintf(&sb, "<%s>\n", d.kind)
			}
			stack = append(stack, item{it.depth, d, true})
			for i := len(d.children) - 1; i >= 0; i-- {
				stack = append(stack, item{it.depth + 1, d.children[i], false})
			}
		}
	}
	return sb.String()
}
