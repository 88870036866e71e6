// Package justify breaks a sequence of fragments into lines of balanced
// length.
//
// Instead of filling every line as far as it goes (see [Greedy]), [Breaks]
// minimizes the total badness of a paragraph, where the badness of a line is
// the cube of its unused width. The cube punishes one very short line more
// than several slightly short ones, so the optimum distributes the slack
// evenly. This is the minimum-raggedness formulation of Knuth and Plass
// without stretchable glue.
//
// A fragment wider than the target width cannot be split here; it is placed
// on a line of its own at zero cost and is allowed to overflow.
package justify

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// Infeasible is the badness of a break list that places several fragments on
// a line wider than the target width.
const Infeasible = math.MaxInt

// Breaks returns the end index (exclusive) of every line in the
// minimum-badness layout of fragments with the given widths. Consecutive
// fragments on a line are separated by sepWidth columns. The last element is
// always len(widths); an empty input yields nil.
func Breaks(widths []int, maxWidth, sepWidth int) []int {
	n := len(widths)
	if n == 0 {
		return nil
	}

	// best[i] is the minimum badness of laying out widths[i:], and next[i]
	// the end of the first line in that layout.
	best := make([]int, n+1)
	next := make([]int, n+1)
	for i := range n {
		best[i] = Infeasible
		next[i] = i + 1
	}

	for i := n - 1; i >= 0; i-- {
		length := 0
		for j := i; j < n; j++ {
			if j > i {
				length += sepWidth
			}
			length += widths[j]

			var cost int
			if length > maxWidth {
				if j > i {
					// Longer lines only get wider.
					break
				}
				cost = 0
			} else {
				cost = cube(maxWidth - length)
			}

			if total := saturatingAdd(cost, best[j+1]); total < best[i] {
				best[i] = total
				next[i] = j + 1
			}
			if length >= maxWidth {
				break
			}
		}
	}

	var ends []int
	for i := 0; i < n; i = next[i] {
		ends = append(ends, next[i])
	}
	return ends
}

// Greedy returns the first-fit line ends: every line takes as many fragments
// as fit before moving on.
func Greedy(widths []int, maxWidth, sepWidth int) []int {
	var ends []int
	length := -1
	for j, w := range widths {
		switch {
		case length < 0:
			length = w
		case length+sepWidth+w <= maxWidth:
			length += sepWidth + w
		default:
			ends = append(ends, j)
			length = w
		}
	}
	if len(widths) > 0 {
		ends = append(ends, len(widths))
	}
	return ends
}

// Badness returns the total cost of the layout given by ends, or
// [Infeasible] if a line with more than one fragment exceeds maxWidth.
func Badness(widths, ends []int, maxWidth, sepWidth int) int {
	total, start := 0, 0
	for _, end := range ends {
		length := 0
		for j := start; j < end; j++ {
			if j > start {
				length += sepWidth
			}
			length += widths[j]
		}
		if length > maxWidth {
			if end-start > 1 {
				return Infeasible
			}
		} else {
			total = saturatingAdd(total, cube(maxWidth-length))
		}
		start = end
	}
	return total
}

// Justify lays out fragments with [Breaks] and returns the joined lines.
// Fragments on one line are separated by sepWidth spaces; widths are counted
// in grapheme clusters.
func Justify(fragments []string, maxWidth, sepWidth int) []string {
	widths := make([]int, len(fragments))
	for i, f := range fragments {
		widths[i] = uniseg.GraphemeClusterCount(f)
	}

	sep := strings.Repeat(" ", max(sepWidth, 0))
	lines := make([]string, 0, len(fragments))
	start := 0
	for _, end := range Breaks(widths, maxWidth, sepWidth) {
		lines = append(lines, strings.Join(fragments[start:end], sep))
		start = end
	}
	return lines
}

func cube(slack int) int {
	if slack >= 2_097_151 {
		return Infeasible - 1
	}
	return slack * slack * slack
}

func saturatingAdd(a, b int) int {
	if a > Infeasible-b {
		return Infeasible
	}
	return a + b
}
