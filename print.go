package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/uax11"
)

// Pad right-aligns a context string to a given width. The width is measured
// in fixed-width display positions (“en”s), respecting wide characters
// according to UAX#11.
func Pad(context string, width int) string {
	w := DisplayWidth(context)
	if w >= width {
		return context
	}
	return strings.Repeat(" ", width-w) + context
}

// DisplayWidth returns the number of fixed-width display positions a
// context string occupies. Symbols are measured one by one: ASCII symbols
// occupy a single position, all others are measured according to UAX#11.
//
// ASCII digits, '#' and '*' must not be handed to UAX#11 width calculation,
// as they are emoji keycap bases and would be reported as wide.
func DisplayWidth(context string) int {
	w := 0
	for _, sym := range Segment(context) {
		if len(sym) == 1 && sym[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(sym), uax11.LatinContext)
	}
	return w
}

// Line formats a single node of the tree as
//
//	<context> -> kt = <kt>; ctw = <ctw>
//
// with the context right-aligned to the width of the tree's maximum depth and
// probabilities fixed to 5 decimal places.
func (t *Tree) Line(node *Node) string {
	return fmt.Sprintf("%s -> kt = %2.5f; ctw = %2.5f", Pad(node.Context(), t.depth),
		node.KT(), node.CTW())
}

// String renders the tree with one line per node, in pre-order.
func (t *Tree) String() string {
	if t == nil || t.root == nil {
		return ""
	}
	var b strings.Builder
	t.Walk(func(node *Node) bool {
		b.WriteString(t.Line(node))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
