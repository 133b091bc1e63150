/*
Package formatter renders weighted context trees on various output devices.

Every renderer visits the nodes of a tree in pre-order, i.e. a node before its
children, children in alphabet order. The textual renderers produce one line
per node:

	<context> -> kt = <kt>; ctw = <ctw>

with the context right-aligned to the maximum depth of the tree and
probabilities fixed to 5 decimal places. Available renderers are

▪︎ Text: plain lines, identical to the output of ctw.Tree.String

▪︎ Console: lines colored for terminals, using ANSI escape sequences

▪︎ HTML: a nested list of contexts, suitable for inclusion into web pages

▪︎ Dot: the structure of the tree in Graphviz DOT format (for debugging)

Alignment of contexts is measured in display width according to UAX#11,
so contexts containing wide (e.g., CJK) symbols line up correctly on
terminals with fixed-width fonts.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ctw'
func tracer() tracing.Trace {
	return tracing.Select("ctw")
}
