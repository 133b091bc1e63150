package formatter

import (
	"fmt"
	"io"

	"github.com/npillmayer/ctw"
)

type nodeids struct {
	idTable map[*ctw.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*ctw.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *ctw.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *ctw.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Edges are labelled with the branching symbol, nodes with their context and
// probabilities. Nodes for which weighting gains over the KT estimate are
// highlighted.
func Dot(tree *ctw.Tree, w io.Writer) error {
	if tree == nil || w == nil {
		return fmt.Errorf("illegal argument: nil")
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	tree.Walk(func(node *ctw.Node) bool {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf(), node.CTW() > node.KT())
		label := fmt.Sprintf("%s\\nkt=%.5f\\nctw=%.5f", dotEscape(node.Context()), node.KT(), node.CTW())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		for _, ch := range node.Children() {
			sym := ch.Symbols()[0]
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"%s\"];\n", ID, ids.alloc(ch), dotEscape(sym))
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black"
		s += ",shape=circle"
	}
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

func dotEscape(s string) string {
	r := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '"' || c == '\\' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(r)
}
