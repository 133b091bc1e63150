package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
	"slices"
	"strings"
)

// Node is a node of a weighted context tree. Every node represents a context,
// i.e. a run of symbols preceding a predicted symbol. Nodes own their children
// and are immutable after tree construction.
type Node struct {
	context  []string // symbols of the context, branching symbol first
	run      []string // symbols following the context in the history
	logKT    float64  // log of the estimator's probability of run
	logCTW   float64  // log of the weighted probability
	children []*Node  // one child per alphabet symbol, in alphabet order; nil for leaves
	alpha    *Alphabet
}

// Context returns the context string this node represents. The root
// represents the empty context.
func (node *Node) Context() string {
	return strings.Join(node.context, "")
}

// Symbols returns the symbols of the node's context.
func (node *Node) Symbols() []string {
	return slices.Clone(node.context)
}

// Depth returns the length of the node's context, in symbols.
func (node *Node) Depth() int {
	return len(node.context)
}

// Run returns the symbols observed immediately after the node's context,
// concatenated in order of occurrence.
func (node *Node) Run() string {
	return strings.Join(node.run, "")
}

// KT returns the estimator's probability of the node's run.
func (node *Node) KT() float64 {
	return math.Exp(node.logKT)
}

// CTW returns the weighted probability of the node.
func (node *Node) CTW() float64 {
	return math.Exp(node.logCTW)
}

// LogKT returns the natural logarithm of KT().
func (node *Node) LogKT() float64 {
	return node.logKT
}

// LogCTW returns the natural logarithm of CTW().
func (node *Node) LogCTW() float64 {
	return node.logCTW
}

// IsLeaf returns true if node is located at the maximum depth of its tree.
func (node *Node) IsLeaf() bool {
	return len(node.children) == 0
}

// Children returns the child nodes in alphabet order. For leaves it returns nil.
func (node *Node) Children() []*Node {
	return slices.Clone(node.children)
}

// Child returns the child for the context symbol+node.Context().
func (node *Node) Child(symbol string) (*Node, bool) {
	if node.IsLeaf() {
		return nil, false
	}
	i, ok := node.alpha.Index(symbol)
	if !ok {
		return nil, false
	}
	return node.children[i], true
}

func (node *Node) String() string {
	return "[" + node.Context() + "]"
}
