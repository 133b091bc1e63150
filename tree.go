package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Tree is a weighted context tree for a fixed past, sequence and maximum depth.
//
// A tree is completely built by New and immutable afterwards. It is a complete
// |A|-ary tree of height depth, holding one node for every context of length
// 0…depth. It is safe to share a tree between goroutines for reading.
type Tree struct {
	alpha    *Alphabet
	est      Estimator
	past     []string
	sequence []string
	depth    int
	root     *Node
	canon    []int // alphabet positions in canonical symbol order
	verbose  bool
	observer func(Search)
	parallel bool
}

// Option configures the construction of a tree.
type Option func(*Tree)

// Verbose switches on diagnostic output: every context search is traced to the
// core tracer on level Info, reporting the context, the scanned history and
// the resulting run of symbols.
func Verbose(on bool) Option {
	return func(t *Tree) {
		t.verbose = on
	}
}

// WithObserver sets a function to be called for every context search during
// tree construction. If the tree is built in parallel, observer must be
// safe for concurrent use.
func WithObserver(observer func(Search)) Option {
	return func(t *Tree) {
		t.observer = observer
	}
}

// WithOrder sets the iteration order of the alphabet, given as a comparison
// function for symbols. It determines the order of children and thus of tree
// traversals. The default is strings.Compare.
func WithOrder(cmp func(a, b string) int) Option {
	return func(t *Tree) {
		if cmp != nil {
			t.alpha, _ = newAlphabet(t.alpha.symbols, nil, cmp)
		}
	}
}

// Parallel lets New build the sub-trees of the root's children concurrently.
// The resulting tree is identical to one built sequentially.
func Parallel(on bool) Option {
	return func(t *Tree) {
		t.parallel = on
	}
}

// New creates a weighted context tree for a past, a sequence and a maximum
// context depth. The alphabet is the set of symbols occurring in past or
// sequence.
//
// New returns ErrInvalidDepth for a negative depth and ErrEmptyAlphabet if
// both past and sequence are empty. In case of an error no tree is returned.
func New(past, sequence string, depth int, opts ...Option) (*Tree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("cannot create context tree of depth %d: %w", depth, ErrInvalidDepth)
	}
	t := &Tree{
		past:     Segment(past),
		sequence: Segment(sequence),
		depth:    depth,
	}
	var err error
	if t.alpha, err = newAlphabet(t.past, t.sequence, strings.Compare); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(t)
	}
	t.est = NewEstimator(t.alpha.Size())
	t.canon = canonicalOrder(t.alpha)
	T().P("ctw", "new").Debugf("building tree of depth %d over alphabet %s", depth, t.alpha)
	if t.parallel && depth > 0 {
		t.root = t.buildParallel()
	} else {
		t.root = t.buildNode(nil)
	}
	T().P("ctw", "new").Debugf("tree complete, ctw = %g", t.root.CTW())
	return t, nil
}

// canonicalOrder returns the positions of the alphabet's symbols sorted
// byte-wise. Products over children are always summed up in this order, making
// results independent of the alphabet's iteration order.
func canonicalOrder(alpha *Alphabet) []int {
	canon := make([]int, alpha.Size())
	for i := range canon {
		canon[i] = i
	}
	slices.SortFunc(canon, func(i, j int) int {
		return strings.Compare(alpha.symbols[i], alpha.symbols[j])
	})
	return canon
}

// buildNode recursively builds the node for ctx and all of its descendents.
// Nodes are finalized in post-order.
func (t *Tree) buildNode(ctx []string) *Node {
	node := t.newNode(ctx)
	if len(ctx) < t.depth {
		node.children = make([]*Node, t.alpha.Size())
		for i, x := range t.alpha.symbols {
			node.children[i] = t.buildNode(prepend(x, ctx))
		}
		t.weigh(node)
	}
	return node
}

// buildParallel builds the root and lets the children of the root be built
// concurrently, with at most GOMAXPROCS branches in flight. Building a branch
// cannot fail once New has checked its preconditions.
func (t *Tree) buildParallel() *Node {
	root := t.newNode(nil)
	root.children = make([]*Node, t.alpha.Size())
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, x := range t.alpha.symbols {
		i, x := i, x
		g.Go(func() error {
			root.children[i] = t.buildNode([]string{x})
			return nil
		})
	}
	_ = g.Wait()
	t.weigh(root)
	return root
}

// newNode creates a node for ctx with its KT probability set. Its CTW
// probability is set to KT, which is final for leaves.
func (t *Tree) newNode(ctx []string) *Node {
	run := t.collect(ctx)
	node := &Node{
		context: ctx,
		run:     run,
		logKT:   t.est.LogProbabilityOfString(run),
		alpha:   t.alpha,
	}
	node.logCTW = node.logKT
	T().Debugf("%*s -> %s", t.depth, node.Context(), strings.Join(run, ""))
	return node
}

// weigh sets the CTW probability of an inner node from its KT probability and
// the CTW probabilities of its (complete) children.
func (t *Tree) weigh(node *Node) {
	logprod := 0.0
	for _, i := range t.canon {
		logprod += node.children[i].logCTW
	}
	node.logCTW = mix(node.logKT, logprod)
}

func prepend(x string, ctx []string) []string {
	c := make([]string, 0, len(ctx)+1)
	c = append(c, x)
	return append(c, ctx...)
}

// --- Read access -----------------------------------------------------------

// Root returns the root node, representing the empty context.
func (t *Tree) Root() *Node {
	return t.root
}

// Alphabet returns the alphabet of the tree.
func (t *Tree) Alphabet() *Alphabet {
	return t.alpha
}

// Depth returns the maximum context depth of the tree.
func (t *Tree) Depth() int {
	return t.depth
}

// Past returns the past the tree has been built for.
func (t *Tree) Past() string {
	return strings.Join(t.past, "")
}

// Sequence returns the sequence the tree has been built for.
func (t *Tree) Sequence() string {
	return strings.Join(t.sequence, "")
}

// Probability returns the CTW probability of the sequence, i.e. the CTW
// probability of the root.
func (t *Tree) Probability() float64 {
	return t.root.CTW()
}

// LogProbability returns the natural logarithm of Probability().
func (t *Tree) LogProbability() float64 {
	return t.root.logCTW
}

// CodeLength returns the ideal code length of the sequence in bits, i.e.
// the number of bits an arithmetic coder driven by the tree would need.
func (t *Tree) CodeLength() float64 {
	return -t.root.logCTW / math.Ln2
}

// Size returns the number of nodes of the tree, which is the sum of |A|^i for
// i = 0…depth.
func (t *Tree) Size() int {
	n := 0
	t.Walk(func(*Node) bool {
		n++
		return true
	})
	return n
}

// Lookup finds the node for a context.
func (t *Tree) Lookup(context string) (*Node, bool) {
	ctx := Segment(context)
	if len(ctx) > t.depth {
		return nil, false
	}
	// the first symbol of a context is the most recent branching
	node := t.root
	for i := len(ctx) - 1; i >= 0; i-- {
		var ok bool
		if node, ok = node.Child(ctx[i]); !ok {
			return nil, false
		}
	}
	return node, true
}

// Walk visits the nodes of the tree in pre-order, i.e. a node before its
// children, children in alphabet order. If f returns false, the children of
// the current node are skipped.
func (t *Tree) Walk(f func(*Node) bool) {
	walk(t.root, f)
}

func walk(node *Node, f func(*Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, ch := range node.children {
		walk(ch, f)
	}
}

// ProbabilityOfSymbol returns the estimator's probability for symbol after
// having observed the run prior.
func (t *Tree) ProbabilityOfSymbol(prior, symbol string) float64 {
	return t.est.ProbabilityOfSymbol(Segment(prior), symbol)
}

// ProbabilityOfString returns the estimator's sequential probability of run.
func (t *Tree) ProbabilityOfString(run string) float64 {
	return t.est.ProbabilityOfString(Segment(run))
}
