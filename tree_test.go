package ctw

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const eps = 1e-12

func TestTreeExample(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New("10", "1011010", 2, Verbose(true))
	if err != nil {
		t.Fatal(err.Error())
	}
	if tree.Root().Context() != "" {
		t.Errorf("expected root to represent empty context, is %q", tree.Root().Context())
	}
	if got := tree.Alphabet().String(); got != `{"0", "1"}` {
		t.Errorf("expected alphabet {0,1}, is %s", got)
	}
	expected := []struct {
		ctx     string
		run     string
		kt, ctw float64
	}{
		{"", "1011010", 0.00244140625, 0.0067138671875},
		{"0", "111", 0.3125, 0.3125},
		{"00", "", 1, 1},
		{"10", "111", 0.3125, 0.3125},
		{"1", "0100", 0.0390625, 0.03515625},
		{"01", "010", 0.0625, 0.0625},
		{"11", "0", 0.5, 0.5},
	}
	i := 0
	tree.Walk(func(node *Node) bool {
		if i >= len(expected) {
			t.Fatalf("too many nodes in tree")
		}
		x := expected[i]
		if node.Context() != x.ctx {
			t.Errorf("expected node #%d to be %q, is %q", i, x.ctx, node.Context())
		}
		if node.Run() != x.run {
			t.Errorf("expected run of %q to be %q, is %q", x.ctx, x.run, node.Run())
		}
		if math.Abs(node.KT()-x.kt) > eps || math.Abs(node.CTW()-x.ctw) > eps {
			t.Errorf("node %q: expected kt=%g, ctw=%g; have kt=%g, ctw=%g", x.ctx,
				x.kt, x.ctw, node.KT(), node.CTW())
		}
		i++
		return true
	})
	if i != len(expected) {
		t.Errorf("expected %d nodes, have %d", len(expected), i)
	}
}

func TestTreeString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree, err := New("10", "1011010", 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	expected := "   -> kt = 0.00244; ctw = 0.00671\n" +
		" 0 -> kt = 0.31250; ctw = 0.31250\n" +
		"00 -> kt = 1.00000; ctw = 1.00000\n" +
		"10 -> kt = 0.31250; ctw = 0.31250\n" +
		" 1 -> kt = 0.03906; ctw = 0.03516\n" +
		"01 -> kt = 0.06250; ctw = 0.06250\n" +
		"11 -> kt = 0.50000; ctw = 0.50000\n"
	if tree.String() != expected {
		t.Errorf("unexpected rendering of tree:\n%s", tree)
	}
}

func TestTreeErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New("", "", 2)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, have %v", err)
	}
	if tree != nil {
		t.Errorf("expected no tree to be returned for empty alphabet")
	}
	tree, err = New("10", "1011010", -1)
	if !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("expected ErrInvalidDepth, have %v", err)
	}
	if tree != nil {
		t.Errorf("expected no tree to be returned for negative depth")
	}
	// a past alone yields an alphabet
	if _, err = New("ab", "", 1); err != nil {
		t.Errorf("expected tree for empty sequence, have error %v", err)
	}
}

func TestTreeInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []struct {
		past, seq string
		depth     int
	}{
		{"10", "1011010", 0},
		{"10", "1011010", 3},
		{"", "abracadabra", 2},
		{"xyz", "zyxxyzzy", 3},
		{"0", "0", 4},
		{"", "Grüße, 世界!", 1},
	}
	for _, in := range inputs {
		tree, err := New(in.past, in.seq, in.depth)
		if err != nil {
			t.Fatal(err.Error())
		}
		size := 0
		a := tree.Alphabet().Size()
		for i, n := 0, 1; i <= in.depth; i, n = i+1, n*a {
			size += n
		}
		if tree.Size() != size {
			t.Errorf("%q/%d: expected %d nodes, have %d", in.seq, in.depth, size, tree.Size())
		}
		tree.Walk(func(node *Node) bool {
			if node.KT() < 0 || node.KT() > 1 || node.CTW() < 0 || node.CTW() > 1 {
				t.Errorf("%q: probabilities of %v out of range: kt=%g, ctw=%g",
					in.seq, node, node.KT(), node.CTW())
			}
			if node.Depth() == in.depth {
				if !node.IsLeaf() {
					t.Errorf("expected node %v at max depth to be a leaf", node)
				}
				if node.CTW() != node.KT() {
					t.Errorf("expected ctw == kt for leaf %v", node)
				}
			} else {
				prod := 1.0
				for _, ch := range node.Children() {
					prod *= ch.CTW()
				}
				if math.Abs(node.CTW()-(0.5*node.KT()+0.5*prod)) > 1e-9 {
					t.Errorf("%v: ctw %g is not a mixture of kt and children", node, node.CTW())
				}
			}
			return true
		})
	}
}

func TestTreeDepthZero(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New("10", "1011010", 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	root := tree.Root()
	if !root.IsLeaf() {
		t.Errorf("expected root to be a leaf for depth 0")
	}
	p := tree.ProbabilityOfString("1011010")
	if root.CTW() != root.KT() || root.KT() != p {
		t.Errorf("expected ctw = kt = %g, have ctw=%g, kt=%g", p, root.CTW(), root.KT())
	}
	if tree.String() != " -> kt = 0.00244; ctw = 0.00244\n" {
		t.Errorf("unexpected rendering %q", tree.String())
	}
}

func TestTreeOrderIndependence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	past, seq := "ca", "abcabbacbcaab"
	tree1, err := New(past, seq, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	reverse := func(a, b string) int { return strings.Compare(b, a) }
	tree2, err := New(past, seq, 3, WithOrder(reverse))
	if err != nil {
		t.Fatal(err.Error())
	}
	if tree2.Root().Children()[0].Context() != "c" {
		t.Errorf("expected first child of reversed tree to be 'c', is %v",
			tree2.Root().Children()[0])
	}
	n := 0
	tree1.Walk(func(node *Node) bool {
		other, ok := tree2.Lookup(node.Context())
		if !ok {
			t.Fatalf("context %q not found in reversed tree", node.Context())
		}
		if node.KT() != other.KT() || node.CTW() != other.CTW() {
			t.Errorf("context %q: values differ, %g/%g vs %g/%g", node.Context(),
				node.KT(), node.CTW(), other.KT(), other.CTW())
		}
		n++
		return true
	})
	if n != 1+3+9+27 {
		t.Errorf("expected 40 nodes to be compared, have %d", n)
	}
}

func TestTreeParallel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	seq := "the quick brown fox jumps over the lazy dog"
	tree1, err := New("", seq, 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	tree2, err := New("", seq, 2, Parallel(true))
	if err != nil {
		t.Fatal(err.Error())
	}
	if tree1.Size() != tree2.Size() {
		t.Fatalf("expected trees of equal size, have %d and %d", tree1.Size(), tree2.Size())
	}
	if tree1.String() != tree2.String() {
		t.Errorf("expected parallel build to render identically")
	}
	if tree1.LogProbability() != tree2.LogProbability() {
		t.Errorf("expected identical probabilities, have %g and %g",
			tree1.LogProbability(), tree2.LogProbability())
	}
}

func TestTreeLookup(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New("10", "1011010", 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	node, ok := tree.Lookup("10")
	if !ok {
		t.Fatalf("expected to find context '10'")
	}
	if node.Context() != "10" || node.Run() != tree.Collect("10") {
		t.Errorf("expected node for '10' with run %q, have %q/%q", tree.Collect("10"),
			node.Context(), node.Run())
	}
	if node.KT() != tree.ProbabilityOfString(node.Run()) {
		t.Errorf("expected kt of '10' to be the probability of its run")
	}
	if _, ok = tree.Lookup("101"); ok {
		t.Errorf("did not expect to find context deeper than max depth")
	}
	if _, ok = tree.Lookup("x"); ok {
		t.Errorf("did not expect to find context with unknown symbol")
	}
	if root, _ := tree.Lookup(""); root != tree.Root() {
		t.Errorf("expected empty context to find root")
	}
}

func TestTreeMixtureBounds(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New("10", "1011010", 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	root := tree.Root()
	prod := 1.0
	for _, ch := range root.Children() {
		prod *= ch.CTW()
	}
	lo, hi := math.Min(root.KT(), prod), math.Max(root.KT(), prod)
	if root.CTW() <= lo || root.CTW() >= hi {
		t.Errorf("expected root ctw %g to be strictly within (%g, %g)", root.CTW(), lo, hi)
	}
	bits := tree.CodeLength()
	if math.Abs(bits+math.Log2(root.CTW())) > 1e-9 {
		t.Errorf("expected code length to be -log2(ctw), is %g", bits)
	}
}

func TestTreeShortPast(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// past is shorter than depth: whatever tail there is will be used
	tree, err := New("1", "0110", 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if run := tree.Collect("101"); run != "1" {
		t.Errorf("expected run of '101' to be '1', is %q", run)
	}
	if run := tree.Collect("10"); run != "1" {
		t.Errorf("expected run of '10' to be '1', is %q", run)
	}
}
