package formatter

import (
	"errors"
	"io"

	"github.com/npillmayer/ctw"
)

// Text outputs a tree with one plain line per node.
func Text(tree *ctw.Tree, w io.Writer) error {
	if tree == nil || w == nil {
		return errors.New("illegal argument: nil")
	}
	var err error
	tree.Walk(func(node *ctw.Node) bool {
		if err != nil {
			return false
		}
		if _, err = io.WriteString(w, tree.Line(node)+"\n"); err != nil {
			tracer().Errorf("text output: %s", err.Error())
			return false
		}
		return true
	})
	return err
}
