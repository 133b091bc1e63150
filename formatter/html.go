package formatter

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/ctw"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a tree as a fragment of HTML: a <div class="ctw"> holding a
// nested list, with one list item per node. Every item carries the context in
// a <code> element and the node's probabilities as data attributes.
//
//	<div class="ctw"><ul><li data-kt="…" data-ctw="…"><code>…</code> kt = …; ctw = …
//	  <ul>…children…</ul></li></ul></div>
func HTML(tree *ctw.Tree, w io.Writer) error {
	if tree == nil || w == nil {
		return errors.New("illegal argument: nil")
	}
	div := element(atom.Div, html.Attribute{Key: "class", Val: "ctw"})
	ul := element(atom.Ul)
	div.AppendChild(ul)
	ul.AppendChild(htmlNode(tree.Root()))
	return html.Render(w, div)
}

// htmlNode creates the list item for node and, recursively, its children.
func htmlNode(node *ctw.Node) *html.Node {
	cls := "inner"
	if node.IsLeaf() {
		cls = "leaf"
	}
	li := element(atom.Li,
		html.Attribute{Key: "class", Val: cls},
		html.Attribute{Key: "data-kt", Val: fmt.Sprintf("%g", node.KT())},
		html.Attribute{Key: "data-ctw", Val: fmt.Sprintf("%g", node.CTW())},
	)
	code := element(atom.Code)
	ctx := node.Context()
	if ctx == "" {
		ctx = "ε"
	}
	code.AppendChild(&html.Node{Type: html.TextNode, Data: ctx})
	li.AppendChild(code)
	li.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf(" kt = %2.5f; ctw = %2.5f", node.KT(), node.CTW()),
	})
	if !node.IsLeaf() {
		ul := element(atom.Ul)
		for _, ch := range node.Children() {
			ul.AppendChild(htmlNode(ch))
		}
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}
