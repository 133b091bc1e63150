package formatter

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/ctw"
	"golang.org/x/term"
)

// Palette holds the colors a console formatter uses for the parts of a line.
// Nil entries are output without color.
type Palette struct {
	Context *color.Color // context of inner nodes
	Leaf    *color.Color // context of leaves
	KT      *color.Color // KT probability
	CTW     *color.Color // CTW probability, if weighting did not gain over KT
	Gain    *color.Color // CTW probability, if children improved the estimate
}

// Console is a type for outputting trees to a console with a fixed width font.
type Console struct {
	palette *Palette
	colored bool // use escape sequences for colors
}

// NewConsole creates a new formatter for consoles.
//
// palette may be nil, in which case a default palette will be used.
// Colors will only be output if stdout is a terminal.
func NewConsole(palette *Palette) *Console {
	c := &Console{
		palette: palette,
		colored: IsTerminal(os.Stdout),
	}
	if c.palette == nil {
		c.palette = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Context: color.New(color.FgBlue, color.Bold),
		Leaf:    color.New(color.FgBlue),
		KT:      color.New(color.FgHiBlack),
		CTW:     nil,
		Gain:    color.New(color.FgGreen),
	}
}

// Colored forces (or suppresses) colored output, regardless of the output device.
func (c *Console) Colored(on bool) *Console {
	c.colored = on
	return c
}

// Print outputs a tree to stdout.
func (c *Console) Print(tree *ctw.Tree) error {
	return c.Output(tree, os.Stdout)
}

// Output formats a tree with one line per node and writes it to w.
func (c *Console) Output(tree *ctw.Tree, w io.Writer) error {
	if tree == nil || w == nil {
		return errors.New("illegal argument: nil")
	}
	tracer().P("format", "console").Debugf("output tree of size %d, colored=%v", tree.Size(), c.colored)
	var err error
	tree.Walk(func(node *ctw.Node) bool {
		if err != nil {
			return false
		}
		err = c.line(tree, node, w)
		return err == nil
	})
	return err
}

func (c *Console) line(tree *ctw.Tree, node *ctw.Node, w io.Writer) error {
	ctxcolor := c.palette.Context
	if node.IsLeaf() {
		ctxcolor = c.palette.Leaf
	}
	ctwcolor := c.palette.CTW
	if node.CTW() > node.KT() {
		ctwcolor = c.palette.Gain
	}
	c.styled(w, ctxcolor, ctw.Pad(node.Context(), tree.Depth()))
	io.WriteString(w, " -> kt = ")
	c.styled(w, c.palette.KT, fmt.Sprintf("%2.5f", node.KT()))
	io.WriteString(w, "; ctw = ")
	c.styled(w, ctwcolor, fmt.Sprintf("%2.5f", node.CTW()))
	_, err := io.WriteString(w, "\n")
	return err
}

func (c *Console) styled(w io.Writer, col *color.Color, s string) {
	if c.colored && col != nil {
		col.EnableColor() // color package disables colors for non-terminals globally
		col.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// --- Terminals -------------------------------------------------------------

// IsTerminal checks whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
