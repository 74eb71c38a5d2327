package display

/*
BSD 3-Clause License

Copyright (c) 2026, Alex Chertov

Please refer to the LICENSE file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	avltree "github.com/AlexChertov/avl-tree"
)

// Console renders trees as indented sideways text for debugging on a
// terminal. Inner nodes and leaves are colored differently; when the output
// is not a terminal the color package suppresses the escape sequences.
type Console struct {
	width int
	inner *color.Color
	leaf  *color.Color
}

// NewConsole creates a console renderer. If stdout is a terminal, the
// terminal width is probed and long lines are truncated to it; otherwise a
// width of 80 is assumed.
func NewConsole() *Console {
	width := 80
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	return &Console{
		width: width,
		inner: color.New(color.FgCyan),
		leaf:  color.New(color.FgGreen, color.Bold),
	}
}

// SetWidth overrides the line width used for truncation. Widths below 16 are
// raised to 16.
func (c *Console) SetWidth(w int) {
	if w < 16 {
		w = 16
	}
	c.width = w
}

// Print writes a sideways rendering of t to w: the right subtree on top, the
// root at the left margin, one node per line, indented by depth. Keys are
// formatted with %v, followed by the subtree height.
func Print[K, S any](c *Console, w io.Writer, t *avltree.Tree[K, S]) {
	if t.IsEmpty() {
		fmt.Fprintln(w, "·")
		return
	}
	printNode(c, w, t.Root(), 0)
}

func printNode[K, S any](c *Console, w io.Writer, n *avltree.Node[K, S], depth int) {
	if n == nil {
		return
	}
	printNode(c, w, n.Child(avltree.Right), depth+1)
	indent := strings.Repeat("    ", depth)
	label := fmt.Sprintf("%v (h=%d)", n.Key(), n.Height())
	if len(indent)+len(label) > c.width {
		label = label[:max(0, c.width-len(indent))]
	}
	if n.Child(avltree.Left) == nil && n.Child(avltree.Right) == nil {
		label = c.leaf.Sprint(label)
	} else {
		label = c.inner.Sprint(label)
	}
	fmt.Fprintln(w, indent+label)
	printNode(c, w, n.Child(avltree.Left), depth+1)
}
