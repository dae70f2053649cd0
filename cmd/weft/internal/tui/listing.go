// Package tui prints bound output trees as colored terminal listings.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-weft/weft/pkg/dom"
)

// Printer writes indented, colored listings of bound output trees.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter creates a printer for the given writer, using the
// terminal's detected color profile.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, profile: termenv.ColorProfile()}
}

// Print writes the subtree rooted at node, one element per line.
func (p *Printer) Print(node *dom.Node) {
	p.print(node, 0)
}

func (p *Printer) print(node *dom.Node, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch node.Kind {
	case dom.KindText:
		fmt.Fprintf(p.out, "%s%s\n", indent, p.colored(node.Text, "#e2e8f0"))
	case dom.KindActionable:
		label := fmt.Sprintf("[action %d]%s", node.ActionID, attrSuffix(node.Attrs))
		fmt.Fprintf(p.out, "%s%s\n", indent, p.colored(label, "#f472b6"))
	default:
		label := fmt.Sprintf("<div%s>", attrSuffix(node.Attrs))
		fmt.Fprintf(p.out, "%s%s\n", indent, p.colored(label, "#818cf8"))
	}
	for _, child := range node.Children {
		p.print(child, depth+1)
	}
}

func (p *Printer) colored(text, hex string) string {
	return termenv.String(text).Foreground(p.profile.Color(hex)).String()
}

func attrSuffix(attrs map[string]string) string {
	if class := attrs["class"]; class != "" {
		return " ." + class
	}
	return ""
}
