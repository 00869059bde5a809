package graph

import (
	"fmt"
	"io"
)

// dotPrinter walks the live graph reachable from a Head and emits a
// GraphViz dump: one line per node ("pADDR [label=...]") plus one
// edge line per owning edge and per uplink (uplinks in red). This
// mirrors the shape of the teacher's expression Printer (a stateful
// visitor writing to an io.Writer) generalized from s-expression
// syntax to nodes-and-edges, per spec.md §6.
type dotPrinter struct {
	w    io.Writer
	seen map[*Node]bool
}

// Dotify writes a GraphViz representation of the graph rooted at head
// to w. Diagnostic only: spec.md names no other consumer of this
// output.
func Dotify(head *Head, w io.Writer) {
	p := &dotPrinter{w: w, seen: map[*Node]bool{}}
	fmt.Fprintln(p.w, "digraph Lambda {")
	dummy := head.dummy
	fmt.Fprintf(p.w, "p%p [label=\"HEAD\"];\n", dummy)
	fmt.Fprintf(p.w, "p%p -> p%p;\n", dummy, dummy.Body)
	p.seen[dummy] = true
	p.node(dummy.Body)
	fmt.Fprintln(p.w, "}")
}

func (p *dotPrinter) node(n *Node) {
	if p.seen[n] {
		return
	}
	p.seen[n] = true

	switch n.Kind {
	case KindLambda:
		fmt.Fprintf(p.w, "p%p [label=\"\\\\\"];\n", n)
		fmt.Fprintf(p.w, "p%p -> p%p;\n", n, n.Body)
		if n.Var.HasUplinks() {
			fmt.Fprintf(p.w, "p%p -> p%p [color=blue];\n", n, n.Var)
		}
		p.node(n.Body)
	case KindApp:
		fmt.Fprintf(p.w, "p%p [label=\"*\"];\n", n)
		fmt.Fprintf(p.w, "p%p -> p%p [color=\"#007f00\",label=\"fn\"];\n", n, n.Left)
		fmt.Fprintf(p.w, "p%p -> p%p [label=\"arg\"];\n", n, n.Right)
		p.node(n.Left)
		p.node(n.Right)
	case KindVar:
		fmt.Fprintf(p.w, "p%p [label=\"x\"];\n", n)
	case KindPrim:
		fmt.Fprintf(p.w, "p%p [label=%q];\n", n, n.Prim.Repr())
	default:
		panic("graph: dotify of node with unknown kind")
	}

	eachUplink(n, func(u *Uplink) {
		fmt.Fprintf(p.w, "p%p -> p%p [color=red];\n", n, u.Parent)
	})
}
