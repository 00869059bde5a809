// Package graph implements bottom-up beta reduction on a shared graph
// (the uplinks / "Bologna" technique after Shivers and Wand): a lambda
// term represented as a directed graph with maximal sharing of common
// subterms, reduced to head normal form in place by beta-reductions
// that copy only the path from a bound variable up to its binding
// lambda.
package graph

import "sync/atomic"

var liveNodes atomic.Int64

// Kind tags the four node variants. Node is a sum type in the sense of
// the design note in spec.md: one struct, one tag, fields relevant to
// the other variants left zero.
type Kind int

const (
	KindApp Kind = iota
	KindLambda
	KindVar
	KindPrim
)

func (k Kind) String() string {
	switch k {
	case KindApp:
		return "App"
	case KindLambda:
		return "Lambda"
	case KindVar:
		return "Var"
	case KindPrim:
		return "Prim"
	default:
		return "Unknown"
	}
}

// Node is one of App, Lambda, Var, or Prim (see Kind). Every node
// additionally carries an uplinks list (one Uplink per parent
// occurrence) and a transient cache slot used only inside a single
// beta reduction.
type Node struct {
	Kind Kind

	// App
	Left, Right *Node

	// Lambda: Body is the owning edge; Var is a non-owning back
	// reference to the bound variable (Lambda owns Var's lifetime,
	// but this edge is not counted as an uplink on Var).
	Body *Node
	Var  *Node

	// Prim
	Prim Primitive

	uplinks *Uplink
	cache   cacheSlot
	freed   bool
}

// Primitive is the external collaborator contract for opaque callable
// nodes (spec.md §6).
type Primitive interface {
	// Apply is given a Head over the argument subgraph (which the
	// primitive may itself reduce via Reduce1/ReduceToHNF-style
	// callers). It returns a replacement Primitive, or ok=false to
	// signal "not applicable" — the App is left alone.
	Apply(arg *Head) (result Primitive, ok bool)
	// Repr is for diagnostic dump only.
	Repr() string
}

func newNode(k Kind) *Node {
	liveNodes.Add(1)
	return &Node{Kind: k}
}

// LiveNodeCount returns the number of nodes allocated since process
// start minus the number cleanup has released. Test-only
// instrumentation for the "no leaks" property in spec.md §8.
func LiveNodeCount() int64 {
	return liveNodes.Load()
}

// HasUplinks reports whether node is still reachable via at least one
// parent occurrence (invariant 2 in spec.md §3, modulo Head roots).
func (n *Node) HasUplinks() bool {
	return n.uplinks != nil
}
