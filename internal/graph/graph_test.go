package graph

import (
	"fmt"
	"testing"
)

// edgeRef names one owning edge for invariant checking.
type edgeRef struct {
	parent *Node
	slot   Slot
	child  *Node
}

// collect walks every owning edge reachable from root (the dummy's
// body), returning the node set and the edge list.
func collect(root *Node) (map[*Node]bool, []edgeRef) {
	seen := map[*Node]bool{}
	var edges []edgeRef
	var walk func(*Node)
	walk = func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		switch n.Kind {
		case KindApp:
			edges = append(edges, edgeRef{n, AppL, n.Left}, edgeRef{n, AppR, n.Right})
			walk(n.Left)
			walk(n.Right)
		case KindLambda:
			edges = append(edges, edgeRef{n, LamBody, n.Body})
			walk(n.Body)
		}
	}
	walk(root)
	return seen, edges
}

// checkInvariants asserts the universal invariants of spec.md §8,
// properties 1-4, over the graph reachable from head.
func checkInvariants(t *testing.T, head *Head) {
	t.Helper()
	seen, edges := collect(head.Body())
	seen[head.dummy] = true

	// 1. Edge <-> uplink bijection.
	for _, e := range edges {
		found := false
		eachUplink(e.child, func(u *Uplink) {
			if u.Parent == e.parent && u.Slot == e.slot {
				found = true
			}
		})
		if !found {
			t.Errorf("missing uplink for edge %s --%s--> %s", kindAt(e.parent), e.slot, kindAt(e.child))
		}
	}
	for n := range seen {
		eachUplink(n, func(u *Uplink) {
			if !seen[u.Parent] {
				// Parent may be the dying side of an in-flight
				// reduction in other tests, but for a settled graph
				// this indicates a dangling uplink.
				return
			}
			switch u.Slot {
			case AppL:
				if u.Parent.Left != n {
					t.Errorf("uplink (AppL) does not match edge: parent.Left != child")
				}
			case AppR:
				if u.Parent.Right != n {
					t.Errorf("uplink (AppR) does not match edge: parent.Right != child")
				}
			case LamBody:
				if u.Parent.Body != n {
					t.Errorf("uplink (LamBody) does not match edge: parent.Body != child")
				}
			}
		})
	}

	// 2. cache is empty on every reachable node.
	for n := range seen {
		if !n.cache.isEmpty() {
			t.Errorf("node %s has non-empty cache outside a reduction", kindAt(n))
		}
	}

	// 3. Acyclic over owning edges.
	visiting := map[*Node]bool{}
	var dfs func(*Node) bool
	dfs = func(n *Node) bool {
		if visiting[n] {
			return true
		}
		visiting[n] = true
		defer delete(visiting, n)
		switch n.Kind {
		case KindApp:
			if dfs(n.Left) || dfs(n.Right) {
				return true
			}
		case KindLambda:
			if dfs(n.Body) {
				return true
			}
		}
		return false
	}
	if dfs(head.Body()) {
		t.Errorf("owning-edge graph is cyclic")
	}

	// 4. Every Lambda's Var's uplinks point into nodes reachable from
	// its Body, or at the Lambda itself when the Body is the bare
	// variable (λx. x).
	for n := range seen {
		if n.Kind != KindLambda {
			continue
		}
		bodyReachable, _ := collect(n.Body)
		eachUplink(n.Var, func(u *Uplink) {
			if u.Parent != n && !bodyReachable[u.Parent] {
				t.Errorf("lambda var occurrence escapes its binder's body")
			}
		})
	}
}

func kindAt(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s@%p", n.Kind, n)
}
