package graph

// cleanup disposes of node once its uplink list becomes empty. If
// node still has uplinks it is still reachable and cleanup is a
// no-op. This is the sole point of deallocation in the core: App and
// Lambda recurse onto their (now-unlinked) children, Var and Prim are
// leaves.
//
// cleanup is idempotent (guarded by node.freed) because a Lambda's
// bound Var may already have been released by the time its binder
// is: if the Var had occurrences, the generic child recursion below
// reaches it while tearing down the body and frees it there; cleanup
// is then called on it a second time, explicitly, from the Lambda
// case below, to also cover the degenerate case where the Var had no
// occurrences at all and nothing would otherwise ever visit it.
func cleanup(node *Node) {
	if node.HasUplinks() {
		return
	}
	if node.freed {
		return
	}
	node.freed = true
	liveNodes.Add(-1)

	switch node.Kind {
	case KindLambda:
		unlinkUplink(node.Body, node, LamBody)
		body, v := node.Body, node.Var
		node.Body, node.Var = nil, nil
		cleanup(body)
		cleanup(v)
	case KindApp:
		unlinkUplink(node.Left, node, AppL)
		unlinkUplink(node.Right, node, AppR)
		left, right := node.Left, node.Right
		node.Left, node.Right = nil, nil
		cleanup(left)
		cleanup(right)
	case KindVar:
		// Leaf: nothing owned, nothing to recurse onto.
	case KindPrim:
		node.Prim = nil
	default:
		panic("graph: cleanup of node with unknown kind")
	}
}
