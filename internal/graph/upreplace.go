package graph

// upreplace atomically redirects the edge `parent --slot--> *` to
// point at newchild instead of whatever it pointed at before. The old
// child's uplink to (parent, slot) is removed, an uplink (parent,
// slot) is added to newchild, and cleanup is called on the old child.
//
// This is the only way parents are re-pointed after a reduction; it
// is how the result of a beta-reduction is spliced back into all of
// the redex's parents simultaneously while preserving sharing.
func upreplace(newchild, parent *Node, slot Slot) {
	var old *Node
	switch parent.Kind {
	case KindApp:
		switch slot {
		case AppL:
			old = parent.Left
			parent.Left = newchild
		case AppR:
			old = parent.Right
			parent.Right = newchild
		default:
			panic("graph: upreplace bad slot for App")
		}
	case KindLambda:
		if slot != LamBody {
			panic("graph: upreplace bad slot for Lambda")
		}
		old = parent.Body
		parent.Body = newchild
	default:
		panic("graph: upreplace into non-parent node kind")
	}
	unlinkUplink(old, parent, slot)
	addUplink(newchild, parent, slot)
	cleanup(old)
}
