package graph

// clear is the second pass after upcopy. It installs uplinks on the
// children of every newly allocated node (skipped during upcopy to
// keep intermediate states consistent) and resets every cache slot
// touched by upcopy back to empty.
//
// Starting from the substituted Var (or the binding lambda's var, in
// practice), clear walks upward via uplinks exactly as upcopy did.
// Parents whose cache is still empty are skipped — never touched by
// the upcopy pass. Parents whose cache is cacheStop are also skipped
// and not recursed into: that is the binding lambda itself, and
// nothing beyond it belongs to this substitution. The source's clear
// only tests its cache pointer against null, which for the binding
// lambda (cache holding the STOP sentinel, not null) would fall
// through into dereferencing the sentinel as if it were a rebuilt
// node; this implementation makes the STOP case explicit instead of
// reproducing that bug (see DESIGN.md).
func clear(node *Node) {
	// node is either a Var whose cache upcopy set, or a parent whose
	// cache was already reset below; either way it is now cleared.
	node.cache = cacheSlot{}
	eachUplink(node, func(u *Uplink) {
		parent := u.Parent
		if parent.cache.isEmpty() || parent.cache.isStop() {
			return
		}
		cached, _ := parent.cache.copied()
		switch parent.Kind {
		case KindApp:
			addUplink(cached.Left, cached, AppL)
			addUplink(cached.Right, cached, AppR)
		case KindLambda:
			addUplink(cached.Body, cached, LamBody)
			clear(parent.Var)
		default:
			panic("graph: clear of cached node with unexpected parent kind")
		}
		parent.cache = cacheSlot{}
		clear(parent)
	})
}
