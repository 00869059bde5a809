package graph

// upcopy is the heart of the engine. Inside a beta-reduction of
// (λx. body) arg we must produce a copy of body in which every
// occurrence of x is replaced by arg, but only the ancestors of x
// inside body need to be copied — everything else is shared with the
// original. upcopy implements this by walking upward from x through
// uplinks, rebuilding each ancestor exactly once, until it reaches the
// binding lambda (marked with cacheStop in its cache by BetaReduce).
//
// upcopy(newchild, into, slot) asserts that into is the parent and
// slot says which edge of into originally pointed to the child whose
// rebuilt image is newchild. It ensures into has, in its cache, a
// fresh node representing "rebuilt into under the current
// substitution", then recurses upward onto each uplink of into.
func upcopy(newchild, into *Node, slot Slot) {
	var rebuilt *Node

	switch into.Kind {
	case KindApp:
		if cached, ok := into.cache.copied(); ok {
			// Second arrival: the other slot already rebuilt this
			// App. Overwrite the slot and stop — ancestors were
			// already visited on first arrival.
			switch slot {
			case AppL:
				cached.Left = newchild
			case AppR:
				cached.Right = newchild
			default:
				panic("graph: upcopy bad slot for App")
			}
			return
		}
		na := newNode(KindApp)
		switch slot {
		case AppL:
			na.Left, na.Right = newchild, into.Right
		case AppR:
			na.Left, na.Right = into.Left, newchild
		default:
			panic("graph: upcopy bad slot for App")
		}
		// Deliberately no uplinks installed on na's children yet:
		// clear installs them, once, against the final version of
		// na (see clear.go).
		into.cache = cacheSlot{tag: cacheCopied, node: na}
		rebuilt = na

	case KindLambda:
		if into.cache.isStop() {
			// into is the binding lambda: do not copy past it.
			return
		}
		v2 := NewVar()
		nl := newNode(KindLambda)
		nl.Body = newchild
		nl.Var = v2
		into.cache = cacheSlot{tag: cacheCopied, node: nl}
		rebuilt = nl
		// Propagate the new variable into any other occurrences of
		// the old variable inside this lambda's body. The slot is
		// immaterial here: into.Var is a Var, not an App/Lambda
		// parent, so its upcopy case below never inspects slot.
		upcopy(v2, into.Var, LamBody)

	case KindVar:
		// The variable under substitution, reached from below via
		// the binding lambda's recursive call above (or as the
		// initial seed of the whole pass). Its rebuilt image is
		// simply newchild.
		into.cache = cacheSlot{tag: cacheCopied, node: newchild}
		rebuilt = newchild

	case KindPrim:
		// Atom with no substructure: same treatment as Var. (The
		// source's analogous branch falls through to an abort
		// instead; that bug is not reproduced here — see DESIGN.md.)
		into.cache = cacheSlot{tag: cacheCopied, node: newchild}
		rebuilt = newchild

	default:
		panic("graph: upcopy into node of unknown kind")
	}

	eachUplink(into, func(u *Uplink) {
		upcopy(rebuilt, u.Parent, u.Slot)
	})
}
