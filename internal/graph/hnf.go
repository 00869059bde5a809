package graph

// Reduce1 performs one outermost-leftmost reduction step starting at
// node and reports whether it made progress:
//
//   - Lambda: recurse into the body (head-reduce under the binder).
//   - App: first try to reduce the function position; if that made
//     progress, stop. Otherwise, if the function position is now a
//     Lambda, beta-reduce this App. If it is a Prim, invoke the
//     primitive on the argument.
//   - Var, Prim: no progress.
func Reduce1(node *Node) bool {
	switch node.Kind {
	case KindLambda:
		return Reduce1(node.Body)
	case KindApp:
		if Reduce1(node.Left) {
			return true
		}
		switch node.Left.Kind {
		case KindLambda:
			BetaReduce(node)
			return true
		case KindPrim:
			return primReduce(node)
		default:
			return false
		}
	case KindVar, KindPrim:
		return false
	default:
		panic("graph: Reduce1 of node with unknown kind")
	}
}

// primReduce invokes a Prim function node's primitive on its argument.
// A primitive rejecting the call (ok=false) is not progress; the App
// is left in place, exactly as the driver treats "no progress".
func primReduce(app *Node) bool {
	fun, arg := app.Left, app.Right

	argHead := MakeHead(arg)
	result, ok := fun.Prim.Apply(argHead)
	FreeHead(argHead)
	if !ok {
		return false
	}

	resNode := NewPrim(result)
	eachUplink(app, func(u *Uplink) {
		upreplace(resNode, u.Parent, u.Slot)
	})
	return true
}

// Reduce1Head performs one reduction step under head, per the
// hnf_reduce_1(head) external operation in spec.md §6.
func Reduce1Head(h *Head) bool {
	return Reduce1(h.dummy)
}

// ReduceToHNF loops Reduce1Head until it returns false, per the
// hnf_reduce(head) external operation. maxSteps bounds the loop when
// positive; callers reducing potentially non-terminating terms (spec
// §5: "termination is not guaranteed in general") should pass a
// bound. It returns the number of steps actually taken and whether
// the term reached head normal form (false if the step bound was hit
// first).
func ReduceToHNF(h *Head, maxSteps int) (steps int, atHNF bool) {
	for maxSteps <= 0 || steps < maxSteps {
		if !Reduce1Head(h) {
			return steps, true
		}
		steps++
	}
	return steps, false
}
