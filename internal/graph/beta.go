package graph

// BetaReduce drives a single redex reduction. Its precondition is that
// app is an App whose Left is a Lambda.
func BetaReduce(app *Node) {
	if app.Kind != KindApp {
		panic("graph: BetaReduce of non-App node")
	}
	fun := app.Left
	if fun.Kind != KindLambda {
		panic("graph: BetaReduce precondition violated: Left is not a Lambda")
	}
	arg := app.Right

	var result *Node
	if !fun.Var.HasUplinks() {
		// Degenerate case: the bound variable is unused in the body,
		// so the result is simply the body — no copy needed.
		result = fun.Body
	} else {
		fun.cache = cacheSlot{tag: cacheStop}
		upcopy(arg, fun.Var, LamBody)
		copied, ok := fun.Body.cache.copied()
		if !ok {
			panic("graph: upcopy left the redex body uncached")
		}
		result = copied
		clear(fun.Var)
		fun.cache = cacheSlot{}
	}

	// Redirect every parent of the redex to the reduced result;
	// upreplace's internal cleanup releases the now-unreachable redex
	// (and, transitively, fun and arg if unreferenced elsewhere).
	eachUplink(app, func(u *Uplink) {
		upreplace(result, u.Parent, u.Slot)
	})
}
