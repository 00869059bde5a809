package graph

// NewVar builds a fresh, unbound variable node. Its uplinks start
// empty; they accumulate one entry per occurrence as the caller wires
// the variable into a body before binding it with NewFun.
func NewVar() *Node {
	return newNode(KindVar)
}

// NewFun builds a Lambda binding v over body, installing the uplink
// body -> self(LamBody). v is assumed fresh and already embedded
// (zero or more times) inside body; v's own uplinks are exactly its
// occurrences there (invariant 3 in spec.md §3).
func NewFun(v, body *Node) *Node {
	lam := newNode(KindLambda)
	lam.Var = v
	lam.Body = body
	addUplink(body, lam, LamBody)
	return lam
}

// NewApp builds an App, installing uplinks l -> self(AppL) and
// r -> self(AppR).
func NewApp(l, r *Node) *Node {
	app := newNode(KindApp)
	app.Left = l
	app.Right = r
	addUplink(l, app, AppL)
	addUplink(r, app, AppR)
	return app
}

// NewPrim wraps an opaque primitive value as an atomic node.
func NewPrim(p Primitive) *Node {
	n := newNode(KindPrim)
	n.Prim = p
	return n
}

// Head is a stable, single owning root for an expression: a wrapper
// around a dummy lambda λ_.body whose var never occurs, so the dummy
// never participates in reduction. It exists only to hold one uplink
// on body, preventing premature collection.
type Head struct {
	dummy *Node
}

// Body returns the expression currently wrapped by head.
func (h *Head) Body() *Node {
	return h.dummy.Body
}

// MakeHead wraps body under a fresh dummy binder, giving it a stable
// root.
func MakeHead(body *Node) *Head {
	return &Head{dummy: NewFun(NewVar(), body)}
}

// CopyHead returns a new Head referencing the same body, adding one
// uplink (the two heads' dummies are independent lambdas sharing a
// body, so reductions under one head do not disturb the other's
// root).
func CopyHead(h *Head) *Head {
	return MakeHead(h.dummy.Body)
}

// FreeHead drops a Head, cascading cleanup of any now-unreferenced
// subgraph. Mandatory: this is the only way a Head's ownership of its
// body is released.
func FreeHead(h *Head) {
	dummy := h.dummy
	h.dummy = nil
	// The dummy carries no uplinks of its own, so cleanup releases it,
	// its never-occurring var, and whatever part of the body is no
	// longer referenced from elsewhere.
	cleanup(dummy)
}
