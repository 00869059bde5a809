package graph

// GetPrim reports whether head's body is currently a Prim atom (i.e.
// the term has reduced, or was already, a primitive value at the
// head) and returns it. Callers typically call this after
// ReduceToHNF. It does not itself trigger any reduction.
func GetPrim(head *Head) (Primitive, bool) {
	body := head.Body()
	if body.Kind != KindPrim {
		return nil, false
	}
	return body.Prim, true
}
