// Package prim implements the primitive collaborator contract
// (graph.Primitive) spec.md §6 names as an external interface but
// does not specify: opaque callable atoms that sit at App function
// positions the core core treats as reducers it does not interpret.
//
// Grounded on the teacher's builtins.go, which wraps an
// `Operator{Name string, Func func(Value, Value) Value}` pair for use
// inside its Op2 node; generalized here from a binary in-graph
// operator node into the spec's unary `apply(argHead) -> PrimNode?`
// collaborator shape, via currying (see BinOp below).
package prim

import (
	"fmt"
	"math/big"

	"github.com/uplinkgraph/upgraph/internal/graph"
)

// Int is an atomic arbitrary-precision integer primitive. math/big is
// used rather than machine int because Church-numeral-driven
// reductions (spec.md §8 scenario 3) can produce results outside the
// range of a fixed-width integer; see SPEC_FULL.md's domain-stack
// rationale for why this stays on the standard library rather than
// importing a decimal library from the pack.
type Int struct {
	Value *big.Int
}

// NewInt wraps a native int as an Int primitive.
func NewInt(v int64) *Int {
	return &Int{Value: big.NewInt(v)}
}

func (p *Int) Apply(arg *graph.Head) (graph.Primitive, bool) {
	// Integers are not callable: applying one to anything is a
	// primitive rejection, not a core precondition violation.
	return nil, false
}

func (p *Int) Repr() string {
	return p.Value.String()
}

// BinOp is a curried binary arithmetic primitive: applying it once
// yields a partialBinOp awaiting the second operand, mirroring how
// the teacher's Op2Expr carries an Operator across both of its
// operand slots, but expressed through two sequential Prim.Apply
// calls instead of a single two-child node.
type BinOp struct {
	Name string
	Fn   func(a, b *big.Int) *big.Int
}

var (
	Add = BinOp{Name: "add", Fn: func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }}
	Sub = BinOp{Name: "sub", Fn: func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }}
	Mul = BinOp{Name: "mul", Fn: func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }}
)

func (op BinOp) Apply(arg *graph.Head) (graph.Primitive, bool) {
	a, ok := reduceToInt(arg)
	if !ok {
		return nil, false
	}
	return &partialBinOp{op: op, a: a}, true
}

func (op BinOp) Repr() string {
	return op.Name
}

type partialBinOp struct {
	op BinOp
	a  *big.Int
}

func (p *partialBinOp) Apply(arg *graph.Head) (graph.Primitive, bool) {
	b, ok := reduceToInt(arg)
	if !ok {
		return nil, false
	}
	return &Int{Value: p.op.Fn(p.a, b)}, true
}

func (p *partialBinOp) Repr() string {
	return fmt.Sprintf("<%s %s>", p.op.Name, p.a.String())
}

// Add1 is a non-curried single-argument increment, matching the
// spec.md §8 scenario 6 contract directly ("a Prim add1 whose apply on
// a Prim n returns Prim(n+1)").
type add1 struct{}

var Add1 graph.Primitive = add1{}

func (add1) Apply(arg *graph.Head) (graph.Primitive, bool) {
	n, ok := reduceToInt(arg)
	if !ok {
		return nil, false
	}
	return &Int{Value: new(big.Int).Add(n, big.NewInt(1))}, true
}

func (add1) Repr() string { return "add1" }

func reduceToInt(arg *graph.Head) (*big.Int, bool) {
	graph.ReduceToHNF(arg, 0)
	p, ok := graph.GetPrim(arg)
	if !ok {
		return nil, false
	}
	i, ok := p.(*Int)
	if !ok {
		return nil, false
	}
	return i.Value, true
}
