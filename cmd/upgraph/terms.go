package upgraph

import (
	"github.com/uplinkgraph/upgraph/internal/graph"
	"github.com/uplinkgraph/upgraph/internal/lambda"
	"github.com/uplinkgraph/upgraph/internal/prim"
)

// termBuilder constructs a fresh, unreduced term each time it is
// called — the CLI's small, fixed registry of demo terms standing in
// for the surface-syntax front end the core spec explicitly excludes
// (spec.md §1 Non-goals: "lexing/parsing of source syntax").
type termBuilder func() *graph.Node

var terms = map[string]termBuilder{
	"identity": func() *graph.Node {
		// (λx. x) y, with a free y.
		y := graph.NewVar()
		return graph.NewApp(lambda.Identity(), y)
	},
	"const": func() *graph.Node {
		// (λx. λy. x) a b  ==>  a
		a := graph.NewPrim(prim.NewInt(1))
		b := graph.NewPrim(prim.NewInt(2))
		return lambda.App(lambda.Const(), a, b)
	},
	"shared-arg": func() *graph.Node {
		// (λx. App(x, x)) (App(a, b)): sharing-preservation scenario
		// from spec.md §8.
		a := graph.NewPrim(prim.NewInt(1))
		b := graph.NewPrim(prim.NewInt(2))
		pair := graph.NewApp(a, b)
		dup := lambda.Lam(func(x *graph.Node) *graph.Node {
			return graph.NewApp(x, x)
		})
		return graph.NewApp(dup, pair)
	},
	"unused-arg": func() *graph.Node {
		// (λx. a) Ω: the argument must never be reduced.
		a := graph.NewPrim(prim.NewInt(42))
		k := lambda.Lam(func(x *graph.Node) *graph.Node { return a })
		return graph.NewApp(k, lambda.Omega())
	},
	"church-add1": func() *graph.Node {
		// 2 add1 0, via Church encoding: f=add1, x=Prim(0).
		two := lambda.ChurchNumeral(2)
		zero := graph.NewPrim(prim.NewInt(0))
		return lambda.App(two, graph.NewPrim(prim.Add1), zero)
	},
	"church-succ-zero": func() *graph.Node {
		// succ 2 applied to (add1, 0): should behave as Church 3.
		succ := lambda.ChurchSucc()
		two := lambda.ChurchNumeral(2)
		zero := graph.NewPrim(prim.NewInt(0))
		return lambda.App(succ, two, graph.NewPrim(prim.Add1), zero)
	},
	"omega": func() *graph.Node {
		return lambda.Omega()
	},
}
