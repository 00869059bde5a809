// Package lambda is a tiny term builder over internal/graph: the
// trivial constructors (§6 of the core spec) are graph.NewVar/NewFun/
// NewApp themselves; this package only adds the convenience sugar a client
// needs to write closed terms without manually threading variable
// nodes, in the spirit of the teacher's Lam/Let/Var builder sugar
// (expressions.go) generalized from that engine's continuation/hole
// machinery down to the core's direct var-embedding contract.
package lambda

import "github.com/uplinkgraph/upgraph/internal/graph"

// Lam builds a Lambda node, embedding a fresh bound variable into the
// body produced by f before binding it.
func Lam(f func(x *graph.Node) *graph.Node) *graph.Node {
	x := graph.NewVar()
	return graph.NewFun(x, f(x))
}

// App applies fn to one or more arguments left-to-right:
// App(f, a, b, c) builds ((f a) b) c.
func App(fn *graph.Node, args ...*graph.Node) *graph.Node {
	for _, a := range args {
		fn = graph.NewApp(fn, a)
	}
	return fn
}

// Identity builds λx. x.
func Identity() *graph.Node {
	return Lam(func(x *graph.Node) *graph.Node { return x })
}

// Const builds λx. λy. x, the K combinator.
func Const() *graph.Node {
	return Lam(func(x *graph.Node) *graph.Node {
		return Lam(func(y *graph.Node) *graph.Node { return x })
	})
}

// Omega builds (λy. y y)(λy. y y), the canonical non-terminating term.
func Omega() *graph.Node {
	selfApp := Lam(func(y *graph.Node) *graph.Node { return graph.NewApp(y, y) })
	return graph.NewApp(selfApp, selfApp)
}

// ChurchNumeral builds the Church numeral for n: λf. λx. f (f (... x)).
func ChurchNumeral(n int) *graph.Node {
	return Lam(func(f *graph.Node) *graph.Node {
		return Lam(func(x *graph.Node) *graph.Node {
			body := x
			for i := 0; i < n; i++ {
				body = graph.NewApp(f, body)
			}
			return body
		})
	})
}

// ChurchSucc builds λn. λf. λx. f (n f x), the Church-numeral
// successor function.
func ChurchSucc() *graph.Node {
	return Lam(func(n *graph.Node) *graph.Node {
		return Lam(func(f *graph.Node) *graph.Node {
			return Lam(func(x *graph.Node) *graph.Node {
				return App(f, App(n, f, x))
			})
		})
	})
}
