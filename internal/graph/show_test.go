package graph

import "fmt"

// show renders a closed term as a de Bruijn-indexed string, letting
// tests compare reduction results as plain strings without caring about
// pointer identity or variable names. env lists bound Var nodes from
// outermost to innermost binder.
func show(n *Node, env []*Node) string {
	switch n.Kind {
	case KindLambda:
		return "λ." + show(n.Body, append(env, n.Var))
	case KindApp:
		return "(" + show(n.Left, env) + " " + show(n.Right, env) + ")"
	case KindVar:
		for i := len(env) - 1; i >= 0; i-- {
			if env[i] == n {
				return fmt.Sprintf("#%d", len(env)-1-i)
			}
		}
		return "free"
	case KindPrim:
		return n.Prim.Repr()
	default:
		return "?"
	}
}
