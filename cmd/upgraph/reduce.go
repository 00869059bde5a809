package upgraph

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uplinkgraph/upgraph/internal/engine"
	"github.com/uplinkgraph/upgraph/internal/graph"
)

func newReduceCmd() *cobra.Command {
	var (
		trace    bool
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "reduce <term>",
		Short: "Reduce a built-in demo term to head normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := lookupTerm(args[0])
			if err != nil {
				return err
			}
			head := graph.MakeHead(build())
			defer graph.FreeHead(head)

			r := &engine.Reducer{Trace: trace, Out: cmd.OutOrStdout(), MaxSteps: maxSteps}
			steps, atHNF := r.Run(head)

			fmt.Fprintf(cmd.OutOrStdout(), "steps: %d, head normal form reached: %v\n", steps, atHNF)
			fmt.Fprintf(cmd.OutOrStdout(), "result: %s\n", describe(head.Body()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print one line per reduction step")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "bound on reduction steps (0 = unbounded)")
	return cmd
}

// describe renders a one-line, non-recursive summary of a node's
// head — diagnostic convenience only; internal/graph.Dotify is the
// spec-named diagnostic dump (spec.md §6).
func describe(n *graph.Node) string {
	switch n.Kind {
	case graph.KindPrim:
		return fmt.Sprintf("Prim(%s)", n.Prim.Repr())
	case graph.KindLambda:
		return "Lambda(...)"
	case graph.KindApp:
		return "App(...)"
	case graph.KindVar:
		return "Var (free)"
	default:
		return "?"
	}
}
