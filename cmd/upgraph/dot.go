package upgraph

import (
	"github.com/spf13/cobra"

	"github.com/uplinkgraph/upgraph/internal/graph"
)

func newDotCmd() *cobra.Command {
	var (
		reduce   bool
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "dot <term>",
		Short: "Dump a GraphViz representation of a built-in demo term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := lookupTerm(args[0])
			if err != nil {
				return err
			}
			head := graph.MakeHead(build())
			defer graph.FreeHead(head)

			if reduce {
				graph.ReduceToHNF(head, maxSteps)
			}
			graph.Dotify(head, cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reduce, "reduce", false, "reduce to head normal form before dumping")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "bound on reduction steps when --reduce is set")
	return cmd
}
