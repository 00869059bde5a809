// Package upgraph is the cobra command tree exposing the
// graph/engine packages' public operations (make_head, hnf_reduce,
// hnf_reduce_1, dotify — spec.md §6) as a runnable CLI, the way
// cue-lang-cue/cmd/cue wraps its evaluator and gavlooth-purple_go's
// main.go wraps its compiler/interpreter pipeline.
package upgraph

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the upgraph root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "upgraph",
		Short: "Reduce lambda terms on a shared graph with uplinks (optimal-ish beta reduction)",
		Long: `upgraph runs bottom-up beta reduction on a shared graph representation
of lambda terms, copying only the path from a bound variable to its
binding lambda and preserving sharing everywhere else.

Terms are chosen from a small built-in registry (` + availableTerms() + `)
rather than parsed from source, since parsing a surface syntax is
outside this tool's scope.`,
	}
	root.AddCommand(newReduceCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newListCmd())
	return root
}

// Execute runs the CLI and exits the process on error, the same
// boundary-conversion idiom as cue-lang-cue's mkRunE wrapper: the core
// aborts via panic on precondition violations (spec.md §7), and this
// boundary is where that becomes a process exit code instead.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "upgraph: %v\n", r)
			os.Exit(1)
		}
	}()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableTerms() string {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in demo terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(terms))
			for name := range terms {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func lookupTerm(name string) (termBuilder, error) {
	b, ok := terms[name]
	if !ok {
		return nil, fmt.Errorf("unknown term %q (see `upgraph list`)", name)
	}
	return b, nil
}
