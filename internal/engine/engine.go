// Package engine wraps internal/graph with the ambient concerns the
// core itself has no business owning: trace output and a step bound.
// Grounded on the teacher's Machine (machine.go), which carries a
// Trace bool and drives reduction to completion; that Machine's
// worklist-queue loop is specific to its own Expression/continuation
// rewrite model (spec.md's reduction driver is a direct recursive
// descent per §4.7, not a queue), so only the Trace/MaxSteps wrapper
// shape is kept, rewritten around graph.Reduce1Head/ReduceToHNF.
package engine

import (
	"fmt"
	"io"

	"github.com/uplinkgraph/upgraph/internal/graph"
)

// Reducer drives a Head to (or toward) head normal form.
type Reducer struct {
	// Trace, when true, writes one line per reduction step to Out.
	Trace bool
	// Out receives trace output; defaults to io.Discard-like no-op if
	// nil and Trace is true (Step guards against writing to nil).
	Out io.Writer
	// MaxSteps bounds the number of reduction steps taken by Run. Zero
	// or negative means unbounded (see graph.ReduceToHNF).
	MaxSteps int
}

// NewReducer builds a Reducer with tracing disabled.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Step performs a single reduction step, tracing it if enabled.
func (r *Reducer) Step(head *graph.Head) bool {
	progressed := graph.Reduce1Head(head)
	if r.Trace && r.Out != nil {
		if progressed {
			fmt.Fprintln(r.Out, "step: reduced")
		} else {
			fmt.Fprintln(r.Out, "step: no progress (at head normal form)")
		}
	}
	return progressed
}

// Run reduces head to normal form, or until MaxSteps is reached. It
// returns the number of steps taken and whether head normal form was
// actually reached.
func (r *Reducer) Run(head *graph.Head) (steps int, atHNF bool) {
	max := r.MaxSteps
	for max <= 0 || steps < max {
		if !r.Step(head) {
			return steps, true
		}
		steps++
	}
	return steps, false
}
