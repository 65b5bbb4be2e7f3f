package solve

import "time"

// Status is the outcome reported by the solving capability.
type Status int

const (
	// Unknown means the time limit was hit before any solution was found.
	Unknown Status = iota
	// Optimal means a provably best (or, without an objective, a) solution was found.
	Optimal
	// Feasible means a solution was found but optimality was not proven
	// within the time budget.
	Feasible
	// Infeasible means no assignment satisfies the constraints. A legitimate
	// data-driven outcome, not a defect.
	Infeasible
	// ModelInvalid means the constraint set itself is malformed. Always a
	// builder defect, never data-driven.
	ModelInvalid
)

func (status Status) String() string {
	switch status {
	case Optimal:
		return "OPTIMAL"
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case ModelInvalid:
		return "MODEL_INVALID"
	}
	return "UNKNOWN"
}

// Solved reports whether the status carries variable valuations.
func (status Status) Solved() bool {
	return status == Optimal || status == Feasible
}

// Options bound a single solver invocation.
type Options struct {
	TimeLimit time.Duration // zero leaves the search unbounded
	Workers   int           // parallel search workers; zero lets the solver decide
}

type Result struct {
	Status    Status
	Values    []bool // indexed by Var; nil unless Status.Solved()
	Objective float64
	WallTime  time.Duration
}

func (result Result) Value(v Var) bool {
	return result.Values[v]
}

// Solver is the external combinatorial-solving capability. Solve blocks
// until a status is reached; the options' time limit is the only
// cancellation mechanism.
type Solver interface {
	Solve(model *Model, options Options) (Result, error)
}
