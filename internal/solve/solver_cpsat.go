package solve

import (
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"
)

type cpSatSolver struct{}

// NewCpSatSolver returns a Solver backed by the CP-SAT engine.
func NewCpSatSolver() Solver {
	return &cpSatSolver{}
}

func (solver *cpSatSolver) Solve(model *Model, options Options) (Result, error) {
	builder := cpmodel.NewCpModelBuilder()

	variables := make([]cpmodel.BoolVar, model.NumVars())
	for i := range variables {
		variables[i] = builder.NewBoolVar().WithName(model.Name(Var(i)))
	}

	for _, constraint := range model.Constraints {
		expr := toCpExpr(constraint.Expr, variables)
		switch {
		case constraint.Min == constraint.Max:
			builder.AddEquality(expr, cpmodel.NewConstant(constraint.Min))
		default:
			if constraint.Min != NoLowerBound {
				builder.AddGreaterOrEqual(expr, cpmodel.NewConstant(constraint.Min))
			}
			if constraint.Max != NoUpperBound {
				builder.AddLessOrEqual(expr, cpmodel.NewConstant(constraint.Max))
			}
		}
	}

	if model.Objective != nil {
		builder.Minimize(toCpExpr(*model.Objective, variables))
	}

	instance, err := builder.Model()
	if err != nil {
		// A model the builder itself rejects is a construction defect.
		return Result{Status: ModelInvalid}, fmt.Errorf("cannot instantiate CP model: %w", err)
	}

	parameters := &sppb.SatParameters{}
	if options.TimeLimit > 0 {
		parameters.MaxTimeInSeconds = proto.Float64(options.TimeLimit.Seconds())
	}
	if options.Workers > 0 {
		parameters.NumWorkers = proto.Int32(int32(options.Workers))
	}

	response, err := cpmodel.SolveCpModelWithParameters(instance, parameters)
	if err != nil {
		return Result{}, fmt.Errorf("an error occurred during CP-SAT execution: %w", err)
	}

	result := Result{
		Status:    fromCpStatus(response.GetStatus()),
		Objective: response.GetObjectiveValue(),
		WallTime:  time.Duration(response.GetWallTime() * float64(time.Second)),
	}

	if result.Status.Solved() {
		result.Values = make([]bool, len(variables))
		for i, variable := range variables {
			result.Values[i] = cpmodel.SolutionBooleanValue(response, variable)
		}
	}

	return result, nil
}

func toCpExpr(expr LinearExpr, variables []cpmodel.BoolVar) *cpmodel.LinearExpr {
	cpExpr := cpmodel.NewLinearExpr().AddConstant(expr.Offset)
	for _, term := range expr.Terms {
		cpExpr.AddTerm(variables[term.Var], term.Coefficient)
	}
	return cpExpr
}

func fromCpStatus(status cmpb.CpSolverStatus) Status {
	switch status {
	case cmpb.CpSolverStatus_OPTIMAL:
		return Optimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return Feasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return Infeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return ModelInvalid
	}
	return Unknown
}
