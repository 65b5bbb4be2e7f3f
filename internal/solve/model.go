package solve

import "math"

// Var is a handle to a boolean decision variable of a Model.
type Var int32

// Literal is a variable or its negation.
type Literal struct {
	Var     Var
	Negated bool
}

func Pos(v Var) Literal { return Literal{Var: v} }
func Not(v Var) Literal { return Literal{Var: v, Negated: true} }

type Term struct {
	Var         Var
	Coefficient int64
}

// LinearExpr is an integer-weighted sum of boolean variables plus a constant
// offset. A negated literal contributes (1 - v).
type LinearExpr struct {
	Terms  []Term
	Offset int64
}

func Sum(vars ...Var) LinearExpr {
	var expr LinearExpr
	for _, v := range vars {
		expr.Add(v)
	}
	return expr
}

func (expr *LinearExpr) Add(v Var) {
	expr.AddTerm(v, 1)
}

func (expr *LinearExpr) AddTerm(v Var, coefficient int64) {
	expr.Terms = append(expr.Terms, Term{Var: v, Coefficient: coefficient})
}

func (expr *LinearExpr) AddLiteral(literal Literal) {
	if literal.Negated {
		expr.Offset++
		expr.AddTerm(literal.Var, -1)
	} else {
		expr.AddTerm(literal.Var, 1)
	}
}

// Bounds with these values leave the corresponding side unconstrained.
const (
	NoLowerBound int64 = math.MinInt64
	NoUpperBound int64 = math.MaxInt64
)

// Constraint requires Min <= Expr <= Max (bounds inclusive).
type Constraint struct {
	Expr LinearExpr
	Min  int64
	Max  int64
}

// Model is a set of boolean variables, bounded linear constraints over them
// and an optional linear objective to minimize. It is a passive description;
// a Solver turns it into an answer.
type Model struct {
	names       []string
	Constraints []Constraint
	Objective   *LinearExpr
}

func NewModel() *Model {
	return &Model{}
}

func (model *Model) NewBool(name string) Var {
	model.names = append(model.names, name)
	return Var(len(model.names) - 1)
}

func (model *Model) NumVars() int {
	return len(model.names)
}

func (model *Model) Name(v Var) string {
	return model.names[v]
}

func (model *Model) AddLinear(expr LinearExpr, min, max int64) {
	model.Constraints = append(model.Constraints, Constraint{Expr: expr, Min: min, Max: max})
}

func (model *Model) AddEquality(expr LinearExpr, value int64) {
	model.AddLinear(expr, value, value)
}

func (model *Model) AddAtMost(expr LinearExpr, bound int64) {
	model.AddLinear(expr, NoLowerBound, bound)
}

// FixFalse pins a variable to 0.
func (model *Model) FixFalse(v Var) {
	model.AddEquality(Sum(v), 0)
}

// AndEquality constrains aux to be 1 exactly when every literal holds, via
// the standard linear relaxation: aux <= each literal and
// aux >= sum(literals) - (count - 1).
func (model *Model) AndEquality(aux Var, literals ...Literal) {
	var sum LinearExpr
	for _, literal := range literals {
		var upper LinearExpr
		upper.AddLiteral(literal)
		upper.AddTerm(aux, -1)
		model.AddLinear(upper, 0, NoUpperBound)

		sum.AddLiteral(literal)
	}

	sum.AddTerm(aux, -1)
	model.AddAtMost(sum, int64(len(literals))-1)
}

// Minimize installs the objective. At most one objective per model; the last
// call wins.
func (model *Model) Minimize(expr LinearExpr) {
	model.Objective = &expr
}
