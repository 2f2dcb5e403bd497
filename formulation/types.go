package formulation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrUnknownStrategy = errors.New("formulation: unknown strategy")
	ErrSeedLength      = errors.New("formulation: seed values length mismatch")
	ErrPointLength     = errors.New("formulation: point length mismatch")
	ErrInfeasible      = errors.New("formulation: point is infeasible")
)

// Strategy selects the subtour-elimination formulation.
type Strategy int

const (
	// Ordering is the Miller–Tucker–Zemlin rank formulation.
	Ordering Strategy = iota

	// Flow is the Gavish–Graves single-commodity flow formulation.
	Flow

	// SubsetCuts is the Dantzig–Fulkerson–Johnson formulation with lazy
	// subset constraints.
	SubsetCuts
)

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Ordering, Flow, SubsetCuts}
}

// String returns the canonical name used on the command line.
func (s Strategy) String() string {
	switch s {
	case Ordering:
		return "MTZ"
	case Flow:
		return "GAVISH_GRAVES"
	case SubsetCuts:
		return "DFJ"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts MTZ, GAVISH_GRAVES and DFJ (any case) and the aliases
// ordering, flow and subset.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mtz", "ordering":
		return Ordering, nil
	case "gavish_graves", "gavish-graves", "gg", "flow":
		return Flow, nil
	case "dfj", "subset", "subsetcuts":
		return SubsetCuts, nil
	}

	return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
}

// Kind is the domain of a variable.
type Kind int

const (
	Binary Kind = iota
	Integer
	Continuous
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	default:
		return "continuous"
	}
}

// Sense is the relation of a constraint row to its right-hand side.
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

// String returns the LP operator.
func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}

// Var is one model column.
type Var struct {
	Index int
	Name  string
	Kind  Kind
	Lower float64
	Upper float64 // +Inf for unbounded
	Obj   float64 // minimization coefficient
}

// Term is coef·x[Var].
type Term struct {
	Var  int
	Coef float64
}

// Constraint is the row Σ Terms  Sense  RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// LHS evaluates the row at point; missing entries count as 0.
func (c Constraint) LHS(point []float64) float64 {
	var sum float64
	for _, t := range c.Terms {
		if t.Var < len(point) {
			sum += t.Coef * point[t.Var]
		}
	}

	return sum
}

// Satisfied reports whether point meets the row within tol.
func (c Constraint) Satisfied(point []float64, tol float64) bool {
	lhs := c.LHS(point)
	switch c.Sense {
	case LessEqual:
		return lhs <= c.RHS+tol
	case GreaterEqual:
		return lhs >= c.RHS-tol
	default:
		return lhs >= c.RHS-tol && lhs <= c.RHS+tol
	}
}
