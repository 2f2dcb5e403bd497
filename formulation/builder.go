package formulation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/cuts"
)

// Model is a solver-neutral minimization model over a frozen graph.
// Build returns a fully populated model; AddCut is the only mutator.
type Model struct {
	Strategy    Strategy
	Directed    bool
	Vars        []Var
	Constraints []Constraint

	g     *core.Graph
	n     int
	arcs  int // number of x columns (edges or arcs)
	extra int // first rank or flow column; -1 for SubsetCuts
	cuts  int // subset constraints added so far
}

// Build constructs the model of strategy s over g.
//
// Complexity: SubsetCuts O(N²); Ordering and Flow O(N²) columns and rows.
func Build(g *core.Graph, s Strategy, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: nil graph: %w", core.ErrInvalidInstance)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SeedValues != nil && len(o.SeedValues) != g.EdgeCount() {
		return nil, fmt.Errorf("Build: %d seed values for %d edges: %w",
			len(o.SeedValues), g.EdgeCount(), ErrSeedLength)
	}

	m := &Model{Strategy: s, g: g, n: g.NodeCount(), extra: -1}
	switch s {
	case SubsetCuts:
		m.buildSubset()
	case Ordering:
		m.buildArcs()
		m.buildOrdering()
	case Flow:
		m.buildArcs()
		m.buildFlow()
	default:
		return nil, fmt.Errorf("Build: %v: %w", s, ErrUnknownStrategy)
	}

	if o.SeedValues != nil {
		for _, c := range seedCuts(g, o.SeedValues) {
			m.AddCut(c)
		}
	}

	return m, nil
}

// seedCuts separates a relaxation point the same way the lazy callback does.
func seedCuts(g *core.Graph, values []float64) []cuts.Cut {
	p := connectivity.UnionFind(g, values)
	if out := cuts.FromPartition(g, p); len(out) > 0 {
		return out
	}
	if connectivity.IsHamiltonianCycle(g, p, values) {
		return nil
	}

	return cuts.ShortCycles(g, values)
}

// buildSubset adds one binary per edge and the degree-2 rows.
func (m *Model) buildSubset() {
	edges := m.g.Edges()
	m.arcs = len(edges)
	m.Vars = make([]Var, 0, len(edges))
	for _, e := range edges {
		m.Vars = append(m.Vars, Var{
			Index: e.ID,
			Name:  pairName("x", e.I, e.J),
			Kind:  Binary,
			Upper: 1,
			Obj:   e.W,
		})
	}

	var i, j int
	for i = 0; i < m.n; i++ {
		terms := make([]Term, 0, m.n-1)
		for j = 0; j < m.n; j++ {
			if j != i {
				terms = append(terms, Term{Var: m.g.EdgeID(i, j), Coef: 1})
			}
		}
		m.Constraints = append(m.Constraints, Constraint{
			Name: "deg_" + strconv.Itoa(i), Terms: terms, Sense: Equal, RHS: 2,
		})
	}
}

// buildArcs adds one binary per ordered pair and the out/in assignment rows.
func (m *Model) buildArcs() {
	m.Directed = true
	m.arcs = m.n * (m.n - 1)
	m.Vars = make([]Var, 0, 2*m.arcs)

	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i == j {
				continue
			}
			m.Vars = append(m.Vars, Var{
				Index: len(m.Vars),
				Name:  pairName("x", i, j),
				Kind:  Binary,
				Upper: 1,
				Obj:   m.g.Cost(i, j),
			})
		}
	}

	for i = 0; i < m.n; i++ {
		out := make([]Term, 0, m.n-1)
		in := make([]Term, 0, m.n-1)
		for j = 0; j < m.n; j++ {
			if j == i {
				continue
			}
			out = append(out, Term{Var: m.ArcVar(i, j), Coef: 1})
			in = append(in, Term{Var: m.ArcVar(j, i), Coef: 1})
		}
		m.Constraints = append(m.Constraints,
			Constraint{Name: "out_" + strconv.Itoa(i), Terms: out, Sense: Equal, RHS: 1},
			Constraint{Name: "in_" + strconv.Itoa(i), Terms: in, Sense: Equal, RHS: 1},
		)
	}
}

// buildOrdering adds ranks u_i and the MTZ rows.
func (m *Model) buildOrdering() {
	m.extra = len(m.Vars)
	nf := float64(m.n)

	var i, j int
	for i = 0; i < m.n; i++ {
		v := Var{Index: len(m.Vars), Name: "u_" + strconv.Itoa(i), Kind: Integer, Lower: 2, Upper: nf}
		if i == 0 {
			v.Lower, v.Upper = 1, 1
		}
		m.Vars = append(m.Vars, v)
	}

	for i = 1; i < m.n; i++ {
		for j = 1; j < m.n; j++ {
			if i == j {
				continue
			}
			m.Constraints = append(m.Constraints, Constraint{
				Name: pairName("mtz", i, j),
				Terms: []Term{
					{Var: m.RankVar(i), Coef: 1},
					{Var: m.RankVar(j), Coef: -1},
					{Var: m.ArcVar(i, j), Coef: nf - 1},
				},
				Sense: LessEqual,
				RHS:   nf - 2,
			})
		}
	}
}

// buildFlow adds f_ij, conservation rows and linking rows.
func (m *Model) buildFlow() {
	m.extra = len(m.Vars)
	cap1 := float64(m.n - 1)

	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i != j {
				m.Vars = append(m.Vars, Var{
					Index: len(m.Vars),
					Name:  pairName("f", i, j),
					Kind:  Continuous,
					Upper: cap1,
				})
			}
		}
	}

	// Node 0 emits N−1 units: Σ f_0j − Σ f_j0 = N−1.
	// Every other node keeps one: Σ f_ji − Σ f_ij = 1.
	for i = 0; i < m.n; i++ {
		terms := make([]Term, 0, 2*(m.n-1))
		sign := -1.0
		rhs := 1.0
		if i == 0 {
			sign, rhs = 1, cap1
		}
		for j = 0; j < m.n; j++ {
			if j == i {
				continue
			}
			terms = append(terms,
				Term{Var: m.FlowVar(i, j), Coef: sign},
				Term{Var: m.FlowVar(j, i), Coef: -sign},
			)
		}
		m.Constraints = append(m.Constraints, Constraint{
			Name: "flow_" + strconv.Itoa(i), Terms: terms, Sense: Equal, RHS: rhs,
		})
	}

	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i == j {
				continue
			}
			m.Constraints = append(m.Constraints, Constraint{
				Name: pairName("cap", i, j),
				Terms: []Term{
					{Var: m.FlowVar(i, j), Coef: 1},
					{Var: m.ArcVar(i, j), Coef: -cap1},
				},
				Sense: LessEqual,
			})
		}
	}
}

// Graph returns the graph the model was built over.
func (m *Model) Graph() *core.Graph { return m.g }

// EdgeVar returns the column of edge {i,j} in an undirected model, or -1.
func (m *Model) EdgeVar(i, j int) int {
	if m.Directed {
		return -1
	}

	return m.g.EdgeID(i, j)
}

// ArcVar returns the column of arc (i,j) in a directed model, or -1.
func (m *Model) ArcVar(i, j int) int {
	if !m.Directed || i == j || i < 0 || j < 0 || i >= m.n || j >= m.n {
		return -1
	}
	if j > i {
		j--
	}

	return i*(m.n-1) + j
}

// RankVar returns the column of u_i in an Ordering model, or -1.
func (m *Model) RankVar(i int) int {
	if m.Strategy != Ordering || i < 0 || i >= m.n {
		return -1
	}

	return m.extra + i
}

// FlowVar returns the column of f_ij in a Flow model, or -1.
func (m *Model) FlowVar(i, j int) int {
	if m.Strategy != Flow {
		return -1
	}
	a := m.ArcVar(i, j)
	if a < 0 {
		return -1
	}

	return m.extra + a
}

// CutConstraint maps a subset cut onto the model columns: edge columns in an
// undirected model, both arcs of every edge in a directed one. The row is
// unnamed; AddCut names it.
func (m *Model) CutConstraint(c cuts.Cut) Constraint {
	terms := make([]Term, 0, len(c.Edges))
	var (
		i, j int
		id   int
	)
	for _, id = range c.Edges {
		if !m.Directed {
			terms = append(terms, Term{Var: id, Coef: 1})
			continue
		}
		i, j = m.g.Endpoints(id)
		if i < 0 {
			continue
		}
		terms = append(terms, Term{Var: m.ArcVar(i, j), Coef: 1}, Term{Var: m.ArcVar(j, i), Coef: 1})
	}

	return Constraint{Terms: terms, Sense: LessEqual, RHS: c.RHS}
}

// AddCut appends c as row "sec_<k>" and returns it.
func (m *Model) AddCut(c cuts.Cut) Constraint {
	row := m.CutConstraint(c)
	row.Name = "sec_" + strconv.Itoa(m.cuts)
	m.cuts++
	m.Constraints = append(m.Constraints, row)

	return row
}

// CutCount returns the number of subset rows added with AddCut.
func (m *Model) CutCount() int { return m.cuts }

// Objective evaluates Σ Obj·point; missing entries count as 0.
func (m *Model) Objective(point []float64) float64 {
	var sum float64
	for k, v := range m.Vars {
		if k < len(point) {
			sum += v.Obj * point[k]
		}
	}

	return sum
}

// EdgeValues projects a full model point onto the undirected edge vector:
// the edge columns themselves, or x_ij + x_ji for directed models.
func (m *Model) EdgeValues(point []float64) ([]float64, error) {
	if len(point) != len(m.Vars) {
		return nil, fmt.Errorf("EdgeValues: %d values for %d columns: %w", len(point), len(m.Vars), ErrPointLength)
	}
	out := make([]float64, m.g.EdgeCount())
	if !m.Directed {
		copy(out, point[:m.arcs])
		return out, nil
	}
	var i, j int
	for id := range out {
		i, j = m.g.Endpoints(id)
		out[id] = point[m.ArcVar(i, j)] + point[m.ArcVar(j, i)]
	}

	return out, nil
}

// Check verifies bounds, integrality of binary and integer columns, and every
// row at point within tol. The first violation is reported.
func (m *Model) Check(point []float64, tol float64) error {
	if len(point) != len(m.Vars) {
		return fmt.Errorf("Check: %d values for %d columns: %w", len(point), len(m.Vars), ErrPointLength)
	}
	var x float64
	for k, v := range m.Vars {
		x = point[k]
		if x < v.Lower-tol || x > v.Upper+tol {
			return fmt.Errorf("Check: %s = %g outside [%g, %g]: %w", v.Name, x, v.Lower, v.Upper, ErrInfeasible)
		}
		if v.Kind != Continuous && math.Abs(x-math.Round(x)) > tol {
			return fmt.Errorf("Check: %s = %g is fractional: %w", v.Name, x, ErrInfeasible)
		}
	}
	for _, c := range m.Constraints {
		if !c.Satisfied(point, tol) {
			return fmt.Errorf("Check: row %s: %g %v %g: %w", c.Name, c.LHS(point), c.Sense, c.RHS, ErrInfeasible)
		}
	}

	return nil
}

func pairName(prefix string, i, j int) string {
	return prefix + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
}
