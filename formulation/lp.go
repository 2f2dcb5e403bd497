package formulation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// termsPerLine keeps LP lines well below the 255-character limit.
const termsPerLine = 6

// WriteLP writes the model in CPLEX LP format.
//
// Layout: Minimize / Subject To / Bounds / Binaries / Generals / End.
// Binary columns with default [0,1] bounds and continuous columns with
// [0,+Inf) are omitted from Bounds.
func (m *Model) WriteLP(w io.Writer) error {
	bw := bufio.NewWriter(w)
	lw := &lpWriter{w: bw}

	lw.printf("\\ Problem: tsp %s, %d nodes\n", m.Strategy, m.n)
	lw.printf("Minimize\n obj:")
	obj := make([]Term, 0, m.arcs)
	for k, v := range m.Vars {
		if v.Obj != 0 {
			obj = append(obj, Term{Var: k, Coef: v.Obj})
		}
	}
	m.writeTerms(lw, obj)
	lw.printf("\n")

	lw.printf("Subject To\n")
	for _, c := range m.Constraints {
		lw.printf(" %s:", c.Name)
		m.writeTerms(lw, c.Terms)
		lw.printf(" %s %s\n", c.Sense, num(c.RHS))
	}

	lw.printf("Bounds\n")
	for _, v := range m.Vars {
		switch {
		case v.Lower == v.Upper:
			lw.printf(" %s = %s\n", v.Name, num(v.Lower))
		case v.Kind == Binary && v.Lower == 0 && v.Upper == 1:
		case v.Lower == 0 && math.IsInf(v.Upper, 1):
		case math.IsInf(v.Upper, 1):
			lw.printf(" %s >= %s\n", v.Name, num(v.Lower))
		default:
			lw.printf(" %s <= %s <= %s\n", num(v.Lower), v.Name, num(v.Upper))
		}
	}

	m.writeKind(lw, "Binaries", Binary)
	m.writeKind(lw, "Generals", Integer)
	lw.printf("End\n")

	if lw.err != nil {
		return fmt.Errorf("WriteLP: %w", lw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteLP: %w", err)
	}

	return nil
}

func (m *Model) writeTerms(lw *lpWriter, terms []Term) {
	if len(terms) == 0 {
		lw.printf(" 0 %s", m.Vars[0].Name)
		return
	}
	for k, t := range terms {
		if k > 0 && k%termsPerLine == 0 {
			lw.printf("\n   ")
		}
		sign := "+"
		coef := t.Coef
		if coef < 0 {
			sign, coef = "-", -coef
		}
		if k == 0 && sign == "+" {
			sign = ""
		}
		if sign != "" {
			lw.printf(" %s", sign)
		}
		if coef == 1 {
			lw.printf(" %s", m.Vars[t.Var].Name)
		} else {
			lw.printf(" %s %s", num(coef), m.Vars[t.Var].Name)
		}
	}
}

func (m *Model) writeKind(lw *lpWriter, section string, kind Kind) {
	first := true
	n := 0
	for _, v := range m.Vars {
		if v.Kind != kind {
			continue
		}
		if first {
			lw.printf("%s\n", section)
			first = false
		}
		lw.printf(" %s", v.Name)
		n++
		if n%termsPerLine == 0 {
			lw.printf("\n")
		}
	}
	if !first && n%termsPerLine != 0 {
		lw.printf("\n")
	}
}

// lpWriter remembers the first write error.
type lpWriter struct {
	w   io.Writer
	err error
}

func (l *lpWriter) printf(format string, args ...any) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, format, args...)
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
