package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Tour is an ordered visit sequence of all N nodes, each exactly once.
// The closing edge from the last node back to the first is implicit.
type Tour []int

// Validate checks that t is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if n < MinNodes || len(t) != n {
		return fmt.Errorf("Tour.Validate: length %d, want %d: %w", len(t), n, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("Tour.Validate: node %d out of range at %d: %w", v, i, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("Tour.Validate: node %d repeated at %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// Cost returns the closed-cycle length of t on g, rounded to 1e-9.
//
// Complexity: O(n).
func (t Tour) Cost(g *Graph) (float64, error) {
	if err := t.Validate(g.NodeCount()); err != nil {
		return 0, err
	}
	var (
		sum float64
		i   int
		n   = len(t)
	)
	for i = 0; i < n; i++ {
		sum += g.w[t[i]*g.n+t[(i+1)%n]]
	}

	return round1e9(sum), nil
}

// Closed returns a copy of t with the first node appended at the end.
func (t Tour) Closed() []int {
	if len(t) == 0 {
		return nil
	}
	out := make([]int, len(t)+1)
	copy(out, t)
	out[len(t)] = t[0]

	return out
}

// Canonical returns a copy rotated to start at node 0 and oriented so that
// the successor of 0 is smaller than its predecessor. Two tours describe the
// same cycle iff their canonical forms are equal.
// A t without node 0 is returned as an unchanged copy.
//
// Complexity: O(n).
func (t Tour) Canonical() Tour {
	n := len(t)
	out := make(Tour, n)
	pivot := -1
	var i int
	for i = 0; i < n; i++ {
		if t[i] == 0 {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		copy(out, t)
		return out
	}
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		// Reverse the interior [1..n-1]; node 0 stays in front.
		var k int
		for i, k = 1, n-1; i < k; i, k = i+1, k-1 {
			out[i], out[k] = out[k], out[i]
		}
	}

	return out
}

// Equivalent reports whether t and other describe the same cycle
// (equal up to rotation and reflection).
func (t Tour) Equivalent(other Tour) bool {
	if len(t) != len(other) {
		return false
	}
	a, b := t.Canonical(), other.Canonical()
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EdgeIDs returns the ids of the N cycle edges, in visit order.
func (t Tour) EdgeIDs(g *Graph) []int {
	n := len(t)
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = g.EdgeID(t[i], t[(i+1)%n])
	}

	return out
}

// Values returns the characteristic 0/1 vector of t over the edges of g.
func (t Tour) Values(g *Graph) []float64 {
	x := make([]float64, g.EdgeCount())
	var id int
	for _, id = range t.EdgeIDs(g) {
		if id >= 0 {
			x[id] = 1
		}
	}

	return x
}

// String renders the tour as "[0 2 1 3 | 0]"; the bar marks the closure.
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	var i int
	for i = range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(t[i]))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(t[0]))
	b.WriteByte(']')

	return b.String()
}

// Gap returns the relative gap of cost over optimum in percent.
// A zero optimum yields 0 for a zero cost and +Inf otherwise.
func Gap(cost, optimum float64) float64 {
	if optimum == 0 {
		if cost == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return 100 * (cost - optimum) / optimum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
