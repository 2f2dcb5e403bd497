package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/tspcut/connectivity"
)

// benchVector selects k disjoint cycles of length n/k.
func benchVector(b *testing.B, n, k int) ([]float64, func(a connectivity.Analyzer)) {
	g := unitGraph(b, n)
	x := make([]float64, g.EdgeCount())
	size := n / k
	for c := 0; c < k; c++ {
		base := c * size
		for i := 0; i < size; i++ {
			x[g.EdgeID(base+i, base+(i+1)%size)] = 1
		}
	}

	return x, func(a connectivity.Analyzer) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = a.Analyze(g, x)
		}
	}
}

func BenchmarkUnionFind_N200_K10(b *testing.B) {
	_, run := benchVector(b, 200, 10)
	run(connectivity.UnionFindAnalyzer)
}

func BenchmarkRankPropagation_N200_K10(b *testing.B) {
	_, run := benchVector(b, 200, 10)
	run(connectivity.RankAnalyzer)
}
