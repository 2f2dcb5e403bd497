package tsplib_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/tsplib"
)

const sq4 = `NAME : sq4
TYPE : TSP
COMMENT : 3-4-5 rectangle
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 0
4 0 4
3 3 4
EOF
`

func read(t *testing.T, src string) *tsplib.Problem {
	t.Helper()
	p, err := tsplib.Read(strings.NewReader(src))
	require.NoError(t, err)

	return p
}

func TestRead_Euclidean(t *testing.T) {
	p := read(t, sq4)
	assert.Equal(t, "sq4", p.Name)
	assert.Equal(t, "3-4-5 rectangle", p.Comment)
	assert.Equal(t, 4, p.NodeCount())
	assert.Equal(t, tsplib.Euclidean2D, p.WeightType)

	want := [][]float64{
		{0, 3, 5, 4},
		{3, 0, 4, 5},
		{5, 4, 0, 3},
		{4, 5, 3, 0},
	}
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], p.Cost(i, j), "(%d,%d)", i, j)
		}
	}
	x, y := p.Position(3)
	assert.Equal(t, [2]float64{0, 4}, [2]float64{x, y})
	assert.Zero(t, p.Cost(-1, 2))

	g, err := core.NewGraph(p)
	require.NoError(t, err)
	cost, err := core.Tour{0, 1, 2, 3}.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 14.0, cost)
}

func TestRead_RoundingVariants(t *testing.T) {
	header := func(kind string, n int) string {
		return "NAME: r\nTYPE: TSP\nDIMENSION: " + strconv.Itoa(n) +
			"\nEDGE_WEIGHT_TYPE: " + kind + "\nNODE_COORD_SECTION\n"
	}

	euc := read(t, header("EUC_2D", 3)+"1 0 0\n2 1 1\n3 0 2\nEOF\n")
	ceil := read(t, header("CEIL_2D", 3)+"1 0 0\n2 1 1\n3 0 2\nEOF\n")
	assert.Equal(t, 1.0, euc.Cost(0, 1))
	assert.Equal(t, 2.0, ceil.Cost(0, 1))
	assert.Equal(t, 2.0, ceil.Cost(0, 2))

	att := read(t, header("ATT", 3)+"1 0 0\n2 10 0\n3 0 30\n")
	assert.Equal(t, 4.0, att.Cost(0, 1))
	assert.Equal(t, 10.0, att.Cost(0, 2))
	assert.Equal(t, 10.0, att.Cost(1, 2))
}

func TestRead_Geographic(t *testing.T) {
	p := read(t, `NAME: burma3
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: GEO
NODE_COORD_SECTION
   1  16.47       96.10
   2  16.47       94.44
   3  20.09       92.54
EOF`)
	assert.Equal(t, 153.0, p.Cost(0, 1))
	assert.Equal(t, 510.0, p.Cost(0, 2))
	assert.Equal(t, 422.0, p.Cost(2, 1))
	assert.Zero(t, p.Cost(1, 1))
}

func TestRead_ExplicitFormats(t *testing.T) {
	sections := map[string]string{
		"FULL_MATRIX":    "0 1 2\n1 0 3\n2 3 0",
		"UPPER_ROW":      "1 2\n3",
		"LOWER_ROW":      "1\n2 3",
		"UPPER_DIAG_ROW": "0 1 2 0 3 0",
		"LOWER_DIAG_ROW": "0\n1 0\n2 3\n0",
	}
	want := [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}

	for format, body := range sections {
		p := read(t, "NAME: e\nTYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: "+
			format+"\nEDGE_WEIGHT_SECTION\n"+body+"\nDISPLAY_DATA_SECTION\n1 0 0\n2 1 0\n3 2 0\nEOF\n")
		for i := range want {
			for j := range want[i] {
				assert.Equal(t, want[i][j], p.Cost(i, j), "%s (%d,%d)", format, i, j)
			}
		}
		x, _ := p.Position(2)
		assert.Equal(t, 2.0, x, format)
	}
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no dimension", "NAME: x\nTYPE: TSP\nEDGE_WEIGHT_TYPE: EUC_2D\nEOF\n", tsplib.ErrFormat},
		{"asymmetric", "NAME: x\nTYPE: ATSP\nDIMENSION: 3\n", tsplib.ErrUnsupported},
		{"bad dimension", "TYPE: TSP\nDIMENSION: three\n", tsplib.ErrFormat},
		{"huge dimension", "TYPE: TSP\nDIMENSION: 4294967297\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrFormat},
		{"dimension above cap", "TYPE: TSP\nDIMENSION: " + strconv.Itoa(tsplib.MaxDimension+1) + "\n", tsplib.ErrFormat},
		{"manhattan", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: MAN_2D\nNODE_COORD_SECTION\n1 0 0\n2 1 0\n3 2 0\nEOF\n", tsplib.ErrUnsupported},
		{"3d", "TYPE: TSP\nDIMENSION: 3\nNODE_COORD_TYPE: THREED_COORDS\n", tsplib.ErrUnsupported},
		{"duplicate id", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n1 1 0\n3 2 0\n", tsplib.ErrFormat},
		{"truncated", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n2 1\n", tsplib.ErrFormat},
		{"not a number", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n2 a 0\n3 2 0\n", tsplib.ErrFormat},
		{"coords missing", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EUC_2D\nEOF\n", tsplib.ErrFormat},
		{"no format", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_SECTION\n1 2 3\n", tsplib.ErrFormat},
		{"column format", "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_COL\nEDGE_WEIGHT_SECTION\n1 2 3\n", tsplib.ErrUnsupported},
		{"unknown keyword", "TYPE: TSP\nDIMENSION: 3\nFIXED_EDGES_SECTION\n", tsplib.ErrUnsupported},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Read(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadTour(t *testing.T) {
	tf, err := tsplib.ReadTour(strings.NewReader(`NAME : sq4.opt.tour
TYPE : TOUR
COMMENT : optimal
DIMENSION : 4
TOUR_SECTION
1
3
2
4
-1
EOF
`))
	require.NoError(t, err)
	assert.Equal(t, "sq4.opt.tour", tf.Name)
	assert.Equal(t, core.Tour{0, 2, 1, 3}, tf.Tour)

	tf, err = tsplib.ReadTour(strings.NewReader("TOUR_SECTION\n1 2 3 4 5 -1\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, tf.Dimension)
}

func TestReadTour_Errors(t *testing.T) {
	_, err := tsplib.ReadTour(strings.NewReader("TYPE: TOUR\nDIMENSION: 4\nTOUR_SECTION\n1 2 2 4\n-1\n"))
	assert.ErrorIs(t, err, core.ErrInvalidTour)

	_, err = tsplib.ReadTour(strings.NewReader("TYPE: TOUR\nDIMENSION: 5\nTOUR_SECTION\n1 2 3 4\n-1\n"))
	assert.ErrorIs(t, err, core.ErrInvalidTour)

	_, err = tsplib.ReadTour(strings.NewReader("TYPE: TOUR\nDIMENSION: 99999999999\nTOUR_SECTION\n1 2 3\n-1\n"))
	assert.ErrorIs(t, err, tsplib.ErrFormat)

	_, err = tsplib.ReadTour(strings.NewReader("TYPE: TSP\n"))
	assert.ErrorIs(t, err, tsplib.ErrUnsupported)

	_, err = tsplib.ReadTour(strings.NewReader("NAME: empty\n"))
	assert.ErrorIs(t, err, tsplib.ErrFormat)

	_, err = tsplib.ReadTour(strings.NewReader("TOUR_SECTION\n1 0 2\n"))
	assert.ErrorIs(t, err, tsplib.ErrFormat)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "sq4.tsp")
	require.NoError(t, os.WriteFile(inst, []byte(sq4), 0o600))

	p, err := tsplib.ReadFile(inst)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Dimension)

	_, err = tsplib.ReadFile(filepath.Join(dir, "missing.tsp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	tour := filepath.Join(dir, "sq4.opt.tour")
	require.NoError(t, os.WriteFile(tour, []byte("TYPE: TOUR\nTOUR_SECTION\n1 2 3 4\n-1\nEOF\n"), 0o600))
	tf, err := tsplib.ReadTourFile(tour)
	require.NoError(t, err)
	assert.Equal(t, core.Tour{0, 1, 2, 3}, tf.Tour)
}
