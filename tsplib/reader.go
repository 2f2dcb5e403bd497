package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspcut/core"
)

// maxLine bounds a single input line (long EXPLICIT rows).
const maxLine = 16 << 20

// lexer yields whitespace-separated tokens and whole lines from a TSPLIB file.
type lexer struct {
	sc   *bufio.Scanner
	line int
	toks []string
}

func newLexer(r io.Reader) *lexer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	return &lexer{sc: sc}
}

// next returns the next non-empty raw line, trimmed.
func (l *lexer) next() (string, bool) {
	for l.sc.Scan() {
		l.line++
		s := strings.TrimSpace(l.sc.Text())
		if s != "" {
			return s, true
		}
	}

	return "", false
}

// token returns the next token across line boundaries.
func (l *lexer) token() (string, bool) {
	for len(l.toks) == 0 {
		s, ok := l.next()
		if !ok {
			return "", false
		}
		l.toks = strings.Fields(s)
	}
	t := l.toks[0]
	l.toks = l.toks[1:]

	return t, true
}

func (l *lexer) float() (float64, error) {
	t, ok := l.token()
	if !ok {
		return 0, fmt.Errorf("line %d: unexpected end of input: %w", l.line, ErrFormat)
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not a number: %w", l.line, t, ErrFormat)
	}

	return v, nil
}

func (l *lexer) err() error {
	if err := l.sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", l.line, err)
	}

	return nil
}

// splitKey parses "KEY : value" and "KEY: value"; section names have no value.
func splitKey(line string) (string, string) {
	key, val, found := strings.Cut(line, ":")
	if !found {
		return strings.ToUpper(strings.TrimSpace(line)), ""
	}

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(val)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %s: %w", path, err)
	}

	return p, nil
}

// Read parses a symmetric TSPLIB instance and computes its dense cost matrix.
func Read(r io.Reader) (*Problem, error) {
	l := newLexer(r)
	p := &Problem{}

	var (
		coords   [][2]float64
		explicit []float64
	)
	for {
		line, ok := l.next()
		if !ok {
			break
		}
		key, val := splitKey(line)
		switch key {
		case "NAME":
			p.Name = val
		case "COMMENT":
			if p.Comment != "" {
				p.Comment += "\n"
			}
			p.Comment += val
		case "TYPE":
			p.Type = strings.ToUpper(val)
			if p.Type != "TSP" {
				return nil, fmt.Errorf("Read: TYPE %s: %w", val, ErrUnsupported)
			}
		case "DIMENSION":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("Read: line %d: DIMENSION %q: %w", l.line, val, ErrFormat)
			}
			if n > MaxDimension {
				return nil, fmt.Errorf("Read: line %d: DIMENSION %d exceeds %d: %w", l.line, n, MaxDimension, ErrFormat)
			}
			p.Dimension = n
		case "EDGE_WEIGHT_TYPE":
			p.WeightType = strings.ToUpper(val)
		case "EDGE_WEIGHT_FORMAT":
			p.WeightFormat = strings.ToUpper(val)
		case "NODE_COORD_TYPE", "DISPLAY_DATA_TYPE":
			if strings.EqualFold(val, "THREED_COORDS") {
				return nil, fmt.Errorf("Read: %s %s: %w", key, val, ErrUnsupported)
			}
		case "NODE_COORD_SECTION", "DISPLAY_DATA_SECTION":
			if p.Dimension == 0 {
				return nil, fmt.Errorf("Read: %s before DIMENSION: %w", key, ErrFormat)
			}
			c, err := readCoords(l, p.Dimension)
			if err != nil {
				return nil, fmt.Errorf("Read: %s: %w", key, err)
			}
			if key == "NODE_COORD_SECTION" || coords == nil {
				coords = c
			}
		case "EDGE_WEIGHT_SECTION":
			if p.Dimension == 0 {
				return nil, fmt.Errorf("Read: %s before DIMENSION: %w", key, ErrFormat)
			}
			count, err := explicitCount(p.WeightFormat, p.Dimension)
			if err != nil {
				return nil, fmt.Errorf("Read: %w", err)
			}
			explicit = make([]float64, count)
			for k := range explicit {
				if explicit[k], err = l.float(); err != nil {
					return nil, fmt.Errorf("Read: %s: %w", key, err)
				}
			}
		case "EOF":
			return p.finish(coords, explicit)
		default:
			return nil, fmt.Errorf("Read: line %d: keyword %s: %w", l.line, key, ErrUnsupported)
		}
	}
	if err := l.err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return p.finish(coords, explicit)
}

// readCoords reads n "id x y" records with 1-based ids in any order.
func readCoords(l *lexer, n int) ([][2]float64, error) {
	out := make([][2]float64, n)
	seen := make([]bool, n)
	for k := 0; k < n; k++ {
		idf, err := l.float()
		if err != nil {
			return nil, err
		}
		id := int(idf) - 1
		if id < 0 || id >= n || float64(id+1) != idf || seen[id] {
			return nil, fmt.Errorf("line %d: node id %v: %w", l.line, idf, ErrFormat)
		}
		seen[id] = true
		if out[id][0], err = l.float(); err != nil {
			return nil, err
		}
		if out[id][1], err = l.float(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// explicitCount returns how many numbers an EDGE_WEIGHT_SECTION holds.
func explicitCount(format string, n int) (int, error) {
	switch format {
	case "FULL_MATRIX":
		return n * n, nil
	case "UPPER_ROW", "LOWER_ROW":
		return n * (n - 1) / 2, nil
	case "UPPER_DIAG_ROW", "LOWER_DIAG_ROW":
		return n * (n + 1) / 2, nil
	case "":
		return 0, fmt.Errorf("EDGE_WEIGHT_SECTION without EDGE_WEIGHT_FORMAT: %w", ErrFormat)
	}

	return 0, fmt.Errorf("EDGE_WEIGHT_FORMAT %s: %w", format, ErrUnsupported)
}

// finish checks the header and fills the dense matrix.
func (p *Problem) finish(coords [][2]float64, explicit []float64) (*Problem, error) {
	n := p.Dimension
	if n == 0 {
		return nil, fmt.Errorf("Read: missing DIMENSION: %w", ErrFormat)
	}
	p.w = make([]float64, n*n)

	if coords != nil {
		p.Coords = make([]core.Node, n)
		for i, c := range coords {
			p.Coords[i] = core.Node{ID: i, X: c[0], Y: c[1]}
		}
	}

	if p.WeightType == Explicit {
		if explicit == nil {
			return nil, fmt.Errorf("Read: EXPLICIT without EDGE_WEIGHT_SECTION: %w", ErrFormat)
		}
		p.fillExplicit(explicit)
		return p, nil
	}

	dist := metric(p.WeightType)
	if dist == nil {
		return nil, fmt.Errorf("Read: EDGE_WEIGHT_TYPE %q: %w", p.WeightType, ErrUnsupported)
	}
	if coords == nil {
		return nil, fmt.Errorf("Read: %s without NODE_COORD_SECTION: %w", p.WeightType, ErrFormat)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := dist(coords[i], coords[j])
			p.w[i*n+j], p.w[j*n+i] = d, d
		}
	}

	return p, nil
}

// fillExplicit spreads the section numbers over the matrix, mirroring
// triangular formats.
func (p *Problem) fillExplicit(vals []float64) {
	n := p.Dimension
	set := func(i, j int, v float64) {
		p.w[i*n+j], p.w[j*n+i] = v, v
	}

	var i, j int
	k := 0
	switch p.WeightFormat {
	case "FULL_MATRIX":
		copy(p.w, vals)
	case "UPPER_ROW":
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				set(i, j, vals[k])
				k++
			}
		}
	case "LOWER_ROW":
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				set(i, j, vals[k])
				k++
			}
		}
	case "UPPER_DIAG_ROW":
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				set(i, j, vals[k])
				k++
			}
		}
	case "LOWER_DIAG_ROW":
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				set(i, j, vals[k])
				k++
			}
		}
	}
}
