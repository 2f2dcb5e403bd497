package tsplib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspcut/core"
)

// TourFile is a parsed .tour file.
type TourFile struct {
	Name      string
	Comment   string
	Dimension int
	Tour      core.Tour // 0-based
}

// ReadTourFile opens path and parses it with ReadTour.
func ReadTourFile(path string) (*TourFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadTourFile: %w", err)
	}
	defer f.Close()

	t, err := ReadTour(f)
	if err != nil {
		return nil, fmt.Errorf("ReadTourFile: %s: %w", path, err)
	}

	return t, nil
}

// ReadTour parses a TSPLIB tour: 1-based ids in TOUR_SECTION, terminated by
// -1 or EOF. When DIMENSION is present the tour must be a permutation of it.
func ReadTour(r io.Reader) (*TourFile, error) {
	l := newLexer(r)
	tf := &TourFile{}

	for {
		line, ok := l.next()
		if !ok {
			break
		}
		key, val := splitKey(line)
		switch key {
		case "NAME":
			tf.Name = val
		case "COMMENT":
			tf.Comment = val
		case "TYPE":
			if !strings.EqualFold(val, "TOUR") {
				return nil, fmt.Errorf("ReadTour: TYPE %s: %w", val, ErrUnsupported)
			}
		case "DIMENSION":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > MaxDimension {
				return nil, fmt.Errorf("ReadTour: DIMENSION %q: %w", val, ErrFormat)
			}
			tf.Dimension = n
		case "TOUR_SECTION":
			if err := readTourSection(l, tf); err != nil {
				return nil, fmt.Errorf("ReadTour: %w", err)
			}
		case "EOF", "-1":
		default:
			return nil, fmt.Errorf("ReadTour: line %d: keyword %s: %w", l.line, key, ErrUnsupported)
		}
	}
	if err := l.err(); err != nil {
		return nil, fmt.Errorf("ReadTour: %w", err)
	}
	if tf.Tour == nil {
		return nil, fmt.Errorf("ReadTour: missing TOUR_SECTION: %w", ErrFormat)
	}
	if tf.Dimension == 0 {
		tf.Dimension = len(tf.Tour)
	}
	if err := tf.Tour.Validate(tf.Dimension); err != nil {
		return nil, fmt.Errorf("ReadTour: %w", err)
	}

	return tf, nil
}

func readTourSection(l *lexer, tf *TourFile) error {
	for {
		t, ok := l.token()
		if !ok || t == "-1" {
			return nil
		}
		if strings.EqualFold(t, "EOF") {
			return nil
		}
		id, err := strconv.Atoi(t)
		if err != nil || id < 1 {
			return fmt.Errorf("line %d: tour node %q: %w", l.line, t, ErrFormat)
		}
		tf.Tour = append(tf.Tour, id-1)
	}
}
