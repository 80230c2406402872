package grid

import (
	"fmt"
	"iter"
	"strings"
)

// A Grid is a rectangular map of bytes.
type Grid struct {
	W, H  int
	cells [][]byte
}

// New returns a w*h grid filled with b.
func New(w, h int, b byte) *Grid {
	g := &Grid{W: w, H: h, cells: make([][]byte, h)}
	for y := range g.cells {
		g.cells[y] = []byte(strings.Repeat(string(b), w))
	}
	return g
}

// Parse reads a grid, one row per line. Leading and trailing blank lines are ignored;
// all rows must have the same length.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	g := &Grid{H: len(lines)}
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if y == 0 {
			g.W = len(line)
		} else if len(line) != g.W {
			return nil, fmt.Errorf("row %d has length %d, expected %d", y, len(line), g.W)
		}
		g.cells = append(g.cells, []byte(line))
	}
	if g.W == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	return g, nil
}

// In tells whether p is inside the grid.
func (g *Grid) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the byte at p, or 0 if p is outside the grid.
func (g *Grid) At(p Pt) byte {
	if !g.In(p) {
		return 0
	}
	return g.cells[p.Y][p.X]
}

func (g *Grid) Set(p Pt, b byte) {
	g.cells[p.Y][p.X] = b
}

// Find returns the first position of b, in reading order.
func (g *Grid) Find(b byte) (Pt, bool) {
	for p, c := range g.All() {
		if c == b {
			return p, true
		}
	}
	return Pt{}, false
}

// All iterates over the cells of the grid, in reading order.
func (g *Grid) All() iter.Seq2[Pt, byte] {
	return func(yield func(Pt, byte) bool) {
		for y, row := range g.cells {
			for x, c := range row {
				if !yield(Pt{x, y}, c) {
					return
				}
			}
		}
	}
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
