// Package render formats grids for a terminal. Givens keep their own
// color so solver-placed digits stand out during animation.
package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"svw.info/sudokuviz/internal/domain"
)

const banner = "SUDOKU SOLVER v1.0"

// Renderer turns grids into boxed text boards.
type Renderer struct {
	DisableColors bool

	given [][]bool
	width int
}

// New builds a renderer for boards derived from start: every cell
// filled in start is treated as a given in later frames.
func New(start *domain.Grid, disableColors bool) *Renderer {
	given := make([][]bool, start.Size)
	for r := range given {
		given[r] = make([]bool, start.Size)
		for c := range given[r] {
			given[r][c] = start.Cells[r][c] != 0
		}
	}
	width := 1
	if start.Size > 9 {
		width = 2
	}
	return &Renderer{DisableColors: disableColors, given: given, width: width}
}

// Frame renders the banner with a live step count, then the board.
// Screen control (clearing, cursor) is the caller's concern.
func (r *Renderer) Frame(g *domain.Grid, steps int) string {
	header := fmt.Sprintf("%s  |  Steps: %d", banner, steps)
	if !r.DisableColors {
		header = aurora.Cyan(header).String()
	}
	return "\n  " + header + "\n\n" + r.Board(g)
}

// Board renders only the boxed grid.
func (r *Renderer) Board(g *domain.Grid) string {
	var b strings.Builder
	bs := g.BoxSize()
	rule := r.rule(bs)
	for row := 0; row < g.Size; row++ {
		if row%bs == 0 {
			b.WriteString(rule + "\n")
		}
		b.WriteString("  ")
		for col := 0; col < g.Size; col++ {
			if col%bs == 0 {
				b.WriteString("| ")
			}
			b.WriteString(r.cell(g, row, col) + " ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// rule is one horizontal border: boxSize dashed segments joined by +.
func (r *Renderer) rule(bs int) string {
	seg := strings.Repeat("-", bs*(r.width+1)+1)
	parts := make([]string, bs)
	for i := range parts {
		parts[i] = seg
	}
	return "  " + strings.Join(parts, "+")
}

func (r *Renderer) cell(g *domain.Grid, row, col int) string {
	v := g.Cells[row][col]
	if v == 0 {
		return strings.Repeat(" ", r.width-1) + "."
	}
	s := fmt.Sprintf("%*d", r.width, v)
	if r.DisableColors {
		return s
	}
	if r.given[row][col] {
		return aurora.White(s).String()
	}
	return aurora.Green(s).String()
}
