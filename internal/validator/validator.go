package validator

import (
	"context"

	"svw.info/sudokuviz/internal/domain"
)

// ValidInRow reports whether num does not already appear in row.
func ValidInRow(g *domain.Grid, row, num int) bool {
	for c := 0; c < g.Size; c++ {
		if g.Cells[row][c] == num {
			return false
		}
	}
	return true
}

// ValidInColumn reports whether num does not already appear in col.
func ValidInColumn(g *domain.Grid, col, num int) bool {
	for r := 0; r < g.Size; r++ {
		if g.Cells[r][col] == num {
			return false
		}
	}
	return true
}

// ValidInBox reports whether num does not already appear in the box
// containing (row, col). The box corner is (row-row%boxSize, col-col%boxSize).
func ValidInBox(g *domain.Grid, row, col, num int) bool {
	bs := g.BoxSize()
	br, bc := row-row%bs, col-col%bs
	for dr := 0; dr < bs; dr++ {
		for dc := 0; dc < bs; dc++ {
			if g.Cells[br+dr][bc+dc] == num {
				return false
			}
		}
	}
	return true
}

// ValidPlacement reports whether num may legally occupy (row, col).
// It never mutates g and is callable on any snapshot, complete or
// partial.
func ValidPlacement(g *domain.Grid, row, col, num int) bool {
	return ValidInRow(g, row, num) && ValidInColumn(g, col, num) && ValidInBox(g, row, col, num)
}

// FastValidator scans whole grids for row/column/box conflicts.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Position, error) {
	n := g.Size
	bs := g.BoxSize()
	conf := make([]domain.Position, 0, 8)
	// rows
	for r := 0; r < n; r++ {
		var m uint64
		for c := 0; c < n; c++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < n; c++ {
		var m uint64
		for r := 0; r < n; r++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < bs; br++ {
		for bc := 0; bc < bs; bc++ {
			var m uint64
			for dr := 0; dr < bs; dr++ {
				for dc := 0; dc < bs; dc++ {
					r := br*bs + dr
					c := bc*bs + dc
					val := g.Cells[r][c]
					if val == 0 {
						continue
					}
					bit := uint64(1) << (val - 1)
					if m&bit != 0 {
						conf = append(conf, domain.Position{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// CheckPlacement reports whether num may legally occupy p.
func (v *FastValidator) CheckPlacement(ctx context.Context, g *domain.Grid, p domain.Position, num int) (bool, error) {
	return ValidPlacement(g, p.Row, p.Col, num), nil
}
