package solver

import (
	"context"
	"time"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/ports"
	"svw.info/sudokuviz/internal/validator"
)

// Solve fills g in place. It reports true with g complete when a
// solution exists, or false with g restored to its input state when
// none does. onStep, if non-nil, runs after every placement and every
// retraction. A canceled ctx aborts the search, returning the ctx
// error with g restored.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid, onStep ports.StepFunc) (bool, ports.Stats, error) {
	start := time.Now()
	s.steps = 0
	n := g.Size
	var walk func(row, col int) (bool, error)
	walk = func(row, col int) (bool, error) {
		s.steps++
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if col == n {
			return walk(row+1, 0)
		}
		if row == n {
			return true, nil
		}
		if g.Cells[row][col] != 0 {
			return walk(row, col+1)
		}
		for v := 1; v <= n; v++ {
			if !validator.ValidPlacement(g, row, col, v) {
				continue
			}
			g.Cells[row][col] = v
			if onStep != nil {
				onStep()
			}
			ok, err := walk(row, col+1)
			if ok {
				return true, nil
			}
			g.Cells[row][col] = 0
			if err != nil {
				// Abort path: undo without counting a retraction.
				return false, err
			}
			s.steps++
			if onStep != nil {
				onStep()
			}
		}
		return false, nil
	}
	ok, err := walk(0, 0)
	return ok, ports.Stats{Steps: s.steps, Duration: time.Since(start)}, err
}
