// Package cli drives the animated terminal solve: one frame per
// solver mutation, with placements and retractions paced separately.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/render"
	"svw.info/sudokuviz/internal/usecase"
)

const clearScreen = "\x1b[H\x1b[2J"

// Runner generates a puzzle and animates solving it on a terminal.
// The solver is observed through the board-changed callback only; the
// runner recovers the kind of change (placement or retraction) by
// diffing against the previous frame.
type Runner struct {
	UC     *usecase.Service
	Out    io.Writer
	Logger *slog.Logger

	DisableColors bool
	Quiet         bool // skip the animation, print only first and last frames

	PlaceDelay   time.Duration
	RetractDelay time.Duration // 0 means half of PlaceDelay
	StartPause   time.Duration
	InitPause    time.Duration
}

// Run plays one generate-and-solve round. An interrupted solve
// returns the ctx error; an unsolvable puzzle is reported on Out and
// returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if !r.Quiet {
		fmt.Fprint(r.Out, "\nINITIALIZING SUDOKU SOLVER...\n\n")
		r.sleep(ctx, r.InitPause)
	}

	p, gst, err := r.UC.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	r.Logger.Info("puzzle generated",
		"size", p.Puzzle.Size,
		"filled", p.Puzzle.CountFilled(),
		"seed", p.Seed,
		"steps", gst.Steps,
		"dur", gst.Duration.Round(time.Millisecond),
	)

	grid := p.Puzzle.Clone()
	painter := render.New(grid, r.DisableColors)

	fmt.Fprint(r.Out, clearScreen)
	fmt.Fprint(r.Out, painter.Frame(grid, 0))
	if !r.Quiet {
		fmt.Fprintln(r.Out, "\nInitial board. Starting solver in 2 seconds...")
		r.sleep(ctx, r.StartPause)
	}

	var onStep func()
	if !r.Quiet {
		prev := grid.Clone()
		onStep = func() {
			placed := applyDiff(prev, grid)
			fmt.Fprint(r.Out, clearScreen)
			fmt.Fprint(r.Out, painter.Frame(grid, r.UC.Solver.Steps()))
			if placed {
				r.sleep(ctx, r.PlaceDelay)
			} else {
				r.sleep(ctx, r.retractDelay())
			}
		}
	}

	solved, st, err := r.UC.Solve(ctx, grid, onStep)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintln(r.Out, "\nAborted.")
			return err
		}
		return fmt.Errorf("solve: %w", err)
	}
	if !solved {
		fmt.Fprintln(r.Out, "\nNo solution exists.")
		return nil
	}

	fmt.Fprint(r.Out, clearScreen)
	fmt.Fprint(r.Out, painter.Frame(grid, st.Steps))
	fmt.Fprintf(r.Out, "\nSolved successfully in %d steps!\n", st.Steps)

	ok, conflicts, err := r.UC.Validate(ctx, grid)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !ok {
		return fmt.Errorf("solved board has %d conflicts", len(conflicts))
	}
	r.Logger.Info("solved", "steps", st.Steps, "dur", st.Duration.Round(time.Millisecond))
	return nil
}

func (r *Runner) retractDelay() time.Duration {
	if r.RetractDelay > 0 {
		return r.RetractDelay
	}
	return r.PlaceDelay / 2
}

// sleep waits for d or until ctx is done, whichever comes first.
func (r *Runner) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// applyDiff folds the one changed cell of cur into prev and reports
// whether the change was a placement (empty to digit).
func applyDiff(prev, cur *domain.Grid) bool {
	for r := 0; r < cur.Size; r++ {
		for c := 0; c < cur.Size; c++ {
			if prev.Cells[r][c] != cur.Cells[r][c] {
				placed := prev.Cells[r][c] == 0
				prev.Cells[r][c] = cur.Cells[r][c]
				return placed
			}
		}
	}
	return true
}
