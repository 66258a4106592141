package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/generator"
	"svw.info/sudokuviz/internal/ports"
	"svw.info/sudokuviz/internal/solver"
	"svw.info/sudokuviz/internal/usecase"
	"svw.info/sudokuviz/internal/validator"
)

func newTestRunner(t *testing.T, out io.Writer, quiet bool) *Runner {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	gen, err := generator.New(s, generator.Options{Size: 4, Difficulty: 0.5, Seed: 21})
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	return &Runner{
		UC:            usecase.NewService(s, gen, validator.New()),
		Out:           out,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableColors: true,
		Quiet:         quiet,
	}
}

func TestRunAnimatedSolve(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out, false)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "INITIALIZING SUDOKU SOLVER...") {
		t.Fatal("missing opening banner")
	}
	if !strings.Contains(got, "Initial board. Starting solver in 2 seconds...") {
		t.Fatal("missing initial pause line")
	}
	if !strings.Contains(got, "Solved successfully in") {
		t.Fatalf("missing success line in output:\n%s", got)
	}
	if frames := strings.Count(got, clearScreen); frames < 3 {
		t.Fatalf("drew %d frames, want at least initial, one step, final", frames)
	}
}

func TestRunQuietShowsTwoFrames(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out, true)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if frames := strings.Count(got, clearScreen); frames != 2 {
		t.Fatalf("quiet run drew %d frames, want 2", frames)
	}
	if strings.Contains(got, "INITIALIZING") || strings.Contains(got, "Starting solver") {
		t.Fatal("quiet run must not pause for banners")
	}
	if !strings.Contains(got, "Solved successfully in") {
		t.Fatal("missing success line")
	}
}

func TestRunCanceledBeforeStart(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// abortSolver cancels the run after a fixed number of solver mutations.
type abortSolver struct {
	inner  ports.Solver
	cancel context.CancelFunc
	after  int
	calls  int
}

func (a *abortSolver) Solve(ctx context.Context, g *domain.Grid, onStep ports.StepFunc) (bool, ports.Stats, error) {
	return a.inner.Solve(ctx, g, func() {
		a.calls++
		if a.calls == a.after {
			a.cancel()
		}
		if onStep != nil {
			onStep()
		}
	})
}

func (a *abortSolver) Steps() int { return a.inner.Steps() }

func TestRunAbortMidSolve(t *testing.T) {
	inner := solver.NewBacktrackingSolver()
	gen, err := generator.New(inner, generator.Options{Size: 4, Difficulty: 0.5, Seed: 21})
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	r := &Runner{
		UC:            usecase.NewService(&abortSolver{inner: inner, cancel: cancel, after: 3}, gen, validator.New()),
		Out:           &out,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableColors: true,
		Quiet:         true,
	}
	err = r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Fatal("missing abort notice")
	}
}

// noSolver reports every grid as unsolvable.
type noSolver struct{}

func (noSolver) Solve(context.Context, *domain.Grid, ports.StepFunc) (bool, ports.Stats, error) {
	return false, ports.Stats{Steps: 1}, nil
}

func (noSolver) Steps() int { return 1 }

func TestRunReportsNoSolution(t *testing.T) {
	gen, err := generator.New(solver.NewBacktrackingSolver(), generator.Options{Size: 4, Difficulty: 0.5, Seed: 21})
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	var out bytes.Buffer
	r := &Runner{
		UC:            usecase.NewService(noSolver{}, gen, validator.New()),
		Out:           &out,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableColors: true,
		Quiet:         true,
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("an unsolvable board is not an error, got %v", err)
	}
	if !strings.Contains(out.String(), "No solution exists.") {
		t.Fatal("missing no-solution notice")
	}
}
