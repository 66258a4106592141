package ports

import (
	"context"
	"time"

	"svw.info/sudokuviz/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Steps    int
	Duration time.Duration
}

// StepFunc observes a running search. It is invoked synchronously,
// with no arguments, after every cell value change (placement or
// retraction). A nil StepFunc disables observation.
type StepFunc func()

// Solver fills a grid in place via backtracking.
type Solver interface {
	// Solve reports true when a solution was found. On false the grid
	// is restored to its input state. A canceled ctx aborts the search
	// with the ctx error, distinct from the "no solution" false.
	Solve(ctx context.Context, g *domain.Grid, onStep StepFunc) (bool, Stats, error)
	// Steps returns the running step count of the solve in progress.
	Steps() int
}

// Generator creates puzzle/solution pairs.
type Generator interface {
	Generate(ctx context.Context) (*domain.PuzzleResult, Stats, error)
}

// Validator performs constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.Position, err error)
	CheckPlacement(ctx context.Context, g *domain.Grid, p domain.Position, num int) (bool, error)
}
