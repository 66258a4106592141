package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/ports"
)

// DefaultDifficulty is the fraction of cells carved out of a solved
// grid when Options does not say otherwise.
const DefaultDifficulty = 0.7

// ErrInvalidDifficulty reports a removal ratio outside [0, 1].
var ErrInvalidDifficulty = errors.New("difficulty must be within [0, 1]")

// ErrNoCompletion reports a seeded grid the solver could not finish.
var ErrNoCompletion = errors.New("seeded grid has no completion")

// Options configures a DiagonalGenerator.
type Options struct {
	Size       int
	Difficulty float64
	Seed       int64 // 0 means seed from the clock
}

// DefaultOptions is the classic 9×9 puzzle at the default ratio.
func DefaultOptions() Options {
	return Options{Size: 9, Difficulty: DefaultDifficulty}
}

// Validate returns the first configuration error, wrapping the
// matching sentinel.
func (o Options) Validate() error {
	if err := domain.CheckSize(o.Size); err != nil {
		return err
	}
	if o.Difficulty < 0 || o.Difficulty > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDifficulty, o.Difficulty)
	}
	return nil
}

// DiagonalGenerator creates puzzles by seeding the diagonal boxes with
// random permutations, completing the grid with the provided Solver,
// and carving cells out of a copy. One rand source, owned by the
// generator, drives every shuffle.
type DiagonalGenerator struct {
	Solver ports.Solver

	opts Options
	rng  *rand.Rand
}

// New wires a generator around the given solver, validating opts. A
// zero seed is replaced with the current clock so every run differs;
// pass an explicit seed for reproducible puzzles.
func New(s ports.Solver, opts Options) (*DiagonalGenerator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &DiagonalGenerator{
		Solver: s,
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}, nil
}
