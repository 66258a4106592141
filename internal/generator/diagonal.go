package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/ports"
)

// Generate builds a full solution from randomly seeded diagonal boxes,
// then carves floor(size²×difficulty) cells out of a copy. Carving
// never checks that the puzzle has a unique solution.
func (g *DiagonalGenerator) Generate(ctx context.Context) (*domain.PuzzleResult, ports.Stats, error) {
	start := time.Now()
	full, err := domain.NewGrid(g.opts.Size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	g.fillDiagonal(full)
	solved, st, err := g.Solver.Solve(ctx, full, nil)
	if err != nil {
		return nil, ports.Stats{Steps: st.Steps, Duration: time.Since(start)}, fmt.Errorf("complete seeded grid: %w", err)
	}
	if !solved {
		// A correctly seeded diagonal always completes.
		return nil, ports.Stats{Steps: st.Steps, Duration: time.Since(start)}, ErrNoCompletion
	}
	puzzle := full.Clone()
	g.carve(puzzle)
	p := &domain.PuzzleResult{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Seed:       g.opts.Seed,
		Difficulty: g.opts.Difficulty,
		Puzzle:     puzzle,
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Steps: st.Steps, Duration: time.Since(start)}, nil
}

// fillDiagonal seeds every diagonal box with a fresh permutation of
// 1..size. Diagonal boxes share no row, column, or box, so the seed
// needs no validity checks and the later solve always succeeds.
func (g *DiagonalGenerator) fillDiagonal(grid *domain.Grid) {
	bs := grid.BoxSize()
	for i := 0; i < grid.Size; i += bs {
		g.fillBox(grid, i, i)
	}
}

func (g *DiagonalGenerator) fillBox(grid *domain.Grid, row, col int) {
	n := grid.Size
	bs := grid.BoxSize()
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i + 1
	}
	g.rng.Shuffle(n, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	idx := 0
	for dr := 0; dr < bs; dr++ {
		for dc := 0; dc < bs; dc++ {
			grid.Cells[row+dr][col+dc] = nums[idx]
			idx++
		}
	}
}

// carve clears floor(size²×difficulty) cells, chosen by a uniform
// shuffle of all positions.
func (g *DiagonalGenerator) carve(grid *domain.Grid) {
	n := grid.Size
	total := n * n
	remove := int(float64(total) * g.opts.Difficulty)
	if remove > total {
		remove = total
	}
	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	g.rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })
	for _, pos := range positions[:remove] {
		grid.Cells[pos/n][pos%n] = 0
	}
}
