package domain

import (
	"errors"
	"fmt"
)

// MaxSize is the largest supported grid edge length. Unit masks in the
// validator are 64 bits wide, one bit per candidate value.
const MaxSize = 64

// ErrInvalidSize reports a grid size that is not a supported perfect square.
var ErrInvalidSize = errors.New("grid size must be a perfect square between 1 and 64")

// CheckSize returns ErrInvalidSize unless size is a perfect square in
// [1, MaxSize].
func CheckSize(size int) error {
	if size < 1 || size > MaxSize || intSqrt(size)*intSqrt(size) != size {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return nil
}

// Grid holds cell values for a Size×Size board. Zero means empty.
type Grid struct {
	Size  int     `json:"size"`
	Cells [][]int `json:"cells"`
}

// NewGrid allocates an empty grid of the given edge length.
func NewGrid(size int) (*Grid, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return &Grid{Size: size, Cells: cells}, nil
}

// BoxSize returns the edge length of one box (√Size).
func (g *Grid) BoxSize() int { return intSqrt(g.Size) }

// Clone returns a deep copy sharing no cell storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, g.Size)
	for r := range cells {
		cells[r] = make([]int, g.Size)
		copy(cells[r], g.Cells[r])
	}
	return &Grid{Size: g.Size, Cells: cells}
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func intSqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Position identifies a cell on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PuzzleResult pairs a carved puzzle with the solution it was derived
// from, plus generation metadata. It is produced once by a generator
// and not mutated afterwards; solving happens on a clone of Puzzle.
type PuzzleResult struct {
	ID         string  `json:"id,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
	Difficulty float64 `json:"difficulty"`
	Puzzle     *Grid   `json:"puzzle"`
	Solution   *Grid   `json:"solution"`
	CreatedAt  int64   `json:"createdAt,omitempty"`
}
