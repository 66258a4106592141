package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/solver"
)

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"defaults", DefaultOptions(), nil},
		{"small", Options{Size: 4, Difficulty: 0.5}, nil},
		{"difficulty floor", Options{Size: 9, Difficulty: 0}, nil},
		{"difficulty ceiling", Options{Size: 9, Difficulty: 1}, nil},
		{"size not a square", Options{Size: 5, Difficulty: 0.5}, domain.ErrInvalidSize},
		{"size zero", Options{Size: 0, Difficulty: 0.5}, domain.ErrInvalidSize},
		{"size above bound", Options{Size: 81, Difficulty: 0.5}, domain.ErrInvalidSize},
		{"difficulty negative", Options{Size: 9, Difficulty: -0.1}, ErrInvalidDifficulty},
		{"difficulty above one", Options{Size: 9, Difficulty: 1.01}, ErrInvalidDifficulty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	s := solver.NewBacktrackingSolver()

	_, err := New(s, Options{Size: 7, Difficulty: 0.5})
	assert.ErrorIs(t, err, domain.ErrInvalidSize)

	_, err = New(s, Options{Size: 9, Difficulty: 2})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestNewSeedsFromClockWhenZero(t *testing.T) {
	gen, err := New(solver.NewBacktrackingSolver(), Options{Size: 4, Difficulty: 0.5})
	require.NoError(t, err)

	p, _, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, p.Seed)
}
