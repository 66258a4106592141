package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		want  Level
		ratio float64
	}{
		{"easy", Easy, 0.4},
		{"medium", Medium, 0.55},
		{"hard", Hard, 0.7},
		{"expert", Expert, 0.85},
		{"EXPERT", Expert, 0.85},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			l, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, l)
			assert.InDelta(t, tc.ratio, l.Ratio(), 1e-9)
		})
	}

	_, err := ParseLevel("impossible")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "easy", Easy.String())
	assert.Equal(t, "expert", Expert.String())
	assert.Equal(t, "unknown", Level(42).String())
}
