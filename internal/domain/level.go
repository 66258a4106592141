package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Level names a preset removal ratio for puzzle generation. A level
// carries nothing but its ratio; generated puzzles are never graded
// after the fact.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert
)

// ErrUnknownLevel reports a level name outside easy|medium|hard|expert.
var ErrUnknownLevel = errors.New("unknown level")

var levelRatios = [...]float64{
	Easy:   0.4,
	Medium: 0.55,
	Hard:   0.7,
	Expert: 0.85,
}

var levelNames = [...]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Expert: "expert",
}

// ParseLevel maps a name to its Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(s)
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Ratio is the fraction of cells carved out for this level.
func (l Level) Ratio() float64 {
	if l < Easy || l > Expert {
		return levelRatios[Hard]
	}
	return levelRatios[l]
}

func (l Level) String() string {
	if l < Easy || l > Expert {
		return "unknown"
	}
	return levelNames[l]
}
