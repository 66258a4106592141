package usecase

import (
	"context"
	"errors"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/ports"
)

// ErrNotConfigured reports an operation invoked before its dependency
// was wired. It is distinct from a solver's "no solution" false.
var ErrNotConfigured = errors.New("usecase dependency not configured")

// Service exposes the engine operations behind configured ports.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator) *Service {
	return &Service{Solver: s, Generator: g, Validator: v}
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid, onStep ports.StepFunc) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, ErrNotConfigured
	}
	return u.Solver.Solve(ctx, g, onStep)
}

func (u *Service) Generate(ctx context.Context) (*domain.PuzzleResult, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, ErrNotConfigured
	}
	return u.Generator.Generate(ctx)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Position, error) {
	if u.Validator == nil {
		return false, nil, ErrNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) CheckPlacement(ctx context.Context, g *domain.Grid, p domain.Position, num int) (bool, error) {
	if u.Validator == nil {
		return false, ErrNotConfigured
	}
	return u.Validator.CheckPlacement(ctx, g, p, num)
}
