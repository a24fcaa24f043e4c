package services

import (
	"context"
	"fmt"

	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/domain/pet"
	"github.com/yungbote/petpal-backend/internal/platform/ctxutil"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type PetService interface {
	Stats(ctx context.Context) (pet.Stats, error)
	SetStats(ctx context.Context, stats pet.Stats) (pet.Stats, error)
	AddScore(ctx context.Context, delta int) (int, error)
	AddHunger(ctx context.Context, delta int) (int, error)
	Reset(ctx context.Context) (pet.Stats, error)
}

type petService struct {
	log   *logger.Logger
	state petstate.Store
}

func NewPetService(log *logger.Logger, state petstate.Store) PetService {
	return &petService{
		log:   log.With("service", "PetService"),
		state: state,
	}
}

func (ps *petService) Stats(ctx context.Context) (pet.Stats, error) {
	s, err := ps.state.GetStats(ctx, ctxutil.Scope(ctx))
	if err != nil {
		return pet.Stats{}, fmt.Errorf("load pet stats: %w", err)
	}
	return s, nil
}

func (ps *petService) SetStats(ctx context.Context, stats pet.Stats) (pet.Stats, error) {
	s, err := ps.state.SetStats(ctx, ctxutil.Scope(ctx), stats.Normalize())
	if err != nil {
		return pet.Stats{}, fmt.Errorf("store pet stats: %w", err)
	}
	return s, nil
}

func (ps *petService) AddScore(ctx context.Context, delta int) (int, error) {
	v, err := ps.state.AddScore(ctx, ctxutil.Scope(ctx), delta)
	if err != nil {
		return 0, fmt.Errorf("update score: %w", err)
	}
	return v, nil
}

func (ps *petService) AddHunger(ctx context.Context, delta int) (int, error) {
	v, err := ps.state.AddHunger(ctx, ctxutil.Scope(ctx), delta)
	if err != nil {
		return 0, fmt.Errorf("update hunger: %w", err)
	}
	return v, nil
}

func (ps *petService) Reset(ctx context.Context) (pet.Stats, error) {
	s, err := ps.state.ResetStats(ctx, ctxutil.Scope(ctx))
	if err != nil {
		return pet.Stats{}, fmt.Errorf("reset pet stats: %w", err)
	}
	ps.log.Debug("Pet stats reset", "scope", ctxutil.Scope(ctx))
	return s, nil
}
