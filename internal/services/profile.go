package services

import (
	"context"
	"fmt"

	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/data/repos"
	"github.com/yungbote/petpal-backend/internal/domain/pet"
	"github.com/yungbote/petpal-backend/internal/platform/ctxutil"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

// ProfileService serves the caller's current profile. Writes go to the user
// row named by the profile id and then replace the caller's state.
type ProfileService interface {
	Get(ctx context.Context) (pet.Profile, error)
	Set(ctx context.Context, profile pet.Profile) (pet.Profile, error)
}

type profileService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	state    petstate.Store
}

func NewProfileService(log *logger.Logger, userRepo repos.UserRepo, state petstate.Store) ProfileService {
	return &profileService{
		log:      log.With("service", "ProfileService"),
		userRepo: userRepo,
		state:    state,
	}
}

func (ps *profileService) Get(ctx context.Context) (pet.Profile, error) {
	p, err := ps.state.GetProfile(ctx, ctxutil.Scope(ctx))
	if err != nil {
		return pet.Profile{}, fmt.Errorf("load profile state: %w", err)
	}
	return p, nil
}

func (ps *profileService) Set(ctx context.Context, profile pet.Profile) (pet.Profile, error) {
	n, err := ps.userRepo.UpdateProfile(
		dbctx.From(ctx),
		profile.ID,
		profile.Name,
		profile.Bio,
		profile.GoogleRegistered,
		profile.Level,
		profile.LearningProgress,
	)
	if err != nil {
		return pet.Profile{}, fmt.Errorf("write profile: %w", err)
	}
	if n == 0 {
		ps.log.Debug("Profile write matched no user", "user_id", profile.ID)
	}
	scope := ctxutil.Scope(ctx)
	if err := ps.state.SetProfile(ctx, scope, profile); err != nil {
		return pet.Profile{}, fmt.Errorf("store profile state: %w", err)
	}
	return profile, nil
}
