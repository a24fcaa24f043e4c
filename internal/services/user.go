package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/petpal-backend/internal/data/repos"
	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/apierr"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type RegisterInput struct {
	Email            string
	Nickname         string
	Password         string
	Bio              string
	GoogleRegistered int
}

// ProfileView is the stored profile of one user.
type ProfileView struct {
	Name             string `json:"name"`
	Bio              string `json:"bio"`
	GoogleRegistered int    `json:"google_registered"`
	Level            int    `json:"level"`
	LearningProgress string `json:"learning_progress"`
}

type DebugUser struct {
	ID               int64  `json:"id"`
	Nickname         string `json:"nickname"`
	LearningProgress string `json:"learning_progress"`
}

type UserService interface {
	// CreateOrGet returns the existing id for the email or creates the user.
	CreateOrGet(ctx context.Context, in RegisterInput) (int64, error)
	IDByEmail(ctx context.Context, email string) (int64, error)
	// ProfileByID returns nil when the user does not exist.
	ProfileByID(ctx context.Context, userID int64) (*ProfileView, error)
	UpdateProgress(ctx context.Context, userID int64, learningProgress string) error
	Notifications(ctx context.Context, userID int64) (int, error)
	SetNotifications(ctx context.Context, userID int64, enabled int) error
	Achievements(ctx context.Context, userID int64) (string, error)
	SetAchievements(ctx context.Context, userID int64, achievements string) error
	DebugUsers(ctx context.Context) ([]DebugUser, error)
}

type userService struct {
	log         *logger.Logger
	userRepo    repos.UserRepo
	credentials CredentialStore
	now         func() time.Time
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo, credentials CredentialStore) UserService {
	return &userService{
		log:         log.With("service", "UserService"),
		userRepo:    userRepo,
		credentials: credentials,
		now:         time.Now,
	}
}

func (us *userService) CreateOrGet(ctx context.Context, in RegisterInput) (int64, error) {
	dbc := dbctx.From(ctx)
	existing, err := us.userRepo.GetByEmail(dbc, in.Email)
	if err != nil {
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	hashed, err := us.credentials.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	created, cErr := us.userRepo.Create(dbc, &types.User{
		Email:            in.Email,
		Nickname:         in.Nickname,
		Password:         hashed,
		CreatedAt:        types.FormatTimestamp(us.now()),
		Bio:              in.Bio,
		GoogleRegistered: in.GoogleRegistered,
	})
	if cErr != nil {
		// A concurrent registration may have won the unique email index.
		if winner, err := us.userRepo.GetByEmail(dbc, in.Email); err == nil && winner != nil {
			return winner.ID, nil
		}
		return 0, fmt.Errorf("create user: %w", cErr)
	}
	us.log.Info("User registered", "user_id", created.ID, "google_registered", created.GoogleRegistered)
	return created.ID, nil
}

func (us *userService) IDByEmail(ctx context.Context, email string) (int64, error) {
	u, err := us.userRepo.GetByEmail(dbctx.From(ctx), email)
	if err != nil {
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return 0, apierr.NotFound("user_not_found", "User not found")
	}
	return u.ID, nil
}

func (us *userService) ProfileByID(ctx context.Context, userID int64) (*ProfileView, error) {
	u, err := us.userRepo.GetByID(dbctx.From(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, nil
	}
	return &ProfileView{
		Name:             u.Nickname,
		Bio:              u.Bio,
		GoogleRegistered: u.GoogleRegistered,
		Level:            u.Level,
		LearningProgress: u.LearningProgress,
	}, nil
}

func (us *userService) UpdateProgress(ctx context.Context, userID int64, learningProgress string) error {
	n, err := us.userRepo.UpdateLearningProgress(dbctx.From(ctx), userID, learningProgress)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n == 0 {
		us.log.Debug("Progress update matched no user", "user_id", userID)
	}
	return nil
}

func (us *userService) Notifications(ctx context.Context, userID int64) (int, error) {
	u, err := us.userRepo.GetByID(dbctx.From(ctx), userID)
	if err != nil {
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return types.NotificationsOn, nil
	}
	return u.NotificationsEnabled, nil
}

func (us *userService) SetNotifications(ctx context.Context, userID int64, enabled int) error {
	if _, err := us.userRepo.UpdateNotifications(dbctx.From(ctx), userID, enabled); err != nil {
		return fmt.Errorf("update notifications: %w", err)
	}
	return nil
}

func (us *userService) Achievements(ctx context.Context, userID int64) (string, error) {
	u, err := us.userRepo.GetByID(dbctx.From(ctx), userID)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return "", apierr.NotFound("user_not_found", "User not found")
	}
	return u.Achievements, nil
}

func (us *userService) SetAchievements(ctx context.Context, userID int64, achievements string) error {
	if _, err := us.userRepo.UpdateAchievements(dbctx.From(ctx), userID, achievements); err != nil {
		return fmt.Errorf("update achievements: %w", err)
	}
	return nil
}

func (us *userService) DebugUsers(ctx context.Context) ([]DebugUser, error) {
	users, err := us.userRepo.List(dbctx.From(ctx))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]DebugUser, 0, len(users))
	for _, u := range users {
		out = append(out, DebugUser{ID: u.ID, Nickname: u.Nickname, LearningProgress: u.LearningProgress})
	}
	return out, nil
}
