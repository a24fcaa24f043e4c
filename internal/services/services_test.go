package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/data/repos"
	"github.com/yungbote/petpal-backend/internal/data/repos/testutil"
	"github.com/yungbote/petpal-backend/internal/platform/ctxutil"
)

type fixture struct {
	users    UserService
	auth     AuthService
	settings SettingsService
	memory   MemoryService
	profile  ProfileService
	pets     PetService
	userRepo repos.UserRepo
	state    petstate.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := testutil.Logger(t)
	db := testutil.DB(t)

	userRepo := repos.NewUserRepo(db, log)
	settingRepo := repos.NewSettingRepo(db, log)
	memoryRepo := repos.NewMemoryRepo(db, log)
	creds := NewBcryptCredentials(bcrypt.MinCost)
	state := petstate.NewMemoryStore()

	settings := NewSettingsService(log, settingRepo)
	return &fixture{
		users:    NewUserService(log, userRepo, creds),
		auth:     NewAuthService(log, userRepo, settings, creds, "test-secret", time.Hour),
		settings: settings,
		memory:   NewMemoryService(log, memoryRepo),
		profile:  NewProfileService(log, userRepo, state),
		pets:     NewPetService(log, state),
		userRepo: userRepo,
		state:    state,
	}
}

func scoped(userID int64) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID, Authenticated: true})
}
