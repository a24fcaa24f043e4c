package app

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/petpal-backend/internal/platform/logger"
	"github.com/yungbote/petpal-backend/internal/services"
)

type Services struct {
	Credentials services.CredentialStore
	Auth        services.AuthService
	User        services.UserService
	Settings    services.SettingsService
	Memory      services.MemoryService
	Profile     services.ProfileService
	Pet         services.PetService
	Chat        services.ChatService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY is not set; session tokens use the built-in default secret")
	}

	creds := services.NewBcryptCredentials(bcrypt.DefaultCost)
	settings := services.NewSettingsService(log, repos.Setting)
	return Services{
		Credentials: creds,
		Auth:        services.NewAuthService(log, repos.User, settings, creds, cfg.JWTSecretKey, cfg.SessionTokenTTL),
		User:        services.NewUserService(log, repos.User, creds),
		Settings:    settings,
		Memory:      services.NewMemoryService(log, repos.Memory),
		Profile:     services.NewProfileService(log, repos.User, clients.PetState),
		Pet:         services.NewPetService(log, clients.PetState),
		Chat:        services.NewChatService(log, clients.ChatEngine),
	}
}
