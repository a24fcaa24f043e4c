package app

import (
	apphttp "github.com/yungbote/petpal-backend/internal/http"
	httpH "github.com/yungbote/petpal-backend/internal/http/handlers"
	httpMW "github.com/yungbote/petpal-backend/internal/http/middleware"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type Middleware struct {
	Session *httpMW.SessionMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Settings *httpH.SettingsHandler
	Pet      *httpH.PetHandler
	Chat     *httpH.ChatHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth, metrics),
		User:     httpH.NewUserHandler(services.User),
		Settings: httpH.NewSettingsHandler(services.Settings, services.Memory),
		Pet:      httpH.NewPetHandler(services.Profile, services.Pet, metrics),
		Chat:     httpH.NewChatHandler(services.Chat, metrics, cfg.Chat.Kind),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config, services Services) Middleware {
	log.Info("Wiring middleware...")
	if cfg.TrustUserIDHeader {
		log.Warn("X-User-Id header selects pet scope without a session token; set TRUST_USER_ID_HEADER=false once clients send tokens")
	}
	return Middleware{
		Session: httpMW.NewSessionMiddleware(log, services.Auth).TrustUserIDHeader(cfg.TrustUserIDHeader),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *apphttp.Server {
	if cfg.OperatorToken == "" {
		log.Info("OPERATOR_TOKEN is not set; operator routes are disabled")
	}
	return apphttp.NewServer(cfg.Addr(), apphttp.RouterConfig{
		Log:               log,
		ServiceName:       cfg.Otel.ServiceName,
		Metrics:           metrics,
		OperatorToken:     cfg.OperatorToken,
		SessionMiddleware: middleware.Session,
		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		UserHandler:       handlers.User,
		SettingsHandler:   handlers.Settings,
		PetHandler:        handlers.Pet,
		ChatHandler:       handlers.Chat,
	})
}
