package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/petpal-backend/internal/http/handlers"
	httpMW "github.com/yungbote/petpal-backend/internal/http/middleware"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	Metrics     *observability.Metrics
	// OperatorToken guards operator routes; empty disables them.
	OperatorToken string

	SessionMiddleware *httpMW.SessionMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	UserHandler     *httpH.UserHandler
	SettingsHandler *httpH.SettingsHandler
	PetHandler      *httpH.PetHandler
	ChatHandler     *httpH.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "petpal"
	}
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.Metrics(cfg.Metrics))
	if cfg.SessionMiddleware != nil {
		r.Use(cfg.SessionMiddleware.Attach())
	}
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Users & auth
	if cfg.AuthHandler != nil {
		r.POST("/login", cfg.AuthHandler.Login)
	}
	if cfg.UserHandler != nil {
		r.POST("/user", cfg.UserHandler.CreateOrGet)
		r.GET("/user/by-email", cfg.UserHandler.ByEmail)
		r.GET("/profile/:user_id", cfg.UserHandler.ProfileByID)
		r.POST("/progress", cfg.UserHandler.UpdateProgress)
		r.GET("/notifications/:user_id", cfg.UserHandler.Notifications)
		r.POST("/notifications", cfg.UserHandler.SetNotifications)
		r.GET("/achievements/:user_id", cfg.UserHandler.Achievements)
		r.POST("/achievements", cfg.UserHandler.SetAchievements)
		r.GET("/debug-users", httpMW.RequireOperator(cfg.OperatorToken), cfg.UserHandler.DebugUsers)
	}

	// Settings & memory
	if cfg.SettingsHandler != nil {
		r.POST("/settings", cfg.SettingsHandler.SetSetting)
		r.GET("/settings/:user_id", cfg.SettingsHandler.Settings)
		r.POST("/memory", cfg.SettingsHandler.AddMemory)
		r.GET("/memory/:user_id", cfg.SettingsHandler.Memory)
	}

	// Caller scoped profile & pet stats
	if cfg.PetHandler != nil {
		r.GET("/profile", cfg.PetHandler.Profile)
		r.POST("/profile", cfg.PetHandler.SetProfile)
		r.GET("/petstats", cfg.PetHandler.Stats)
		r.POST("/petstats", cfg.PetHandler.SetStats)
		r.POST("/score", cfg.PetHandler.AddScore)
		r.POST("/hunger", cfg.PetHandler.AddHunger)
		r.POST("/reset", cfg.PetHandler.Reset)
	}

	// Chat
	if cfg.ChatHandler != nil {
		r.POST("/api/chat", cfg.ChatHandler.Chat)
	}

	return r
}
