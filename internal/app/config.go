package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/petpal-backend/internal/chat/engine"
	"github.com/yungbote/petpal-backend/internal/data/db"
	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/platform/envutil"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Port    int
	LogMode string

	DB db.Config

	StateBackend string
	Redis        petstate.RedisConfig

	JWTSecretKey      string
	SessionTokenTTL   time.Duration
	OperatorToken     string
	// TrustUserIDHeader lets X-User-Id pick the pet scope without a token.
	TrustUserIDHeader bool

	Chat engine.Config

	Otel           observability.OtelConfig
	MetricsEnabled bool
}

// LoadConfig reads the process environment. Call godotenv first if a .env
// file should contribute.
func LoadConfig() Config {
	return Config{
		Port:    envutil.Int("PORT", 8000),
		LogMode: envutil.String("LOG_MODE", "development"),
		DB: db.Config{
			Driver: envutil.String("DB_DRIVER", db.DriverSQLite),
			Path:   envutil.String("DB_PATH", "project.db"),
			DSN:    envutil.String("POSTGRES_DSN", ""),
		},
		StateBackend: envutil.String("STATE_BACKEND", petstate.BackendMemory),
		Redis: petstate.RedisConfig{
			Addr:      envutil.String("REDIS_ADDR", ""),
			Password:  envutil.String("REDIS_PASSWORD", ""),
			DB:        envutil.Int("REDIS_DB", 0),
			KeyPrefix: envutil.String("REDIS_KEY_PREFIX", "petpal"),
		},
		JWTSecretKey:      envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		SessionTokenTTL:   envutil.Seconds("SESSION_TOKEN_TTL", 30*24*time.Hour),
		OperatorToken:     envutil.String("OPERATOR_TOKEN", ""),
		TrustUserIDHeader: envutil.Bool("TRUST_USER_ID_HEADER", true),
		Chat: engine.Config{
			Kind:    envutil.String("CHAT_ENGINE", engine.KindEcho),
			APIKey:  envutil.String("OPENAI_API_KEY", ""),
			BaseURL: envutil.String("OPENAI_BASE_URL", ""),
			Model:   envutil.String("OPENAI_MODEL", ""),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "petpal"),
			Environment: envutil.String("APP_ENV", ""),
			Exporter:    envutil.String("OTEL_EXPORTER", observability.ExporterStdout),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1),
		},
		MetricsEnabled: envutil.Bool("METRICS_ENABLED", true),
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate rejects combinations that cannot start.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch strings.ToLower(strings.TrimSpace(c.StateBackend)) {
	case petstate.BackendMemory:
	case petstate.BackendRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("STATE_BACKEND=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown state backend %q", c.StateBackend)
	}
	if c.SessionTokenTTL <= 0 {
		return fmt.Errorf("session token ttl must be positive")
	}
	return nil
}
