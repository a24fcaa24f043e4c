package app

import (
	"context"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/petpal-backend/internal/chat/engine"
	"github.com/yungbote/petpal-backend/internal/data/petstate"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type Clients struct {
	// Redis is nil unless the redis state backend is selected.
	Redis      *goredis.Client
	PetState   petstate.Store
	ChatEngine engine.Engine
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var out Clients
	switch strings.ToLower(strings.TrimSpace(cfg.StateBackend)) {
	case petstate.BackendRedis:
		rdb, err := petstate.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
		out.Redis = rdb
		out.PetState = petstate.NewRedisStore(rdb, cfg.Redis.KeyPrefix, log)
		log.Info("Pet state backend: redis", "addr", cfg.Redis.Addr)
	default:
		out.PetState = petstate.NewMemoryStore()
		log.Info("Pet state backend: memory")
	}

	eng, err := engine.New(cfg.Chat)
	if err != nil {
		out.Close()
		return Clients{}, fmt.Errorf("init chat engine: %w", err)
	}
	out.ChatEngine = eng
	return out, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
