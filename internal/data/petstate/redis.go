package petstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/petpal-backend/internal/domain/pet"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisClient dials and pings Redis.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*goredis.Client, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// addHungerScript seeds a missing hash with pet.DefaultStats before applying
// the delta.
var addHungerScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('HSET', KEYS[1], 'score', ARGV[2], 'hunger', ARGV[3])
end
local h = tonumber(redis.call('HGET', KEYS[1], 'hunger')) + tonumber(ARGV[1])
if h < tonumber(ARGV[4]) then h = tonumber(ARGV[4]) end
if h > tonumber(ARGV[5]) then h = tonumber(ARGV[5]) end
redis.call('HSET', KEYS[1], 'hunger', h)
return h
`)

const maxScoreRetries = 10

type redisStore struct {
	rdb    goredis.UniversalClient
	prefix string
	log    *logger.Logger
}

func NewRedisStore(rdb goredis.UniversalClient, prefix string, log *logger.Logger) Store {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "petpal"
	}
	return &redisStore{rdb: rdb, prefix: prefix, log: log.With("store", "RedisPetState")}
}

func (s *redisStore) profileKey(scope string) string {
	return s.prefix + ":profile:" + scope
}

func (s *redisStore) statsKey(scope string) string {
	return s.prefix + ":stats:" + scope
}

func (s *redisStore) GetProfile(ctx context.Context, scope string) (pet.Profile, error) {
	raw, err := s.rdb.Get(ctx, s.profileKey(scope)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return pet.DefaultProfile(), nil
	}
	if err != nil {
		return pet.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	var p pet.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn("Discarding unreadable profile state", "scope", scope, "error", err)
		return pet.DefaultProfile(), nil
	}
	return p, nil
}

func (s *redisStore) SetProfile(ctx context.Context, scope string, profile pet.Profile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.profileKey(scope), b, 0).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

func (s *redisStore) GetStats(ctx context.Context, scope string) (pet.Stats, error) {
	fields, err := s.rdb.HGetAll(ctx, s.statsKey(scope)).Result()
	if err != nil {
		return pet.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return statsFromHash(fields), nil
}

func (s *redisStore) SetStats(ctx context.Context, scope string, stats pet.Stats) (pet.Stats, error) {
	stats = stats.Normalize()
	if err := s.rdb.HSet(ctx, s.statsKey(scope), "score", stats.Score, "hunger", stats.Hunger).Err(); err != nil {
		return pet.Stats{}, fmt.Errorf("set stats: %w", err)
	}
	return stats, nil
}

// AddScore runs an optimistic WATCH/MULTI cycle so the saturating add happens
// in Go; HINCRBY would fail on overflow.
func (s *redisStore) AddScore(ctx context.Context, scope string, delta int) (int, error) {
	key := s.statsKey(scope)
	var score int
	txf := func(tx *goredis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		next := statsFromHash(fields).AddScore(delta)
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, "score", next.Score, "hunger", next.Hunger)
			return nil
		})
		if err == nil {
			score = next.Score
		}
		return err
	}
	for i := 0; i < maxScoreRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return score, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return 0, fmt.Errorf("add score: %w", err)
	}
	return 0, fmt.Errorf("add score: %s kept changing after %d attempts", key, maxScoreRetries)
}

func (s *redisStore) AddHunger(ctx context.Context, scope string, delta int) (int, error) {
	def := pet.DefaultStats()
	v, err := addHungerScript.Run(ctx, s.rdb, []string{s.statsKey(scope)},
		pet.HungerDelta(delta), def.Score, def.Hunger, pet.MinHunger, pet.MaxHunger).Int()
	if err != nil {
		return 0, fmt.Errorf("add hunger: %w", err)
	}
	return v, nil
}

func (s *redisStore) ResetStats(ctx context.Context, scope string) (pet.Stats, error) {
	return s.SetStats(ctx, scope, pet.DefaultStats())
}

// statsFromHash decodes a stats hash; missing or garbled fields take defaults.
func statsFromHash(fields map[string]string) pet.Stats {
	out := pet.DefaultStats()
	if v, err := strconv.Atoi(fields["score"]); err == nil {
		out.Score = v
	}
	if v, err := strconv.Atoi(fields["hunger"]); err == nil {
		out.Hunger = v
	}
	return out.Normalize()
}
