// Package petstate holds the profile and pet stats that clients read and
// mutate without naming a user row. State is bucketed by a scope key (the
// caller's user id, or ctxutil.DefaultScope for anonymous callers).
package petstate

import (
	"context"

	"github.com/yungbote/petpal-backend/internal/domain/pet"
)

type Store interface {
	GetProfile(ctx context.Context, scope string) (pet.Profile, error)
	SetProfile(ctx context.Context, scope string, profile pet.Profile) error

	GetStats(ctx context.Context, scope string) (pet.Stats, error)
	SetStats(ctx context.Context, scope string, stats pet.Stats) (pet.Stats, error)
	AddScore(ctx context.Context, scope string, delta int) (int, error)
	AddHunger(ctx context.Context, scope string, delta int) (int, error)
	ResetStats(ctx context.Context, scope string) (pet.Stats, error)
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
