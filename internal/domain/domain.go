package domain

import (
	"time"

	"github.com/yungbote/petpal-backend/internal/domain/chat"
	"github.com/yungbote/petpal-backend/internal/domain/pet"
	"github.com/yungbote/petpal-backend/internal/domain/user"
)

type User = user.User
type Setting = user.Setting
type MemoryEntry = chat.MemoryEntry
type Profile = pet.Profile
type PetStats = pet.Stats

const (
	DefaultLevel            = user.DefaultLevel
	DefaultLearningProgress = user.DefaultLearningProgress
	DefaultAchievements     = user.DefaultAchievements
	NotificationsOn         = user.NotificationsOn
)

// TimestampLayout matches the ISO-8601 form the web client already stores.
const TimestampLayout = "2006-01-02T15:04:05.000000"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&user.Setting{},
		&chat.MemoryEntry{},
	}
}
