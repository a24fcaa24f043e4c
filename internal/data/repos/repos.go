package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/petpal-backend/internal/data/repos/chat"
	"github.com/yungbote/petpal-backend/internal/data/repos/user"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type SettingRepo = user.SettingRepo
type MemoryRepo = chat.MemoryRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewSettingRepo(db *gorm.DB, baseLog *logger.Logger) SettingRepo {
	return user.NewSettingRepo(db, baseLog)
}

func NewMemoryRepo(db *gorm.DB, baseLog *logger.Logger) MemoryRepo {
	return chat.NewMemoryRepo(db, baseLog)
}
