package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/petpal-backend/internal/data/repos"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type Repos struct {
	User    repos.UserRepo
	Setting repos.SettingRepo
	Memory  repos.MemoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(db, log),
		Setting: repos.NewSettingRepo(db, log),
		Memory:  repos.NewMemoryRepo(db, log),
	}
}
