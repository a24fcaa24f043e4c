package user

import (
	"gorm.io/gorm"

	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type SettingRepo interface {
	// Create always inserts; repeated keys accumulate.
	Create(dbc dbctx.Context, setting *types.Setting) (*types.Setting, error)
	ListByUserID(dbc dbctx.Context, userID int64) ([]*types.Setting, error)
}

type settingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingRepo(db *gorm.DB, baseLog *logger.Logger) SettingRepo {
	return &settingRepo{db: db, log: baseLog.With("repo", "SettingRepo")}
}

func (r *settingRepo) Create(dbc dbctx.Context, setting *types.Setting) (*types.Setting, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Omit("User").Create(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}

// ListByUserID returns rows in insertion order.
func (r *settingRepo) ListByUserID(dbc dbctx.Context, userID int64) ([]*types.Setting, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var results []*types.Setting
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
