package user

import (
	"strings"

	"gorm.io/gorm"

	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, user *types.User) (*types.User, error)
	GetByID(dbc dbctx.Context, userID int64) (*types.User, error)
	GetByEmail(dbc dbctx.Context, email string) (*types.User, error)
	List(dbc dbctx.Context) ([]*types.User, error)
	UpdateFields(dbc dbctx.Context, userID int64, updates map[string]any) (int64, error)
	UpdateProfile(dbc dbctx.Context, userID int64, nickname, bio string, googleRegistered, level int, learningProgress string) (int64, error)
	UpdateNotifications(dbc dbctx.Context, userID int64, enabled int) (int64, error)
	UpdateLearningProgress(dbc dbctx.Context, userID int64, learningProgress string) (int64, error)
	UpdateAchievements(dbc dbctx.Context, userID int64, achievements string) (int64, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) tx(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = ur.db
	}
	return t.WithContext(dbc.Ctx)
}

func (ur *userRepo) Create(dbc dbctx.Context, user *types.User) (*types.User, error) {
	if err := ur.tx(dbc).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID returns nil, nil when no row matches.
func (ur *userRepo) GetByID(dbc dbctx.Context, userID int64) (*types.User, error) {
	var row types.User
	res := ur.tx(dbc).
		Where("id = ?", userID).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// GetByEmail matches the email exactly and returns nil, nil when absent.
func (ur *userRepo) GetByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	var row types.User
	res := ur.tx(dbc).
		Where("email = ?", email).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (ur *userRepo) List(dbc dbctx.Context) ([]*types.User, error) {
	var results []*types.User
	if err := ur.tx(dbc).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateFields applies updates to the row with userID and reports how many
// rows changed. Zero is not an error.
func (ur *userRepo) UpdateFields(dbc dbctx.Context, userID int64, updates map[string]any) (int64, error) {
	allowed := make(map[string]any, len(updates))
	for k, v := range updates {
		if strings.EqualFold(k, "email") || strings.EqualFold(k, "id") {
			continue
		}
		allowed[k] = v
	}
	if len(allowed) == 0 {
		return 0, nil
	}
	res := ur.tx(dbc).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(allowed)
	return res.RowsAffected, res.Error
}

func (ur *userRepo) UpdateProfile(dbc dbctx.Context, userID int64, nickname, bio string, googleRegistered, level int, learningProgress string) (int64, error) {
	return ur.UpdateFields(dbc, userID, map[string]any{
		"nickname":          nickname,
		"bio":               bio,
		"google_registered": googleRegistered,
		"level":             level,
		"learning_progress": learningProgress,
	})
}

func (ur *userRepo) UpdateNotifications(dbc dbctx.Context, userID int64, enabled int) (int64, error) {
	return ur.UpdateFields(dbc, userID, map[string]any{"notifications_enabled": enabled})
}

func (ur *userRepo) UpdateLearningProgress(dbc dbctx.Context, userID int64, learningProgress string) (int64, error) {
	return ur.UpdateFields(dbc, userID, map[string]any{"learning_progress": learningProgress})
}

func (ur *userRepo) UpdateAchievements(dbc dbctx.Context, userID int64, achievements string) (int64, error) {
	return ur.UpdateFields(dbc, userID, map[string]any{"achievements": achievements})
}
