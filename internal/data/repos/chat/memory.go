package chat

import (
	"gorm.io/gorm"

	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type MemoryRepo interface {
	Create(dbc dbctx.Context, entry *types.MemoryEntry) (*types.MemoryEntry, error)
	// ListByUserID orders by timestamp, then id for entries sharing a timestamp.
	ListByUserID(dbc dbctx.Context, userID int64) ([]*types.MemoryEntry, error)
}

type memoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMemoryRepo(db *gorm.DB, log *logger.Logger) MemoryRepo {
	return &memoryRepo{
		db:  db,
		log: log.With("repo", "MemoryRepo"),
	}
}

func (r *memoryRepo) Create(dbc dbctx.Context, entry *types.MemoryEntry) (*types.MemoryEntry, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Omit("User").Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *memoryRepo) ListByUserID(dbc dbctx.Context, userID int64) ([]*types.MemoryEntry, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.MemoryEntry
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
