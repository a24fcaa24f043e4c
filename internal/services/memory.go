package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/petpal-backend/internal/data/repos"
	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type MemoryView struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type MemoryService interface {
	// Add stores an entry; an empty timestamp means now.
	Add(ctx context.Context, userID int64, role, content, timestamp string) (int64, error)
	List(ctx context.Context, userID int64) ([]MemoryView, error)
}

type memoryService struct {
	log  *logger.Logger
	repo repos.MemoryRepo
	now  func() time.Time
}

func NewMemoryService(log *logger.Logger, repo repos.MemoryRepo) MemoryService {
	return &memoryService{
		log:  log.With("service", "MemoryService"),
		repo: repo,
		now:  time.Now,
	}
}

func (ms *memoryService) Add(ctx context.Context, userID int64, role, content, timestamp string) (int64, error) {
	if strings.TrimSpace(timestamp) == "" {
		timestamp = types.FormatTimestamp(ms.now())
	}
	row, err := ms.repo.Create(dbctx.From(ctx), &types.MemoryEntry{
		UserID:    userID,
		Role:      role,
		Content:   content,
		Timestamp: timestamp,
	})
	if err != nil {
		return 0, fmt.Errorf("create memory entry: %w", err)
	}
	return row.ID, nil
}

func (ms *memoryService) List(ctx context.Context, userID int64) ([]MemoryView, error) {
	rows, err := ms.repo.ListByUserID(dbctx.From(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("list memory: %w", err)
	}
	out := make([]MemoryView, 0, len(rows))
	for _, r := range rows {
		out = append(out, MemoryView{Role: r.Role, Content: r.Content, Timestamp: r.Timestamp})
	}
	return out, nil
}
