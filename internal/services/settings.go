package services

import (
	"context"
	"fmt"

	"github.com/yungbote/petpal-backend/internal/data/repos"
	types "github.com/yungbote/petpal-backend/internal/domain"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type SettingView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SettingsService interface {
	// Set always appends a row, even when the key already exists.
	Set(ctx context.Context, userID int64, key, value string) (int64, error)
	List(ctx context.Context, userID int64) ([]SettingView, error)
	// Map flattens the user's settings; the newest row wins for a repeated key.
	Map(ctx context.Context, userID int64) (map[string]string, error)
}

type settingsService struct {
	log  *logger.Logger
	repo repos.SettingRepo
}

func NewSettingsService(log *logger.Logger, repo repos.SettingRepo) SettingsService {
	return &settingsService{
		log:  log.With("service", "SettingsService"),
		repo: repo,
	}
}

func (ss *settingsService) Set(ctx context.Context, userID int64, key, value string) (int64, error) {
	row, err := ss.repo.Create(dbctx.From(ctx), &types.Setting{UserID: userID, Key: key, Value: value})
	if err != nil {
		return 0, fmt.Errorf("create setting: %w", err)
	}
	return row.ID, nil
}

func (ss *settingsService) List(ctx context.Context, userID int64) ([]SettingView, error) {
	rows, err := ss.repo.ListByUserID(dbctx.From(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	out := make([]SettingView, 0, len(rows))
	for _, r := range rows {
		out = append(out, SettingView{Key: r.Key, Value: r.Value})
	}
	return out, nil
}

func (ss *settingsService) Map(ctx context.Context, userID int64) (map[string]string, error) {
	rows, err := ss.repo.ListByUserID(dbctx.From(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}
