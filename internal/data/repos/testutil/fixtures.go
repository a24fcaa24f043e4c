package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/petpal-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Email:     email,
		Password:  "pw",
		Nickname:  "Puga",
		CreatedAt: "2024-01-01T00:00:00.000000",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSetting(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64, key, value string) *types.Setting {
	tb.Helper()
	s := &types.Setting{UserID: userID, Key: key, Value: value}
	if err := tx.WithContext(ctx).Omit("User").Create(s).Error; err != nil {
		tb.Fatalf("seed setting: %v", err)
	}
	return s
}
