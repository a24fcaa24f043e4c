package chat

import "github.com/yungbote/petpal-backend/internal/domain/user"

// MemoryEntry is one line of a user's chat/action log. Timestamp is an
// ISO-8601 string so lexical order matches chronological order.
type MemoryEntry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int64  `gorm:"column:user_id;index" json:"user_id"`
	Role      string `gorm:"column:role" json:"role"`
	Content   string `gorm:"column:content" json:"content"`
	Timestamp string `gorm:"column:timestamp;index" json:"timestamp"`

	User *user.User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (MemoryEntry) TableName() string { return "memory" }
