package user

// User is the identity record. Password holds a bcrypt hash for local accounts,
// a legacy plain value for rows written before hashing, or "" for accounts
// registered through an external identity provider.
type User struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Email                string `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password             string `gorm:"column:password" json:"-"`
	Nickname             string `gorm:"column:nickname" json:"nickname"`
	CreatedAt            string `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	Bio                  string `gorm:"column:bio" json:"bio"`
	GoogleRegistered     int    `gorm:"column:google_registered;default:0" json:"google_registered"`
	NotificationsEnabled int    `gorm:"column:notifications_enabled;default:1" json:"notifications_enabled"`
	Level                int    `gorm:"column:level;default:1" json:"level"`
	LearningProgress     string `gorm:"column:learning_progress;default:'{}'" json:"learning_progress"`
	Achievements         string `gorm:"column:achievements;default:'[]'" json:"achievements"`
}

func (User) TableName() string { return "user" }

const (
	DefaultLevel            = 1
	DefaultLearningProgress = "{}"
	DefaultAchievements     = "[]"
	NotificationsOn         = 1
)
