package user

// Setting is a free-form key/value pair owned by a user. Keys are not unique:
// every write appends a row.
type Setting struct {
	ID     int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID int64  `gorm:"column:user_id;index" json:"user_id"`
	Key    string `gorm:"column:key" json:"key"`
	Value  string `gorm:"column:value" json:"value"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Setting) TableName() string { return "settings" }
