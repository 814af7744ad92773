package domain

// User represents a registered account
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_username" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Nickname string `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_nickname" json:"nickname"`
	// Flagged is reserved for moderation; nothing toggles it over HTTP yet
	Flagged bool `gorm:"not null;default:false" json:"flagged"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
