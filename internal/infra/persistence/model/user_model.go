package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table (shoppers).
type UserModel struct {
	ID        int64  `gorm:"primary_key"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	IsBanned  bool   `gorm:"not null;default:false;column:is_banned"`
	BannedAt  *time.Time
	BannedBy  string `gorm:"type:varchar(255);column:banned_by"`
	BanReason string `gorm:"type:text;column:ban_reason"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
