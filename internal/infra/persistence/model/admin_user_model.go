package model

import "time"

// AdminUserModel is the GORM-specific struct for the 'admin_users' table.
type AdminUserModel struct {
	ID           int64  `gorm:"primary_key"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
