package model

import "time"

// StoreUserModel is the GORM-specific struct for the 'store_users' table.
// A row doubles as the seller application; status tracks its review state.
type StoreUserModel struct {
	ID              int64  `gorm:"primary_key"`
	Email           string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName       string `gorm:"type:varchar(100);not null"`
	LastName        string `gorm:"type:varchar(100);not null"`
	PhoneNumber     string `gorm:"type:varchar(50)"`
	PasswordHash    string `gorm:"type:varchar(255);not null;column:password_hash"`
	Status          string `gorm:"type:varchar(20);not null;default:pending"`
	StoreOwned      string `gorm:"type:uuid;column:store_owned"`
	BusinessPermit  string `gorm:"type:text;column:business_permit"`
	ValidID         string `gorm:"type:text;column:valid_id"`
	DTIRegistration string `gorm:"type:text;column:dti_registration"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreUserModel) TableName() string {
	return "store_users"
}
