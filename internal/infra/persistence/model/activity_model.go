package model

import "time"

// AdminActivityModel is the GORM-specific struct for the 'admin_activities' table.
type AdminActivityModel struct {
	ID           int64     `gorm:"primary_key"`
	AdminName    string    `gorm:"type:varchar(255);not null;column:admin_name"`
	ActionType   string    `gorm:"type:varchar(50);not null;column:action_type"`
	ResourceType string    `gorm:"type:varchar(100);not null;column:resource_type"`
	ResourceName string    `gorm:"type:varchar(255);not null;column:resource_name"`
	Timestamp    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AdminActivityModel) TableName() string {
	return "admin_activities"
}
