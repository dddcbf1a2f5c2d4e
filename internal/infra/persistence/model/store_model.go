package model

import "time"

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID             string  `gorm:"type:uuid;primary_key;column:store_id"`
	Name           string  `gorm:"type:varchar(255);not null"`
	Description    string  `gorm:"type:text"`
	StoreImageURL  string  `gorm:"type:text;column:store_image_url"`
	Type           string  `gorm:"type:varchar(100)"`
	Rating         float64 `gorm:"not null;default:0"`
	Town           string  `gorm:"type:varchar(100)"`
	Latitude       float64
	Longitude      float64
	Phone          string `gorm:"type:varchar(50)"`
	Email          string `gorm:"type:varchar(255)"`
	Website        string `gorm:"type:text"`
	OperatingHours string `gorm:"type:varchar(255);column:operating_hours"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
