package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID        int64  `gorm:"primary_key"`
	UserID    int64  `gorm:"not null;index;column:user_id"`
	ProductID int64  `gorm:"not null;index;column:product_id"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// MunicipalityModel is the GORM-specific struct for the 'municipalities' table.
type MunicipalityModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (MunicipalityModel) TableName() string {
	return "municipalities"
}
