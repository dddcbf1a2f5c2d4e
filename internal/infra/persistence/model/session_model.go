// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import "time"

// SessionModel is the GORM-specific struct for a session table row.
// It deliberately has no TableName method; the admin and store-user session
// repositories bind it to their own table with Table().
type SessionModel struct {
	SessionID string    `gorm:"type:varchar(255);primary_key;column:session_id"`
	UserID    int64     `gorm:"column:user_id"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}
