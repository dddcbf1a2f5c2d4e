package entity

import "time"

// User is a shopper account on the storefront, managed by admins. Shoppers
// are keyed by email throughout the admin API.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	IsBanned  bool
	BannedAt  *time.Time
	BannedBy  string // Email of the admin who issued the ban.
	BanReason string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in activity log entries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
