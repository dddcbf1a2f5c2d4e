package entity

import "time"

// AdminUser is a platform administrator account. Admins authenticate through
// the admin session table and may act on any store's resources.
type AdminUser struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// FullName returns the display name used in activity log entries.
func (u *AdminUser) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Actor converts the admin into an unscoped actor.
func (u *AdminUser) Actor() Actor {
	return Actor{
		ID:   u.ID,
		Name: u.FullName(),
		Type: ActorTypeAdmin,
	}
}
