package entity

import (
	"slices"
	"time"
)

// ApplicationStatus is the lifecycle status of a seller application.
type ApplicationStatus string

const (
	// StatusPending indicates an application awaiting admin review.
	StatusPending ApplicationStatus = "pending"
	// StatusAccepted indicates an approved seller who may log in.
	StatusAccepted ApplicationStatus = "accepted"
	// StatusRejected indicates a declined application.
	StatusRejected ApplicationStatus = "rejected"
)

// String returns the string representation of the ApplicationStatus.
func (s ApplicationStatus) String() string {
	return string(s)
}

// IsValid checks if the ApplicationStatus is a known value.
func (s ApplicationStatus) IsValid() bool {
	return slices.Contains([]ApplicationStatus{StatusPending, StatusAccepted, StatusRejected}, s)
}

// StoreUser is a seller account created through the seller-application flow.
// StoreOwned is empty until an admin links a store to the seller; at most one
// store per seller.
type StoreUser struct {
	ID              int64
	Email           string
	FirstName       string
	LastName        string
	PhoneNumber     string
	PasswordHash    string
	Status          ApplicationStatus
	StoreOwned      string // UUID of the owned store, empty when none.
	BusinessPermit  string // Public URL of the uploaded business permit.
	ValidID         string // Public URL of the uploaded government ID.
	DTIRegistration string // Public URL of the optional DTI registration.
	CreatedAt       time.Time
}

// FullName returns the display name used in notifications and logs.
func (u *StoreUser) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Actor converts the store user into a scoped actor bound to their store.
func (u *StoreUser) Actor() Actor {
	return Actor{
		ID:      u.ID,
		Name:    u.FullName(),
		Type:    ActorTypeStoreUser,
		StoreID: u.StoreOwned,
	}
}
