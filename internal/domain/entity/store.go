package entity

import "time"

// Store is a seller storefront. Stores are keyed by UUID and reference the
// municipality they operate in.
type Store struct {
	ID             string // UUID.
	Name           string
	Description    string
	StoreImageURL  string
	Type           string
	Rating         float64
	Town           string // Municipality id.
	Latitude       float64
	Longitude      float64
	Phone          string
	Email          string
	Website        string
	OperatingHours string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
