package entity

import "time"

// Review is a shopper rating left on a product.
type Review struct {
	ID        int64
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Municipality is a fixed geographic reference row used by stores and
// products.
type Municipality struct {
	ID   int64
	Name string
}
