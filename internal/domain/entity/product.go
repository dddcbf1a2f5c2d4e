package entity

import "time"

// Product is an active marketplace listing attached to a store.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	PriceMin      float64
	PriceMax      float64
	AverageRating float64
	TotalReviews  int64
	InStock       bool
	ImageURLs     []string
	ARAssetURL    string // Optional 3D asset shown in the AR viewer.
	Address       string
	Latitude      float64
	Longitude     float64
	StoreID       string // UUID of the owning store.
	Town          string // Municipality id the product is located in.
	Views         int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnedBy reports whether the product belongs to the given store.
func (p *Product) OwnedBy(storeID string) bool {
	return p.StoreID == storeID
}

// ArchivedProduct is a snapshot of a product moved out of the active listing
// table. OriginalProductID preserves the active-table primary key so a restore
// can reinsert the row under its original id.
type ArchivedProduct struct {
	ID                int64
	OriginalProductID int64
	Name              string
	Description       string
	Category          string
	PriceMin          float64
	PriceMax          float64
	AverageRating     float64
	TotalReviews      int64
	ImageURLs         []string
	ARAssetURL        string
	Address           string
	Latitude          float64
	Longitude         float64
	StoreID           string
	Town              string
	Views             int64
	ArchivedAt        time.Time
	ArchivedBy        int64     // Identity id of the archiving actor.
	ArchivedByType    ActorType // admin or store_user.
	Reason            string
}

// OwnedBy reports whether the archived product belongs to the given store.
func (p *ArchivedProduct) OwnedBy(storeID string) bool {
	return p.StoreID == storeID
}
