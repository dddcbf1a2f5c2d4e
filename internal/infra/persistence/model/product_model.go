package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            int64                       `gorm:"primary_key"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text"`
	Category      string                      `gorm:"type:varchar(100)"`
	PriceMin      float64                     `gorm:"column:price_min"`
	PriceMax      float64                     `gorm:"column:price_max"`
	AverageRating float64                     `gorm:"column:average_rating"`
	TotalReviews  int64                       `gorm:"column:total_reviews"`
	InStock       bool                        `gorm:"not null;default:true;column:in_stock"`
	ImageURLs     datatypes.JSONSlice[string] `gorm:"type:jsonb;column:image_urls"`
	ARAssetURL    string                      `gorm:"type:text;column:ar_asset_url"`
	Address       string                      `gorm:"type:text"`
	Latitude      float64
	Longitude     float64
	StoreID       string `gorm:"type:uuid;not null;index;column:store_id"`
	Town          string `gorm:"type:varchar(100)"`
	Views         int64  `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ArchivedProductModel is the GORM-specific struct for the 'archived_products' table.
// The unique index on original_product_id keeps a product from being archived
// twice by racing requests.
type ArchivedProductModel struct {
	ID                int64                       `gorm:"primary_key"`
	OriginalProductID int64                       `gorm:"not null;uniqueIndex;column:original_product_id"`
	Name              string                      `gorm:"type:varchar(255);not null"`
	Description       string                      `gorm:"type:text"`
	Category          string                      `gorm:"type:varchar(100)"`
	PriceMin          float64                     `gorm:"column:price_min"`
	PriceMax          float64                     `gorm:"column:price_max"`
	AverageRating     float64                     `gorm:"column:average_rating"`
	TotalReviews      int64                       `gorm:"column:total_reviews"`
	ImageURLs         datatypes.JSONSlice[string] `gorm:"type:jsonb;column:image_urls"`
	ARAssetURL        string                      `gorm:"type:text;column:ar_asset_url"`
	Address           string                      `gorm:"type:text"`
	Latitude          float64
	Longitude         float64
	StoreID           string    `gorm:"type:uuid;not null;index;column:store_id"`
	Town              string    `gorm:"type:varchar(100)"`
	Views             int64     `gorm:"not null;default:0"`
	ArchivedAt        time.Time `gorm:"not null;column:archived_at"`
	ArchivedBy        int64     `gorm:"not null;column:archived_by"`
	ArchivedByType    string    `gorm:"type:varchar(20);column:archived_by_type"`
	Reason            string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ArchivedProductModel) TableName() string {
	return "archived_products"
}
