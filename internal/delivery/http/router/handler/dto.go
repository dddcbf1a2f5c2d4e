package handler

import (
	"time"

	"elyukal/internal/domain/entity"
)

// View models returned by the API. Entities stay free of serialization tags;
// handlers map them into these structs.

// AdminProfile is the public shape of an admin account.
type AdminProfile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func newAdminProfile(admin *entity.AdminUser) *AdminProfile {
	return &AdminProfile{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		CreatedAt: admin.CreatedAt,
	}
}

// StoreUserProfile is the public shape of a seller account. Store is filled
// on the profile endpoint when the seller owns one.
type StoreUserProfile struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	PhoneNumber     string     `json:"phone_number"`
	Status          string     `json:"status"`
	StoreOwned      string     `json:"store_owned,omitempty"`
	BusinessPermit  string     `json:"business_permit,omitempty"`
	ValidID         string     `json:"valid_id,omitempty"`
	DTIRegistration string     `json:"dti_registration,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Store           *StoreView `json:"store,omitempty"`
}

func newStoreUserProfile(user *entity.StoreUser) *StoreUserProfile {
	return &StoreUserProfile{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		PhoneNumber:     user.PhoneNumber,
		Status:          user.Status.String(),
		StoreOwned:      user.StoreOwned,
		BusinessPermit:  user.BusinessPermit,
		ValidID:         user.ValidID,
		DTIRegistration: user.DTIRegistration,
		CreatedAt:       user.CreatedAt,
	}
}

func newStoreUserProfiles(users []*entity.StoreUser) []*StoreUserProfile {
	profiles := make([]*StoreUserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, newStoreUserProfile(user))
	}

	return profiles
}

// UserView is the admin-facing shape of a shopper account.
type UserView struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IsBanned  bool       `json:"is_banned"`
	BannedAt  *time.Time `json:"banned_at,omitempty"`
	BannedBy  string     `json:"banned_by,omitempty"`
	BanReason string     `json:"ban_reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func newUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsBanned:  user.IsBanned,
		BannedAt:  user.BannedAt,
		BannedBy:  user.BannedBy,
		BanReason: user.BanReason,
		CreatedAt: user.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

// ProductView is the public shape of an active product.
type ProductView struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PriceMin      float64   `json:"price_min"`
	PriceMax      float64   `json:"price_max"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int64     `json:"total_reviews"`
	InStock       bool      `json:"in_stock"`
	ImageURLs     []string  `json:"image_urls"`
	ARAssetURL    string    `json:"ar_asset_url,omitempty"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	StoreID       string    `json:"store_id"`
	Town          string    `json:"town"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
}

func newProductView(product *entity.Product) *ProductView {
	return &ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.Category,
		PriceMin:      product.PriceMin,
		PriceMax:      product.PriceMax,
		AverageRating: product.AverageRating,
		TotalReviews:  product.TotalReviews,
		InStock:       product.InStock,
		ImageURLs:     product.ImageURLs,
		ARAssetURL:    product.ARAssetURL,
		Address:       product.Address,
		Latitude:      product.Latitude,
		Longitude:     product.Longitude,
		StoreID:       product.StoreID,
		Town:          product.Town,
		Views:         product.Views,
		CreatedAt:     product.CreatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

// ArchivedProductView is the public shape of an archived product snapshot.
type ArchivedProductView struct {
	ID                int64     `json:"id"`
	OriginalProductID int64     `json:"original_product_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	PriceMin          float64   `json:"price_min"`
	PriceMax          float64   `json:"price_max"`
	AverageRating     float64   `json:"average_rating"`
	TotalReviews      int64     `json:"total_reviews"`
	ImageURLs         []string  `json:"image_urls"`
	ARAssetURL        string    `json:"ar_asset_url,omitempty"`
	Address           string    `json:"address"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	StoreID           string    `json:"store_id"`
	Town              string    `json:"town"`
	Views             int64     `json:"views"`
	ArchivedAt        time.Time `json:"archived_at"`
	ArchivedBy        int64     `json:"archived_by"`
	ArchivedByType    string    `json:"archived_by_type"`
	Reason            string    `json:"reason,omitempty"`
}

func newArchivedProductView(product *entity.ArchivedProduct) *ArchivedProductView {
	return &ArchivedProductView{
		ID:                product.ID,
		OriginalProductID: product.OriginalProductID,
		Name:              product.Name,
		Description:       product.Description,
		Category:          product.Category,
		PriceMin:          product.PriceMin,
		PriceMax:          product.PriceMax,
		AverageRating:     product.AverageRating,
		TotalReviews:      product.TotalReviews,
		ImageURLs:         product.ImageURLs,
		ARAssetURL:        product.ARAssetURL,
		Address:           product.Address,
		Latitude:          product.Latitude,
		Longitude:         product.Longitude,
		StoreID:           product.StoreID,
		Town:              product.Town,
		Views:             product.Views,
		ArchivedAt:        product.ArchivedAt,
		ArchivedBy:        product.ArchivedBy,
		ArchivedByType:    product.ArchivedByType.String(),
		Reason:            product.Reason,
	}
}

func newArchivedProductViews(products []*entity.ArchivedProduct) []*ArchivedProductView {
	views := make([]*ArchivedProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newArchivedProductView(product))
	}

	return views
}

// StoreView is the public shape of a store.
type StoreView struct {
	ID             string         `json:"store_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	StoreImageURL  string         `json:"store_image_url,omitempty"`
	Type           string         `json:"type"`
	Rating         float64        `json:"rating"`
	Town           string         `json:"town"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Website        string         `json:"website,omitempty"`
	OperatingHours string         `json:"operating_hours,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	Products       []*ProductView `json:"products,omitempty"`
}

func newStoreView(store *entity.Store) *StoreView {
	return &StoreView{
		ID:             store.ID,
		Name:           store.Name,
		Description:    store.Description,
		StoreImageURL:  store.StoreImageURL,
		Type:           store.Type,
		Rating:         store.Rating,
		Town:           store.Town,
		Latitude:       store.Latitude,
		Longitude:      store.Longitude,
		Phone:          store.Phone,
		Email:          store.Email,
		Website:        store.Website,
		OperatingHours: store.OperatingHours,
		CreatedAt:      store.CreatedAt,
	}
}

func newStoreViews(stores []*entity.Store) []*StoreView {
	views := make([]*StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, newStoreView(store))
	}

	return views
}

// ReviewView is the public shape of a product review.
type ReviewView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func newReviewViews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, &ReviewView{
			ID:        review.ID,
			UserID:    review.UserID,
			ProductID: review.ProductID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return views
}

// MunicipalityView is the public shape of a municipality reference row.
type MunicipalityView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newMunicipalityViews(municipalities []*entity.Municipality) []*MunicipalityView {
	views := make([]*MunicipalityView, 0, len(municipalities))
	for _, municipality := range municipalities {
		views = append(views, &MunicipalityView{
			ID:   municipality.ID,
			Name: municipality.Name,
		})
	}

	return views
}

// ActivityView is the public shape of an activity log entry.
type ActivityView struct {
	ID           int64     `json:"id"`
	AdminName    string    `json:"admin_name"`
	ActionType   string    `json:"action_type"`
	ResourceType string    `json:"resource_type"`
	ResourceName string    `json:"resource_name"`
	Timestamp    time.Time `json:"timestamp"`
}

func newActivityViews(activities []*entity.AdminActivity) []*ActivityView {
	views := make([]*ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, &ActivityView{
			ID:           activity.ID,
			AdminName:    activity.AdminName,
			ActionType:   activity.ActionType,
			ResourceType: activity.ResourceType,
			ResourceName: activity.ResourceName,
			Timestamp:    activity.Timestamp,
		})
	}

	return views
}
