package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// SellerApplicationInput carries the payload of a seller application submission.
type SellerApplicationInput struct {
	Email           string
	FirstName       string
	LastName        string
	PhoneNumber     string
	Password        string
	BusinessPermit  *FileUpload
	ValidID         *FileUpload
	DTIRegistration *FileUpload // Optional.
}

// SellerApplicationUsecase defines the seller onboarding flow.
type SellerApplicationUsecase interface {
	// Submit stores the uploaded documents, creates a pending seller account
	// and sends a confirmation email on a best-effort basis.
	Submit(ctx context.Context, input *SellerApplicationInput) (*entity.StoreUser, error)

	// List retrieves every seller application for admin review.
	List(ctx context.Context) ([]*entity.StoreUser, error)

	// UpdateStatus accepts or rejects an application and notifies the
	// applicant by email on a best-effort basis.
	UpdateStatus(ctx context.Context, actor entity.Actor, applicationID int64, status entity.ApplicationStatus) (*entity.StoreUser, error)
}
