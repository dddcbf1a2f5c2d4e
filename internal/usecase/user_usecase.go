package usecase

import (
	"context"

	"elyukal/internal/domain/entity"
)

// UserProfileInput carries the editable profile fields of a shopper.
type UserProfileInput struct {
	FirstName string
	LastName  string
}

// UserUsecase defines the admin-facing operations on shopper accounts.
type UserUsecase interface {
	// FetchAll lists every shopper account.
	FetchAll(ctx context.Context) ([]*entity.User, error)

	// FetchByEmail retrieves a single shopper account.
	FetchByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile edits the name fields of a shopper and logs the activity.
	UpdateProfile(ctx context.Context, actor entity.Actor, email string, input *UserProfileInput) (*entity.User, error)

	// Ban marks a shopper as banned and logs the activity. Banning an already
	// banned shopper is a conflict.
	Ban(ctx context.Context, actor entity.Actor, email, reason string) (*entity.User, error)

	// Unban clears the ban state of a shopper and logs the activity. Unbanning
	// a shopper who is not banned succeeds without change.
	Unban(ctx context.Context, actor entity.Actor, email string) (*entity.User, error)
}
