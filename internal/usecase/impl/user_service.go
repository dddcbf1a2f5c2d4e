package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users     repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	users repository.UserRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:     users,
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FetchAll lists every shopper account.
func (srv *userService) FetchAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// FetchByEmail retrieves a single shopper account.
func (srv *userService) FetchByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile edits the name fields of a shopper and logs the activity.
func (srv *userService) UpdateProfile(ctx context.Context, actor entity.Actor, email string, input *usecase.UserProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		activityRepo := repoFactory.NewActivityRepository()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		found.FirstName = input.FirstName
		found.LastName = input.LastName

		if err := userRepo.UpdateProfile(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		entry := &entity.AdminActivity{
			AdminName:    actor.Name,
			ActionType:   entity.ActionEdited,
			ResourceType: "user",
			ResourceName: found.FullName(),
			Timestamp:    time.Now().UTC(),
		}
		if err := activityRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record profile update activity")
		}

		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update user profile", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	return user, nil
}

// Ban marks a shopper as banned and logs the activity in the same transaction.
// Banning a shopper who is already banned succeeds without change.
func (srv *userService) Ban(ctx context.Context, actor entity.Actor, email, reason string) (*entity.User, error) {
	srv.log(ctx).Info("Banning user", slog.String("email", email), slog.String("actor", actor.Name))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		activityRepo := repoFactory.NewActivityRepository()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if found.IsBanned {
			user = found

			return nil
		}

		now := time.Now().UTC()
		found.IsBanned = true
		found.BannedAt = &now
		found.BannedBy = actor.Name
		found.BanReason = reason

		if err := userRepo.UpdateBan(ctx, found); err != nil {
			return errors.Wrap(err, "failed to ban user")
		}

		entry := &entity.AdminActivity{
			AdminName:    actor.Name,
			ActionType:   entity.ActionEdited,
			ResourceType: "user",
			ResourceName: fmt.Sprintf("%s (banned)", found.FullName()),
			Timestamp:    now,
		}
		if err := activityRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record ban activity")
		}

		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to ban user", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	srv.log(ctx).Info("User banned", slog.String("email", email))

	return user, nil
}

// Unban clears the ban state of a shopper and logs the activity. Unbanning a
// shopper who is not banned succeeds without change.
func (srv *userService) Unban(ctx context.Context, actor entity.Actor, email string) (*entity.User, error) {
	srv.log(ctx).Info("Unbanning user", slog.String("email", email), slog.String("actor", actor.Name))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		activityRepo := repoFactory.NewActivityRepository()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !found.IsBanned {
			user = found

			return nil
		}

		found.IsBanned = false
		found.BannedAt = nil
		found.BannedBy = ""
		found.BanReason = ""

		if err := userRepo.UpdateBan(ctx, found); err != nil {
			return errors.Wrap(err, "failed to unban user")
		}

		entry := &entity.AdminActivity{
			AdminName:    actor.Name,
			ActionType:   entity.ActionEdited,
			ResourceType: "user",
			ResourceName: fmt.Sprintf("%s (unbanned)", found.FullName()),
			Timestamp:    time.Now().UTC(),
		}
		if err := activityRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record unban activity")
		}

		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to unban user", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	srv.log(ctx).Info("User unbanned", slog.String("email", email))

	return user, nil
}
