package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/domain/repository"
	"elyukal/internal/domain/service"
	"elyukal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Buckets holding the uploaded seller application documents.
const (
	bucketPermits  = "permits"
	bucketValidIDs = "valid-ids"
	bucketDTI      = "dti"
)

// maxDocumentSize caps each uploaded application document at 5 MB.
const maxDocumentSize = 5 << 20

// sellerApplicationService implements the SellerApplicationUsecase interface.
type sellerApplicationService struct {
	storeUsers repository.StoreUserRepository
	sessions   repository.SessionRepository // store-user session table
	activities repository.ActivityRepository
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	storage    service.FileStorage
	mailer     service.Mailer
	logger     *slog.Logger
}

// NewSellerApplicationService is the constructor for sellerApplicationService.
func NewSellerApplicationService(
	storeUsers repository.StoreUserRepository,
	sessions repository.SessionRepository,
	activities repository.ActivityRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	storage service.FileStorage,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.SellerApplicationUsecase {
	return &sellerApplicationService{
		storeUsers: storeUsers,
		sessions:   sessions,
		activities: activities,
		txManager:  txManager,
		hasher:     hasher,
		storage:    storage,
		mailer:     mailer,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sellerApplicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the uploaded documents, creates a pending seller account and
// sends a confirmation email on a best-effort basis.
func (srv *sellerApplicationService) Submit(ctx context.Context, input *usecase.SellerApplicationInput) (*entity.StoreUser, error) {
	srv.log(ctx).Info("Seller application submitted", slog.String("email", input.Email))

	if _, err := srv.storeUsers.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrStoreUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing application")
	}

	permitURL, err := srv.uploadDocument(ctx, bucketPermits, input.BusinessPermit)
	if err != nil {
		return nil, err
	}

	validIDURL, err := srv.uploadDocument(ctx, bucketValidIDs, input.ValidID)
	if err != nil {
		return nil, err
	}

	var dtiURL string
	if input.DTIRegistration != nil {
		dtiURL, err = srv.uploadDocument(ctx, bucketDTI, input.DTIRegistration)
		if err != nil {
			return nil, err
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.StoreUser{
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		PhoneNumber:     input.PhoneNumber,
		PasswordHash:    hash,
		Status:          entity.StatusPending,
		BusinessPermit:  permitURL,
		ValidID:         validIDURL,
		DTIRegistration: dtiURL,
	}

	if err := srv.storeUsers.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create seller application")
	}

	// Notification failures never fail the submission.
	if err := srv.mailer.SendApplicationReceived(ctx, user.Email, user.FullName()); err != nil {
		srv.log(ctx).Warn("Failed to send application confirmation", slog.Any("error", err), slog.String("email", user.Email))
	}

	srv.log(ctx).Info("Seller application created", slog.Int64("id", user.ID), slog.String("email", user.Email))

	return user, nil
}

// List retrieves every seller application for admin review.
func (srv *sellerApplicationService) List(ctx context.Context) ([]*entity.StoreUser, error) {
	users, err := srv.storeUsers.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller applications")
	}

	return users, nil
}

// UpdateStatus accepts or rejects an application and notifies the applicant by
// email on a best-effort basis.
func (srv *sellerApplicationService) UpdateStatus(ctx context.Context, actor entity.Actor, applicationID int64, status entity.ApplicationStatus) (*entity.StoreUser, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown application status")
	}

	var user *entity.StoreUser

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeUserRepo := repoFactory.NewStoreUserRepository()

		found, err := storeUserRepo.FindByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "application not found")
			}

			return errors.Wrap(err, "failed to find application")
		}

		if err := storeUserRepo.UpdateStatus(ctx, applicationID, status); err != nil {
			return errors.Wrap(err, "failed to update application status")
		}

		found.Status = status
		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update application status", slog.Any("error", err), slog.Int64("id", applicationID))

		return nil, err
	}

	// A rejected seller must not keep a live login; revocation is best-effort.
	if status == entity.StatusRejected {
		if err := srv.sessions.DeleteByEmail(ctx, user.Email); err != nil {
			srv.log(ctx).Warn("Failed to revoke seller sessions", slog.Any("error", err), slog.String("email", user.Email))
		}
	}

	srv.notifyStatusChange(ctx, user)
	recordActivity(ctx, srv.logger, srv.activities, actor.Name, entity.ActionEdited,
		"seller application", fmt.Sprintf("%s (%s)", user.FullName(), status))
	srv.log(ctx).Info("Application status updated", slog.Int64("id", applicationID), slog.String("status", status.String()))

	return user, nil
}

// uploadDocument validates and stores one application document, returning its public URL.
func (srv *sellerApplicationService) uploadDocument(ctx context.Context, bucket string, doc *usecase.FileUpload) (string, error) {
	if doc == nil {
		return "", domainerrors.ErrValidationFailed.WrapMessage("missing required document")
	}

	if doc.Size > maxDocumentSize {
		return "", domainerrors.ErrFileTooLarge
	}

	if !allowedDocumentType(doc.ContentType) {
		return "", domainerrors.ErrUnsupportedFileType
	}

	key := fmt.Sprintf("%s%s", uuid.New().String(), strings.ToLower(path.Ext(doc.Filename)))

	url, err := srv.storage.Upload(ctx, bucket, key, doc.ContentType, doc.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload document", slog.Any("error", err), slog.String("bucket", bucket))

		return "", domainerrors.ErrUploadFailed.WrapMessage("failed to store document")
	}

	return url, nil
}

// notifyStatusChange emails the applicant about the decision, best-effort.
func (srv *sellerApplicationService) notifyStatusChange(ctx context.Context, user *entity.StoreUser) {
	var err error

	switch user.Status {
	case entity.StatusAccepted:
		err = srv.mailer.SendApplicationApproved(ctx, user.Email, user.FullName())
	case entity.StatusRejected:
		err = srv.mailer.SendApplicationRejected(ctx, user.Email, user.FullName())
	default:
		return
	}

	if err != nil {
		srv.log(ctx).Warn("Failed to send status notification", slog.Any("error", err), slog.String("email", user.Email))
	}
}

func allowedDocumentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "application/pdf":
		return true
	default:
		return false
	}
}
