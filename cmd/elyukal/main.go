package main

import (
	"context"
	"log/slog"
	"os"

	"elyukal/config"
	"elyukal/internal/delivery"
	"elyukal/internal/delivery/http"
	"elyukal/internal/delivery/http/middleware"
	"elyukal/internal/delivery/http/router/handler"
	"elyukal/internal/domain/repository"
	"elyukal/internal/domain/service"
	"elyukal/internal/infra/auth"
	logs "elyukal/internal/infra/log"
	"elyukal/internal/infra/mail"
	"elyukal/internal/infra/persistence/postgres"
	"elyukal/internal/infra/qrcode"
	"elyukal/internal/infra/storage"
	"elyukal/internal/usecase"
	"elyukal/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminUserRepository,
			postgres.NewStoreUserRepository,
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewArchivedProductRepository,
			postgres.NewStoreRepository,
			postgres.NewReviewRepository,
			postgres.NewMunicipalityRepository,
			postgres.NewActivityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newMailer,
			newFileStorage,
			newQRCodeService,
		),
	)
}

// newMailer creates the Resend mailer with dependency injection
func newMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail configuration is required")
	}

	return mail.NewResendMailer(cfg.Mail, logger)
}

// newFileStorage creates the blob file storage with dependency injection
func newFileStorage(cfg *config.Config, logger *slog.Logger) (service.FileStorage, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage configuration is required")
	}

	return storage.NewBlobStorage(cfg.Storage, logger), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("", 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newAdminAuthService builds the admin authenticator on its own session table.
func newAdminAuthService(
	db *gorm.DB,
	cfg *config.Config,
	admins repository.AdminUserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AdminAuthUsecase {
	session := cfg.Session.Admin
	sessions := postgres.NewSessionRepository(db, session.Table)

	return impl.NewAdminAuthService(sessions, admins, hasher, session.Expiry(), logger)
}

// newStoreAuthService builds the seller authenticator on its own session table.
func newStoreAuthService(
	db *gorm.DB,
	cfg *config.Config,
	storeUsers repository.StoreUserRepository,
	admins repository.AdminUserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.StoreAuthUsecase {
	session := cfg.Session.StoreUser
	sessions := postgres.NewSessionRepository(db, session.Table)

	return impl.NewStoreAuthService(sessions, storeUsers, admins, hasher, session.Expiry(), logger)
}

// newSellerApplicationService wires the seller-session table so rejection can
// revoke the applicant's logins.
func newSellerApplicationService(
	db *gorm.DB,
	cfg *config.Config,
	storeUsers repository.StoreUserRepository,
	activities repository.ActivityRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	fileStorage service.FileStorage,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.SellerApplicationUsecase {
	sessions := postgres.NewSessionRepository(db, cfg.Session.StoreUser.Table)

	return impl.NewSellerApplicationService(storeUsers, sessions, activities, txManager, hasher, fileStorage, mailer, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAdminAuthService,
			newStoreAuthService,
			newSellerApplicationService,
			impl.NewProductService,
			impl.NewArchiveService,
			impl.NewStoreService,
			impl.NewUserService,
			impl.NewDashboardService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStoreAuthHandler,
			handler.NewSellerApplicationHandler,
			handler.NewProductHandler,
			handler.NewArchiveHandler,
			handler.NewStoreHandler,
			handler.NewUserHandler,
			handler.NewDashboardHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
