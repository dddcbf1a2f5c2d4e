// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"elyukal/internal/domain/entity"
	"elyukal/internal/domain/repository"
	"elyukal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
// The table name is injected so the same implementation can serve both the
// admin 'sessions' table and the 'store_user_sessions' table.
type sessionRepository struct {
	db    *gorm.DB
	table string
}

// NewSessionRepository is the constructor for sessionRepository bound to the given table.
func NewSessionRepository(db *gorm.DB, table string) repository.SessionRepository {
	return &sessionRepository{
		db:    db,
		table: table,
	}
}

// FindByToken retrieves a session row by its opaque token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Table(repo.table).
		Where("session_id = ?", token).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	return toSessionDomain(&sessionM), nil
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).
		Table(repo.table).
		Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

// Delete removes a session row by token. Deleting a missing token is not an error.
func (repo *sessionRepository) Delete(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).
		Table(repo.table).
		Where("session_id = ?", token).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteByEmail removes every session belonging to the given email.
func (repo *sessionRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Table(repo.table).
		Where("email = ?", email).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sessions by email")
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		Token:     data.SessionID,
		UserID:    data.UserID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		SessionID: data.Token,
		UserID:    data.UserID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}
