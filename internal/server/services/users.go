package services

import (
	"context"
	"database/sql"

	"github.com/akarpov87/gotodo/internal/dbx"
	"github.com/akarpov87/gotodo/internal/server/models"
	"github.com/akarpov87/gotodo/internal/server/repositories/repomanager"
)

// UserService reads and updates user profiles. Ownership is enforced by the
// HTTP layer before these methods run.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UserUpdate carries the mutable profile fields. Empty fields keep their
// stored values; the password hash is never updated through this path.
type UserUpdate struct {
	Username string
	Email    string
}

// Update applies upd to the user inside one transaction, so the
// read-modify-write does not interleave with a concurrent update.
func (s *UserService) Update(ctx context.Context, id int64, upd UserUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.Username != "" {
			user.Username = upd.Username
		}
		if upd.Email != "" {
			user.Email = upd.Email
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
