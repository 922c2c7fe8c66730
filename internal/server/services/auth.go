// Package services contains server-side business logic: authentication,
// user profile management and the todo list.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akarpov87/gotodo/internal/common"
	"github.com/akarpov87/gotodo/internal/server/auth"
	"github.com/akarpov87/gotodo/internal/server/models"
	"github.com/akarpov87/gotodo/internal/server/repositories/repomanager"
)

// AuthService orchestrates login (verify credentials, issue token) and
// registration (hash, persist).
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.TokenIssuer
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{db: db, repomanager: m, issuer: issuer}
}

// Login verifies the credentials and returns a signed bearer token. An
// unknown username and a wrong password both yield ErrInvalidCredentials,
// so the response does not reveal whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// Register hashes the password and persists a new user. The existence
// pre-check is advisory only: two concurrent registrations can both pass
// it, and the loser of the race gets ErrDuplicateUser from the store's
// unique constraint.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrDuplicateUser
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return nil, common.ErrDuplicateUser
		}
		return nil, common.ErrInternal
	}

	return created, nil
}
