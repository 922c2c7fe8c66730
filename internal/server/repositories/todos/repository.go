// Package todos persists the per-user todo records.
package todos

import (
	"context"

	"github.com/akarpov87/gotodo/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
}
