package services

import (
	"context"
	"database/sql"

	"github.com/akarpov87/gotodo/internal/server/models"
	"github.com/akarpov87/gotodo/internal/server/repositories/repomanager"
)

// TodoService manages the per-user todo list. The owner id always comes
// from the verified token, never from the request body.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

func (s *TodoService) Create(ctx context.Context, userID int64, title string, description *string) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	return s.repomanager.Todos(s.db).Create(ctx, todo)
}

func (s *TodoService) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.repomanager.Todos(s.db).ListByUser(ctx, userID)
}
