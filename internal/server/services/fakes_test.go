package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akarpov87/gotodo/internal/dbx"
	"github.com/akarpov87/gotodo/internal/server/models"
	todosrepo "github.com/akarpov87/gotodo/internal/server/repositories/todos"
	usersrepo "github.com/akarpov87/gotodo/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byUsernameOut *models.User
	byUsernameErr error

	byIDOut *models.User
	byIDErr error

	updateOut *models.User
	updateErr error

	updateCalledWith *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	f.updateCalledWith = u
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return u, nil
}

type fakeTodosRepo struct {
	createErr error
	listOut   []models.Todo
	listErr   error
}

func (f *fakeTodosRepo) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	todo.ID = 1
	return todo, nil
}

func (f *fakeTodosRepo) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTodosRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }
func (m *fakeRepoManager) Todos(db dbx.DBTX) todosrepo.Repository { return m.t }
func (m *fakeRepoManager) RunMigrations(context.Context) error    { return nil }
