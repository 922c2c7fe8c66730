package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/akarpov87/gotodo/internal/dbx"
	"github.com/akarpov87/gotodo/internal/server/migrations"
	"github.com/akarpov87/gotodo/internal/server/repositories/todos"
	"github.com/akarpov87/gotodo/internal/server/repositories/users"
)

type PostgresManager struct {
	db *sql.DB
}

// NewPostgresManager opens the pgx stdlib pool and verifies connectivity.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &PostgresManager{db: db}, nil
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresManager) Todos(db dbx.DBTX) todos.Repository {
	return todos.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, m.db, ".")
}
