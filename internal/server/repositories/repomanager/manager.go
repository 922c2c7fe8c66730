// Package repomanager hands out repositories bound to a database handle,
// so services can run them against either the pooled connection or an open
// transaction.
package repomanager

import (
	"context"

	"github.com/akarpov87/gotodo/internal/dbx"
	"github.com/akarpov87/gotodo/internal/server/repositories/todos"
	"github.com/akarpov87/gotodo/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
	RunMigrations(ctx context.Context) error
}
