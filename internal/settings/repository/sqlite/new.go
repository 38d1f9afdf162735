package sqlite

import (
	"database/sql"
	"fmt"

	"nutricoach/internal/settings/repository"
	"nutricoach/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed settings Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("settings/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settings/repository/sqlite.%s", method)
}
