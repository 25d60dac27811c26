package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"
	"os"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(log.New(os.Stdout, "🗄️ [MIGRATE] ", log.LstdFlags))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar dialeto goose: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("erro ao aplicar migrations: %w", err)
	}

	return nil
}
