package main

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xavierca1/leadmail/internal/infra/database"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "leadmailctl",
	Short: "Operator tooling for the leadmail service",
	Long: `leadmailctl runs maintenance tasks against the leadmail database and
checks SMTP credentials without going through the HTTP API.

Examples:
  leadmailctl migrate
  leadmailctl warmup ramp
  leadmailctl smtp verify --host smtp.example.com --port 587 --username me --password secret --from me@example.com`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (defaults to $DATABASE_URL)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(warmupCmd)
	rootCmd.AddCommand(smtpCmd)
}

func openDB(ctx context.Context) (*sql.DB, error) {
	url := databaseURL
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return nil, errors.New("database url not set: use --database-url or DATABASE_URL")
	}
	return database.NewDBConnection(ctx, url)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
