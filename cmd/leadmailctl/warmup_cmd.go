package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xavierca1/leadmail/internal/infra/database"
	"github.com/xavierca1/leadmail/internal/infra/worker"
)

var warmupCmd = &cobra.Command{
	Use:   "warmup",
	Short: "Warmup limit maintenance",
}

var warmupRampCmd = &cobra.Command{
	Use:   "ramp",
	Short: "Run one warmup ramp pass now",
	Long: `Raises current_daily_limit by daily_increase (capped at max_daily_limit)
for every enabled user not yet ramped today. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		w := worker.NewWarmupRampWorker(database.NewWarmupSettingsRepository(db), time.Hour)
		n := w.RunOnce(cmd.Context())

		fmt.Fprintf(cmd.OutOrStdout(), "%d warmup limit(s) raised\n", n)
		return nil
	},
}

func init() {
	warmupCmd.AddCommand(warmupRampCmd)
}
