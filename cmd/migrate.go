package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/rankengine/config"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create tables, the unique award constraint and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), config.SchemaInitTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			slog.Error("Failed to connect to database", slog.String("type", "db"), slog.Any("error", err))
			return err
		}
		defer engine.Close()

		if err := engine.DB.InitializeSchema(ctx); err != nil {
			slog.Error("Schema initialization failed", slog.String("type", "db"), slog.Any("error", err))
			return err
		}

		slog.Info("Migration completed successfully!", slog.String("type", "db"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCMD)
}
