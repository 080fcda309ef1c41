package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/rankengine"
	"github.com/pumppro/rankengine/rankengine/logger"
)

var (
	version = "dev"
	commit  = "unknown"

	configPath string
	cfg        *rankengine.Config
)

var rootCmd = &cobra.Command{
	Use:           "rankengine",
	Short:         "Badge awarding and leaderboard ranking for PumpPro",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := rankengine.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		slog.SetDefault(logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource))
		slog.Debug("Configuration loaded",
			slog.String("path", configPath),
			slog.String("version", version),
			slog.String("commit", commit))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.Version = version
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Command failed", slog.String("type", "error"), slog.Any("error", err))
		os.Exit(1)
	}
}

// openEngine connects using the loaded config. Callers must Close it.
func openEngine(ctx context.Context) (*rankengine.Engine, error) {
	return rankengine.Open(ctx, *cfg)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
