package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/rankengine/config"
)

var statsCMD = &cobra.Command{
	Use:   "stats <user-id>",
	Short: "print a user's activity snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), config.StatsQueryTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			return err
		}
		defer engine.Close()

		snapshot, err := engine.Stats.ComputeStats(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, snapshot)
	},
}

var awardsCMD = &cobra.Command{
	Use:   "awards <user-id>",
	Short: "list the badges a user has earned, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), config.StatsQueryTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			return err
		}
		defer engine.Close()

		history, err := engine.Ledger.ListAwards(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, history)
	},
}

func init() {
	rootCmd.AddCommand(statsCMD, awardsCMD)
}
