package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/rankengine/config"
)

var errSpacesDisabled = errors.New("spaces is not configured")

var rankCMD = &cobra.Command{
	Use:   "rank <dimension> <user-id>",
	Short: "show one user's position on a leaderboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension, err := leaderboard.ParseDimension(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), config.RankingQueryTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			return err
		}
		defer engine.Close()

		pos, err := engine.Ranker.UserRank(ctx, dimension, args[1], leaderboardFilters())
		if err != nil {
			return err
		}
		return printJSON(cmd, pos)
	},
}

func init() {
	addPeriodFlags(rankCMD)
	rootCmd.AddCommand(rankCMD)
}
