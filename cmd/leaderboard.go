package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/rankengine/config"
)

var (
	boardLimit   int
	boardOffset  int
	boardMonth   int
	boardYear    int
	boardQuery   string
	boardPublish bool
)

var leaderboardCMD = &cobra.Command{
	Use:       "leaderboard <global|challenge|calorie|monthly>",
	Short:     "print a ranked leaderboard page",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"global", "challenge", "calorie", "monthly"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension, err := leaderboard.ParseDimension(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), config.RankingQueryTimeout+config.PublishTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			return err
		}
		defer engine.Close()

		page, err := engine.Ranker.Rank(ctx, dimension, leaderboardFilters())
		if err != nil {
			return err
		}

		if boardPublish {
			if engine.Publisher == nil {
				return errSpacesDisabled
			}
			if _, err := engine.Publisher.Publish(ctx, page); err != nil {
				return err
			}
		}
		return printJSON(cmd, page)
	},
}

func leaderboardFilters() leaderboard.Filters {
	return leaderboard.Filters{
		Limit:  boardLimit,
		Offset: boardOffset,
		Month:  time.Month(boardMonth),
		Year:   boardYear,
		Query:  boardQuery,
	}
}

func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&boardMonth, "month", 0, "month 1-12 for the monthly board, current month by default")
	cmd.Flags().IntVar(&boardYear, "year", 0, "year for the monthly board, current year by default")
}

func init() {
	leaderboardCMD.Flags().IntVar(&boardLimit, "limit", 0, "page size, engine default when 0")
	leaderboardCMD.Flags().IntVar(&boardOffset, "offset", 0, "entries to skip")
	leaderboardCMD.Flags().StringVar(&boardQuery, "query", "", "only show users whose name matches")
	leaderboardCMD.Flags().BoolVar(&boardPublish, "publish", false, "upload the page to spaces")
	addPeriodFlags(leaderboardCMD)
	rootCmd.AddCommand(leaderboardCMD)
}
