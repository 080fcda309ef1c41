package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pumppro/rankengine/rankengine/config"
)

var sweepUser string

var sweepCMD = &cobra.Command{
	Use:   "sweep",
	Short: "award every badge users have become eligible for",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), config.SweepTimeout)
		defer cancel()

		engine, err := openEngine(ctx)
		if err != nil {
			return err
		}
		defer engine.Close()

		if sweepUser != "" {
			awarded, err := engine.Sweeper.SweepOne(ctx, sweepUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"userId": sweepUser, "awarded": awarded})
		}

		report, err := engine.Sweeper.SweepAll(ctx)
		if report != nil {
			if perr := printJSON(cmd, report); perr != nil {
				return errors.Join(err, perr)
			}
		}
		return err
	},
}

func init() {
	sweepCMD.Flags().StringVar(&sweepUser, "user", "", "sweep a single user")
	rootCmd.AddCommand(sweepCMD)
}
