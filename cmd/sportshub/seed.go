package main

import (
	"fmt"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample teams, matches and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		sum, err := seed.NewLoader(repos, logg).Run(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %d teams, %d matches, %d stats and %d performances\n",
			sum.Teams, sum.Matches, sum.Stats, sum.Performances)
		return nil
	},
}
