package main

import (
	"fmt"
	"io"
	"strings"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/service"

	"github.com/spf13/cobra"
)

var sportFlag string

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the league table of a sport",
	RunE: func(cmd *cobra.Command, args []string) error {
		sport, err := models.ParseSport(sportFlag)
		if err != nil {
			return fmt.Errorf("%w: %q", err, sportFlag)
		}
		repos, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		tracker := service.NewTracker(repos, service.NewStandingsCache(cfg.Cache.StandingsTTL), logg)
		table, err := tracker.Standings(cmd.Context(), sport)
		if err != nil {
			return err
		}
		printStandings(cmd.OutOrStdout(), sport, table)
		return nil
	},
}

func init() {
	standingsCmd.Flags().StringVarP(&sportFlag, "sport", "s", string(models.Football), "Sport to print (football or tabletennis)")
}

// printStandings writes the table in fixed-width columns. Football adds the
// drawn and goal columns.
func printStandings(w io.Writer, sport models.Sport, table []models.StandingsModel) {
	football := sport == models.Football
	if football {
		fmt.Fprintf(w, "%-4s %-24s %3s %3s %3s %3s %4s %4s %4s %4s\n", "Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	} else {
		fmt.Fprintf(w, "%-4s %-24s %3s %3s %3s %4s\n", "Pos", "Player", "P", "W", "L", "Pts")
	}
	fmt.Fprintln(w, strings.Repeat("-", 64))
	for _, row := range table {
		if football {
			fmt.Fprintf(w, "%-4d %-24s %3d %3d %3d %3d %4d %4d %+4d %4d\n",
				row.Position, row.TeamName, row.Played, row.Won, *row.Drawn, row.Lost,
				*row.GoalsFor, *row.GoalsAgainst, *row.GoalDifference, row.Points)
			continue
		}
		fmt.Fprintf(w, "%-4d %-24s %3d %3d %3d %4d\n",
			row.Position, row.TeamName, row.Played, row.Won, row.Lost, row.Points)
	}
}
