// Package standings derives league tables from completed match results.
package standings

import (
	"sort"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/google/uuid"
)

// PointsRule maps a match outcome to league points.
type PointsRule struct {
	Win  int
	Draw int
	Loss int
}

var footballRule = PointsRule{Win: 3, Draw: 1, Loss: 0}

// Table tennis has no draws. A drawn result is still counted as played and
// earns nothing.
var gamesRule = PointsRule{Win: 2, Draw: 0, Loss: 0}

// RuleFor returns the points rule of a sport. Anything that is not football
// is scored on the games-based rule.
func RuleFor(sport models.Sport) PointsRule {
	if sport == models.Football {
		return footballRule
	}
	return gamesRule
}

type tally struct {
	row    models.StandingsModel
	drawn  int
	gf, ga int
}

// Compute builds the ordered table for sport. Every team appears exactly once,
// in input order before sorting, including teams with no qualifying matches.
// Matches that are not completed or miss a score are ignored.
func Compute(sport models.Sport, teams []models.TeamModel, matches []models.MatchModel) []models.StandingsModel {
	rule := RuleFor(sport)

	tallies := make([]*tally, len(teams))
	index := make(map[uuid.UUID][]*tally, len(teams))
	for i, t := range teams {
		tallies[i] = &tally{row: models.StandingsModel{TeamId: t.TeamId, TeamName: t.Name}}
		index[t.TeamId] = append(index[t.TeamId], tallies[i])
	}

	for _, m := range matches {
		if !m.Qualifies() {
			continue
		}
		home, away := *m.HomeScore, *m.AwayScore
		for _, t := range index[m.HomeTeamId] {
			t.record(home, away, rule)
		}
		for _, t := range index[m.AwayTeamId] {
			t.record(away, home, rule)
		}
	}

	table := make([]models.StandingsModel, len(tallies))
	for i, t := range tallies {
		table[i] = t.finish(sport)
	}

	sort.SliceStable(table, less(sport, table))

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

func (t *tally) record(scored, conceded int, rule PointsRule) {
	t.row.Played++
	t.gf += scored
	t.ga += conceded
	switch {
	case scored > conceded:
		t.row.Won++
		t.row.Points += rule.Win
	case scored < conceded:
		t.row.Lost++
		t.row.Points += rule.Loss
	default:
		t.drawn++
		t.row.Points += rule.Draw
	}
}

func (t *tally) finish(sport models.Sport) models.StandingsModel {
	row := t.row
	if sport == models.Football {
		drawn, gf, ga, gd := t.drawn, t.gf, t.ga, t.gf-t.ga
		row.Drawn = &drawn
		row.GoalsFor = &gf
		row.GoalsAgainst = &ga
		row.GoalDifference = &gd
	}
	return row
}

func less(sport models.Sport, table []models.StandingsModel) func(i, j int) bool {
	if sport == models.Football {
		return func(i, j int) bool {
			a, b := table[i], table[j]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if *a.GoalDifference != *b.GoalDifference {
				return *a.GoalDifference > *b.GoalDifference
			}
			return *a.GoalsFor > *b.GoalsFor
		}
	}
	return func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.Won > b.Won
	}
}
