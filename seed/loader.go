// Package seed loads a fixed set of sample teams, matches, statistics and
// player performances. Running it twice creates nothing new.
package seed

import (
	"context"
	"fmt"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/metrics"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Summary counts the rows a run created.
type Summary struct {
	Teams        int
	Matches      int
	Stats        int
	Performances int
}

type Loader struct {
	repos service.Repositories
	log   logrus.FieldLogger
}

func NewLoader(repos service.Repositories, log logrus.FieldLogger) *Loader {
	return &Loader{repos: repos, log: log}
}

// Run seeds both sports. Kick-off times are whole days around the reference
// day, so reruns on the same day find the matches they created before.
func (l *Loader) Run(ctx context.Context, reference time.Time) (Summary, error) {
	day := reference.UTC().Truncate(24 * time.Hour)
	var sum Summary

	football, err := l.teams(ctx, models.Football, footballTeams, &sum)
	if err != nil {
		return sum, err
	}
	tableTennis, err := l.teams(ctx, models.TableTennis, tableTennisPlayers, &sum)
	if err != nil {
		return sum, err
	}

	for _, f := range footballFixtures {
		if err := l.match(ctx, models.Football, f, day, football, &sum); err != nil {
			return sum, err
		}
	}
	for _, f := range tableTennisFixtures {
		if err := l.match(ctx, models.TableTennis, f, day, tableTennis, &sum); err != nil {
			return sum, err
		}
	}

	metrics.RecordSeedCreated("team", sum.Teams)
	metrics.RecordSeedCreated("match", sum.Matches)
	metrics.RecordSeedCreated("stats", sum.Stats)
	metrics.RecordSeedCreated("performance", sum.Performances)

	l.log.WithFields(logrus.Fields{
		"teams":        sum.Teams,
		"matches":      sum.Matches,
		"stats":        sum.Stats,
		"performances": sum.Performances,
	}).Info("sample data loaded")
	return sum, nil
}

func (l *Loader) teams(ctx context.Context, sport models.Sport, names []string, sum *Summary) (map[string]models.TeamModel, error) {
	byName := make(map[string]models.TeamModel, len(names))
	for _, name := range names {
		team, created, err := l.repos.Teams.GetOrCreateTeam(ctx, name, sport)
		if err != nil {
			return nil, fmt.Errorf("seeding %s team %s: %w", sport, name, err)
		}
		if created {
			sum.Teams++
			l.log.WithField("sport", sport).Debugf("created team %s", name)
		}
		byName[name] = team
	}
	return byName, nil
}

// match creates the fixture and, only when it is new and has been played,
// its statistics and performances.
func (l *Loader) match(ctx context.Context, sport models.Sport, f fixture, day time.Time, teams map[string]models.TeamModel, sum *Summary) error {
	home, away := teams[f.home], teams[f.away]
	match, created, err := l.repos.Matches.GetOrCreateMatch(ctx, models.MatchModel{
		HomeTeamId:   home.TeamId,
		HomeTeamName: home.Name,
		AwayTeamId:   away.TeamId,
		AwayTeamName: away.Name,
		HomeScore:    f.homeScore,
		AwayScore:    f.awayScore,
		Status:       f.status,
		Sport:        sport,
		MatchDate:    day.AddDate(0, 0, f.dayOffset),
		Venue:        f.venue,
		League:       f.league,
	})
	if err != nil {
		return fmt.Errorf("seeding match %s v %s: %w", f.home, f.away, err)
	}
	if !created {
		return nil
	}
	sum.Matches++
	if f.status == models.StatusUpcoming {
		return nil
	}

	var stats models.Stats = tableTennisStats
	if sport == models.Football {
		stats = footballStats(f)
	}
	if err := l.repos.Stats.SaveMatchStats(ctx, match, stats); err != nil {
		return fmt.Errorf("seeding stats of %s v %s: %w", f.home, f.away, err)
	}
	sum.Stats++

	for _, p := range performances(sport, f, home, away) {
		if err := l.repos.Performances.CreatePerformance(ctx, match, &p); err != nil {
			return fmt.Errorf("seeding performance of %s: %w", p.PlayerName, err)
		}
		sum.Performances++
	}
	l.log.WithField("sport", sport).Debugf("created match %s v %s", f.home, f.away)
	return nil
}

func performances(sport models.Sport, f fixture, home, away models.TeamModel) []models.PlayerPerformanceModel {
	if sport == models.Football {
		if f.home != "Manchester City" {
			return nil
		}
		return []models.PlayerPerformanceModel{
			{TeamId: home.TeamId, PlayerName: "Erling Haaland", Position: "Forward", Rating: decimal.RequireFromString("9.2"), Line: models.FootballLine{Goals: 2}},
			{TeamId: home.TeamId, PlayerName: "Kevin De Bruyne", Position: "Midfielder", Rating: decimal.RequireFromString("8.5"), Line: models.FootballLine{Assists: 1}},
		}
	}
	return []models.PlayerPerformanceModel{
		{TeamId: home.TeamId, PlayerName: f.home, Rating: decimal.RequireFromString("8.2"), Line: models.TableTennisLine{PointsWon: 45, Aces: 8, Winners: 15}},
		{TeamId: away.TeamId, PlayerName: f.away, Rating: decimal.RequireFromString("9.1"), Line: models.TableTennisLine{PointsWon: 52, Aces: 12, Winners: 18}},
	}
}
