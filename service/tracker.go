// Package service joins the repositories and the standings calculator into
// the read and write operations served over HTTP and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/metrics"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/queries"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/standings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Repositories struct {
	Teams        queries.TeamRepository
	Matches      queries.MatchRepository
	Stats        queries.MatchStatsRepository
	Performances queries.PlayerPerformanceRepository
}

type Tracker struct {
	repos Repositories
	cache *StandingsCache
	log   logrus.FieldLogger
}

func NewTracker(repos Repositories, cache *StandingsCache, log logrus.FieldLogger) *Tracker {
	return &Tracker{repos: repos, cache: cache, log: log}
}

// SportOverview is everything the landing page of a sport shows.
type SportOverview struct {
	Sport            models.Sport            `json:"sport"`
	LiveMatches      []models.MatchModel     `json:"liveMatches"`
	UpcomingMatches  []models.MatchModel     `json:"upcomingMatches"`
	CompletedMatches []models.MatchModel     `json:"completedMatches"`
	Standings        []models.StandingsModel `json:"standings"`
}

// MatchAnalysis is a match with its optional statistics and the player
// performances of each side, best rated first.
type MatchAnalysis struct {
	Match          models.MatchModel               `json:"match"`
	Stats          *models.MatchStatsModel         `json:"stats"`
	HomePerformers []models.PlayerPerformanceModel `json:"homePerformers"`
	AwayPerformers []models.PlayerPerformanceModel `json:"awayPerformers"`
}

func (t *Tracker) SportOverview(ctx context.Context, sport models.Sport) (SportOverview, error) {
	if !sport.Valid() {
		return SportOverview{}, models.ErrUnknownSport
	}
	matches, err := t.repos.Matches.ListMatches(ctx, sport)
	if err != nil {
		return SportOverview{}, err
	}
	table, err := t.Standings(ctx, sport)
	if err != nil {
		return SportOverview{}, err
	}

	overview := SportOverview{
		Sport:            sport,
		LiveMatches:      []models.MatchModel{},
		UpcomingMatches:  []models.MatchModel{},
		CompletedMatches: []models.MatchModel{},
		Standings:        table,
	}
	for _, m := range matches {
		switch m.Status {
		case models.StatusLive:
			overview.LiveMatches = append(overview.LiveMatches, m)
		case models.StatusUpcoming:
			overview.UpcomingMatches = append(overview.UpcomingMatches, m)
		case models.StatusCompleted:
			overview.CompletedMatches = append(overview.CompletedMatches, m)
		}
	}
	return overview, nil
}

// Standings returns the league table of sport, from the cache when a fresh
// copy is available.
func (t *Tracker) Standings(ctx context.Context, sport models.Sport) ([]models.StandingsModel, error) {
	if !sport.Valid() {
		return nil, models.ErrUnknownSport
	}
	if table, ok := t.cache.Get(sport); ok {
		metrics.RecordStandingsCacheHit(string(sport))
		return table, nil
	}
	metrics.RecordStandingsCacheMiss(string(sport))

	generation := t.cache.Generation(sport)
	start := time.Now()
	teams, err := t.repos.Teams.ListTeams(ctx, sport)
	if err != nil {
		return nil, err
	}
	matches, err := t.repos.Matches.ListMatches(ctx, sport)
	if err != nil {
		return nil, err
	}
	table := standings.Compute(sport, teams, matches)
	metrics.RecordStandingsComputation(string(sport), time.Since(start).Seconds())

	t.log.WithFields(logrus.Fields{
		"sport":   sport,
		"teams":   len(teams),
		"matches": len(matches),
	}).Debug("computed standings")

	if !t.cache.SetIfCurrent(sport, generation, table) {
		t.log.WithField("sport", sport).Debug("standings invalidated while computing, not cached")
	}
	return table, nil
}

func (t *Tracker) InvalidateStandings(sport models.Sport) {
	t.cache.Invalidate(sport)
}

// RecordResult stores the status and score of a match and drops the cached
// table of its sport.
func (t *Tracker) RecordResult(ctx context.Context, matchId uuid.UUID, status models.MatchStatus, homeScore, awayScore *int) (models.MatchModel, error) {
	match, err := t.repos.Matches.GetMatch(ctx, matchId)
	if err != nil {
		return models.MatchModel{}, err
	}
	if err := t.repos.Matches.UpdateMatchResult(ctx, matchId, status, homeScore, awayScore); err != nil {
		return models.MatchModel{}, err
	}
	t.InvalidateStandings(match.Sport)
	metrics.RecordMatchResult(string(match.Sport), string(status))

	t.log.WithFields(logrus.Fields{
		"match_id": matchId,
		"sport":    match.Sport,
		"status":   status,
	}).Info("match result recorded")

	return t.repos.Matches.GetMatch(ctx, matchId)
}

func (t *Tracker) MatchAnalysis(ctx context.Context, matchId uuid.UUID) (MatchAnalysis, error) {
	match, err := t.repos.Matches.GetMatch(ctx, matchId)
	if err != nil {
		return MatchAnalysis{}, err
	}

	analysis := MatchAnalysis{
		Match:          match,
		HomePerformers: []models.PlayerPerformanceModel{},
		AwayPerformers: []models.PlayerPerformanceModel{},
	}

	stats, err := t.repos.Stats.GetMatchStats(ctx, match)
	switch {
	case err == nil:
		analysis.Stats = &stats
	case !errors.Is(err, models.ErrNoStats):
		return MatchAnalysis{}, err
	}

	performances, err := t.repos.Performances.ListPerformances(ctx, match)
	if err != nil {
		return MatchAnalysis{}, err
	}
	for _, p := range performances {
		switch p.TeamId {
		case match.HomeTeamId:
			analysis.HomePerformers = append(analysis.HomePerformers, p)
		case match.AwayTeamId:
			analysis.AwayPerformers = append(analysis.AwayPerformers, p)
		}
	}
	return analysis, nil
}

// MatchChart returns the chart payload of a match. It fails with
// models.ErrNoStats when nothing was recorded for it.
func (t *Tracker) MatchChart(ctx context.Context, matchId uuid.UUID) (Chart, error) {
	match, err := t.repos.Matches.GetMatch(ctx, matchId)
	if err != nil {
		return Chart{}, err
	}
	stats, err := t.repos.Stats.GetMatchStats(ctx, match)
	if err != nil {
		return Chart{}, err
	}
	chart, err := BuildChart(stats.Stats)
	if err != nil {
		return Chart{}, fmt.Errorf("charting match %s: %w", matchId, err)
	}
	chart.HomeTeam = match.HomeTeamName
	chart.AwayTeam = match.AwayTeamName
	return chart, nil
}
