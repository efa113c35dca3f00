package service

import (
	"context"
	"fmt"
	"sort"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/google/uuid"
)

type memTeams struct {
	teams []models.TeamModel
	calls int
	err   error
}

func (r *memTeams) ListTeams(_ context.Context, sport models.Sport) ([]models.TeamModel, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := []models.TeamModel{}
	for _, t := range r.teams {
		if t.Sport == sport {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memTeams) GetTeam(_ context.Context, id uuid.UUID) (models.TeamModel, error) {
	for _, t := range r.teams {
		if t.TeamId == id {
			return t, nil
		}
	}
	return models.TeamModel{}, models.ErrNotFound
}

func (r *memTeams) CreateTeam(_ context.Context, team *models.TeamModel) error {
	team.TeamId = uuid.New()
	r.teams = append(r.teams, *team)
	return nil
}

func (r *memTeams) GetOrCreateTeam(ctx context.Context, name string, sport models.Sport) (models.TeamModel, bool, error) {
	for _, t := range r.teams {
		if t.Name == name && t.Sport == sport {
			return t, false, nil
		}
	}
	team := models.TeamModel{Name: name, Sport: sport}
	err := r.CreateTeam(ctx, &team)
	return team, err == nil, err
}

func (r *memTeams) DeleteTeam(_ context.Context, id uuid.UUID) error {
	for i, t := range r.teams {
		if t.TeamId == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type memMatches struct {
	matches []models.MatchModel
	calls   int
	// afterList runs once the rows of a ListMatches call have been read.
	afterList func()
}

func (r *memMatches) ListMatches(_ context.Context, sport models.Sport) ([]models.MatchModel, error) {
	r.calls++
	out := []models.MatchModel{}
	for _, m := range r.matches {
		if m.Sport == sport {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchDate.After(out[j].MatchDate) })
	if r.afterList != nil {
		hook := r.afterList
		r.afterList = nil
		hook()
	}
	return out, nil
}

func (r *memMatches) GetMatch(_ context.Context, id uuid.UUID) (models.MatchModel, error) {
	for _, m := range r.matches {
		if m.MatchId == id {
			return m, nil
		}
	}
	return models.MatchModel{}, models.ErrNotFound
}

func (r *memMatches) CreateMatch(_ context.Context, match *models.MatchModel) error {
	if err := models.Validate(match); err != nil {
		return err
	}
	match.MatchId = uuid.New()
	r.matches = append(r.matches, *match)
	return nil
}

func (r *memMatches) GetOrCreateMatch(ctx context.Context, match models.MatchModel) (models.MatchModel, bool, error) {
	for _, m := range r.matches {
		if m.HomeTeamId == match.HomeTeamId && m.AwayTeamId == match.AwayTeamId && m.MatchDate.Equal(match.MatchDate) {
			return m, false, nil
		}
	}
	err := r.CreateMatch(ctx, &match)
	return match, err == nil, err
}

func (r *memMatches) UpdateMatchResult(_ context.Context, id uuid.UUID, status models.MatchStatus, home, away *int) error {
	if status == models.StatusCompleted && (home == nil || away == nil) {
		return fmt.Errorf("%w: completed matches need both scores", models.ErrInvalidMatch)
	}
	for i := range r.matches {
		if r.matches[i].MatchId == id {
			r.matches[i].Status = status
			r.matches[i].HomeScore = home
			r.matches[i].AwayScore = away
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *memMatches) DeleteMatch(_ context.Context, id uuid.UUID) error {
	for i, m := range r.matches {
		if m.MatchId == id {
			r.matches = append(r.matches[:i], r.matches[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type memStats struct {
	stats map[uuid.UUID]models.Stats
}

func (r *memStats) GetMatchStats(_ context.Context, match models.MatchModel) (models.MatchStatsModel, error) {
	s, ok := r.stats[match.MatchId]
	if !ok {
		return models.MatchStatsModel{}, models.ErrNoStats
	}
	return models.MatchStatsModel{MatchId: match.MatchId, Stats: s}, nil
}

func (r *memStats) SaveMatchStats(_ context.Context, match models.MatchModel, stats models.Stats) error {
	if stats == nil || stats.Sport() != match.Sport {
		return models.ErrInvalidMatch
	}
	if r.stats == nil {
		r.stats = map[uuid.UUID]models.Stats{}
	}
	r.stats[match.MatchId] = stats
	return nil
}

type memPerformances struct {
	performances []models.PlayerPerformanceModel
}

func (r *memPerformances) ListPerformances(_ context.Context, match models.MatchModel) ([]models.PlayerPerformanceModel, error) {
	out := []models.PlayerPerformanceModel{}
	for _, p := range r.performances {
		if p.MatchId == match.MatchId {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating.GreaterThan(out[j].Rating) })
	return out, nil
}

func (r *memPerformances) CreatePerformance(_ context.Context, match models.MatchModel, p *models.PlayerPerformanceModel) error {
	if !match.Involves(p.TeamId) {
		return models.ErrInvalidMatch
	}
	p.MatchId = match.MatchId
	p.PerformanceId = uuid.New()
	r.performances = append(r.performances, *p)
	return nil
}
