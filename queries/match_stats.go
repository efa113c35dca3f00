package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/jmoiron/sqlx"
)

type MatchStatsDBConnection struct {
	*sqlx.DB
}

// MatchStatsRepository stores each sport's statistics in its own table, so a
// row never carries columns for the other sport.
type MatchStatsRepository interface {
	GetMatchStats(ctx context.Context, match models.MatchModel) (models.MatchStatsModel, error)
	SaveMatchStats(ctx context.Context, match models.MatchModel, stats models.Stats) error
}

func (s *MatchStatsDBConnection) GetMatchStats(ctx context.Context, match models.MatchModel) (models.MatchStatsModel, error) {
	res := models.MatchStatsModel{MatchId: match.MatchId}
	var err error
	switch match.Sport {
	case models.Football:
		stats := models.FootballStats{}
		query :=
			`
			SELECT home_possession, away_possession, home_shots, away_shots,
			home_shots_on_target, away_shots_on_target, home_corners, away_corners,
			home_fouls, away_fouls, home_yellow_cards, away_yellow_cards,
			home_red_cards, away_red_cards
			FROM football_match_stats WHERE match_id = $1
			`
		err = s.DB.GetContext(ctx, &stats, query, match.MatchId)
		res.Stats = stats
	case models.TableTennis:
		stats := models.TableTennisStats{}
		query :=
			`
			SELECT home_aces, away_aces, home_winners, away_winners,
			home_unforced_errors, away_unforced_errors, home_break_points, away_break_points
			FROM tabletennis_match_stats WHERE match_id = $1
			`
		err = s.DB.GetContext(ctx, &stats, query, match.MatchId)
		res.Stats = stats
	default:
		return res, models.ErrUnknownSport
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.MatchStatsModel{}, models.ErrNoStats
	}
	if err != nil {
		log.Println("error selecting match stats: ", err.Error())
		return models.MatchStatsModel{}, fmt.Errorf("getting stats for match %s: %w", match.MatchId, err)
	}
	return res, nil
}

// SaveMatchStats inserts or replaces the statistics of a match. The payload
// must belong to the match's sport.
func (s *MatchStatsDBConnection) SaveMatchStats(ctx context.Context, match models.MatchModel, stats models.Stats) error {
	if stats == nil {
		return fmt.Errorf("%w: missing stats payload", models.ErrInvalidMatch)
	}
	if stats.Sport() != match.Sport {
		return fmt.Errorf("%w: %s stats for a %s match", models.ErrInvalidMatch, stats.Sport(), match.Sport)
	}
	if err := models.Validate(stats); err != nil {
		return err
	}

	var err error
	switch st := stats.(type) {
	case models.FootballStats:
		query :=
			`
			INSERT INTO football_match_stats
			(match_id, home_possession, away_possession, home_shots, away_shots,
			home_shots_on_target, away_shots_on_target, home_corners, away_corners,
			home_fouls, away_fouls, home_yellow_cards, away_yellow_cards,
			home_red_cards, away_red_cards)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (match_id) DO UPDATE SET
			home_possession = EXCLUDED.home_possession, away_possession = EXCLUDED.away_possession,
			home_shots = EXCLUDED.home_shots, away_shots = EXCLUDED.away_shots,
			home_shots_on_target = EXCLUDED.home_shots_on_target, away_shots_on_target = EXCLUDED.away_shots_on_target,
			home_corners = EXCLUDED.home_corners, away_corners = EXCLUDED.away_corners,
			home_fouls = EXCLUDED.home_fouls, away_fouls = EXCLUDED.away_fouls,
			home_yellow_cards = EXCLUDED.home_yellow_cards, away_yellow_cards = EXCLUDED.away_yellow_cards,
			home_red_cards = EXCLUDED.home_red_cards, away_red_cards = EXCLUDED.away_red_cards
			`
		_, err = s.DB.ExecContext(
			ctx,
			query,
			match.MatchId,
			st.HomePossession,
			st.AwayPossession,
			st.HomeShots,
			st.AwayShots,
			st.HomeShotsOnTarget,
			st.AwayShotsOnTarget,
			st.HomeCorners,
			st.AwayCorners,
			st.HomeFouls,
			st.AwayFouls,
			st.HomeYellowCards,
			st.AwayYellowCards,
			st.HomeRedCards,
			st.AwayRedCards,
		)
	case models.TableTennisStats:
		query :=
			`
			INSERT INTO tabletennis_match_stats
			(match_id, home_aces, away_aces, home_winners, away_winners,
			home_unforced_errors, away_unforced_errors, home_break_points, away_break_points)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (match_id) DO UPDATE SET
			home_aces = EXCLUDED.home_aces, away_aces = EXCLUDED.away_aces,
			home_winners = EXCLUDED.home_winners, away_winners = EXCLUDED.away_winners,
			home_unforced_errors = EXCLUDED.home_unforced_errors, away_unforced_errors = EXCLUDED.away_unforced_errors,
			home_break_points = EXCLUDED.home_break_points, away_break_points = EXCLUDED.away_break_points
			`
		_, err = s.DB.ExecContext(
			ctx,
			query,
			match.MatchId,
			st.HomeAces,
			st.AwayAces,
			st.HomeWinners,
			st.AwayWinners,
			st.HomeUnforcedErrors,
			st.AwayUnforcedErrors,
			st.HomeBreakPoints,
			st.AwayBreakPoints,
		)
	}
	if err != nil {
		log.Println("failed to save match stats: ", err.Error())
		return fmt.Errorf("saving stats for match %s: %w", match.MatchId, err)
	}
	return nil
}
