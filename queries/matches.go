package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MatchesDBConnection struct {
	*sqlx.DB
}

type MatchRepository interface {
	ListMatches(ctx context.Context, sport models.Sport) ([]models.MatchModel, error)
	GetMatch(ctx context.Context, matchId uuid.UUID) (models.MatchModel, error)
	CreateMatch(ctx context.Context, match *models.MatchModel) error
	GetOrCreateMatch(ctx context.Context, match models.MatchModel) (models.MatchModel, bool, error)
	UpdateMatchResult(ctx context.Context, matchId uuid.UUID, status models.MatchStatus, homeScore, awayScore *int) error
	DeleteMatch(ctx context.Context, matchId uuid.UUID) error
}

const matchSelect = `
	SELECT m.match_id, m.home_team_id, h.name AS home_team_name,
	m.away_team_id, a.name AS away_team_name,
	m.home_score, m.away_score, m.status, m.sport, m.match_date,
	m.venue, m.league, m.created_at, m.updated_at
	FROM matches m
	JOIN teams h ON h.team_id = m.home_team_id
	JOIN teams a ON a.team_id = m.away_team_id
	`

func (m *MatchesDBConnection) ListMatches(ctx context.Context, sport models.Sport) ([]models.MatchModel, error) {
	matches := []models.MatchModel{}
	query := matchSelect +
		`
		WHERE m.sport = $1
		ORDER BY m.match_date DESC
		`
	if err := m.DB.SelectContext(ctx, &matches, query, sport); err != nil {
		log.Println("error listing matches: ", err.Error())
		return nil, fmt.Errorf("listing %s matches: %w", sport, err)
	}
	return matches, nil
}

func (m *MatchesDBConnection) GetMatch(ctx context.Context, matchId uuid.UUID) (models.MatchModel, error) {
	match := models.MatchModel{}
	query := matchSelect +
		`
		WHERE m.match_id = $1
		`
	err := m.DB.GetContext(ctx, &match, query, matchId)
	if errors.Is(err, sql.ErrNoRows) {
		return match, models.ErrNotFound
	}
	if err != nil {
		return match, fmt.Errorf("getting match %s: %w", matchId, err)
	}
	return match, nil
}

func (m *MatchesDBConnection) CreateMatch(ctx context.Context, match *models.MatchModel) error {
	if err := models.Validate(match); err != nil {
		return err
	}
	tx, errTx := m.DB.BeginTxx(ctx, nil)
	if errTx != nil {
		log.Println("error creating match tx: ", errTx.Error())
		return errTx
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertMatch(ctx, tx, match); err != nil {
		return err
	}
	return tx.Commit()
}

// GetOrCreateMatch finds a fixture by its teams and kick-off time and inserts
// it when missing. The boolean reports whether a row was created.
func (m *MatchesDBConnection) GetOrCreateMatch(ctx context.Context, match models.MatchModel) (models.MatchModel, bool, error) {
	if err := models.Validate(match); err != nil {
		return match, false, err
	}
	query := matchSelect +
		`
		WHERE m.home_team_id = $1 AND m.away_team_id = $2 AND m.match_date = $3
		`
	tx, errTx := m.DB.BeginTxx(ctx, nil)
	if errTx != nil {
		log.Println("error creating match tx: ", errTx.Error())
		return match, false, errTx
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing := models.MatchModel{}
	err := tx.GetContext(ctx, &existing, query, match.HomeTeamId, match.AwayTeamId, match.MatchDate)
	if err == nil {
		return existing, false, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return match, false, fmt.Errorf("looking up match: %w", err)
	}
	if err := insertMatch(ctx, tx, &match); err != nil {
		return match, false, err
	}
	if err := tx.Commit(); err != nil {
		return match, false, err
	}
	return match, true, nil
}

type teamSport struct {
	TeamId uuid.UUID    `db:"team_id"`
	Name   string       `db:"name"`
	Sport  models.Sport `db:"sport"`
}

// insertMatch checks that both teams exist and play the match's sport
// before inserting it.
func insertMatch(ctx context.Context, tx *sqlx.Tx, match *models.MatchModel) error {
	var teams []teamSport
	queryTeams :=
		`
		SELECT team_id, name, sport FROM teams WHERE team_id IN ($1, $2)
		`
	if err := tx.SelectContext(ctx, &teams, queryTeams, match.HomeTeamId, match.AwayTeamId); err != nil {
		log.Println("error selecting match teams: ", err.Error())
		return err
	}
	if len(teams) != 2 {
		return fmt.Errorf("%w: home or away team does not exist", models.ErrInvalidMatch)
	}
	for _, t := range teams {
		if t.Sport != match.Sport {
			return fmt.Errorf("%w: team %s plays %s, not %s", models.ErrInvalidMatch, t.Name, t.Sport, match.Sport)
		}
		if t.TeamId == match.HomeTeamId {
			match.HomeTeamName = t.Name
		} else {
			match.AwayTeamName = t.Name
		}
	}

	if match.MatchId == uuid.Nil {
		match.MatchId = uuid.New()
	}
	query :=
		`
		INSERT INTO matches
		(
		match_id,
		home_team_id,
		away_team_id,
		home_score,
		away_score,
		status,
		sport,
		match_date,
		venue,
		league)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
		`
	row := tx.QueryRowxContext(
		ctx,
		query,
		match.MatchId,
		match.HomeTeamId,
		match.AwayTeamId,
		match.HomeScore,
		match.AwayScore,
		match.Status,
		match.Sport,
		match.MatchDate,
		match.Venue,
		match.League,
	)
	if err := row.Scan(&match.CreatedAt, &match.UpdatedAt); err != nil {
		log.Println("failed to insert match: ", err.Error())
		return fmt.Errorf("inserting match: %w", err)
	}
	return nil
}

func (m *MatchesDBConnection) UpdateMatchResult(ctx context.Context, matchId uuid.UUID, status models.MatchStatus, homeScore, awayScore *int) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidMatch, status)
	}
	if status == models.StatusCompleted && (homeScore == nil || awayScore == nil) {
		return fmt.Errorf("%w: completed matches need both scores", models.ErrInvalidMatch)
	}
	if (homeScore != nil && *homeScore < 0) || (awayScore != nil && *awayScore < 0) {
		return fmt.Errorf("%w: scores cannot be negative", models.ErrInvalidMatch)
	}
	query :=
		`
		UPDATE matches
		SET status = $1, home_score = $2, away_score = $3, updated_at = NOW()
		WHERE match_id = $4
		`
	sqlRow, err := m.DB.ExecContext(ctx, query, status, homeScore, awayScore, matchId)
	if err != nil {
		log.Println("failed to update match result: ", err.Error())
		return err
	}
	row, errR := sqlRow.RowsAffected()
	if errR != nil {
		return errR
	}
	if row == 0 {
		return fmt.Errorf("could not update match %s: %w", matchId, models.ErrNotFound)
	}
	return nil
}

func (m *MatchesDBConnection) DeleteMatch(ctx context.Context, matchId uuid.UUID) error {
	query :=
		`
		DELETE FROM matches WHERE match_id = $1
		`
	sqlRow, err := m.DB.ExecContext(ctx, query, matchId)
	if err != nil {
		return err
	}
	row, errR := sqlRow.RowsAffected()
	if errR != nil {
		return errR
	}
	if row == 0 {
		return fmt.Errorf("could not delete match %s: %w", matchId, models.ErrNotFound)
	}
	return nil
}
