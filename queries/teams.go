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

type TeamsDBConnection struct {
	*sqlx.DB
}

type TeamRepository interface {
	ListTeams(ctx context.Context, sport models.Sport) ([]models.TeamModel, error)
	GetTeam(ctx context.Context, teamId uuid.UUID) (models.TeamModel, error)
	CreateTeam(ctx context.Context, team *models.TeamModel) error
	GetOrCreateTeam(ctx context.Context, name string, sport models.Sport) (models.TeamModel, bool, error)
	DeleteTeam(ctx context.Context, teamId uuid.UUID) error
}

const teamColumns = `team_id, name, sport, created_at`

func (t *TeamsDBConnection) ListTeams(ctx context.Context, sport models.Sport) ([]models.TeamModel, error) {
	teams := []models.TeamModel{}
	query :=
		`
		SELECT ` + teamColumns + ` FROM teams WHERE sport = $1 ORDER BY name ASC
		`
	if err := t.DB.SelectContext(ctx, &teams, query, sport); err != nil {
		log.Println("error listing teams: ", err.Error())
		return nil, fmt.Errorf("listing %s teams: %w", sport, err)
	}
	return teams, nil
}

func (t *TeamsDBConnection) GetTeam(ctx context.Context, teamId uuid.UUID) (models.TeamModel, error) {
	team := models.TeamModel{}
	query :=
		`
		SELECT ` + teamColumns + ` FROM teams WHERE team_id = $1
		`
	err := t.DB.GetContext(ctx, &team, query, teamId)
	if errors.Is(err, sql.ErrNoRows) {
		return team, models.ErrNotFound
	}
	if err != nil {
		return team, fmt.Errorf("getting team %s: %w", teamId, err)
	}
	return team, nil
}

func (t *TeamsDBConnection) CreateTeam(ctx context.Context, team *models.TeamModel) error {
	if err := models.Validate(team); err != nil {
		return err
	}
	return insertTeam(ctx, t.DB, team)
}

// GetOrCreateTeam looks a team up by name within its sport and inserts it
// when missing. The boolean reports whether a row was created.
func (t *TeamsDBConnection) GetOrCreateTeam(ctx context.Context, name string, sport models.Sport) (models.TeamModel, bool, error) {
	team := models.TeamModel{Name: name, Sport: sport}
	if err := models.Validate(team); err != nil {
		return team, false, err
	}
	query :=
		`
		SELECT ` + teamColumns + ` FROM teams WHERE name = $1 AND sport = $2
		`
	tx, errTx := t.DB.BeginTxx(ctx, nil)
	if errTx != nil {
		log.Println("error creating team tx: ", errTx.Error())
		return team, false, errTx
	}
	defer func() {
		_ = tx.Rollback()
	}()

	err := tx.GetContext(ctx, &team, query, name, sport)
	if err == nil {
		return team, false, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return team, false, fmt.Errorf("looking up team %s: %w", name, err)
	}
	if err := insertTeam(ctx, tx, &team); err != nil {
		return team, false, err
	}
	if err := tx.Commit(); err != nil {
		return team, false, err
	}
	return team, true, nil
}

func insertTeam(ctx context.Context, q sqlx.QueryerContext, team *models.TeamModel) error {
	if team.TeamId == uuid.Nil {
		team.TeamId = uuid.New()
	}
	query :=
		`
		INSERT INTO teams (team_id, name, sport) VALUES ($1, $2, $3) RETURNING created_at
		`
	if err := sqlx.GetContext(ctx, q, &team.CreatedAt, query, team.TeamId, team.Name, team.Sport); err != nil {
		log.Println("failed to insert team: ", err.Error())
		return fmt.Errorf("inserting team %s: %w", team.Name, err)
	}
	return nil
}

func (t *TeamsDBConnection) DeleteTeam(ctx context.Context, teamId uuid.UUID) error {
	query :=
		`
		DELETE FROM teams WHERE team_id = $1
		`
	sqlRow, err := t.DB.ExecContext(ctx, query, teamId)
	if err != nil {
		return err
	}
	row, errR := sqlRow.RowsAffected()
	if errR != nil {
		return errR
	}
	if row == 0 {
		return fmt.Errorf("could not delete team %s: %w", teamId, models.ErrNotFound)
	}
	return nil
}
