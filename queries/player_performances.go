package queries

import (
	"context"
	"errors"
	"fmt"
	"log"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PlayerPerformancesDBConnection struct {
	*sqlx.DB
}

type PlayerPerformanceRepository interface {
	ListPerformances(ctx context.Context, match models.MatchModel) ([]models.PlayerPerformanceModel, error)
	CreatePerformance(ctx context.Context, match models.MatchModel, performance *models.PlayerPerformanceModel) error
}

var errInvalidRating = errors.New("rating must be between 0.0 and 10.0 with one decimal place")

// performanceRow mirrors the player_performances table. The per-sport
// columns are nullable there and folded into a PerformanceLine on read.
type performanceRow struct {
	PerformanceId uuid.UUID       `db:"performance_id"`
	MatchId       uuid.UUID       `db:"match_id"`
	TeamId        uuid.UUID       `db:"team_id"`
	PlayerName    string          `db:"player_name"`
	Position      string          `db:"position"`
	Rating        decimal.Decimal `db:"rating"`
	Goals         *int            `db:"goals"`
	Assists       *int            `db:"assists"`
	PointsWon     *int            `db:"points_won"`
	Aces          *int            `db:"aces"`
	Winners       *int            `db:"winners"`
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (r performanceRow) toModel(sport models.Sport) models.PlayerPerformanceModel {
	p := models.PlayerPerformanceModel{
		PerformanceId: r.PerformanceId,
		MatchId:       r.MatchId,
		TeamId:        r.TeamId,
		PlayerName:    r.PlayerName,
		Position:      r.Position,
		Rating:        r.Rating,
	}
	if sport == models.Football {
		p.Line = models.FootballLine{Goals: orZero(r.Goals), Assists: orZero(r.Assists)}
	} else {
		p.Line = models.TableTennisLine{PointsWon: orZero(r.PointsWon), Aces: orZero(r.Aces), Winners: orZero(r.Winners)}
	}
	return p
}

func (p *PlayerPerformancesDBConnection) ListPerformances(ctx context.Context, match models.MatchModel) ([]models.PlayerPerformanceModel, error) {
	var rows []performanceRow
	query :=
		`
		SELECT performance_id, match_id, team_id, player_name, position, rating,
		goals, assists, points_won, aces, winners
		FROM player_performances
		WHERE match_id = $1
		ORDER BY rating DESC
		`
	if err := p.DB.SelectContext(ctx, &rows, query, match.MatchId); err != nil {
		log.Println("error listing player performances: ", err.Error())
		return nil, fmt.Errorf("listing performances for match %s: %w", match.MatchId, err)
	}
	performances := make([]models.PlayerPerformanceModel, 0, len(rows))
	for _, r := range rows {
		performances = append(performances, r.toModel(match.Sport))
	}
	return performances, nil
}

func (p *PlayerPerformancesDBConnection) CreatePerformance(ctx context.Context, match models.MatchModel, performance *models.PlayerPerformanceModel) error {
	performance.MatchId = match.MatchId
	if err := models.Validate(performance); err != nil {
		return err
	}
	if !performance.ValidRating() {
		return errInvalidRating
	}
	if performance.Line.Sport() != match.Sport {
		return fmt.Errorf("%w: %s performance for a %s match", models.ErrInvalidMatch, performance.Line.Sport(), match.Sport)
	}
	if !match.Involves(performance.TeamId) {
		return fmt.Errorf("%w: team %s did not play this match", models.ErrInvalidMatch, performance.TeamId)
	}
	if performance.PerformanceId == uuid.Nil {
		performance.PerformanceId = uuid.New()
	}

	row := performanceRow{
		PerformanceId: performance.PerformanceId,
		MatchId:       performance.MatchId,
		TeamId:        performance.TeamId,
		PlayerName:    performance.PlayerName,
		Position:      performance.Position,
		Rating:        performance.Rating,
	}
	switch line := performance.Line.(type) {
	case models.FootballLine:
		row.Goals, row.Assists = &line.Goals, &line.Assists
	case models.TableTennisLine:
		row.PointsWon, row.Aces, row.Winners = &line.PointsWon, &line.Aces, &line.Winners
	}

	query :=
		`
		INSERT INTO player_performances
		(performance_id, match_id, team_id, player_name, position, rating,
		goals, assists, points_won, aces, winners)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
	_, err := p.DB.ExecContext(
		ctx,
		query,
		row.PerformanceId,
		row.MatchId,
		row.TeamId,
		row.PlayerName,
		row.Position,
		row.Rating,
		row.Goals,
		row.Assists,
		row.PointsWon,
		row.Aces,
		row.Winners,
	)
	if err != nil {
		log.Println("failed to insert player performance: ", err.Error())
		return fmt.Errorf("inserting performance of %s: %w", performance.PlayerName, err)
	}
	return nil
}
