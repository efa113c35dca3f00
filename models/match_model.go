package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchModel struct {
	MatchId      uuid.UUID   `db:"match_id" json:"matchId"`
	HomeTeamId   uuid.UUID   `db:"home_team_id" json:"homeTeamId" validate:"required"`
	HomeTeamName string      `db:"home_team_name" json:"homeTeamName"`
	AwayTeamId   uuid.UUID   `db:"away_team_id" json:"awayTeamId" validate:"required"`
	AwayTeamName string      `db:"away_team_name" json:"awayTeamName"`
	HomeScore    *int        `db:"home_score" json:"homeScore" validate:"omitempty,min=0"`
	AwayScore    *int        `db:"away_score" json:"awayScore" validate:"omitempty,min=0"`
	Status       MatchStatus `db:"status" json:"status" validate:"required,matchstatus"`
	Sport        Sport       `db:"sport" json:"sport" validate:"required,sport"`
	MatchDate    time.Time   `db:"match_date" json:"matchDate" validate:"required"`
	Venue        string      `db:"venue" json:"venue" validate:"max=200"`
	League       string      `db:"league" json:"league" validate:"required,max=100"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`
}

// Scored reports whether both final scores are present.
func (m MatchModel) Scored() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Qualifies reports whether the match counts towards a league table.
func (m MatchModel) Qualifies() bool {
	return m.Status == StatusCompleted && m.Scored()
}

func (m MatchModel) Involves(teamId uuid.UUID) bool {
	return m.HomeTeamId == teamId || m.AwayTeamId == teamId
}

// Score is a convenience for building optional scores.
func Score(v int) *int {
	return &v
}
