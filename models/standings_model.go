package models

import "github.com/google/uuid"

// StandingsModel is one derived row of a league table. Drawn and the goal
// columns are only populated for football and encode as null otherwise.
type StandingsModel struct {
	TeamId         uuid.UUID `json:"teamId"`
	TeamName       string    `json:"team"`
	Played         int       `json:"played"`
	Won            int       `json:"won"`
	Drawn          *int      `json:"drawn"`
	Lost           int       `json:"lost"`
	GoalsFor       *int      `json:"goals_for"`
	GoalsAgainst   *int      `json:"goals_against"`
	GoalDifference *int      `json:"goal_difference"`
	Points         int       `json:"points"`
	Position       int       `json:"position"`
}
