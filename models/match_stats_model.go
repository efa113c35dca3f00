package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Stats is the per-sport statistics payload of a match. Only the two
// variants below implement it.
type Stats interface {
	Sport() Sport
	isStats()
}

type FootballStats struct {
	HomePossession    int `db:"home_possession" json:"homePossession" validate:"min=0,max=100"`
	AwayPossession    int `db:"away_possession" json:"awayPossession" validate:"min=0,max=100"`
	HomeShots         int `db:"home_shots" json:"homeShots" validate:"min=0"`
	AwayShots         int `db:"away_shots" json:"awayShots" validate:"min=0"`
	HomeShotsOnTarget int `db:"home_shots_on_target" json:"homeShotsOnTarget" validate:"min=0,ltefield=HomeShots"`
	AwayShotsOnTarget int `db:"away_shots_on_target" json:"awayShotsOnTarget" validate:"min=0,ltefield=AwayShots"`
	HomeCorners       int `db:"home_corners" json:"homeCorners" validate:"min=0"`
	AwayCorners       int `db:"away_corners" json:"awayCorners" validate:"min=0"`
	HomeFouls         int `db:"home_fouls" json:"homeFouls" validate:"min=0"`
	AwayFouls         int `db:"away_fouls" json:"awayFouls" validate:"min=0"`
	HomeYellowCards   int `db:"home_yellow_cards" json:"homeYellowCards" validate:"min=0"`
	AwayYellowCards   int `db:"away_yellow_cards" json:"awayYellowCards" validate:"min=0"`
	HomeRedCards      int `db:"home_red_cards" json:"homeRedCards" validate:"min=0"`
	AwayRedCards      int `db:"away_red_cards" json:"awayRedCards" validate:"min=0"`
}

func (FootballStats) Sport() Sport { return Football }
func (FootballStats) isStats()     {}

type TableTennisStats struct {
	HomeAces           int `db:"home_aces" json:"homeAces" validate:"min=0"`
	AwayAces           int `db:"away_aces" json:"awayAces" validate:"min=0"`
	HomeWinners        int `db:"home_winners" json:"homeWinners" validate:"min=0"`
	AwayWinners        int `db:"away_winners" json:"awayWinners" validate:"min=0"`
	HomeUnforcedErrors int `db:"home_unforced_errors" json:"homeUnforcedErrors" validate:"min=0"`
	AwayUnforcedErrors int `db:"away_unforced_errors" json:"awayUnforcedErrors" validate:"min=0"`
	HomeBreakPoints    int `db:"home_break_points" json:"homeBreakPoints" validate:"min=0"`
	AwayBreakPoints    int `db:"away_break_points" json:"awayBreakPoints" validate:"min=0"`
}

func (TableTennisStats) Sport() Sport { return TableTennis }
func (TableTennisStats) isStats()     {}

type MatchStatsModel struct {
	MatchId uuid.UUID
	Stats   Stats
}

func (m MatchStatsModel) MarshalJSON() ([]byte, error) {
	out := struct {
		MatchId uuid.UUID `json:"matchId"`
		Sport   Sport     `json:"sport"`
		Stats   Stats     `json:"stats"`
	}{MatchId: m.MatchId, Stats: m.Stats}
	if m.Stats != nil {
		out.Sport = m.Stats.Sport()
	}
	return json.Marshal(out)
}
