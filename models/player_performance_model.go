package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PerformanceLine holds the sport-specific part of a player performance.
type PerformanceLine interface {
	Sport() Sport
	isPerformanceLine()
}

type FootballLine struct {
	Goals   int `json:"goals" validate:"min=0"`
	Assists int `json:"assists" validate:"min=0"`
}

func (FootballLine) Sport() Sport       { return Football }
func (FootballLine) isPerformanceLine() {}

type TableTennisLine struct {
	PointsWon int `json:"pointsWon" validate:"min=0"`
	Aces      int `json:"aces" validate:"min=0"`
	Winners   int `json:"winners" validate:"min=0"`
}

func (TableTennisLine) Sport() Sport       { return TableTennis }
func (TableTennisLine) isPerformanceLine() {}

type PlayerPerformanceModel struct {
	PerformanceId uuid.UUID       `json:"performanceId"`
	MatchId       uuid.UUID       `json:"matchId" validate:"required"`
	TeamId        uuid.UUID       `json:"teamId" validate:"required"`
	PlayerName    string          `json:"playerName" validate:"required,max=100"`
	Position      string          `json:"position" validate:"max=50"`
	Rating        decimal.Decimal `json:"rating"`
	Line          PerformanceLine `json:"line" validate:"required"`
}

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(10)
)

// ValidRating reports whether the rating fits 0.0 - 10.0 with one decimal place.
func (p PlayerPerformanceModel) ValidRating() bool {
	if p.Rating.LessThan(minRating) || p.Rating.GreaterThan(maxRating) {
		return false
	}
	return p.Rating.Equal(p.Rating.Round(1))
}
