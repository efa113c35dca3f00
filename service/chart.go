package service

import "AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

const fullMark = 100

type StatPair struct {
	Stat string `json:"stat"`
	Home int    `json:"home"`
	Away int    `json:"away"`
}

// RadarPoint is one axis of the radar chart, scaled so that FullMark is the
// outer ring.
type RadarPoint struct {
	Stat     string  `json:"stat"`
	Home     float64 `json:"home"`
	Away     float64 `json:"away"`
	FullMark int     `json:"fullMark"`
}

type Chart struct {
	StatsData []StatPair   `json:"stats_data"`
	RadarData []RadarPoint `json:"radar_data"`
	HomeTeam  string       `json:"home_team"`
	AwayTeam  string       `json:"away_team"`
}

// BuildChart turns a stats payload into bar and radar series. Team names are
// left for the caller.
func BuildChart(stats models.Stats) (Chart, error) {
	switch s := stats.(type) {
	case models.FootballStats:
		return footballChart(s), nil
	case models.TableTennisStats:
		return tableTennisChart(s), nil
	default:
		return Chart{}, models.ErrNoStats
	}
}

func footballChart(s models.FootballStats) Chart {
	return Chart{
		StatsData: []StatPair{
			{Stat: "Possession", Home: s.HomePossession, Away: s.AwayPossession},
			{Stat: "Shots", Home: s.HomeShots, Away: s.AwayShots},
			{Stat: "On Target", Home: s.HomeShotsOnTarget, Away: s.AwayShotsOnTarget},
			{Stat: "Corners", Home: s.HomeCorners, Away: s.AwayCorners},
			{Stat: "Fouls", Home: s.HomeFouls, Away: s.AwayFouls},
			{Stat: "Yellow Cards", Home: s.HomeYellowCards, Away: s.AwayYellowCards},
		},
		RadarData: []RadarPoint{
			radar("Possession", float64(s.HomePossession), float64(s.AwayPossession)),
			radar("Shots", float64(s.HomeShots*5), float64(s.AwayShots*5)),
			radar("Accuracy", accuracy(s.HomeShotsOnTarget, s.HomeShots), accuracy(s.AwayShotsOnTarget, s.AwayShots)),
			radar("Corners", float64(s.HomeCorners*10), float64(s.AwayCorners*10)),
			radar("Discipline", penalised(s.HomeFouls, 5), penalised(s.AwayFouls, 5)),
		},
	}
}

func tableTennisChart(s models.TableTennisStats) Chart {
	return Chart{
		StatsData: []StatPair{
			{Stat: "Aces", Home: s.HomeAces, Away: s.AwayAces},
			{Stat: "Winners", Home: s.HomeWinners, Away: s.AwayWinners},
			{Stat: "Errors", Home: s.HomeUnforcedErrors, Away: s.AwayUnforcedErrors},
			{Stat: "Break Points", Home: s.HomeBreakPoints, Away: s.AwayBreakPoints},
		},
		RadarData: []RadarPoint{
			radar("Aces", float64(s.HomeAces*5), float64(s.AwayAces*5)),
			radar("Winners", float64(s.HomeWinners*3), float64(s.AwayWinners*3)),
			radar("Consistency", penalised(s.HomeUnforcedErrors, 4), penalised(s.AwayUnforcedErrors, 4)),
			radar("Break Points", float64(s.HomeBreakPoints*10), float64(s.AwayBreakPoints*10)),
		},
	}
}

func radar(stat string, home, away float64) RadarPoint {
	return RadarPoint{Stat: stat, Home: home, Away: away, FullMark: fullMark}
}

// accuracy is the share of shots on target, with at least one shot assumed.
func accuracy(onTarget, shots int) float64 {
	return float64(onTarget) / float64(max(shots, 1)) * 100
}

func penalised(count, weight int) float64 {
	return float64(max(0, fullMark-count*weight))
}
