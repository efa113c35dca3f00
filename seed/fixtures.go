package seed

import "AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

var footballTeams = []string{
	"Manchester City", "Liverpool", "Arsenal", "Chelsea",
	"Tottenham", "Manchester United", "Newcastle", "Brighton",
}

var tableTennisPlayers = []string{
	"Zhang Wei", "Ma Long", "Fan Zhendong", "Xu Xin",
	"Lin Gaoyuan", "Wang Chuqin", "Liang Jingkun", "Liu Dingshuo",
}

// fixture is a match placed relative to the reference day.
type fixture struct {
	home, away string
	homeScore  *int
	awayScore  *int
	status     models.MatchStatus
	dayOffset  int
	venue      string
	league     string
}

const (
	premierLeague       = "Premier League"
	worldChampionship   = "World Championship"
	olympicSportsCenter = "Olympic Sports Center"
)

var footballFixtures = []fixture{
	{"Manchester City", "Liverpool", models.Score(2), models.Score(1), models.StatusCompleted, -2, "Etihad Stadium", premierLeague},
	{"Arsenal", "Chelsea", models.Score(3), models.Score(1), models.StatusCompleted, -1, "Emirates Stadium", premierLeague},
	{"Tottenham", "Manchester United", models.Score(1), models.Score(3), models.StatusCompleted, -3, "Tottenham Hotspur Stadium", premierLeague},
	{"Newcastle", "Brighton", models.Score(2), models.Score(2), models.StatusCompleted, -2, "St. James' Park", premierLeague},
	{"Manchester United", "Arsenal", models.Score(1), models.Score(1), models.StatusLive, 0, "Old Trafford", premierLeague},
	{"Liverpool", "Chelsea", nil, nil, models.StatusUpcoming, 1, "Anfield", premierLeague},
}

var tableTennisFixtures = []fixture{
	{"Zhang Wei", "Ma Long", models.Score(2), models.Score(3), models.StatusCompleted, -2, olympicSportsCenter, worldChampionship},
	{"Fan Zhendong", "Xu Xin", models.Score(3), models.Score(1), models.StatusCompleted, -1, "National Stadium", worldChampionship},
	{"Lin Gaoyuan", "Wang Chuqin", models.Score(4), models.Score(1), models.StatusCompleted, -3, "Sports Complex", worldChampionship},
	{"Ma Long", "Fan Zhendong", models.Score(2), models.Score(2), models.StatusLive, 0, "Championship Arena", worldChampionship},
	{"Xu Xin", "Zhang Wei", nil, nil, models.StatusUpcoming, 1, olympicSportsCenter, worldChampionship},
}

func footballStats(f fixture) models.FootballStats {
	stats := models.FootballStats{
		HomePossession:    45,
		AwayPossession:    55,
		HomeShots:         14,
		AwayShots:         11,
		HomeShotsOnTarget: 6,
		AwayShotsOnTarget: 4,
		HomeCorners:       7,
		AwayCorners:       5,
		HomeFouls:         12,
		AwayFouls:         15,
		HomeYellowCards:   2,
		AwayYellowCards:   3,
	}
	if f.home == "Manchester City" {
		stats.HomePossession = 58
	}
	if f.away == "Liverpool" {
		stats.AwayPossession = 42
	}
	return stats
}

var tableTennisStats = models.TableTennisStats{
	HomeAces:           8,
	AwayAces:           12,
	HomeWinners:        15,
	AwayWinners:        18,
	HomeUnforcedErrors: 12,
	AwayUnforcedErrors: 8,
	HomeBreakPoints:    4,
	AwayBreakPoints:    6,
}
