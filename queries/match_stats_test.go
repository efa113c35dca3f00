package queries

import (
	"context"
	"testing"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MatchStatsTestSuite struct {
	suite.Suite
	db   *sqlx.DB
	mock sqlmock.Sqlmock
	conn *MatchStatsDBConnection
	ctx  context.Context
}

func (suite *MatchStatsTestSuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	require.NoError(suite.T(), err)

	suite.db = sqlx.NewDb(mockDB, "sqlmock")
	suite.mock = mock
	suite.conn = &MatchStatsDBConnection{DB: suite.db}
	suite.ctx = context.Background()
}

func (suite *MatchStatsTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *MatchStatsTestSuite) TestGetMatchStats_Football() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.Football}

	suite.mock.ExpectQuery(`SELECT home_possession, .* FROM football_match_stats WHERE match_id = \$1`).
		WithArgs(match.MatchId).
		WillReturnRows(sqlmock.NewRows([]string{
			"home_possession", "away_possession", "home_shots", "away_shots",
			"home_shots_on_target", "away_shots_on_target", "home_corners", "away_corners",
			"home_fouls", "away_fouls", "home_yellow_cards", "away_yellow_cards",
			"home_red_cards", "away_red_cards",
		}).AddRow(58, 42, 14, 11, 6, 4, 7, 5, 12, 15, 2, 3, 0, 0))

	res, err := suite.conn.GetMatchStats(suite.ctx, match)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), match.MatchId, res.MatchId)
	stats, ok := res.Stats.(models.FootballStats)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), 58, stats.HomePossession)
	assert.Equal(suite.T(), 4, stats.AwayShotsOnTarget)
	assert.Equal(suite.T(), 3, stats.AwayYellowCards)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *MatchStatsTestSuite) TestGetMatchStats_TableTennis() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.TableTennis}

	suite.mock.ExpectQuery(`FROM tabletennis_match_stats WHERE match_id = \$1`).
		WithArgs(match.MatchId).
		WillReturnRows(sqlmock.NewRows([]string{
			"home_aces", "away_aces", "home_winners", "away_winners",
			"home_unforced_errors", "away_unforced_errors", "home_break_points", "away_break_points",
		}).AddRow(8, 12, 15, 18, 12, 8, 4, 6))

	res, err := suite.conn.GetMatchStats(suite.ctx, match)

	assert.NoError(suite.T(), err)
	stats, ok := res.Stats.(models.TableTennisStats)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), 12, stats.AwayAces)
	assert.Equal(suite.T(), 6, stats.AwayBreakPoints)
	assert.Equal(suite.T(), models.TableTennis, res.Stats.Sport())
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *MatchStatsTestSuite) TestGetMatchStats_NoRows() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.Football}

	suite.mock.ExpectQuery(`FROM football_match_stats`).
		WithArgs(match.MatchId).
		WillReturnRows(sqlmock.NewRows([]string{"home_possession"}))

	_, err := suite.conn.GetMatchStats(suite.ctx, match)

	assert.ErrorIs(suite.T(), err, models.ErrNoStats)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *MatchStatsTestSuite) TestSaveMatchStats_Football() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.Football}
	stats := models.FootballStats{
		HomePossession: 55, AwayPossession: 45,
		HomeShots: 10, AwayShots: 8,
		HomeShotsOnTarget: 4, AwayShotsOnTarget: 2,
	}

	suite.mock.ExpectExec(`INSERT INTO football_match_stats .* ON CONFLICT \(match_id\) DO UPDATE SET`).
		WithArgs(match.MatchId, 55, 45, 10, 8, 4, 2, 0, 0, 0, 0, 0, 0, 0, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.conn.SaveMatchStats(suite.ctx, match, stats)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *MatchStatsTestSuite) TestSaveMatchStats_TableTennis() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.TableTennis}
	stats := models.TableTennisStats{HomeAces: 8, AwayAces: 12, HomeWinners: 15, AwayWinners: 18}

	suite.mock.ExpectExec(`INSERT INTO tabletennis_match_stats`).
		WithArgs(match.MatchId, 8, 12, 15, 18, 0, 0, 0, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.conn.SaveMatchStats(suite.ctx, match, stats)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// A PAYLOAD FROM THE WRONG SPORT NEVER REACHES THE DATABASE
func (suite *MatchStatsTestSuite) TestSaveMatchStats_Rejected() {
	match := models.MatchModel{MatchId: uuid.New(), Sport: models.Football}

	err := suite.conn.SaveMatchStats(suite.ctx, match, models.TableTennisStats{})
	assert.ErrorIs(suite.T(), err, models.ErrInvalidMatch)

	err = suite.conn.SaveMatchStats(suite.ctx, match, nil)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidMatch)

	err = suite.conn.SaveMatchStats(suite.ctx, match, models.FootballStats{HomePossession: 120})
	assert.Error(suite.T(), err)

	err = suite.conn.SaveMatchStats(suite.ctx, match, models.FootballStats{HomeShots: 2, HomeShotsOnTarget: 5})
	assert.Error(suite.T(), err)

	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestMatchStatsTestSuite(t *testing.T) {
	suite.Run(t, new(MatchStatsTestSuite))
}
