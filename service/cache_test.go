package service

import (
	"testing"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsCache(t *testing.T) {
	c := NewStandingsCache(time.Minute)

	_, ok := c.Get(models.Football)
	assert.False(t, ok)

	c.Set(models.Football, []models.StandingsModel{{TeamName: "Arsenal", Points: 3, Position: 1}})

	table, ok := c.Get(models.Football)
	require.True(t, ok)
	assert.Equal(t, "Arsenal", table[0].TeamName)

	_, ok = c.Get(models.TableTennis)
	assert.False(t, ok)

	c.Invalidate(models.Football)
	_, ok = c.Get(models.Football)
	assert.False(t, ok)
}

func TestStandingsCacheReturnsCopies(t *testing.T) {
	c := NewStandingsCache(time.Minute)
	original := []models.StandingsModel{{TeamName: "Arsenal", Points: 3}}
	c.Set(models.Football, original)

	original[0].Points = 99
	table, _ := c.Get(models.Football)
	assert.Equal(t, 3, table[0].Points)

	table[0].Points = 42
	again, _ := c.Get(models.Football)
	assert.Equal(t, 3, again[0].Points)
}

func TestStandingsCacheCopiesFootballColumns(t *testing.T) {
	c := NewStandingsCache(time.Minute)
	original := []models.StandingsModel{{
		TeamName:       "Arsenal",
		Drawn:          models.Score(0),
		GoalsFor:       models.Score(2),
		GoalsAgainst:   models.Score(2),
		GoalDifference: models.Score(0),
	}}
	c.Set(models.Football, original)

	*original[0].GoalDifference = 7

	table, ok := c.Get(models.Football)
	require.True(t, ok)
	assert.Equal(t, 0, *table[0].GoalDifference)

	*table[0].GoalDifference = 42
	*table[0].Drawn = 5
	*table[0].GoalsFor = 9
	*table[0].GoalsAgainst = 9

	again, _ := c.Get(models.Football)
	assert.Equal(t, 0, *again[0].GoalDifference)
	assert.Equal(t, 0, *again[0].Drawn)
	assert.Equal(t, 2, *again[0].GoalsFor)
	assert.Equal(t, 2, *again[0].GoalsAgainst)
}

func TestStandingsCacheCopiesNilColumns(t *testing.T) {
	c := NewStandingsCache(time.Minute)
	c.Set(models.TableTennis, []models.StandingsModel{{TeamName: "Ma Long", Points: 2}})

	table, ok := c.Get(models.TableTennis)
	require.True(t, ok)
	assert.Nil(t, table[0].Drawn)
	assert.Nil(t, table[0].GoalDifference)
}

func TestStandingsCacheSetIfCurrent(t *testing.T) {
	c := NewStandingsCache(time.Minute)

	generation := c.Generation(models.Football)
	c.Invalidate(models.Football)

	stored := c.SetIfCurrent(models.Football, generation, []models.StandingsModel{{TeamName: "Arsenal"}})
	assert.False(t, stored)
	_, ok := c.Get(models.Football)
	assert.False(t, ok)

	generation = c.Generation(models.Football)
	assert.True(t, c.SetIfCurrent(models.Football, generation, []models.StandingsModel{{TeamName: "Arsenal"}}))
	_, ok = c.Get(models.Football)
	assert.True(t, ok)

	// other sports keep their own generation
	assert.True(t, c.SetIfCurrent(models.TableTennis, 0, []models.StandingsModel{{TeamName: "Ma Long"}}))
}

func TestStandingsCacheExpires(t *testing.T) {
	c := NewStandingsCache(20 * time.Millisecond)
	c.Set(models.Football, []models.StandingsModel{{TeamName: "Arsenal"}})

	assert.Eventually(t, func() bool {
		_, ok := c.Get(models.Football)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
