package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerWeeklyRates(t *testing.T) {
	p, err := NewPlayer("Hitter", PlayerStats{
		PA: 650, R: 100, HR: 25, RBI: 90, SO: 125, TB: 275, SB: 20, OBP: 0.360,
	}, 2.1, 25)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, p.Weekly(Runs), 1e-9)
	assert.InDelta(t, 1.0, p.Weekly(HomeRuns), 1e-9)
	assert.InDelta(t, 5.0, p.Weekly(Strikeouts), 1e-9)
	assert.InDelta(t, 11.0, p.Weekly(TotalBases), 1e-9)
	// OBP is already a rate and is not divided by weeks.
	assert.InDelta(t, 0.360, p.Weekly(OnBasePct), 1e-9)
}

func TestNewPlayerValidation(t *testing.T) {
	valid := PlayerStats{PA: 650, R: 100, HR: 25, RBI: 90, SO: 125, TB: 275, SB: 20, OBP: 0.360}

	tests := []struct {
		name   string
		player string
		mutate func(*PlayerStats)
		weeks  int
	}{
		{"empty name", "", func(s *PlayerStats) {}, 25},
		{"zero weeks", "P", func(s *PlayerStats) {}, 0},
		{"negative runs", "P", func(s *PlayerStats) { s.R = -1 }, 25},
		{"negative steals", "P", func(s *PlayerStats) { s.SB = -3 }, 25},
		{"OBP above one", "P", func(s *PlayerStats) { s.OBP = 1.2 }, 25},
		{"negative OBP", "P", func(s *PlayerStats) { s.OBP = -0.1 }, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := valid
			tt.mutate(&stats)
			_, err := NewPlayer(tt.player, stats, 0, tt.weeks)
			assert.Error(t, err)
		})
	}
}

func TestNewReplacementPlayer(t *testing.T) {
	rep, err := NewReplacementPlayer(PlayerStats{
		PA: 638, R: 77, HR: 21, RBI: 76, SO: 143, TB: 235, SB: 11, OBP: 0.312,
	}, 25)
	require.NoError(t, err)

	assert.Equal(t, ReplacementName, rep.Name)
	assert.Zero(t, rep.ZTotal)
	assert.InDelta(t, 77.0/25, rep.Weekly(Runs), 1e-9)
	assert.InDelta(t, 0.312, rep.Weekly(OnBasePct), 1e-9)
}
