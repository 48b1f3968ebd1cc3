package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrey/draftbot/internal/league"
)

func TestDerivePitcherClassifiesByGamesStarted(t *testing.T) {
	cfg := league.DefaultPitching()

	tests := []struct {
		name string
		gs   float64
		want PitcherRole
	}{
		{"full-time starter", 30, Starter},
		{"swingman above threshold", 6, Starter},
		{"at threshold is reliever", 5, Reliever},
		{"pure reliever", 0, Reliever},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawPitcherLine{Name: "P", G: 50, GS: tt.gs, IP: 100, SO: 100, WAR: 1.0}
			proj, ok := DerivePitcher(raw, cfg)
			require.True(t, ok)
			assert.Equal(t, tt.want, proj.Role)
		})
	}
}

func TestDerivePitcherWARFloor(t *testing.T) {
	cfg := league.DefaultPitching()

	_, ok := DerivePitcher(RawPitcherLine{Name: "Fringe", GS: 20, IP: 80, WAR: 0.1}, cfg)
	assert.False(t, ok)

	_, ok = DerivePitcher(RawPitcherLine{Name: "Rosterable", GS: 20, IP: 80, WAR: 0.2}, cfg)
	assert.True(t, ok)
}

func TestDerivePitcherStarterWeeklyRates(t *testing.T) {
	cfg := league.DefaultPitching()

	raw := RawPitcherLine{
		Name: "Ace", GS: 30, IP: 180, L: 9, QS: 18, SO: 210,
		ER: 60, H: 150, BB: 45, ERA: 3.00, WHIP: 1.083, WAR: 4.5,
	}
	proj, ok := DerivePitcher(raw, cfg)
	require.True(t, ok)
	require.Equal(t, Starter, proj.Role)

	// Weekly = per-start rate × 1.1 starts per week.
	assert.InDelta(t, 180.0/30*1.1, proj.Weekly.IP, 1e-9)
	assert.InDelta(t, 210.0/30*1.1, proj.Weekly.K, 1e-9)
	assert.InDelta(t, 18.0/30*1.1, proj.Weekly.QS, 1e-9)
	assert.InDelta(t, (150.0+45.0)/30*1.1, proj.Weekly.WH, 1e-9)

	// Starters never record saves or holds.
	assert.Zero(t, proj.Weekly.SV)
	assert.Zero(t, proj.Weekly.HLD)
}

func TestDerivePitcherRelieverWeeklyRates(t *testing.T) {
	cfg := league.DefaultPitching()

	raw := RawPitcherLine{
		Name: "Closer", G: 65, GS: 0, IP: 65, L: 3, SV: 35, HLD: 2, SO: 80,
		ER: 20, H: 45, BB: 20, ERA: 2.77, WHIP: 1.00, WAR: 1.8,
	}
	proj, ok := DerivePitcher(raw, cfg)
	require.True(t, ok)
	require.Equal(t, Reliever, proj.Role)

	assert.InDelta(t, 35.0/25, proj.Weekly.SV, 1e-9)
	assert.InDelta(t, 80.0/25, proj.Weekly.K, 1e-9)
	assert.InDelta(t, (45.0+20.0)/25, proj.Weekly.WH, 1e-9)

	// Relievers never record quality starts.
	assert.Zero(t, proj.Weekly.QS)
}

func TestDerivePitchersSortsByWAR(t *testing.T) {
	cfg := league.DefaultPitching()
	raws := []RawPitcherLine{
		{Name: "Mid", GS: 25, IP: 140, WAR: 2.0},
		{Name: "Ace", GS: 32, IP: 200, WAR: 5.5},
		{Name: "Cut", GS: 10, IP: 40, WAR: 0.0},
		{Name: "Pen", G: 60, IP: 60, WAR: 1.1},
	}

	projections := DerivePitchers(raws, cfg)
	require.Len(t, projections, 3)
	assert.Equal(t, "Ace", projections[0].Name)
	assert.Equal(t, "Mid", projections[1].Name)
	assert.Equal(t, "Pen", projections[2].Name)
}

func TestReplacementPitchingCombinesStaff(t *testing.T) {
	cfg := league.DefaultPitching()
	rep := ReplacementPitching(cfg)

	assert.InDelta(t, cfg.ReplacementSP.IP*7+cfg.ReplacementRP.IP*4, rep.IP, 1e-9)
	// Saves and holds come only from the bullpen; quality starts only from
	// the rotation.
	assert.InDelta(t, cfg.ReplacementRP.SV*4, rep.SV, 1e-9)
	assert.InDelta(t, cfg.ReplacementRP.HLD*4, rep.HLD, 1e-9)
	assert.InDelta(t, cfg.ReplacementSP.QS*7, rep.QS, 1e-9)

	assert.InDelta(t, rep.ER*9/rep.IP, ERA(rep), 1e-9)
	assert.InDelta(t, rep.WH/rep.IP, WHIP(rep), 1e-9)
}
