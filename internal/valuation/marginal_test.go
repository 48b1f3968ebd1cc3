package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrey/draftbot/internal/models"
)

func TestMarginalValueFullRosterIsZero(t *testing.T) {
	s := syntheticSettings(2)
	m, err := New(s)
	require.NoError(t, err)

	avg := models.PlayerStats{PA: 650, R: 30, HR: 8, RBI: 28, SO: 50, TB: 90, SB: 5, OBP: 0.32}
	roster := []*models.Player{
		mustPlayer(t, "A", avg, s.Weeks),
		mustPlayer(t, "B", avg, s.Weeks),
	}
	candidate := mustPlayer(t, "Star", models.PlayerStats{PA: 700, R: 120, HR: 45, RBI: 120, SO: 20, TB: 380, SB: 40, OBP: 0.450}, s.Weeks)

	assert.Zero(t, m.MarginalValue(roster, candidate))
	assert.Zero(t, m.CategoryDelta(roster, candidate, models.Runs))
}

func TestMarginalValueDoesNotMutateRoster(t *testing.T) {
	s := syntheticSettings(3)
	m, err := New(s)
	require.NoError(t, err)

	first := mustPlayer(t, "First", models.PlayerStats{PA: 650, R: 30, HR: 8, RBI: 28, SO: 50, TB: 90, SB: 5, OBP: 0.32}, s.Weeks)
	roster := []*models.Player{first}
	candidate := mustPlayer(t, "Candidate", models.PlayerStats{PA: 700, R: 50, HR: 20, RBI: 60, SO: 40, TB: 150, SB: 12, OBP: 0.370}, s.Weeks)

	before := m.ExpectedWins(roster).Total
	m.MarginalValue(roster, candidate)
	m.CategoryDelta(roster, candidate, models.OnBasePct)

	require.Len(t, roster, 1)
	assert.Same(t, first, roster[0])
	assert.InDelta(t, before, m.ExpectedWins(roster).Total, 1e-12)
}

func TestMarginalValuePrefersMoreProduction(t *testing.T) {
	// One roster spot, one-week season: an enormous runs total must beat a
	// player sitting exactly at league average in everything.
	s := syntheticSettings(1)
	m, err := New(s)
	require.NoError(t, err)

	outlier := mustPlayer(t, "Outlier", models.PlayerStats{PA: 650, R: 1000, HR: 8, RBI: 28, SO: 50, TB: 90, SB: 5, OBP: 0.32}, s.Weeks)
	average := mustPlayer(t, "Average", models.PlayerStats{PA: 650, R: 30, HR: 8, RBI: 28, SO: 50, TB: 90, SB: 5, OBP: 0.32}, s.Weeks)

	mvOutlier := m.MarginalValue(nil, outlier)
	mvAverage := m.MarginalValue(nil, average)
	assert.Greater(t, mvOutlier, mvAverage)
}

func TestCategoryDeltaIsolatesOneCategory(t *testing.T) {
	s := syntheticSettings(2)
	m, err := New(s)
	require.NoError(t, err)

	// Identical to replacement except stolen bases.
	speedster := mustPlayer(t, "Speedster", models.PlayerStats{
		PA: 600, R: 20, HR: 5, RBI: 20, SO: 60, TB: 70, SB: 40, OBP: 0.30,
	}, s.Weeks)

	assert.Greater(t, m.CategoryDelta(nil, speedster, models.StolenBases), 0.0)
	assert.InDelta(t, 0, m.CategoryDelta(nil, speedster, models.HomeRuns), 1e-12)
	assert.InDelta(t, 0, m.CategoryDelta(nil, speedster, models.Strikeouts), 1e-12)
}

func TestMarginalValueMatchesExpectedWinsDiff(t *testing.T) {
	s := syntheticSettings(4)
	m, err := New(s)
	require.NoError(t, err)

	candidate := mustPlayer(t, "Candidate", models.PlayerStats{PA: 700, R: 50, HR: 20, RBI: 60, SO: 40, TB: 150, SB: 12, OBP: 0.370}, s.Weeks)

	want := m.ExpectedWins([]*models.Player{candidate}).Total - m.ExpectedWins(nil).Total
	assert.InDelta(t, want, m.MarginalValue(nil, candidate), 1e-12)
}
