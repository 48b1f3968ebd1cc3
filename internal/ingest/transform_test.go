package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrey/draftbot/internal/league"
)

func TestBuildHitterSheetDerivesCategories(t *testing.T) {
	settings := league.Default()

	raw := RawHitterLine{
		Name: "Derived", PA: 600, KPct: 0.20,
		Singles: 100, Doubles: 30, Triples: 4, HR: 25,
		R: 90, RBI: 85, SB: 15, OBP: 0.350,
	}

	sheet := BuildHitterSheet([]RawHitterLine{raw}, settings)
	require.Len(t, sheet, 1)
	line := sheet[0]

	// SO = K% · PA; TB = 1B + 2·2B + 3·3B + 4·HR.
	assert.Equal(t, 120, line.Stats.SO)
	assert.Equal(t, 100+60+12+100, line.Stats.TB)
	assert.Equal(t, 90, line.Stats.R)
	assert.Equal(t, 0.350, line.Stats.OBP)
}

func TestBuildHitterSheetZScores(t *testing.T) {
	settings := league.Default()

	raw := RawHitterLine{
		Name: "Scored", PA: 500, KPct: 0.25,
		Singles: 80, Doubles: 25, Triples: 2, HR: 20,
		R: 75, RBI: 70, SB: 10, OBP: 0.340,
	}

	sheet := BuildHitterSheet([]RawHitterLine{raw}, settings)
	require.Len(t, sheet, 1)
	line := sheet[0]

	assert.InDelta(t, 75.0/25/6.03, line.ZR, 1e-9)
	assert.InDelta(t, 20.0/25/2.93, line.ZHR, 1e-9)
	// Strikeouts count against the player.
	assert.InDelta(t, -(0.25*500.0)/25/7.45, line.ZSO, 1e-9)
	assert.Negative(t, line.ZSO)
	// OBP's edge over the league average is spread across roster slots.
	assert.InDelta(t, (0.340-0.32)/9/0.04, line.ZOBP, 1e-9)

	sum := line.ZR + line.ZHR + line.ZRBI + line.ZSB + line.ZSO + line.ZTB + line.ZOBP
	assert.InDelta(t, sum, line.ZTotal, 1e-9)
}

func TestBuildHitterSheetSortsByZTotal(t *testing.T) {
	settings := league.Default()

	raws := []RawHitterLine{
		{Name: "Modest", PA: 500, KPct: 0.25, Singles: 70, Doubles: 20, HR: 10, R: 55, RBI: 50, SB: 5, OBP: 0.310},
		{Name: "Star", PA: 650, KPct: 0.15, Singles: 110, Doubles: 35, Triples: 5, HR: 35, R: 110, RBI: 100, SB: 25, OBP: 0.400},
	}

	sheet := BuildHitterSheet(raws, settings)
	require.Len(t, sheet, 2)
	assert.Equal(t, "Star", sheet[0].Name)
	assert.Greater(t, sheet[0].ZTotal, sheet[1].ZTotal)
}

func TestSheetRoundTrip(t *testing.T) {
	settings := league.Default()
	raws := []RawHitterLine{
		{Name: "Round Trip", PA: 600, KPct: 0.20, Singles: 100, Doubles: 30, Triples: 4, HR: 25, R: 90, RBI: 85, SB: 15, OBP: 0.350},
	}
	sheet := BuildHitterSheet(raws, settings)

	var buf bytes.Buffer
	require.NoError(t, WriteHitterSheet(&buf, sheet))

	players, err := ReadHitters(&buf, 0, settings.Weeks)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Round Trip", players[0].Name)
	assert.Equal(t, sheet[0].Stats.TB, players[0].Stats.TB)
	assert.Equal(t, sheet[0].Stats.SO, players[0].Stats.SO)
}

func TestReadRawHittersSkipsBadRows(t *testing.T) {
	csvData := "Name,PA,K%,1B,2B,3B,HR,R,RBI,SB,OBP\n" +
		"Good,600,0.20,100,30,4,25,90,85,15,0.350\n" +
		"Bad,600,oops,100,30,4,25,90,85,15,0.350\n"

	raws, err := ReadRawHitters(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Good", raws[0].Name)
}

func TestNormalizePAScalesCountingStats(t *testing.T) {
	raws := []RawHitterLine{
		{Name: "Scaled", PA: 500, KPct: 0.20, Singles: 80, Doubles: 20, Triples: 2, HR: 20, R: 70, RBI: 65, SB: 10, OBP: 0.340},
		{Name: "Missing", PA: 400, KPct: 0.22, Singles: 60, HR: 10, R: 50, RBI: 45, SB: 5, OBP: 0.320},
	}
	targets := map[string]float64{"Scaled": 600}

	out := NormalizePA(raws, targets)
	require.Len(t, out, 1)
	got := out[0]

	assert.Equal(t, 600.0, got.PA)
	scale := 600.0 / 500.0
	assert.InDelta(t, 80*scale, got.Singles, 1e-9)
	assert.InDelta(t, 20*scale, got.HR, 1e-9)
	assert.InDelta(t, 70*scale, got.R, 1e-9)
	// Rate stats stay put.
	assert.Equal(t, 0.340, got.OBP)
	assert.Equal(t, 0.20, got.KPct)
}

func TestReadTargetPAFiltersByMinimum(t *testing.T) {
	csvData := "Name,PA\nRegular,550\nPartTimer,200\n"

	targets, err := ReadTargetPA(strings.NewReader(csvData), 300)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Regular": 550}, targets)
}
