package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"github.com/skrey/draftbot/internal/league"
	"github.com/skrey/draftbot/internal/models"
)

// RawHitterLine is one hitter from a raw projection export, before the
// fantasy categories are derived.
type RawHitterLine struct {
	Name    string
	PA      float64
	KPct    float64
	Singles float64
	Doubles float64
	Triples float64
	HR      float64
	R       float64
	RBI     float64
	SB      float64
	OBP     float64
}

// SheetLine is one row of the prepared draft sheet: derived category totals
// plus per-category weekly z-scores against the league standard deviations.
type SheetLine struct {
	Name   string
	Stats  models.PlayerStats
	ZR     float64
	ZHR    float64
	ZRBI   float64
	ZSO    float64
	ZTB    float64
	ZSB    float64
	ZOBP   float64
	ZTotal float64
}

// ReadRawHitters parses a raw projection export. Rows with missing or
// non-numeric fields are skipped with a log line.
func ReadRawHitters(r io.Reader) ([]RawHitterLine, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var out []RawHitterLine
	for _, row := range rows {
		line, err := parseRawHitter(row)
		if err != nil {
			slog.Warn("Skipping raw projection record", "error", err)
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func parseRawHitter(r row) (RawHitterLine, error) {
	var line RawHitterLine
	var err error
	if line.Name, err = r.str("Name"); err != nil {
		return RawHitterLine{}, err
	}
	for col, dst := range map[string]*float64{
		"PA": &line.PA, "K%": &line.KPct, "1B": &line.Singles, "2B": &line.Doubles,
		"3B": &line.Triples, "HR": &line.HR, "R": &line.R, "RBI": &line.RBI,
		"SB": &line.SB, "OBP": &line.OBP,
	} {
		if *dst, err = r.float(col); err != nil {
			return RawHitterLine{}, err
		}
	}
	return line, nil
}

// BuildHitterSheet derives the fantasy categories from raw projections and
// scores each hitter with weekly z-scores: strikeouts come from K%·PA,
// total bases from 1B+2·2B+3·3B+4·HR, counting z-scores are the weekly rate
// over the category's standard deviation (negated for strikeouts, where
// fewer is better), and OBP's z-score spreads the player's edge over the
// league average across all roster slots. The result is sorted by total
// z-score descending.
func BuildHitterSheet(raws []RawHitterLine, settings league.Settings) []SheetLine {
	weeks := float64(settings.Weeks)
	slots := float64(settings.RosterSpots)
	sd := settings.WeeklySD
	avgOBP := settings.AverageWeekly[models.OnBasePct]

	out := make([]SheetLine, 0, len(raws))
	for _, raw := range raws {
		so := raw.KPct * raw.PA
		tb := raw.Singles + 2*raw.Doubles + 3*raw.Triples + 4*raw.HR

		line := SheetLine{
			Name: raw.Name,
			Stats: models.PlayerStats{
				PA:  int(math.Round(raw.PA)),
				R:   int(math.Round(raw.R)),
				HR:  int(math.Round(raw.HR)),
				RBI: int(math.Round(raw.RBI)),
				SO:  int(math.Round(so)),
				TB:  int(math.Round(tb)),
				SB:  int(math.Round(raw.SB)),
				OBP: raw.OBP,
			},
			ZR:   raw.R / weeks / sd[models.Runs],
			ZHR:  raw.HR / weeks / sd[models.HomeRuns],
			ZRBI: raw.RBI / weeks / sd[models.RBI],
			ZSB:  raw.SB / weeks / sd[models.StolenBases],
			ZSO:  -(so / weeks / sd[models.Strikeouts]),
			ZTB:  tb / weeks / sd[models.TotalBases],
			ZOBP: (raw.OBP - avgOBP) / slots / sd[models.OnBasePct],
		}
		line.ZTotal = line.ZR + line.ZHR + line.ZRBI + line.ZSB + line.ZSO + line.ZTB + line.ZOBP
		out = append(out, line)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZTotal > out[j].ZTotal
	})
	return out
}

// WriteHitterSheet writes the draft sheet in the column layout LoadHitters
// reads back.
func WriteHitterSheet(w io.Writer, lines []SheetLine) error {
	cw := csv.NewWriter(w)
	header := []string{"Name", "PA", "R", "HR", "RBI", "SO", "TB", "SB", "OBP",
		"zR", "zHR", "zRBI", "zSO", "zTB", "zSB", "zOBP", "zTotal"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing sheet header: %w", err)
	}

	for _, l := range lines {
		record := []string{
			l.Name,
			strconv.Itoa(l.Stats.PA),
			strconv.Itoa(l.Stats.R),
			strconv.Itoa(l.Stats.HR),
			strconv.Itoa(l.Stats.RBI),
			strconv.Itoa(l.Stats.SO),
			strconv.Itoa(l.Stats.TB),
			strconv.Itoa(l.Stats.SB),
			strconv.FormatFloat(l.Stats.OBP, 'f', 3, 64),
			formatZ(l.ZR), formatZ(l.ZHR), formatZ(l.ZRBI), formatZ(l.ZSO),
			formatZ(l.ZTB), formatZ(l.ZSB), formatZ(l.ZOBP), formatZ(l.ZTotal),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing sheet row for %s: %w", l.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatZ(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
