package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/skrey/draftbot/internal/valuation"
)

// ReadRawPitchers parses a raw pitching projection export. Rows with
// missing or non-numeric fields are skipped with a log line.
func ReadRawPitchers(r io.Reader) ([]valuation.RawPitcherLine, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var out []valuation.RawPitcherLine
	for _, row := range rows {
		line, err := parseRawPitcher(row)
		if err != nil {
			slog.Warn("Skipping raw pitching record", "error", err)
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func parseRawPitcher(r row) (valuation.RawPitcherLine, error) {
	var line valuation.RawPitcherLine
	var err error
	if line.Name, err = r.str("Name"); err != nil {
		return valuation.RawPitcherLine{}, err
	}
	for col, dst := range map[string]*float64{
		"G": &line.G, "GS": &line.GS, "IP": &line.IP, "L": &line.L,
		"SV": &line.SV, "HLD": &line.HLD, "QS": &line.QS, "SO": &line.SO,
		"ER": &line.ER, "H": &line.H, "BB": &line.BB,
		"ERA": &line.ERA, "WHIP": &line.WHIP, "WAR": &line.WAR,
	} {
		if *dst, err = r.float(col); err != nil {
			return valuation.RawPitcherLine{}, err
		}
	}
	return line, nil
}

// WritePitcherSheet writes the derived pitcher sheet, one row per pitcher
// with weekly rates and the rate stats used for ERA/WHIP context.
func WritePitcherSheet(w io.Writer, projections []valuation.PitcherProjection) error {
	cw := csv.NewWriter(w)
	header := []string{"Name", "Type", "GS", "G", "IP", "IP_wk", "L_wk", "SV_wk",
		"HLD_wk", "K_wk", "QS_wk", "ER_wk", "WH_wk", "ERA", "WHIP", "WAR"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing pitcher sheet header: %w", err)
	}

	for _, p := range projections {
		record := []string{
			p.Name,
			string(p.Role),
			formatStat(p.GS, 1),
			formatStat(p.G, 1),
			formatStat(p.IP, 1),
			formatStat(p.Weekly.IP, 2),
			formatStat(p.Weekly.L, 3),
			formatStat(p.Weekly.SV, 3),
			formatStat(p.Weekly.HLD, 3),
			formatStat(p.Weekly.K, 2),
			formatStat(p.Weekly.QS, 3),
			formatStat(p.Weekly.ER, 3),
			formatStat(p.Weekly.WH, 3),
			formatStat(p.ERA, 3),
			formatStat(p.WHIP, 3),
			formatStat(p.WAR, 2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing pitcher sheet row for %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatStat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
