package ingest

import (
	"io"
	"log/slog"
)

// ReadTargetPA loads a second projection source's plate-appearance totals,
// keyed by player name. Players under minPA are left out, which also drops
// them from the normalized output.
func ReadTargetPA(r io.Reader, minPA float64) (map[string]float64, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	targets := make(map[string]float64)
	for _, row := range rows {
		name, err := row.str("Name")
		if err != nil {
			slog.Warn("Skipping playing-time record", "error", err)
			continue
		}
		pa, err := row.float("PA")
		if err != nil {
			slog.Warn("Skipping playing-time record", "error", err)
			continue
		}
		if pa >= minPA {
			targets[name] = pa
		}
	}
	return targets, nil
}

// NormalizePA rescales each projection's counting stats so its playing time
// matches the target source, isolating rate-skill disagreement between
// projection systems from playing-time disagreement. Rate stats are left
// alone. Players absent from the target set (or with zero projected PA) are
// dropped.
func NormalizePA(raws []RawHitterLine, targets map[string]float64) []RawHitterLine {
	out := make([]RawHitterLine, 0, len(raws))
	for _, raw := range raws {
		target, ok := targets[raw.Name]
		if !ok || raw.PA <= 0 {
			continue
		}
		scale := target / raw.PA
		raw.PA = target
		raw.Singles *= scale
		raw.Doubles *= scale
		raw.Triples *= scale
		raw.HR *= scale
		raw.R *= scale
		raw.RBI *= scale
		raw.SB *= scale
		out = append(out, raw)
	}
	return out
}
