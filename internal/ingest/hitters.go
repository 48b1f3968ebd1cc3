package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/skrey/draftbot/internal/models"
)

// LoadHitters reads a prepared draft sheet into the player pool, keeping
// sheet order. At most limit players are loaded (0 means no limit). Rows
// with missing or non-numeric fields are skipped with a log line; a record
// parse error is local to its record, never fatal to the load.
func LoadHitters(path string, limit, weeks int) ([]*models.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hitters file: %w", err)
	}
	defer f.Close()

	players, err := ReadHitters(f, limit, weeks)
	if err != nil {
		return nil, fmt.Errorf("reading hitters file %s: %w", path, err)
	}
	return players, nil
}

// ReadHitters parses draft-sheet rows from r. See LoadHitters.
func ReadHitters(r io.Reader, limit, weeks int) ([]*models.Player, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var players []*models.Player
	for _, row := range rows {
		if limit > 0 && len(players) >= limit {
			break
		}
		p, err := parseHitter(row, weeks)
		if err != nil {
			slog.Warn("Skipping hitter record", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, nil
}

func parseHitter(r row, weeks int) (*models.Player, error) {
	name, err := r.str("Name")
	if err != nil {
		return nil, err
	}

	var stats models.PlayerStats
	for col, dst := range map[string]*int{
		"PA": &stats.PA, "R": &stats.R, "HR": &stats.HR, "RBI": &stats.RBI,
		"SO": &stats.SO, "TB": &stats.TB, "SB": &stats.SB,
	} {
		v, err := r.int(col)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	if stats.OBP, err = r.float("OBP"); err != nil {
		return nil, err
	}
	zTotal, err := r.float("zTotal")
	if err != nil {
		return nil, err
	}

	return models.NewPlayer(name, stats, zTotal, weeks)
}
