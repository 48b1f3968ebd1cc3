package models

import "fmt"

// ReplacementName is the synthetic name used for replacement-level fill.
const ReplacementName = "REPLACEMENT"

// PlayerStats holds a hitter's projected season totals plus OBP.
type PlayerStats struct {
	PA  int
	R   int
	HR  int
	RBI int
	SO  int
	TB  int
	SB  int
	OBP float64
}

// Player is an immutable projection record for one hitter. Weekly rates are
// derived once at construction and never change afterwards.
type Player struct {
	Name   string
	Stats  PlayerStats
	ZTotal float64

	weekly map[Category]float64
}

// NewPlayer validates the stat line and precomputes per-week rates. Counting
// stats divide by the season length in weeks; OBP passes through unchanged.
func NewPlayer(name string, stats PlayerStats, zTotal float64, weeks int) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name is empty")
	}
	if weeks <= 0 {
		return nil, fmt.Errorf("season weeks must be positive, got %d", weeks)
	}
	for stat, v := range map[string]int{
		"PA": stats.PA, "R": stats.R, "HR": stats.HR, "RBI": stats.RBI,
		"SO": stats.SO, "TB": stats.TB, "SB": stats.SB,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%s: negative %s (%d)", name, stat, v)
		}
	}
	if stats.OBP < 0 || stats.OBP > 1 {
		return nil, fmt.Errorf("%s: OBP %.3f outside [0,1]", name, stats.OBP)
	}

	w := float64(weeks)
	return &Player{
		Name:   name,
		Stats:  stats,
		ZTotal: zTotal,
		weekly: map[Category]float64{
			Runs:        float64(stats.R) / w,
			HomeRuns:    float64(stats.HR) / w,
			RBI:         float64(stats.RBI) / w,
			StolenBases: float64(stats.SB) / w,
			Strikeouts:  float64(stats.SO) / w,
			TotalBases:  float64(stats.TB) / w,
			OnBasePct:   stats.OBP,
		},
	}, nil
}

// NewReplacementPlayer builds the shared replacement-level player from a
// fixed stat table. The table is trusted configuration, so a bad value is a
// programming or config error rather than a recoverable one.
func NewReplacementPlayer(stats PlayerStats, weeks int) (*Player, error) {
	p, err := NewPlayer(ReplacementName, stats, 0, weeks)
	if err != nil {
		return nil, fmt.Errorf("building replacement player: %w", err)
	}
	return p, nil
}

// Weekly returns the player's projected per-week value for a category.
func (p *Player) Weekly(c Category) float64 {
	return p.weekly[c]
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s)", p.Name)
}
