package league

import (
	"fmt"

	"github.com/skrey/draftbot/internal/models"
)

// Settings is the immutable per-league configuration the valuation model is
// built from. Tables are keyed by category and must cover every scored
// category; Validate rejects anything else at startup.
type Settings struct {
	// Weeks is the number of scoring periods in a season.
	Weeks int
	// RosterSpots is the number of hitter slots on a team.
	RosterSpots int
	// WeeklySD is the per-category standard deviation of one team's weekly
	// total, measured from historical league data.
	WeeklySD map[models.Category]float64
	// AverageWeekly is the league-average weekly total per category; the
	// modeled opponent every matchup is played against.
	AverageWeekly map[models.Category]float64
	// Replacement is the season stat line of a worst-case rosterable hitter.
	Replacement models.PlayerStats
	// Negative marks categories where the lower weekly total wins.
	Negative map[models.Category]bool
}

// Default returns the 2026 league configuration: 2024-season standard
// deviations and averages, replacement level from players ranked 145-160
// scaled by 1.263 so a full replacement roster lands near a 45% SO win rate.
func Default() Settings {
	return Settings{
		Weeks:       25,
		RosterSpots: 9,
		WeeklySD: map[models.Category]float64{
			models.Runs:        6.03,
			models.HomeRuns:    2.93,
			models.RBI:         6.72,
			models.StolenBases: 2.57,
			models.Strikeouts:  7.45,
			models.TotalBases:  15.94,
			models.OnBasePct:   0.04,
		},
		AverageWeekly: map[models.Category]float64{
			models.Runs:        28.96,
			models.HomeRuns:    8.02,
			models.RBI:         27.86,
			models.StolenBases: 4.74,
			models.Strikeouts:  50.11,
			models.TotalBases:  88.87,
			models.OnBasePct:   0.32,
		},
		Replacement: models.PlayerStats{
			PA:  638,
			R:   77,
			HR:  21,
			RBI: 76,
			SO:  143,
			TB:  235,
			SB:  11,
			OBP: 0.312,
		},
		Negative: map[models.Category]bool{
			models.Strikeouts: true,
		},
	}
}

// Validate checks the settings are usable. Any failure here is fatal: the
// win-probability model divides by the standard deviations, so a zero or
// missing entry must abort startup rather than default silently.
func (s Settings) Validate() error {
	if s.Weeks <= 0 {
		return fmt.Errorf("league settings: weeks must be positive, got %d", s.Weeks)
	}
	if s.RosterSpots <= 0 {
		return fmt.Errorf("league settings: roster spots must be positive, got %d", s.RosterSpots)
	}
	for _, c := range models.Categories {
		sd, ok := s.WeeklySD[c]
		if !ok {
			return fmt.Errorf("league settings: missing weekly standard deviation for %s", c)
		}
		if sd <= 0 {
			return fmt.Errorf("league settings: weekly standard deviation for %s must be positive, got %g", c, sd)
		}
		if _, ok := s.AverageWeekly[c]; !ok {
			return fmt.Errorf("league settings: missing league average for %s", c)
		}
	}
	return nil
}

// LowerIsBetter reports whether a smaller weekly total wins the category.
func (s Settings) LowerIsBetter(c models.Category) bool {
	return s.Negative[c]
}
