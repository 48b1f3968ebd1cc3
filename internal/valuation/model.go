// Package valuation converts weekly projections into expected category wins
// against a league-average opponent and prices individual players by the
// marginal wins they add to a partially filled roster.
package valuation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/skrey/draftbot/internal/league"
	"github.com/skrey/draftbot/internal/models"
)

// WinProbability returns the probability that a team projecting myWeekly in
// a category beats a team projecting oppWeekly in one weekly head-to-head
// matchup. Both totals are modeled as independent normals with the same
// standard deviation, so P(mine > opp) = Φ((myWeekly-oppWeekly)/(sd·√2)).
// For lower-is-better categories the comparison direction flips.
func WinProbability(myWeekly, oppWeekly, sd float64, lowerIsBetter bool) float64 {
	diff := myWeekly - oppWeekly
	if lowerIsBetter {
		diff = -diff
	}
	return distuv.UnitNormal.CDF(diff / (sd * math.Sqrt2))
}

// Wins holds a team's per-category win probabilities and their sum. Total
// treats the categories as independent; that is the league's defined scoring
// heuristic, not a real joint probability.
type Wins struct {
	ByCategory map[models.Category]float64
	Total      float64
}

// Model projects rosters and prices players under one league configuration.
// It is stateless apart from the settings and the shared replacement player,
// so concurrent calls against the same roster snapshot are independent.
type Model struct {
	settings    league.Settings
	replacement *models.Player
}

// New validates the settings and builds the shared replacement player.
func New(settings league.Settings) (*Model, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	rep, err := models.NewReplacementPlayer(settings.Replacement, settings.Weeks)
	if err != nil {
		return nil, fmt.Errorf("valuation model: %w", err)
	}
	return &Model{settings: settings, replacement: rep}, nil
}

// Settings returns the league configuration the model was built with.
func (m *Model) Settings() league.Settings {
	return m.settings
}

// Replacement returns the shared replacement-level player.
func (m *Model) Replacement() *models.Player {
	return m.replacement
}

// ProjectTeam maps a roster to weekly category totals, filling every slot
// beyond the drafted players with replacement-level production. Counting
// stats sum; OBP is the simple mean across all roster slots, drafted or
// not. The unweighted OBP mean is the league's chosen model; it is not
// PA-weighted on purpose.
func (m *Model) ProjectTeam(roster []*models.Player) map[models.Category]float64 {
	fill := float64(m.settings.RosterSpots - len(roster))

	proj := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.CountingCategories {
		total := fill * m.replacement.Weekly(c)
		for _, p := range roster {
			total += p.Weekly(c)
		}
		proj[c] = total
	}

	obp := fill * m.replacement.Weekly(models.OnBasePct)
	for _, p := range roster {
		obp += p.Weekly(models.OnBasePct)
	}
	proj[models.OnBasePct] = obp / float64(m.settings.RosterSpots)

	return proj
}

// ExpectedWins scores a roster's weekly projection against the
// league-average opponent in every category.
func (m *Model) ExpectedWins(roster []*models.Player) Wins {
	proj := m.ProjectTeam(roster)

	wins := Wins{ByCategory: make(map[models.Category]float64, len(models.Categories))}
	for _, c := range models.Categories {
		p := WinProbability(proj[c], m.settings.AverageWeekly[c], m.settings.WeeklySD[c], m.settings.LowerIsBetter(c))
		wins.ByCategory[c] = p
		wins.Total += p
	}
	return wins
}
