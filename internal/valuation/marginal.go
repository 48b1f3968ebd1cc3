package valuation

import "github.com/skrey/draftbot/internal/models"

// MarginalValue returns the change in total expected wins from adding the
// candidate to the roster, i.e. from upgrading one replacement slot to the
// candidate. A full roster returns exactly 0: there is no slot to evaluate,
// which is distinct from the candidate being worthless.
//
// The hypothetical roster is a fresh slice; the caller's roster is never
// touched, so evaluations for different candidates against one snapshot are
// side-effect free.
func (m *Model) MarginalValue(roster []*models.Player, candidate *models.Player) float64 {
	if len(roster) >= m.settings.RosterSpots {
		return 0
	}
	baseline := m.ExpectedWins(roster).Total
	with := m.ExpectedWins(withCandidate(roster, candidate)).Total
	return with - baseline
}

// CategoryDelta is MarginalValue restricted to one category: the change in
// that category's win probability from adding the candidate.
func (m *Model) CategoryDelta(roster []*models.Player, candidate *models.Player, c models.Category) float64 {
	if len(roster) >= m.settings.RosterSpots {
		return 0
	}
	baseline := m.ExpectedWins(roster).ByCategory[c]
	with := m.ExpectedWins(withCandidate(roster, candidate)).ByCategory[c]
	return with - baseline
}

func withCandidate(roster []*models.Player, candidate *models.Player) []*models.Player {
	out := make([]*models.Player, 0, len(roster)+1)
	out = append(out, roster...)
	return append(out, candidate)
}
