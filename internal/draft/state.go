// Package draft tracks pool availability and the user's roster through a
// live draft and re-ranks the remaining players after every pick.
package draft

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/skrey/draftbot/internal/models"
	"github.com/skrey/draftbot/internal/valuation"
)

// suggestionThreshold is the minimum name similarity for a "did you mean"
// hint on a failed lookup.
const suggestionThreshold = 0.7

// Status records who claimed a drafted player.
type Status int

const (
	DraftedByMe Status = iota + 1
	DraftedByOpponent
)

// RankedPlayer pairs a pool player with its current marginal value.
type RankedPlayer struct {
	Player        *models.Player
	MarginalValue float64
}

// CategoryValue pairs a pool player with its win-probability delta in one
// category.
type CategoryValue struct {
	Player *models.Player
	Delta  float64
}

// State is the single-session draft state: the fixed pool in sheet order,
// the set of claimed names, and the user's roster. All valuation goes
// through the model, which never mutates the roster, so State itself is the
// only mutable piece and is driven by one actor at a time.
type State struct {
	model   *valuation.Model
	pool    []*models.Player
	drafted map[string]Status // keyed by lowercased name
	roster  *Roster
}

// NewState builds draft state over a pool. Pool order is preserved and used
// as the deterministic tie-break when ranking. Duplicate names would make
// name-keyed drafting ambiguous and are rejected.
func NewState(pool []*models.Player, model *valuation.Model) (*State, error) {
	seen := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate player name in pool: %s", p.Name)
		}
		seen[key] = struct{}{}
	}
	return &State{
		model:   model,
		pool:    pool,
		drafted: make(map[string]Status),
		roster:  NewRoster(model.Settings().RosterSpots),
	}, nil
}

// Roster returns the user's roster.
func (s *State) Roster() *Roster {
	return s.roster
}

// Model returns the valuation model the state ranks with.
func (s *State) Model() *valuation.Model {
	return s.model
}

// PoolSize returns the total number of players loaded, drafted or not.
func (s *State) PoolSize() int {
	return len(s.pool)
}

// Draft claims a player for the user's roster. The lookup is a
// case-insensitive exact name match. Nothing changes on failure: a full
// roster leaves the name available for a later take.
func (s *State) Draft(name string) (*models.Player, error) {
	p, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	if err := s.roster.Add(p); err != nil {
		return nil, err
	}
	s.drafted[strings.ToLower(p.Name)] = DraftedByMe
	return p, nil
}

// Take marks a player as claimed by an opponent, removing it from the
// available pool without touching the roster.
func (s *State) Take(name string) (*models.Player, error) {
	p, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	s.drafted[strings.ToLower(p.Name)] = DraftedByOpponent
	return p, nil
}

// lookup resolves a name against the pool and fails if the player has
// already been claimed by either side.
func (s *State) lookup(name string) (*models.Player, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range s.pool {
		if strings.ToLower(p.Name) != key {
			continue
		}
		if _, gone := s.drafted[strings.ToLower(p.Name)]; gone {
			return nil, &AlreadyDraftedError{Name: p.Name}
		}
		return p, nil
	}
	return nil, &NotFoundError{Name: name, Suggestion: s.closestName(key)}
}

// closestName finds the most similar pool name, claimed or not, using the
// same normalized Levenshtein similarity the rest of the tooling uses for
// player matching.
func (s *State) closestName(name string) string {
	best := ""
	bestSimilarity := suggestionThreshold
	for _, p := range s.pool {
		candidate := strings.ToLower(p.Name)
		distance := fuzzy.LevenshteinDistance(name, candidate)
		maxLen := len(name)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = p.Name
		}
	}
	return best
}

// Available returns the undrafted players in pool order.
func (s *State) Available() []*models.Player {
	out := make([]*models.Player, 0, len(s.pool)-len(s.drafted))
	for _, p := range s.pool {
		if _, gone := s.drafted[strings.ToLower(p.Name)]; !gone {
			out = append(out, p)
		}
	}
	return out
}

// RankAvailable prices every available player against the current roster
// and sorts descending by marginal value. It recomputes from scratch each
// call; ties keep pool order so repeated calls with unchanged state return
// an identical ranking.
func (s *State) RankAvailable() []RankedPlayer {
	roster := s.roster.Players()
	available := s.Available()

	ranked := make([]RankedPlayer, 0, len(available))
	for _, p := range available {
		ranked = append(ranked, RankedPlayer{
			Player:        p,
			MarginalValue: s.model.MarginalValue(roster, p),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MarginalValue > ranked[j].MarginalValue
	})
	return ranked
}

// CategoryNeed ranks candidates by how much they move one category's win
// probability. Only the top limit players by overall marginal value are
// evaluated; 0 means no limit.
func (s *State) CategoryNeed(c models.Category, limit int) []CategoryValue {
	roster := s.roster.Players()
	ranked := s.RankAvailable()
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	values := make([]CategoryValue, 0, len(ranked))
	for _, r := range ranked {
		values = append(values, CategoryValue{
			Player: r.Player,
			Delta:  s.model.CategoryDelta(roster, r.Player, c),
		})
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Delta > values[j].Delta
	})
	return values
}

// Search returns available players whose names contain the term or fuzzily
// match it, in pool order.
func (s *State) Search(term string) []RankedPlayer {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	roster := s.roster.Players()

	var matches []RankedPlayer
	for _, p := range s.Available() {
		name := strings.ToLower(p.Name)
		if !strings.Contains(name, needle) && !fuzzy.MatchNormalizedFold(needle, name) {
			continue
		}
		matches = append(matches, RankedPlayer{
			Player:        p,
			MarginalValue: s.model.MarginalValue(roster, p),
		})
	}
	return matches
}
