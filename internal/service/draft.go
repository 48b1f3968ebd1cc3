// Package service renders draft state into the text reports shown by the
// interactive session and the Telegram front-end.
package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/skrey/draftbot/internal/draft"
	"github.com/skrey/draftbot/internal/models"
)

const (
	// DefaultTopN is how many ranked players `top` shows without an argument.
	DefaultTopN = 25
	// categoryNeedPool caps how many candidates (by overall marginal value)
	// the per-category report evaluates.
	categoryNeedPool = 50
	// categoryNeedShown is how many players each category lists.
	categoryNeedShown = 5
	// searchShown caps search output.
	searchShown = 10
)

// DraftService exposes draft actions and formatted reports over one draft
// session's state. The draft state itself assumes a single actor; when the
// Telegram front-end or the scheduler runs alongside the terminal session,
// the mutex here is that single-writer discipline: draft and take are
// check-then-act and must not interleave.
type DraftService struct {
	mu    sync.Mutex
	state *draft.State
}

// NewDraftService wraps draft state for rendering.
func NewDraftService(state *draft.State) *DraftService {
	return &DraftService{state: state}
}

// Draft claims a player for the user's roster.
func (s *DraftService) Draft(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.Draft(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Drafted %s (%d/%d roster spots filled)",
		p.Name, s.state.Roster().Len(), s.state.Roster().Capacity()), nil
}

// Take marks a player as drafted by an opponent.
func (s *DraftService) Take(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.Take(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Marked %s as drafted by opponent", p.Name), nil
}

// TopAvailable renders the top n available players by marginal value.
func (s *DraftService) TopAvailable(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		n = DefaultTopN
	}
	ranked := s.state.RankAvailable()
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	var sb strings.Builder
	rule := strings.Repeat("=", 90)
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("TOP %d AVAILABLE PLAYERS (by Marginal Value)\n", n))
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("%-5s %-25s %8s %7s %4s %4s %4s %4s %4s %4s %5s\n",
		"Rank", "Name", "MargVal", "zTotal", "R", "HR", "RBI", "SO", "TB", "SB", "OBP"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	for i, r := range ranked {
		st := r.Player.Stats
		sb.WriteString(fmt.Sprintf("%-5d %-25s %8.4f %7.2f %4d %4d %4d %4d %4d %4d %5.3f\n",
			i+1, r.Player.Name, r.MarginalValue, r.Player.ZTotal,
			st.R, st.HR, st.RBI, st.SO, st.TB, st.SB, st.OBP))
	}
	sb.WriteString(rule)
	return sb.String()
}

// RosterSummary renders the user's roster with weekly projections, the
// league-average comparison, and per-category win probabilities.
func (s *DraftService) RosterSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := s.state.Roster()
	model := s.state.Model()
	settings := model.Settings()
	players := roster.Players()
	proj := model.ProjectTeam(players)
	wins := model.ExpectedWins(players)

	var sb strings.Builder
	rule := strings.Repeat("=", 70)
	sb.WriteString(rule + "\n")
	sb.WriteString("YOUR ROSTER\n")
	sb.WriteString(rule + "\n")

	if len(players) == 0 {
		sb.WriteString(fmt.Sprintf("  (empty - %d replacement-level players)\n", roster.Capacity()))
	} else {
		for i, p := range players {
			sb.WriteString(fmt.Sprintf("  %d. %-25s (zTotal: %.2f)\n", i+1, p.Name, p.ZTotal))
		}
		if roster.Remaining() > 0 {
			sb.WriteString(fmt.Sprintf("  ... %d replacement-level slots remaining\n", roster.Remaining()))
		}
	}

	sb.WriteString("\nWeekly Projections vs League Avg:\n")
	sb.WriteString(strings.Repeat("-", 70) + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %10s %10s %10s\n", "Cat", "Your Team", "Lg Avg", "P(Win)"))
	sb.WriteString(strings.Repeat("-", 70) + "\n")

	for _, c := range models.Categories {
		mine := proj[c]
		avg := settings.AverageWeekly[c]
		p := wins.ByCategory[c]
		if c.IsRate() {
			sb.WriteString(fmt.Sprintf("%-6s %10.3f %10.3f %9.1f%%\n", c, mine, avg, p*100))
		} else {
			sb.WriteString(fmt.Sprintf("%-6s %10.1f %10.1f %9.1f%%\n", c, mine, avg, p*100))
		}
	}

	sb.WriteString(strings.Repeat("-", 70) + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %10s %10s %10.2f expected wins/week\n", "TOTAL", "", "", wins.Total))
	sb.WriteString(rule)
	return sb.String()
}

// CategoryNeeds renders, per category, the players who most improve that
// category's win probability.
func (s *DraftService) CategoryNeeds() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	model := s.state.Model()
	wins := model.ExpectedWins(s.state.Roster().Players())

	var sb strings.Builder
	rule := strings.Repeat("=", 70)
	sb.WriteString(rule + "\n")
	sb.WriteString("TOP PLAYERS BY CATEGORY NEED\n")
	sb.WriteString(rule + "\n")

	for _, c := range models.Categories {
		sb.WriteString(fmt.Sprintf("\n%s (current P(win): %.1f%%):\n", c, wins.ByCategory[c]*100))
		need := s.state.CategoryNeed(c, categoryNeedPool)
		if len(need) > categoryNeedShown {
			need = need[:categoryNeedShown]
		}
		for _, v := range need {
			sb.WriteString(fmt.Sprintf("  %-25s %+.2f%%\n", v.Player.Name, v.Delta*100))
		}
	}
	return sb.String()
}

// Search renders available players matching the term, with marginal values.
func (s *DraftService) Search(term string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := s.state.Search(term)
	if len(matches) == 0 {
		return fmt.Sprintf("No available players matching %q", term)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d matches:\n", len(matches)))
	if len(matches) > searchShown {
		matches = matches[:searchShown]
	}
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("  %-25s MargVal: %.4f, zTotal: %.2f\n",
			m.Player.Name, m.MarginalValue, m.Player.ZTotal))
	}
	return strings.TrimRight(sb.String(), "\n")
}
