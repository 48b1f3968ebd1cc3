package draft

import "github.com/skrey/draftbot/internal/models"

// Roster is the user's drafted hitters, capped at the league's roster size.
// Slots beyond the drafted players are implicitly replacement-level; they
// are never materialized, only counted by the valuation model.
type Roster struct {
	capacity int
	players  []*models.Player
}

// NewRoster returns an empty roster with the given capacity.
func NewRoster(capacity int) *Roster {
	return &Roster{capacity: capacity}
}

// Add appends a player, failing with ErrRosterFull at capacity. The roster
// is unchanged on failure.
func (r *Roster) Add(p *models.Player) error {
	if len(r.players) >= r.capacity {
		return ErrRosterFull
	}
	r.players = append(r.players, p)
	return nil
}

// Remove drops the named player and reports whether it was present.
func (r *Roster) Remove(name string) (*models.Player, bool) {
	for i, p := range r.players {
		if p.Name == name {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return p, true
		}
	}
	return nil, false
}

// Players returns a copy of the drafted players in draft order.
func (r *Roster) Players() []*models.Player {
	out := make([]*models.Player, len(r.players))
	copy(out, r.players)
	return out
}

// Len returns the number of drafted players.
func (r *Roster) Len() int {
	return len(r.players)
}

// Capacity returns the roster size limit.
func (r *Roster) Capacity() int {
	return r.capacity
}

// Remaining returns the count of implicit replacement slots.
func (r *Roster) Remaining() int {
	return r.capacity - len(r.players)
}

// Full reports whether every slot holds a drafted player.
func (r *Roster) Full() bool {
	return len(r.players) >= r.capacity
}
