package league

import "fmt"

// PitchingRates is a weekly pitching stat line. WH is walks plus hits, the
// numerator of WHIP.
type PitchingRates struct {
	IP  float64
	L   float64
	SV  float64
	HLD float64
	K   float64
	QS  float64
	ER  float64
	WH  float64
}

// PitchingSettings drives the non-core pitcher valuation: a team streams
// StartsPerWeek total starts, each drafted starter covering SPContribution
// of them, and fills RPSlots bullpen slots.
type PitchingSettings struct {
	Weeks          int
	StartsPerWeek  float64
	SPContribution float64
	RPSlots        int
	// MinWAR filters out pitchers below rosterable value.
	MinWAR float64
	// SPGamesStarted is the games-started threshold above which a pitcher
	// is treated as a starter.
	SPGamesStarted float64
	// ReplacementSP is per-start; ReplacementRP is per-week per slot.
	ReplacementSP PitchingRates
	ReplacementRP PitchingRates
	AverageERA    float64
	AverageWHIP   float64
}

// DefaultPitching returns the 2026 pitching configuration. Replacement
// rates were measured from fringe starters and middle relievers in the
// 2024 data set.
func DefaultPitching() PitchingSettings {
	return PitchingSettings{
		Weeks:          25,
		StartsPerWeek:  7,
		SPContribution: 1.1,
		RPSlots:        4,
		MinWAR:         0.2,
		SPGamesStarted: 5,
		ReplacementSP: PitchingRates{
			IP: 5.756,
			L:  0.3379,
			QS: 0.3797,
			K:  5.187,
			ER: 2.688,
			WH: 5.449 + 1.998,
		},
		ReplacementRP: PitchingRates{
			IP:  2.480,
			L:   0.1180,
			SV:  0.1208,
			HLD: 0.8484,
			K:   2.693,
			ER:  0.963,
			WH:  2.852,
		},
		AverageERA:  3.7929,
		AverageWHIP: 1.2048,
	}
}

// Validate rejects configurations the pitching derivation cannot use.
func (p PitchingSettings) Validate() error {
	if p.Weeks <= 0 {
		return fmt.Errorf("pitching settings: weeks must be positive, got %d", p.Weeks)
	}
	if p.SPContribution <= 0 {
		return fmt.Errorf("pitching settings: SP contribution must be positive, got %g", p.SPContribution)
	}
	if p.StartsPerWeek <= 0 {
		return fmt.Errorf("pitching settings: starts per week must be positive, got %g", p.StartsPerWeek)
	}
	if p.RPSlots <= 0 {
		return fmt.Errorf("pitching settings: RP slots must be positive, got %d", p.RPSlots)
	}
	return nil
}
