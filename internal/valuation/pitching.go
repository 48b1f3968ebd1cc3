package valuation

import (
	"sort"

	"github.com/skrey/draftbot/internal/league"
)

// PitcherRole distinguishes starters from relievers; the two roles use
// different weekly-rate derivations.
type PitcherRole string

const (
	Starter  PitcherRole = "SP"
	Reliever PitcherRole = "RP"
)

// RawPitcherLine is a pitcher's projected season totals as read from the
// projection source.
type RawPitcherLine struct {
	Name string
	G    float64
	GS   float64
	IP   float64
	L    float64
	SV   float64
	HLD  float64
	QS   float64
	SO   float64
	ER   float64
	H    float64
	BB   float64
	ERA  float64
	WHIP float64
	WAR  float64
}

// PitcherProjection is a pitcher's derived weekly line plus the rate stats
// and composite value used for ranking.
type PitcherProjection struct {
	Name   string
	Role   PitcherRole
	G      float64
	GS     float64
	IP     float64
	Weekly league.PitchingRates
	ERA    float64
	WHIP   float64
	WAR    float64
}

// DerivePitcher converts one season projection to a weekly line. Starters
// (GS above the configured threshold) contribute SPContribution starts per
// week at their per-start rates and never record saves or holds; relievers
// spread their season over the schedule and never record quality starts.
// The second return is false when the pitcher falls under the WAR floor.
func DerivePitcher(raw RawPitcherLine, cfg league.PitchingSettings) (PitcherProjection, bool) {
	if raw.WAR < cfg.MinWAR {
		return PitcherProjection{}, false
	}

	proj := PitcherProjection{
		Name: raw.Name,
		G:    raw.G,
		GS:   raw.GS,
		IP:   raw.IP,
		ERA:  raw.ERA,
		WHIP: raw.WHIP,
		WAR:  raw.WAR,
	}

	if raw.GS > cfg.SPGamesStarted {
		proj.Role = Starter
		perStart := cfg.SPContribution / raw.GS
		proj.Weekly = league.PitchingRates{
			IP: raw.IP * perStart,
			L:  raw.L * perStart,
			QS: raw.QS * perStart,
			K:  raw.SO * perStart,
			ER: raw.ER * perStart,
			WH: (raw.BB + raw.H) * perStart,
		}
		return proj, true
	}

	proj.Role = Reliever
	w := float64(cfg.Weeks)
	proj.Weekly = league.PitchingRates{
		IP:  raw.IP / w,
		L:   raw.L / w,
		SV:  raw.SV / w,
		HLD: raw.HLD / w,
		K:   raw.SO / w,
		ER:  raw.ER / w,
		WH:  (raw.BB + raw.H) / w,
	}
	return proj, true
}

// DerivePitchers maps a projection set through DerivePitcher and sorts the
// survivors by WAR descending, ties broken by input order.
func DerivePitchers(raws []RawPitcherLine, cfg league.PitchingSettings) []PitcherProjection {
	out := make([]PitcherProjection, 0, len(raws))
	for _, raw := range raws {
		if proj, ok := DerivePitcher(raw, cfg); ok {
			out = append(out, proj)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WAR > out[j].WAR
	})
	return out
}

// ReplacementPitching is the weekly line of an all-replacement staff:
// StartsPerWeek starts at the replacement per-start rates plus RPSlots
// bullpen slots at the replacement per-week rates.
func ReplacementPitching(cfg league.PitchingSettings) league.PitchingRates {
	sp := cfg.ReplacementSP
	rp := cfg.ReplacementRP
	starts := cfg.StartsPerWeek
	slots := float64(cfg.RPSlots)
	return league.PitchingRates{
		IP:  sp.IP*starts + rp.IP*slots,
		L:   sp.L*starts + rp.L*slots,
		SV:  rp.SV * slots,
		HLD: rp.HLD * slots,
		K:   sp.K*starts + rp.K*slots,
		QS:  sp.QS * starts,
		ER:  sp.ER*starts + rp.ER*slots,
		WH:  sp.WH*starts + rp.WH*slots,
	}
}

// ERA converts a weekly line to an earned-run average.
func ERA(r league.PitchingRates) float64 {
	if r.IP == 0 {
		return 0
	}
	return r.ER * 9 / r.IP
}

// WHIP converts a weekly line to walks-plus-hits per inning pitched.
func WHIP(r league.PitchingRates) float64 {
	if r.IP == 0 {
		return 0
	}
	return r.WH / r.IP
}
