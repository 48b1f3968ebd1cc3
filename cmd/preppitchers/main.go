// Command preppitchers turns a raw pitching projection export into a
// weekly-rate sheet: starters at per-start rates scaled to their weekly
// start share, relievers at season-over-weeks rates, sorted by WAR.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/skrey/draftbot/internal/ingest"
	"github.com/skrey/draftbot/internal/league"
	"github.com/skrey/draftbot/internal/valuation"
)

var (
	inPath  = flag.String("in", "", "Raw pitching projection CSV (required)")
	outPath = flag.String("out", "fantasy_pitchers.csv", "Output pitcher sheet path")
	minWAR  = flag.Float64("min_war", 0.2, "Minimum WAR to include")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("Error building pitcher sheet", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if *inPath == "" {
		return fmt.Errorf("-in is required")
	}

	cfg := league.DefaultPitching()
	cfg.MinWAR = *minWAR
	if err := cfg.Validate(); err != nil {
		return err
	}

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("opening projections: %w", err)
	}
	defer in.Close()

	raws, err := ingest.ReadRawPitchers(in)
	if err != nil {
		return fmt.Errorf("reading projections: %w", err)
	}

	projections := valuation.DerivePitchers(raws, cfg)

	starters := 0
	for _, p := range projections {
		if p.Role == valuation.Starter {
			starters++
		}
	}
	slog.Info("Derived pitcher projections",
		"total", len(projections),
		"starters", starters,
		"relievers", len(projections)-starters,
		"min_war", cfg.MinWAR)

	rep := valuation.ReplacementPitching(cfg)
	slog.Info("Replacement staff weekly line",
		"ip", fmt.Sprintf("%.2f", rep.IP),
		"k", fmt.Sprintf("%.2f", rep.K),
		"qs", fmt.Sprintf("%.3f", rep.QS),
		"sv", fmt.Sprintf("%.3f", rep.SV),
		"hld", fmt.Sprintf("%.3f", rep.HLD),
		"era", fmt.Sprintf("%.3f", valuation.ERA(rep)),
		"whip", fmt.Sprintf("%.3f", valuation.WHIP(rep)))

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := ingest.WritePitcherSheet(out, projections); err != nil {
		return err
	}
	slog.Info("Wrote pitcher sheet", "pitchers", len(projections), "file", *outPath)
	return nil
}
