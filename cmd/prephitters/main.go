// Command prephitters turns a raw hitter projection export into the draft
// sheet the draft session consumes: derives SO and TB, scores weekly
// z-scores against the league tables, and sorts by total z-score. With
// -pa it first rescales counting stats to a second source's playing time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/skrey/draftbot/internal/ingest"
	"github.com/skrey/draftbot/internal/league"
)

var (
	inPath  = flag.String("in", "", "Raw hitter projection CSV (required)")
	outPath = flag.String("out", "fantasy_hitters.csv", "Output draft sheet path")
	paPath  = flag.String("pa", "", "Optional playing-time CSV to normalize PA against")
	minPA   = flag.Float64("min_pa", 300, "Minimum PA in the playing-time source")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("Error building hitter sheet", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if *inPath == "" {
		return fmt.Errorf("-in is required")
	}

	settings := league.Default()
	if err := settings.Validate(); err != nil {
		return err
	}

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("opening projections: %w", err)
	}
	defer in.Close()

	raws, err := ingest.ReadRawHitters(in)
	if err != nil {
		return fmt.Errorf("reading projections: %w", err)
	}
	slog.Info("Read raw projections", "count", len(raws), "file", *inPath)

	if *paPath != "" {
		pf, err := os.Open(*paPath)
		if err != nil {
			return fmt.Errorf("opening playing-time source: %w", err)
		}
		targets, err := ingest.ReadTargetPA(pf, *minPA)
		pf.Close()
		if err != nil {
			return fmt.Errorf("reading playing-time source: %w", err)
		}
		before := len(raws)
		raws = ingest.NormalizePA(raws, targets)
		slog.Info("Normalized playing time", "matched", len(raws), "dropped", before-len(raws), "min_pa", *minPA)
	}

	sheet := ingest.BuildHitterSheet(raws, settings)

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := ingest.WriteHitterSheet(out, sheet); err != nil {
		return err
	}
	slog.Info("Wrote draft sheet", "players", len(sheet), "file", *outPath)
	return nil
}
