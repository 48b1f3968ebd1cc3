package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/skrey/draftbot/internal/bot"
	"github.com/skrey/draftbot/internal/config"
	"github.com/skrey/draftbot/internal/draft"
	"github.com/skrey/draftbot/internal/ingest"
	"github.com/skrey/draftbot/internal/league"
	"github.com/skrey/draftbot/internal/repl"
	"github.com/skrey/draftbot/internal/scheduler"
	"github.com/skrey/draftbot/internal/service"
	"github.com/skrey/draftbot/internal/valuation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	settings := league.Default()
	settings.Weeks = cfg.Draft.Weeks
	settings.RosterSpots = cfg.Draft.RosterSpots

	model, err := valuation.New(settings)
	if err != nil {
		return err
	}

	players, err := ingest.LoadHitters(cfg.Draft.HittersFile, cfg.Draft.PoolSize, settings.Weeks)
	if err != nil {
		return err
	}
	slog.Info("Loaded players", "count", len(players), "file", cfg.Draft.HittersFile)

	state, err := draft.NewState(players, model)
	if err != nil {
		return err
	}
	draftService := service.NewDraftService(state)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telegram.Token != "" {
		telegramBot, err := bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.ChatID, draftService)
		if err != nil {
			return err
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()

		if cfg.Telegram.RankingsCron != "" {
			sched, err := scheduler.NewScheduler(draftService, telegramBot.SendMessage, cfg.Telegram.RankingsCron)
			if err != nil {
				return err
			}
			sched.Start()
			defer func() {
				if err := sched.Stop(); err != nil {
					slog.Error("Error stopping scheduler", "error", err)
				}
			}()
		}
	}

	fmt.Println(draftService.RosterSummary())
	fmt.Println(draftService.TopAvailable(15))

	session := repl.NewSession(draftService, os.Stdin, os.Stdout)
	return session.Run(ctx)
}
