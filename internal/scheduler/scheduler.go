// Package scheduler pushes periodic ranking snapshots to Telegram during a
// draft, on an opt-in cron cadence.
package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"github.com/skrey/draftbot/internal/service"
)

// rankingsShown is how many players each scheduled snapshot includes.
const rankingsShown = 10

type Scheduler struct {
	s            gocron.Scheduler
	draftService *service.DraftService
	sendMessage  func(string) error
}

// NewScheduler builds a scheduler that sends the current top rankings on
// the given cron schedule. The expression is validated up front so a typo
// fails at startup rather than silently never firing.
func NewScheduler(draftService *service.DraftService, sendMessage func(string) error, cronSpec string) (*Scheduler, error) {
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return nil, fmt.Errorf("invalid rankings cron spec %q: %w", cronSpec, err)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	sched := &Scheduler{
		s:            s,
		draftService: draftService,
		sendMessage:  sendMessage,
	}

	_, err = s.NewJob(
		gocron.CronJob(cronSpec, false),
		gocron.NewTask(sched.sendRankings),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rankings job: %w", err)
	}

	return sched, nil
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendRankings() {
	report := s.draftService.TopAvailable(rankingsShown)
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send rankings snapshot", "error", err)
	}
}
