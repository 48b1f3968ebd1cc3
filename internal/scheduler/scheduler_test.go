package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrey/draftbot/internal/draft"
	"github.com/skrey/draftbot/internal/league"
	"github.com/skrey/draftbot/internal/models"
	"github.com/skrey/draftbot/internal/service"
	"github.com/skrey/draftbot/internal/valuation"
)

func newTestService(t *testing.T) *service.DraftService {
	t.Helper()

	model, err := valuation.New(league.Default())
	require.NoError(t, err)

	p, err := models.NewPlayer("Juan Soto", models.PlayerStats{
		PA: 650, R: 110, HR: 35, RBI: 105, SO: 95, TB: 300, SB: 12, OBP: 0.420,
	}, 2.5, league.Default().Weeks)
	require.NoError(t, err)

	state, err := draft.NewState([]*models.Player{p}, model)
	require.NoError(t, err)
	return service.NewDraftService(state)
}

func TestNewSchedulerRejectsBadCronSpec(t *testing.T) {
	_, err := NewScheduler(newTestService(t), nil, "not a cron spec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rankings cron spec")
}

func TestNewSchedulerAcceptsStandardSpec(t *testing.T) {
	sent := make(chan string, 1)
	send := func(text string) error {
		select {
		case sent <- text:
		default:
		}
		return nil
	}

	sched, err := NewScheduler(newTestService(t), send, "*/15 * * * *")
	require.NoError(t, err)
	require.NoError(t, sched.Stop())
}

func TestSendRankingsUsesService(t *testing.T) {
	var got string
	send := func(text string) error {
		got = text
		return nil
	}

	sched, err := NewScheduler(newTestService(t), send, "*/15 * * * *")
	require.NoError(t, err)
	defer sched.Stop()

	sched.sendRankings()
	assert.Contains(t, got, "AVAILABLE PLAYERS")
	assert.Contains(t, got, "Juan Soto")
}
