package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Draft    Draft
	Telegram Telegram
}

type Draft struct {
	HittersFile string `envconfig:"HITTERS_FILE" required:"true"`
	PoolSize    int    `envconfig:"POOL_SIZE" default:"300"`
	Weeks       int    `envconfig:"NUM_WEEKS" default:"25"`
	RosterSpots int    `envconfig:"NUM_ROSTER_SPOTS" default:"9"`
}

// Telegram is optional: leaving Token empty runs the terminal session only.
// RankingsCron, when set, pushes periodic top-rankings snapshots to ChatID.
type Telegram struct {
	Token        string `envconfig:"TELEGRAM_TOKEN"`
	ChatID       int64  `envconfig:"CHAT_ID"`
	RankingsCron string `envconfig:"RANKINGS_CRON"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
