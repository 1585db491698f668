package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config - все настройки бота и баланса игры, читаются из окружения.
type Config struct {
	BotToken    string `env:"BOT_TOKEN,required"`
	OwnerID     int64  `env:"OWNER_ID"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	HTTPPort    string `env:"PORT" envDefault:"8000"`

	RegistrationTime time.Duration `env:"REGISTRATION_TIME" envDefault:"120s"`
	ExtendTime       time.Duration `env:"EXTEND_TIME" envDefault:"30s"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"30s"`
	RoundTime        time.Duration `env:"ROUND_TIME" envDefault:"60s"`

	StartHP       int `env:"START_HP" envDefault:"100"`
	MaxEquip      int `env:"MAX_EQUIP" envDefault:"4"`
	SkillCooldown int `env:"SKILL_COOLDOWN" envDefault:"5"`

	BaseStorm      int `env:"BASE_STORM" envDefault:"10"`
	StormIncrement int `env:"STORM_INCREMENT" envDefault:"10"`
	FirstPurge     int `env:"FIRST_PURGE_ROUND" envDefault:"5"`
	PurgeStep      int `env:"PURGE_STEP" envDefault:"5"`
	WinReward      int `env:"WIN_REWARD" envDefault:"200"`
	StartPoints    int `env:"START_POINTS" envDefault:"500"`
}

// Parse читает конфигурацию из переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
