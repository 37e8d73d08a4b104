package config

import (
	"errors"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// ErrMissingToken is returned by New when DISCORD_TOKEN is not set. The
// message is user-facing: main prints it and exits without connecting.
var ErrMissingToken = errors.New("DISCORD_TOKEN not found in environment variables; create a .env file with your bot token")

type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}
