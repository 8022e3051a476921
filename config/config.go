package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
)

// Config holds the settings of a local game. Zero values mean "ask" for the
// player name and computer count.
type Config struct {
	PlayerName        string
	NumberOfComputers int
	Seed              int64
	Delay             time.Duration
}

// Load reads the UNO_* environment variables, after loading files (".env"
// when none are given) into the environment. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		PlayerName: os.Getenv("UNO_PLAYER_NAME"),
		Delay:      consts.DefaultPrintDelay,
	}
	var err error
	if cfg.NumberOfComputers, err = getEnvInt("UNO_COMPUTER_PLAYERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.NumberOfComputers != 0 &&
		(cfg.NumberOfComputers < consts.MinComputerPlayers || cfg.NumberOfComputers > consts.MaxComputerPlayers) {
		return Config{}, fmt.Errorf("UNO_COMPUTER_PLAYERS must be between %d and %d, got %d",
			consts.MinComputerPlayers, consts.MaxComputerPlayers, cfg.NumberOfComputers)
	}
	if s := os.Getenv("UNO_SEED"); s != "" {
		if cfg.Seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid UNO_SEED %q: %w", s, err)
		}
	}
	if s := os.Getenv("UNO_DELAY"); s != "" {
		if cfg.Delay, err = time.ParseDuration(s); err != nil {
			return Config{}, fmt.Errorf("invalid UNO_DELAY %q: %w", s, err)
		}
	}
	return cfg, nil
}

func getEnvInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}
