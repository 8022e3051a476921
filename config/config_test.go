package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"UNO_PLAYER_NAME", "UNO_COMPUTER_PLAYERS", "UNO_SEED", "UNO_DELAY"} {
		key := key
		value, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, value)
				return
			}
			os.Unsetenv(key)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, config.Config{Delay: consts.DefaultPrintDelay}, cfg)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "uno.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"UNO_PLAYER_NAME=Alice\nUNO_COMPUTER_PLAYERS=3\nUNO_SEED=42\nUNO_DELAY=250ms\n",
	), 0o600))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		PlayerName:        "Alice",
		NumberOfComputers: 3,
		Seed:              42,
		Delay:             250 * time.Millisecond,
	}, cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	scenarios := []struct {
		description string
		key         string
		value       string
	}{
		{description: "computer_count_not_a_number", key: "UNO_COMPUTER_PLAYERS", value: "many"},
		{description: "computer_count_too_high", key: "UNO_COMPUTER_PLAYERS", value: "10"},
		{description: "seed_not_a_number", key: "UNO_SEED", value: "abc"},
		{description: "delay_without_unit", key: "UNO_DELAY", value: "5"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			clearEnv(t)
			require.NoError(t, os.Setenv(scenario.key, scenario.value))
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
