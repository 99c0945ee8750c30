package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headsup/internal/bot"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "headsup.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  blind        = 25
  player_stack = 2000
  bot_stack    = 1500
  seed         = 99
}

bot {
  difficulty     = "aggressive"
  think_delay_ms = 300
}

ui {
  log_level = "debug"
  mute      = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 25, cfg.Game.Blind)
	assert.Equal(t, 2000, cfg.Game.PlayerStack)
	assert.Equal(t, 1500, cfg.Game.BotStack)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "aggressive", cfg.Bot.Difficulty)
	assert.Equal(t, 300, cfg.Bot.ThinkDelayMs)
	assert.Equal(t, 600, cfg.Bot.RevealDelayMs, "unset delay falls back to default")
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.Mute)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `game { blind = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero blind", func(c *Config) { c.Game.Blind = -1 }, "blind"},
		{"player stack below blind", func(c *Config) { c.Game.PlayerStack = 5 }, "player stack"},
		{"bot stack below blind", func(c *Config) { c.Game.BotStack = 5 }, "bot stack"},
		{"bad difficulty", func(c *Config) { c.Bot.Difficulty = "brutal" }, "difficulty"},
		{"negative delay", func(c *Config) { c.Bot.ThinkDelayMs = -1 }, "delays"},
		{"bluff chance out of range", func(c *Config) { c.Bot.BluffChance = 1.5 }, "bluff"},
		{"negative bet size", func(c *Config) { c.Bot.BetSize = -10 }, "bet size"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestBotParamsTierDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bot.Difficulty = "passive"

	params, err := cfg.BotParams()
	require.NoError(t, err)
	assert.Equal(t, bot.Passive.Params(), params)
}

func TestBotParamsOverrides(t *testing.T) {
	path := writeConfig(t, `
game {}

bot {
  difficulty    = "balanced"
  bet_threshold = 55
  bet_size      = 75
}

ui {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	params, err := cfg.BotParams()
	require.NoError(t, err)
	assert.Equal(t, 55.0, params.BetThreshold)
	assert.Equal(t, 75, params.BetSize)
	assert.Equal(t, bot.Balanced.Params().CallThreshold, params.CallThreshold, "untouched fields keep tier values")
	assert.Equal(t, bot.Balanced.Params().BluffChance, params.BluffChance)
}

func TestBotParamsRejectsUnknownDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bot.Difficulty = "nightmare"
	_, err := cfg.BotParams()
	assert.Error(t, err)
}
