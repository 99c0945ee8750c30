// Package config loads the HCL configuration file for the heads-up table.
// Every setting has a sensible default; a missing file means an all-default
// session.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"headsup/internal/bot"
)

// Config represents the complete table configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	Bot  BotSettings  `hcl:"bot,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings contains the table stakes and stacks
type GameSettings struct {
	Blind       int   `hcl:"blind,optional"`
	PlayerStack int   `hcl:"player_stack,optional"`
	BotStack    int   `hcl:"bot_stack,optional"`
	Seed        int64 `hcl:"seed,optional"`
}

// BotSettings selects the opponent's difficulty tier and optionally
// overrides individual entries of its parameter table. A zero override
// keeps the tier default.
type BotSettings struct {
	Difficulty    string  `hcl:"difficulty,optional"`
	ThinkDelayMs  int     `hcl:"think_delay_ms,optional"`
	RevealDelayMs int     `hcl:"reveal_delay_ms,optional"`
	BetThreshold  float64 `hcl:"bet_threshold,optional"`
	CallThreshold float64 `hcl:"call_threshold,optional"`
	BluffChance   float64 `hcl:"bluff_chance,optional"`
	BetSize       int     `hcl:"bet_size,optional"`
}

// UISettings contains presentation settings
type UISettings struct {
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"`
	Mute        bool   `hcl:"mute,optional"`
	BalanceFile string `hcl:"balance_file,optional"`
}

// DefaultConfig returns the default table configuration
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			Blind:       10,
			PlayerStack: 1000,
			BotStack:    1000,
			Seed:        0,
		},
		Bot: BotSettings{
			Difficulty:    "balanced",
			ThinkDelayMs:  900,
			RevealDelayMs: 600,
		},
		UI: UISettings{
			LogLevel:    "warn",
			LogFile:     "",
			Mute:        false,
			BalanceFile: "",
		},
	}
}

// Load reads the configuration from an HCL file. A nonexistent file is
// not an error and yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Game.Blind == 0 {
		config.Game.Blind = defaults.Game.Blind
	}
	if config.Game.PlayerStack == 0 {
		config.Game.PlayerStack = defaults.Game.PlayerStack
	}
	if config.Game.BotStack == 0 {
		config.Game.BotStack = defaults.Game.BotStack
	}

	if config.Bot.Difficulty == "" {
		config.Bot.Difficulty = defaults.Bot.Difficulty
	}
	if config.Bot.ThinkDelayMs == 0 {
		config.Bot.ThinkDelayMs = defaults.Bot.ThinkDelayMs
	}
	if config.Bot.RevealDelayMs == 0 {
		config.Bot.RevealDelayMs = defaults.Bot.RevealDelayMs
	}

	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}

	return &config, nil
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Game.Blind <= 0 {
		return fmt.Errorf("blind must be positive")
	}

	if c.Game.PlayerStack < c.Game.Blind {
		return fmt.Errorf("player stack must cover the blind")
	}

	if c.Game.BotStack < c.Game.Blind {
		return fmt.Errorf("bot stack must cover the blind")
	}

	if _, err := bot.ParseDifficulty(c.Bot.Difficulty); err != nil {
		return err
	}

	if c.Bot.ThinkDelayMs < 0 || c.Bot.RevealDelayMs < 0 {
		return fmt.Errorf("delays cannot be negative")
	}

	if c.Bot.BluffChance < 0 || c.Bot.BluffChance >= 1 {
		return fmt.Errorf("bluff chance must be in [0,1)")
	}

	if c.Bot.BetSize < 0 {
		return fmt.Errorf("bet size cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// BotParams resolves the difficulty tier's parameter table and layers any
// per-field overrides from the config on top.
func (c *Config) BotParams() (bot.Params, error) {
	difficulty, err := bot.ParseDifficulty(c.Bot.Difficulty)
	if err != nil {
		return bot.Params{}, err
	}

	params := difficulty.Params()
	if c.Bot.BetThreshold != 0 {
		params.BetThreshold = c.Bot.BetThreshold
	}
	if c.Bot.CallThreshold != 0 {
		params.CallThreshold = c.Bot.CallThreshold
	}
	if c.Bot.BluffChance != 0 {
		params.BluffChance = c.Bot.BluffChance
	}
	if c.Bot.BetSize != 0 {
		params.BetSize = c.Bot.BetSize
	}
	return params, nil
}
