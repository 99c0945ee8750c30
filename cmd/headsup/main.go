package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"headsup/internal/balance"
	"headsup/internal/config"
	"headsup/internal/game"
	"headsup/internal/randutil"
	"headsup/internal/session"
	"headsup/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Config      string           `short:"c" help:"Path to the HCL config file" default:"headsup.hcl"`
	Blind       int              `help:"Blind posted by each seat at the start of a hand"`
	Stack       int              `help:"Starting stack for both seats"`
	Difficulty  string           `short:"d" help:"Bot difficulty (passive, balanced, aggressive)"`
	Seed        int64            `help:"Random seed for reproducible deals (0 uses the clock)"`
	BalanceFile string           `help:"Persist the player's chips and records to this file"`
	LogFile     string           `help:"Write debug logs to this file"`
	Debug       bool             `help:"Log at debug level"`
	Mute        bool             `help:"Disable terminal cues"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("headsup"),
		kong.Description("Heads-up Texas Hold'em against a bot"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "headsup: %v\n", err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	applyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	params, err := cfg.BotParams()
	if err != nil {
		return err
	}

	// The ledger, when enabled, carries the player's chips across runs.
	var ledger *balance.Ledger
	if cfg.UI.BalanceFile != "" {
		ledger, err = balance.Load(cfg.UI.BalanceFile, cfg.Game.PlayerStack)
		if err != nil {
			return err
		}
		if ledger.Chips < cfg.Game.Blind {
			logger.Warn("persisted balance cannot post the blind, restaking",
				"balance", ledger.Chips, "stake", cfg.Game.PlayerStack)
			ledger.Chips = cfg.Game.PlayerStack
		}
		cfg.Game.PlayerStack = ledger.Chips
	}

	opts := game.Options{
		Blind:       cfg.Game.Blind,
		PlayerStack: cfg.Game.PlayerStack,
		BotStack:    cfg.Game.BotStack,
		BotParams:   params,
	}
	seed := cli.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	g := game.New(opts, randutil.New(seed), logger)

	notifier := tui.NewNotifier(termenv.NewOutput(os.Stdout), cfg.UI.Mute)
	g.Events().Subscribe(notifier)

	if ledger != nil {
		recorder := &ledgerRecorder{
			ledger: ledger,
			game:   g,
			path:   cfg.UI.BalanceFile,
			logger: logger,
		}
		g.Events().Subscribe(recorder)
	}

	s := session.New(g, quartz.NewReal(), logger,
		time.Duration(cfg.Bot.ThinkDelayMs)*time.Millisecond,
		time.Duration(cfg.Bot.RevealDelayMs)*time.Millisecond)

	model := tui.NewModel(s, notifier, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting table",
		"blind", opts.Blind,
		"difficulty", cfg.Bot.Difficulty,
		"seed", seed)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

// applyFlags layers command-line overrides on top of the config file.
func applyFlags(cfg *config.Config, cli CLI) {
	if cli.Blind > 0 {
		cfg.Game.Blind = cli.Blind
	}
	if cli.Stack > 0 {
		cfg.Game.PlayerStack = cli.Stack
		cfg.Game.BotStack = cli.Stack
	}
	if cli.Difficulty != "" {
		cfg.Bot.Difficulty = cli.Difficulty
	}
	if cli.BalanceFile != "" {
		cfg.UI.BalanceFile = cli.BalanceFile
	}
	if cli.LogFile != "" {
		cfg.UI.LogFile = cli.LogFile
	}
	if cli.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if cli.Mute {
		cfg.UI.Mute = true
	}
}

// newLogger builds the logger. With no log file configured, logs are
// discarded so they cannot fight the TUI for the terminal.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	if cfg.UI.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// ledgerRecorder folds each finished hand into the balance ledger and
// writes it to disk, so a crash mid-session loses nothing.
type ledgerRecorder struct {
	mu     sync.Mutex
	ledger *balance.Ledger
	game   *game.Game
	path   string
	logger *log.Logger
}

func (r *ledgerRecorder) OnEvent(e game.Event) {
	if e.EventType() != game.EventWin {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.game.Snapshot()
	r.ledger.Record(snap.PlayerStack, snap.WinStreak)
	if err := r.ledger.Save(r.path); err != nil {
		r.logger.Error("saving balance", "file", r.path, "error", err)
	}
}
