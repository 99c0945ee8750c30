// Package tui implements the Bubble Tea interface for a heads-up table.
// The model owns no game state of its own: it renders snapshots from the
// session and feeds typed commands back into it.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"headsup/internal/bot"
	"headsup/internal/deck"
	"headsup/internal/evaluator"
	"headsup/internal/game"
	"headsup/internal/session"
)

// Model represents the Bubble Tea model for the heads-up table
type Model struct {
	session  *session.Session
	notifier *Notifier
	logger   *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	snap     game.Snapshot
	gameLog  []string
	errLine  string
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool
}

// botUpdateMsg carries the bot's reply from the session into the tea loop
type botUpdateMsg session.Update

// NewModel creates a model attached to the session
func NewModel(s *session.Session, notifier *Notifier, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "deal"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		session:     s,
		notifier:    notifier,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		snap:        s.Snapshot(),
		gameLog:     []string{},
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForBot())
}

// listenForBot returns a command that waits for the bot's next reply
func (m *Model) listenForBot() tea.Cmd {
	return func() tea.Msg {
		return botUpdateMsg(<-m.session.Updates())
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case botUpdateMsg:
		m.applyBotUpdate(session.Update(msg))
		cmds = append(cmds, m.listenForBot())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			input := strings.TrimSpace(m.actionInput.Value())
			m.actionInput.SetValue("")
			if cmd := m.handleCommand(input); cmd != nil {
				return m, cmd
			}
		case "up":
			m.logViewport.ScrollUp(1)
		case "down":
			m.logViewport.ScrollDown(1)
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleCommand parses and applies a typed player command
func (m *Model) handleCommand(input string) tea.Cmd {
	m.errLine = ""
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		// Enter between hands deals the next one.
		if m.snap.Street == game.Start || m.snap.Street == game.Showdown {
			m.playerAction("deal", func() (game.Snapshot, error) { return m.session.Deal() })
		}
		return nil
	}

	switch parts[0] {
	case "quit", "q", "exit":
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)

	case "deal", "d", "next":
		m.playerAction("deal", func() (game.Snapshot, error) { return m.session.Deal() })

	case "check", "k":
		m.playerAction("check", func() (game.Snapshot, error) { return m.session.Check() })

	case "bet", "b":
		if len(parts) < 2 {
			m.errLine = "usage: bet <amount>"
			return nil
		}
		amount, err := strconv.Atoi(parts[1])
		if err != nil {
			m.errLine = fmt.Sprintf("bad amount %q", parts[1])
			return nil
		}
		m.playerAction(fmt.Sprintf("bet %d", amount), func() (game.Snapshot, error) {
			return m.session.Bet(amount)
		})

	case "call", "c":
		m.playerAction("call", func() (game.Snapshot, error) { return m.session.Call() })

	case "fold", "f":
		m.playerAction("fold", func() (game.Snapshot, error) { return m.session.Fold() })

	case "mute":
		m.notifier.SetMuted(!m.notifier.Muted())
		if m.notifier.Muted() {
			m.addLog(InfoStyle.Render("cues muted"))
		} else {
			m.addLog(InfoStyle.Render("cues on"))
		}

	default:
		m.errLine = fmt.Sprintf("unknown command %q", parts[0])
	}
	return nil
}

func (m *Model) playerAction(label string, action func() (game.Snapshot, error)) {
	prev := m.snap
	snap, err := action()
	if err != nil {
		m.errLine = err.Error()
		m.logger.Debug("rejected", "action", label, "error", err)
		return
	}

	m.snap = snap
	m.addLog(fmt.Sprintf("You %s", label))
	m.logTransition(prev, snap)
}

func (m *Model) applyBotUpdate(u session.Update) {
	if u.Err != nil {
		m.errLine = u.Err.Error()
		return
	}

	prev := m.snap
	m.snap = u.Snapshot

	if u.Decision.Action == bot.Bet {
		m.addLog(fmt.Sprintf("Bot bets %d", u.Decision.Amount))
	} else {
		m.addLog(fmt.Sprintf("Bot %ss", u.Decision.Action))
	}
	m.logTransition(prev, m.snap)
}

// logTransition records street reveals and hand results between two
// snapshots.
func (m *Model) logTransition(prev, next game.Snapshot) {
	if next.Street > prev.Street && next.Street >= game.Flop && next.Street <= game.River {
		name := HandInfoStyle.Render(next.Street.String())
		m.addLog(fmt.Sprintf("%s: %s", name, m.formatCards(next.Community)))
	}

	if next.LastResult == nil {
		return
	}
	if prev.LastResult != nil && *prev.LastResult == *next.LastResult {
		return
	}
	res := next.LastResult

	switch {
	case res.ByFold && res.Winner == evaluator.PlayerWins:
		m.addLog(SuccessStyle.Render(fmt.Sprintf("Bot folds. You take %d", res.PotWon)))
	case res.ByFold:
		m.addLog(ErrorStyle.Render(fmt.Sprintf("You fold. Bot takes %d", res.PotWon)))
	case res.Winner == evaluator.PlayerWins:
		m.addLog(SuccessStyle.Render(fmt.Sprintf("You win %d with %s", res.PotWon, res.Description)))
	case res.Winner == evaluator.BotWins:
		m.addLog(ErrorStyle.Render(fmt.Sprintf("Bot wins %d with %s", res.PotWon, res.Description)))
	default:
		m.addLog(PotStyle.Render(fmt.Sprintf("Split pot, %s both ways", res.Description)))
	}
}

// addLog appends an entry and keeps the viewport pinned to the bottom
func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	table := m.renderTablePane()
	tableHeight := lipgloss.Height(table)

	action := m.renderActionPane()
	actionHeight := lipgloss.Height(action)

	logWidth := m.width - 2
	logHeight := m.height - tableHeight - actionHeight - 2
	if logWidth < 1 {
		logWidth = 1
	}
	if logHeight < 1 {
		logHeight = 1
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, table, logPane, action)
}

// renderTablePane draws both seats and the board
func (m *Model) renderTablePane() string {
	var b strings.Builder
	snap := m.snap

	b.WriteString(HeaderStyle.Render(" Heads-Up Hold'em "))
	if snap.WinStreak > 0 {
		b.WriteString("  ")
		b.WriteString(StreakStyle.Render(fmt.Sprintf("streak ×%d", snap.WinStreak)))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Bot    %s  %s\n",
		m.formatHole(snap.BotHole, snap.Street != game.Showdown),
		InfoStyle.Render(fmt.Sprintf("$%d", snap.BotStack))))

	board := m.formatCards(snap.Community)
	if len(snap.Community) == 0 {
		board = InfoStyle.Render("(no cards)")
	}
	b.WriteString(fmt.Sprintf("  Board  %s\n", board))
	b.WriteString(fmt.Sprintf("         %s", PotStyle.Render(fmt.Sprintf("Pot $%d", snap.Pot))))
	if snap.CurrentBet > 0 {
		b.WriteString("  ")
		b.WriteString(PotStyle.Render(fmt.Sprintf("Bet $%d", snap.CurrentBet)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  You    %s  %s\n",
		m.formatHole(snap.PlayerHole, false),
		InfoStyle.Render(fmt.Sprintf("$%d", snap.PlayerStack))))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(m.width - 2).
		Render(b.String())
}

// renderActionPane draws the prompt and the legal moves
func (m *Model) renderActionPane() string {
	var b strings.Builder

	b.WriteString(ActionsStyle.Render("Actions: " + m.availableActions()))
	b.WriteString("\n")
	b.WriteString(m.actionInput.View())
	b.WriteString("\n")
	if m.errLine != "" {
		b.WriteString(ErrorStyle.Render(m.errLine))
	} else {
		b.WriteString(InfoStyle.Render("Enter to submit • ↑↓ scroll log • Ctrl+C to quit"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(m.width - 2).
		Render(b.String())
}

// availableActions lists the legal commands for the current state
func (m *Model) availableActions() string {
	snap := m.snap
	switch {
	case snap.Street == game.Start || snap.Street == game.Showdown:
		return "[deal] [quit]"
	case snap.Turn != game.PlayerSeat:
		return InfoStyle.Render("bot is thinking...")
	case snap.CurrentBet > snap.PlayerStack:
		// The call would be rejected, so don't advertise it.
		return "[fold]"
	case snap.CurrentBet > 0:
		return fmt.Sprintf("[call $%d] [fold]", snap.CurrentBet)
	default:
		return "[check] [bet <amount>] [fold]"
	}
}

// formatHole renders hole cards, face down when hidden
func (m *Model) formatHole(cards []deck.Card, hidden bool) string {
	if len(cards) == 0 {
		return InfoStyle.Render("-- --")
	}
	if hidden {
		return HiddenCardStyle.Render("🂠 🂠")
	}
	return m.formatCards(cards)
}

// formatCards formats cards with colors
func (m *Model) formatCards(cards []deck.Card) string {
	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}
