package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

// Model is the Bubble Tea model for the reflex game.
type Model struct {
	machine     *reflex.Machine
	tally       reflex.Tally
	screen      *core.Screen
	cfg         config.Config
	runtime     core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	history     table.Model
	showHistory bool
	logger      *log.Logger
	lastTick    time.Time // Zero until the first tick
	quitting    bool
}

// NewModel creates a new Bubble Tea model. A nil logger discards output.
func NewModel(cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		machine: reflex.New(
			reflex.NewRandSource(runtime.Seed),
			reflex.WithCountdown(cfg.Round.Countdown),
		),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		cfg:     cfg,
		runtime: runtime,
		keys:    NewKeyMap(cfg.Keys),
		help:    help.New(),
		history: newHistoryTable(runtime.ScreenW, runtime.ScreenH),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Help, history and screenshot keys
// only act between rounds; during a round every key belongs to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	gameKey, quit := m.keys.Resolve(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.roundActive() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
			if m.showHistory {
				m.history.SetRows(historyRows(m.tally.History()))
				m.history.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.Screenshot):
			m.saveScreenshot()
			return m, nil
		}

		// The history screen scrolls and never reaches the game
		if m.showHistory {
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	prev := m.machine.State()
	m.machine.HandleKey(gameKey)
	m.record(prev)

	return m, nil
}

// roundActive reports whether a round is counting down or waiting for an answer.
func (m Model) roundActive() bool {
	switch m.machine.State().(type) {
	case reflex.Preparing, reflex.Running:
		return true
	}
	return false
}

// saveScreenshot writes the current frame as plain text to
// ~/.reflex/screenshots. Failures are logged and the game continues.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	dir := filepath.Join(home, ".reflex", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	m.paintGame()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("reflex_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	rows := historyRows(m.tally.History())
	m.history = newHistoryTable(msg.Width, msg.Height)
	m.history.SetRows(rows)

	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		dt := max(now.Sub(m.lastTick).Seconds(), 0)
		prev := m.machine.State()
		m.machine.Advance(dt)
		m.record(prev)
	}
	m.lastTick = now

	return m, tickCmd(m.runtime.TickRate)
}

// record counts and logs a round finished by the last event.
func (m *Model) record(prev reflex.State) {
	next := m.machine.State()
	if !m.tally.Record(prev, next) {
		return
	}

	switch s := next.(type) {
	case reflex.Result:
		m.logger.Info("round finished",
			"side", s.Side,
			"elapsed", reflex.FormatTime(s.ElapsedTime),
			"correct", s.Correct,
			"round", m.tally.Rounds,
		)
	case reflex.FalseStart:
		m.logger.Info("false start", "round", m.tally.Rounds)
	}
}

// Tally returns the rounds counted so far.
func (m Model) Tally() reflex.Tally {
	return m.tally
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := ""
	if m.cfg.Display.ShowHelp {
		helpView = m.help.View(m.keys)
	}

	var body string
	if m.showHistory {
		body = m.renderHistory()
	} else {
		// Leave room for the help bar below the game
		height := m.runtime.ScreenH
		if helpView != "" {
			height -= lipgloss.Height(helpView)
		}
		m.screen.Resize(m.runtime.ScreenW, max(height, 0))
		m.paintGame()
		body = RenderScreen(m.screen)
	}

	if helpView == "" {
		return body
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(helpView)
}

// paintGame draws the current game frame into the screen buffer.
func (m Model) paintGame() {
	status := ""
	if m.cfg.Display.ShowTally {
		status = m.tally.String()
	}
	paint(m.screen, m.machine.View(), status, m.cfg.Display.BrightnessBias)
}

// Run starts the Bubble Tea program and logs the final tally.
func Run(cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.logger.Info("session ended", "tally", m.tally.String())
	}
	return err
}
