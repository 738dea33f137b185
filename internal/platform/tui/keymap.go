package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// KeyMap holds the terminal key bindings. Game keys come from the config,
// Help, History and Screenshot are fixed (see config.ReservedKeys).
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Quit       key.Binding
	Help       key.Binding
	History    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Left, k.Right},
		{k.History, k.Screenshot, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(cfg.Left...),
			key.WithHelp(helpKeys(cfg.Left), "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(cfg.Right...),
			key.WithHelp(helpKeys(cfg.Right), "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(cfg.Start...),
			key.WithHelp(helpKeys(cfg.Start), "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(config.KeyHelp),
			key.WithHelp(config.KeyHelp, "more"),
		),
		History: key.NewBinding(
			key.WithKeys(config.KeyHistory),
			key.WithHelp(config.KeyHistory, "history"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys(config.KeyScreenshot),
			key.WithHelp(config.KeyScreenshot, "screenshot"),
		),
	}
}

// Resolve translates a key message to a game key.
// Returns KeyOther for unbound keys and quit=true for quit keys.
func (k KeyMap) Resolve(msg tea.KeyMsg) (gameKey core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyEscape, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	case key.Matches(msg, k.Start):
		return core.KeySpace, false
	}
	return core.KeyOther, false
}

// helpKeys renders key names for the help bar, e.g. "left/h/a".
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}
