package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// keyNames maps the terminal key names used in the config to Ebiten keys.
// Names with no window equivalent (ctrl+c, ...) are absent.
var keyNames = map[string]ebiten.Key{
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	" ": ebiten.KeySpace, "space": ebiten.KeySpace,
	"esc": ebiten.KeyEscape, "enter": ebiten.KeyEnter, "tab": ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// bindKeys resolves the configured bindings to Ebiten keys.
// Escape always quits the window.
func bindKeys(cfg config.KeysConfig) map[ebiten.Key]core.Key {
	bindings := map[ebiten.Key]core.Key{ebiten.KeyEscape: core.KeyEscape}

	for _, b := range []struct {
		names []string
		key   core.Key
	}{
		{cfg.Left, core.KeyLeft},
		{cfg.Right, core.KeyRight},
		{cfg.Start, core.KeySpace},
		{cfg.Quit, core.KeyEscape},
	} {
		for _, name := range b.names {
			if k, ok := keyNames[name]; ok {
				bindings[k] = b.key
			}
		}
	}

	// Escape stays a quit key even if a binding claimed it
	bindings[ebiten.KeyEscape] = core.KeyEscape
	return bindings
}
