// Package window runs the reflex game in a desktop window with Ebiten.
package window

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

const (
	Size  = 512
	Title = "Left/Right"

	backdrop = 0.5
)

// textColor is the colour of the view text and the tally line.
var textColor = core.RGB(0, 0, 0)

// Game implements ebiten.Game around a reflex machine.
type Game struct {
	machine *reflex.Machine
	tally   reflex.Tally
	cfg     config.Config
	keys    map[ebiten.Key]core.Key
	dt      float64
	font    *text.GoTextFaceSource
	logger  *log.Logger
	pressed []ebiten.Key
}

// NewGame creates a window game. A nil logger discards output.
func NewGame(cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	tps := runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	return &Game{
		machine: reflex.New(
			reflex.NewRandSource(runtime.Seed),
			reflex.WithCountdown(cfg.Round.Countdown),
		),
		cfg:    cfg,
		keys:   bindKeys(cfg.Keys),
		dt:     1 / float64(tps),
		font:   font,
		logger: logger,
	}, nil
}

// Update delivers the keys pressed since the last tick, then advances the
// game by one tick.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		gameKey, ok := g.keys[k]
		if !ok {
			gameKey = core.KeyOther
		}
		if gameKey == core.KeyEscape {
			g.logger.Info("session ended", "tally", g.tally.String())
			return ebiten.Termination
		}

		prev := g.machine.State()
		g.machine.HandleKey(gameKey)
		g.record(prev)
	}

	prev := g.machine.State()
	g.machine.Advance(g.dt)
	g.record(prev)

	return nil
}

func (g *Game) record(prev reflex.State) {
	next := g.machine.State()
	if !g.tally.Record(prev, next) {
		return
	}

	switch s := next.(type) {
	case reflex.Result:
		g.logger.Info("round finished",
			"side", s.Side,
			"elapsed", reflex.FormatTime(s.ElapsedTime),
			"correct", s.Correct,
			"round", g.tally.Rounds,
		)
	case reflex.FalseStart:
		g.logger.Info("false start", "round", g.tally.Rounds)
	}
}

// Draw paints the grey backdrop, the text and both rectangles. Text and
// padding scale with the window width.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(core.Gray(backdrop))

	b := screen.Bounds()
	pad := b.Dx() * 20 / Size
	size := core.FontSize(b.Dx())
	statusSize := 0
	if g.cfg.Display.ShowTally {
		statusSize = max(size/2, 1)
	}
	l := core.SplitLayout(b.Dx(), b.Dy(), size+statusSize, pad, pad)

	v := g.machine.View()
	left, right := v.Intensity(g.cfg.Display.BrightnessBias)
	fillRect(screen, l.Left, core.Red(left))
	fillRect(screen, l.Right, core.Red(right))

	g.drawText(screen, v.Text, size, l.Text.X, l.Text.Y)
	if statusSize > 0 {
		g.drawText(screen, g.tally.String(), statusSize, l.Text.X, l.Text.Y+size)
	}
}

// drawText draws a line with its top-left corner at (x, y).
func (g *Game) drawText(screen *ebiten.Image, s string, size, x, y int) {
	face := &text.GoTextFace{Source: g.font, Size: float64(size)}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)
}

func fillRect(screen *ebiten.Image, r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Layout follows the window size so the layout scales on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) error {
	ebiten.SetWindowSize(Size, Size)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	game, err := NewGame(cfg, runtime, logger)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
