// Package driver runs the application inside ebiten's game loop: it polls
// raw input each tick, routes it through the app and draws the result.
package driver

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/atomic"

	"github.com/mars-mission/mars/internal/config"
	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
)

// App is the routed screen stack plus its event sink.
type App interface {
	event.Screen
	Handle(event.AppEvent)
}

// Canvas is a media.Canvas that can be pointed at each frame's screen.
type Canvas interface {
	media.Canvas
	Target(dst *ebiten.Image)
}

// Window records a close request from the app; the game loop ends on the
// next tick.
type Window struct {
	closing atomic.Bool
}

func (w *Window) RequestClose() { w.closing.Store(true) }

func (w *Window) Closing() bool { return w.closing.Load() }

// Game implements ebiten.Game.
type Game struct {
	app    App
	window *Window
	canvas Canvas
	log    *slog.Logger

	size   event.Size
	cursor event.Point
	seen   bool // cursor has been reported at least once

	keys []ebiten.Key
}

func New(app App, window *Window, canvas Canvas, log *slog.Logger) *Game {
	return &Game{app: app, window: window, canvas: canvas, log: log}
}

// input is one tick's worth of raw input.
type input struct {
	cursor   event.Point
	presses  []event.Button
	releases []event.Button
}

func (g *Game) Update() error {
	if g.window.Closing() {
		return ebiten.Termination
	}
	g.step(g.poll())
	if g.window.Closing() {
		return ebiten.Termination
	}
	return nil
}

// step routes a tick in order: hover (only when the cursor moved), presses,
// releases, then the update tick. Every result goes straight to Handle so
// a transition takes effect before the next input is routed.
func (g *Game) step(in input) {
	if !g.seen || in.cursor != g.cursor {
		g.cursor, g.seen = in.cursor, true
		g.app.Handle(g.app.Hover(g.size, in.cursor))
	}
	for _, b := range in.presses {
		g.app.Handle(g.app.Press(b))
	}
	for _, b := range in.releases {
		g.app.Handle(g.app.Release(b))
	}
	g.app.Handle(g.app.Update())
}

func (g *Game) poll() input {
	x, y := ebiten.CursorPosition()
	in := input{cursor: event.Point{X: float64(x), Y: float64(y)}}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.presses = append(in.presses, keyButton(k))
	}
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.ebiten) {
			in.presses = append(in.presses, event.Mouse(m.button))
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.releases = append(in.releases, keyButton(k))
	}
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(m.ebiten) {
			in.releases = append(in.releases, event.Mouse(m.button))
		}
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.app.Render(g.canvas)
}

// Layout follows the outside size so hit-testing and drawing use real
// window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := event.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	if size != g.size {
		g.log.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
		g.size = size
	}
	return outsideWidth, outsideHeight
}

// Run applies the window settings and blocks until the game ends.
func (g *Game) Run(win config.WindowConfig, loop config.LoopConfig) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(win.Fullscreen)
	ebiten.SetTPS(loop.TPS)

	g.log.Info("game loop starting", "title", win.Title, "fullscreen", win.Fullscreen, "tps", loop.TPS)
	return ebiten.RunGame(g)
}
