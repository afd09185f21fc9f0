// Package app holds the top-level application state: which screens exist,
// which of them receives input, and how application events change that.
package app

import (
	"io"
	"log/slog"

	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
	"github.com/mars-mission/mars/internal/menu"
	"github.com/mars-mission/mars/internal/mission"
)

// Window is the part of the window the app controls.
type Window interface {
	RequestClose()
}

// Active names the combination of open screens.
type Active uint8

const (
	ActiveNone Active = iota
	ActiveMenu
	ActiveMission
	ActiveMenuOverMission
)

func (a Active) String() string {
	switch a {
	case ActiveNone:
		return "none"
	case ActiveMenu:
		return "menu"
	case ActiveMission:
		return "mission"
	case ActiveMenuOverMission:
		return "menu_over_mission"
	default:
		return "unknown"
	}
}

// State is the application. The menu and the mission may both exist; the
// menu overlays the mission and takes all input while it is open.
type State struct {
	window  Window
	deps    menu.Deps
	log     *slog.Logger
	menu    *menu.State
	mission *mission.State
}

// New starts the application at the main menu with no mission.
func New(window Window, deps menu.Deps) *State {
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		window: window,
		deps:   deps,
		log:    deps.Log,
		menu:   menu.New(false, deps),
	}
}

// Menu returns the open menu, or nil.
func (a *State) Menu() *menu.State { return a.menu }

// Mission returns the running mission, or nil.
func (a *State) Mission() *mission.State { return a.mission }

// Active derives the screen combination from the two optional screens.
func (a *State) Active() Active {
	switch {
	case a.menu != nil && a.mission != nil:
		return ActiveMenuOverMission
	case a.menu != nil:
		return ActiveMenu
	case a.mission != nil:
		return ActiveMission
	default:
		return ActiveNone
	}
}

// target is the routing table: the screen that receives input and ticks.
func (a *State) target() event.Screen {
	switch a.Active() {
	case ActiveMenu, ActiveMenuOverMission:
		return a.menu
	case ActiveMission:
		return a.mission
	default:
		return nil
	}
}

func (a *State) Hover(window event.Size, cursor event.Point) event.AppEvent {
	t := a.target()
	if t == nil {
		return event.NoEvent
	}
	return t.Hover(window, cursor)
}

// Press routes a button-down. Escape presses stop here so neither screen
// sees Escape as a generic press; Escape releases are routed normally.
func (a *State) Press(b event.Button) event.AppEvent {
	if b.IsKey(event.KeyEscape) {
		return event.NoEvent
	}
	t := a.target()
	if t == nil {
		a.log.Debug("press dropped, no active screen", "button", b.String())
		return event.NoEvent
	}
	return t.Press(b)
}

func (a *State) Release(b event.Button) event.AppEvent {
	t := a.target()
	if t == nil {
		a.log.Debug("release dropped, no active screen", "button", b.String())
		return event.NoEvent
	}
	return t.Release(b)
}

// Update ticks the input target. A mission under the menu does not tick.
func (a *State) Update() event.AppEvent {
	t := a.target()
	if t == nil {
		return event.NoEvent
	}
	return t.Update()
}

// Render draws the input target only.
func (a *State) Render(c media.Canvas) {
	if t := a.target(); t != nil {
		t.Render(c)
	}
}

// Handle applies an application event. NoEvent is ignored, so the driver
// can pass handler results straight through.
func (a *State) Handle(e event.AppEvent) {
	if e.IsNone() {
		return
	}
	before := a.Active()

	switch e.Kind {
	case event.Exit:
		a.window.RequestClose()
	case event.OpenMenu:
		a.menu = menu.New(a.mission != nil, a.deps)
	case event.ResumeMission:
		// never dismiss the menu into an empty screen
		if a.mission != nil {
			a.menu = nil
		}
	case event.NewMission:
		a.mission = mission.New(e.Difficulty.Budget(), a.deps.Strings, a.log)
		a.menu = nil
	}

	a.log.Info("app event", "event", e.String(), "from", before.String(), "to", a.Active().String())
}

