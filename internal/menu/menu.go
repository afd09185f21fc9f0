// Package menu implements the menu screen: hit-testing labels against the
// cursor, two-phase click confirmation and the submenu transition table.
package menu

import (
	"io"
	"log/slog"
	"math"

	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
)

const tapVolume = 0.5

// Submenu names the button set being shown. Main is the top level.
type Submenu uint8

const (
	Main Submenu = iota
	NewMission
	LoadMission
	Options
)

func (s Submenu) String() string {
	switch s {
	case Main:
		return "main"
	case NewMission:
		return "new_mission"
	case LoadMission:
		return "load_mission"
	case Options:
		return "options"
	default:
		return "unknown"
	}
}

// Deps are the collaborators a menu measures, plays, labels and logs
// through. They outlive every menu built from them.
type Deps struct {
	Metrics media.Metrics
	Audio   media.Audio
	Strings media.Strings
	Log     *slog.Logger
}

const noButton = -1

// State is one opened menu. It is rebuilt, not reset, each time the menu
// is opened.
type State struct {
	deps Deps

	activeMission bool // a mission exists that "resume" returns to
	submenu       Submenu
	buttons       []Button // replaced on every submenu change
	hovered       int      // index into buttons or noButton
	click         click
}

// New builds the main menu. activeMission adds a leading "resume" button.
func New(activeMission bool, deps Deps) *State {
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &State{
		deps:          deps,
		activeMission: activeMission,
		hovered:       noButton,
	}
	s.open(Main)
	return s
}

// ActiveMission reports whether the menu was opened over a running mission.
func (s *State) ActiveMission() bool { return s.activeMission }

// Submenu returns the submenu being shown.
func (s *State) Submenu() Submenu { return s.submenu }

// Buttons returns the current buttons. The slice must not be modified.
func (s *State) Buttons() []Button { return s.buttons }

// Hovered returns the index of the hovered button.
func (s *State) Hovered() (int, bool) {
	return s.hovered, s.hovered != noButton
}

// Armed returns the index a press is waiting to be confirmed on.
func (s *State) Armed() (int, bool) {
	return s.click.index, s.click.armed
}

// open swaps in the buttons for sub. Indices into the old buttons are
// meaningless afterwards, so hover and click state go with them.
func (s *State) open(sub Submenu) {
	s.submenu = sub
	s.buttons = buildButtons(s.deps.Strings, rowsFor(sub, s.activeMission))
	s.hovered = noButton
	s.click = click{}
	s.deps.Log.Debug("menu opened", "submenu", sub.String(), "buttons", len(s.buttons))
}

// Hover recomputes which button, if any, is under the cursor and plays a
// tap when the cursor arrives on a new one.
func (s *State) Hover(window event.Size, cursor event.Point) event.AppEvent {
	previous := s.hovered
	s.hovered = noButton
	for i := range s.buttons {
		b := &s.buttons[i]
		b.Hovered = s.hovered == noButton && b.Contains(s.deps.Metrics, window, cursor)
		if b.Hovered {
			s.hovered = i
		}
	}
	if s.hovered != noButton && s.hovered != previous {
		s.deps.Audio.Play(media.SoundTapMuted, tapVolume)
	}
	return event.NoEvent
}

// Press arms a click on whatever is hovered, replacing any earlier arm.
func (s *State) Press(event.Button) event.AppEvent {
	s.click.press(s.Hovered())
	return event.NoEvent
}

// Release commits a click when the primary button comes up over the same
// button it went down on. Escape backs out of a submenu, or asks to
// resume from the main menu.
func (s *State) Release(b event.Button) event.AppEvent {
	switch {
	case b.IsPrimary():
		if i, ok := s.click.release(); ok && i == s.hovered {
			return s.commit(i)
		}
	case b.IsKey(event.KeyEscape):
		if s.submenu != Main {
			s.open(Main)
			return event.NoEvent
		}
		return event.ResumeMissionEvent
	}
	return event.NoEvent
}

// Update is a no-op; the menu has no time-driven state.
func (s *State) Update() event.AppEvent {
	return event.NoEvent
}

// Render draws background, title and buttons.
func (s *State) Render(c media.Canvas) {
	w, h := c.Size()
	c.Clear(media.Black)

	scale := w / 2560
	c.Image(media.ImageBackground, media.Transform{
		X:      math.Floor(w * 0.4),
		Y:      h * 0.1,
		ScaleX: scale,
		ScaleY: scale,
	})
	c.Text(media.FaceTitle, math.Floor(h*0.3), s.deps.Strings.Text(msgTitle, nil), w*0.1, h-w*0.1, media.Red)

	window := event.Size{W: w, H: h}
	for i := range s.buttons {
		s.buttons[i].render(c, window)
	}
}
