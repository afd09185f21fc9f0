// Package mission is the in-mission screen. It only knows how to show
// the budget and to hand control back to the menu.
package mission

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
)

// Phase is the mission stage.
type Phase uint8

const (
	Planning  Phase = iota // initial: spend the budget
	Execution              // not yet entered by any transition
)

func (p Phase) String() string {
	switch p {
	case Planning:
		return "planning"
	case Execution:
		return "execution"
	default:
		return "unknown"
	}
}

const (
	hudFontSize = 32

	msgBudget            = "budget"
	msgUnderConstruction = "under_construction"
)

// State is a running mission. Budget is only meaningful while Planning.
type State struct {
	phase   Phase
	budget  float64
	strings media.Strings
	log     *slog.Logger
}

// New starts a mission in Planning with the given budget.
func New(budget float64, strings media.Strings, log *slog.Logger) *State {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		phase:   Planning,
		budget:  budget,
		strings: strings,
		log:     log,
	}
}

func (s *State) Phase() Phase { return s.phase }

func (s *State) Budget() float64 { return s.budget }

func (s *State) Hover(event.Size, event.Point) event.AppEvent {
	return event.NoEvent
}

func (s *State) Press(b event.Button) event.AppEvent {
	s.log.Debug("mission registered press", "button", b.String(), "phase", s.phase.String())
	return event.NoEvent
}

// Release of Escape brings the menu back up over the mission.
func (s *State) Release(b event.Button) event.AppEvent {
	if b.IsKey(event.KeyEscape) {
		return event.OpenMenuEvent
	}
	return event.NoEvent
}

func (s *State) Update() event.AppEvent {
	return event.NoEvent
}

func (s *State) Render(c media.Canvas) {
	w, h := c.Size()
	c.Clear(media.Black)

	var line string
	switch s.phase {
	case Planning:
		line = s.strings.Text(msgBudget, map[string]any{"Budget": formatBudget(s.budget)})
	default:
		line = s.strings.Text(msgUnderConstruction, nil)
	}
	c.Text(media.FaceBody, hudFontSize, line, w*0.1, h-w*0.1, media.Red)
}

// formatBudget always shows one decimal place, e.g. "750.0".
func formatBudget(b float64) string {
	return fmt.Sprintf("%.1f", b)
}
