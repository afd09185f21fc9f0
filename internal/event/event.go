// Package event defines the vocabulary shared by every screen: the
// application-level events a screen may emit, the input identities the
// driver delivers, and the capability interfaces a screen implements.
package event

import "fmt"

// MissionDifficulty selects the starting budget of a new mission.
type MissionDifficulty uint8

const (
	Easy MissionDifficulty = iota
	Medium
	Hard
)

// Budget returns the starting budget (millions) for the difficulty.
func (d MissionDifficulty) Budget() float64 {
	switch d {
	case Medium:
		return 750
	case Hard:
		return 500
	default:
		return 1000
	}
}

func (d MissionDifficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// Kind tags an AppEvent. The zero Kind is None: "no event".
type Kind uint8

const (
	None Kind = iota
	Exit
	OpenMenu
	ResumeMission
	NewMission
)

// AppEvent is returned by screen handlers to change application level state.
// Difficulty is only meaningful when Kind is NewMission.
type AppEvent struct {
	Kind       Kind
	Difficulty MissionDifficulty
}

// Convenience values for the payload-free events.
var (
	NoEvent            = AppEvent{}
	ExitEvent          = AppEvent{Kind: Exit}
	OpenMenuEvent      = AppEvent{Kind: OpenMenu}
	ResumeMissionEvent = AppEvent{Kind: ResumeMission}
)

// NewMissionEvent returns the event that starts a mission at difficulty d.
func NewMissionEvent(d MissionDifficulty) AppEvent {
	return AppEvent{Kind: NewMission, Difficulty: d}
}

// IsNone reports whether the handler produced nothing.
func (e AppEvent) IsNone() bool { return e.Kind == None }

func (e AppEvent) String() string {
	switch e.Kind {
	case None:
		return "none"
	case Exit:
		return "exit"
	case OpenMenu:
		return "open_menu"
	case ResumeMission:
		return "resume_mission"
	case NewMission:
		return "new_mission(" + e.Difficulty.String() + ")"
	default:
		return fmt.Sprintf("event(%d)", uint8(e.Kind))
	}
}
