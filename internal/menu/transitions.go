package menu

import "github.com/mars-mission/mars/internal/event"

// Main menu slots in display order when a mission is active. Without an
// active mission there is no resume button and every index shifts down by
// one, so displayed index i is slot i+1.
const (
	slotResume = iota
	slotNewMission
	slotLoadMission
	slotOptions
	slotExit
)

var difficulties = [...]event.MissionDifficulty{event.Easy, event.Medium, event.Hard}

// commit runs the action for the committed button at index i.
// Combinations without an entry do nothing.
func (s *State) commit(i int) event.AppEvent {
	switch s.submenu {
	case Main:
		slot := i
		if !s.activeMission {
			slot++
		}
		switch slot {
		case slotResume:
			return event.ResumeMissionEvent
		case slotNewMission:
			s.open(NewMission)
		case slotLoadMission:
			s.open(LoadMission)
		case slotOptions:
			s.open(Options)
		case slotExit:
			return event.ExitEvent
		}

	case NewMission:
		switch {
		case i < len(difficulties):
			return event.NewMissionEvent(difficulties[i])
		case i == len(difficulties): // back
			s.open(Main)
		}

	case Options:
		s.deps.Log.Debug("button pressed in options menu", "index", i)

	case LoadMission:
		// no buttons yet
	}
	return event.NoEvent
}
