package event

import "github.com/mars-mission/mars/internal/media"

// Hoverer receives cursor movement.
type Hoverer interface {
	Hover(window Size, cursor Point) AppEvent
}

// Presser receives button-down notifications. A press only records a
// candidate interaction; it never commits one.
type Presser interface {
	Press(b Button) AppEvent
}

// Releaser receives button-up notifications and commits or cancels
// whatever Press started.
type Releaser interface {
	Release(b Button) AppEvent
}

// Updater receives one call per simulation tick.
type Updater interface {
	Update() AppEvent
}

// Renderer draws the current state. Render must not mutate domain state.
type Renderer interface {
	Render(c media.Canvas)
}

// Screen is a top-level interaction target: the menu or the mission.
type Screen interface {
	Hoverer
	Presser
	Releaser
	Updater
	Renderer
}
