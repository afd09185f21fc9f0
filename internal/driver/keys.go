package driver

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mars-mission/mars/internal/event"
)

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button event.MouseButton
}{
	{ebiten.MouseButtonLeft, event.MouseLeft},
	{ebiten.MouseButtonRight, event.MouseRight},
	{ebiten.MouseButtonMiddle, event.MouseMiddle},
}

// keyButton names a key the way ebiten does ("Escape", "Enter", "A").
func keyButton(k ebiten.Key) event.Button {
	return event.Keyboard(event.Key(k.String()))
}
