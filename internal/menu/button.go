package menu

import (
	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
)

const (
	// FontSize is the button label size; it is also the height of the hit box.
	FontSize = 32

	rowSpacing = 50
)

// Button is a clickable label.
type Button struct {
	Label   string
	Offset  event.Point // relative to the menu anchor
	Hovered bool
}

// anchor returns the baseline-left corner of a label at offset off.
// Both axes derive from the window width.
func anchor(window event.Size, off event.Point) (x, y float64) {
	return window.W*0.1 + off.X, window.W*0.1 + off.Y
}

// Contains reports whether p lies strictly inside the label's box: the
// measured text width wide, FontSize tall, sitting on the baseline.
func (b *Button) Contains(m media.Metrics, window event.Size, p event.Point) bool {
	x, y := anchor(window, b.Offset)
	w := m.TextWidth(media.FaceBody, FontSize, b.Label)
	return x < p.X && p.X < x+w && y-FontSize < p.Y && p.Y < y
}

func (b *Button) render(c media.Canvas, window event.Size) {
	x, y := anchor(window, b.Offset)
	clr := media.Red
	if b.Hovered {
		clr = media.Mars
	}
	c.Text(media.FaceBody, FontSize, b.Label, x, y, clr)
}

// Message IDs for button labels.
const (
	msgResume      = "resume"
	msgNewMission  = "new_mission"
	msgLoadMission = "load_mission"
	msgOptions     = "options"
	msgExit        = "exit"
	msgEasy        = "easy"
	msgMedium      = "medium"
	msgHard        = "hard"
	msgBack        = "back"
	msgTitle       = "title"
)

type row struct {
	id string
	y  float64
}

func mainMenuRows(activeMission bool) []row {
	var rows []row
	y := 0.0
	if activeMission {
		rows = append(rows, row{msgResume, y})
		y += rowSpacing
	}
	for _, id := range []string{msgNewMission, msgLoadMission, msgOptions, msgExit} {
		rows = append(rows, row{id, y})
		y += rowSpacing
	}
	return rows
}

func newMissionRows() []row {
	return []row{
		{msgEasy, 0},
		{msgMedium, rowSpacing},
		{msgHard, 2 * rowSpacing},
		{msgBack, 4 * rowSpacing}, // extra gap before back
	}
}

// rowsFor returns the layout of a submenu. Load-mission and options have
// no buttons yet.
func rowsFor(sub Submenu, activeMission bool) []row {
	switch sub {
	case Main:
		return mainMenuRows(activeMission)
	case NewMission:
		return newMissionRows()
	default:
		return nil
	}
}

func buildButtons(s media.Strings, rows []row) []Button {
	buttons := make([]Button, 0, len(rows))
	for _, r := range rows {
		buttons = append(buttons, Button{
			Label:  s.Text(r.id, nil),
			Offset: event.Point{X: 0, Y: r.y},
		})
	}
	return buttons
}
