package menu

import (
	"testing"

	"github.com/mars-mission/mars/internal/event"
	"github.com/mars-mission/mars/internal/media"
	"github.com/mars-mission/mars/internal/media/mediatest"
)

// With a 1000px wide window the menu anchor is (100, 100). Labels are the
// message IDs and every rune is 10px wide, so button i spans x in
// (100, 100+10*len(label)) and y in (68+50*i, 100+50*i).
var window = event.Size{W: 1000, H: 800}

var (
	leftMouse = event.Mouse(event.MouseLeft)
	escape    = event.Keyboard(event.KeyEscape)
)

func newTestMenu(activeMission bool) (*State, *mediatest.Audio) {
	audio := &mediatest.Audio{}
	s := New(activeMission, Deps{
		Metrics: mediatest.FixedMetrics{Advance: 10},
		Audio:   audio,
		Strings: mediatest.IDStrings{},
	})
	return s, audio
}

// over returns a point inside the label at display index i.
func over(i int) event.Point {
	return event.Point{X: 110, Y: 90 + float64(i*rowSpacing)}
}

var outside = event.Point{X: 5, Y: 5}

// clickAt hovers index i, then presses and releases the primary button.
func clickAt(s *State, i int) event.AppEvent {
	s.Hover(window, over(i))
	s.Press(leftMouse)
	return s.Release(leftMouse)
}

func labels(s *State) []string {
	out := make([]string, 0, len(s.buttons))
	for _, b := range s.buttons {
		out = append(out, b.Label)
	}
	return out
}

func TestNew_MainMenuOrderDependsOnActiveMission(t *testing.T) {
	withMission, _ := newTestMenu(true)
	got := labels(withMission)
	want := []string{msgResume, msgNewMission, msgLoadMission, msgOptions, msgExit}
	if len(got) != len(want) {
		t.Fatalf("expected %d buttons, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("button %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	noMission, _ := newTestMenu(false)
	if got := labels(noMission); len(got) != 4 || got[0] != msgNewMission {
		t.Fatalf("expected 4 buttons starting with new mission, got %v", got)
	}
	if noMission.Submenu() != Main {
		t.Fatalf("expected main menu, got %s", noMission.Submenu())
	}
}

func TestHover_OutsideEveryButtonClearsHover(t *testing.T) {
	s, _ := newTestMenu(true)
	s.Hover(window, over(2))
	if i, ok := s.Hovered(); !ok || i != 2 {
		t.Fatalf("expected hovered 2, got %d (%v)", i, ok)
	}

	for _, p := range []event.Point{
		outside,
		{X: 100, Y: 90},  // on the left edge
		{X: 110, Y: 100}, // on the baseline
		{X: 110, Y: 68},  // on the top edge
		{X: 110, Y: 110}, // gap between rows
		{X: 500, Y: 90},  // past the label width
	} {
		s.Hover(window, p)
		if i, ok := s.Hovered(); ok {
			t.Fatalf("point %+v: expected no hover, got %d", p, i)
		}
		for i, b := range s.Buttons() {
			if b.Hovered {
				t.Fatalf("point %+v: button %d still flagged hovered", p, i)
			}
		}
	}
}

func TestHover_FlagsOnlyTheButtonUnderCursor(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, over(1))
	for i, b := range s.Buttons() {
		if b.Hovered != (i == 1) {
			t.Fatalf("button %d hovered=%v", i, b.Hovered)
		}
	}
}

func TestHover_TapPlaysOnlyWhenHoverChangesToAButton(t *testing.T) {
	s, audio := newTestMenu(false)

	s.Hover(window, over(0))
	if n := audio.Count(media.SoundTapMuted); n != 1 {
		t.Fatalf("first hover: expected 1 tap, got %d", n)
	}
	if audio.Plays[0].Volume != tapVolume {
		t.Fatalf("expected tap volume %.1f, got %.1f", tapVolume, audio.Plays[0].Volume)
	}

	s.Hover(window, event.Point{X: 150, Y: 80}) // still button 0
	if n := audio.Count(media.SoundTapMuted); n != 1 {
		t.Fatalf("re-hover: expected no new tap, got %d total", n)
	}

	s.Hover(window, outside)
	if n := audio.Count(media.SoundTapMuted); n != 1 {
		t.Fatalf("leaving: expected no new tap, got %d total", n)
	}

	s.Hover(window, over(0))
	s.Hover(window, over(1))
	if n := audio.Count(media.SoundTapMuted); n != 3 {
		t.Fatalf("expected 3 taps after re-entering and moving, got %d", n)
	}
}

func TestClick_SameButtonCommits(t *testing.T) {
	s, _ := newTestMenu(false)
	if ev := clickAt(s, 0); !ev.IsNone() {
		t.Fatalf("opening a submenu should emit nothing, got %s", ev)
	}
	if s.Submenu() != NewMission {
		t.Fatalf("expected new mission submenu, got %s", s.Submenu())
	}
	if len(s.Buttons()) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(s.Buttons()))
	}
}

func TestClick_MovedOffButtonCancels(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, over(0))
	s.Press(leftMouse)
	s.Hover(window, over(3))
	if ev := s.Release(leftMouse); !ev.IsNone() {
		t.Fatalf("expected cancelled click, got %s", ev)
	}
	if s.Submenu() != Main {
		t.Fatalf("cancelled click changed submenu to %s", s.Submenu())
	}
	if _, armed := s.Armed(); armed {
		t.Fatal("release should always disarm")
	}

	// Exit sits at index 3; the earlier press must not carry over.
	if ev := s.Release(leftMouse); !ev.IsNone() {
		t.Fatalf("second release without press emitted %s", ev)
	}
}

func TestClick_PressWithNothingHoveredNeverCommits(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, outside)
	s.Press(leftMouse)
	s.Hover(window, over(3))
	if ev := s.Release(leftMouse); !ev.IsNone() {
		t.Fatalf("expected nothing, got %s", ev)
	}
}

func TestPress_OverwritesEarlierArm(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, over(3))
	s.Press(leftMouse)
	s.Hover(window, outside)
	s.Press(leftMouse)
	if _, armed := s.Armed(); armed {
		t.Fatal("press over nothing should disarm")
	}
	s.Hover(window, over(3))
	if ev := s.Release(leftMouse); !ev.IsNone() {
		t.Fatalf("expected nothing, got %s", ev)
	}
}

func TestRelease_NonPrimaryButtonKeepsArm(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, over(3))
	s.Press(leftMouse)
	if ev := s.Release(event.Mouse(event.MouseRight)); !ev.IsNone() {
		t.Fatalf("right release emitted %s", ev)
	}
	if i, armed := s.Armed(); !armed || i != 3 {
		t.Fatalf("expected arm at 3 to survive, got %d (%v)", i, armed)
	}
	if ev := s.Release(leftMouse); ev != event.ExitEvent {
		t.Fatalf("expected exit, got %s", ev)
	}
}

func TestTransitionTable_MainMenu(t *testing.T) {
	cases := []struct {
		name          string
		activeMission bool
		index         int
		wantEvent     event.AppEvent
		wantSubmenu   Submenu
	}{
		{"resume", true, 0, event.ResumeMissionEvent, Main},
		{"new mission (active)", true, 1, event.NoEvent, NewMission},
		{"new mission", false, 0, event.NoEvent, NewMission},
		{"load mission (active)", true, 2, event.NoEvent, LoadMission},
		{"load mission", false, 1, event.NoEvent, LoadMission},
		{"options (active)", true, 3, event.NoEvent, Options},
		{"options", false, 2, event.NoEvent, Options},
		{"exit (active)", true, 4, event.ExitEvent, Main},
		{"exit", false, 3, event.ExitEvent, Main},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestMenu(tc.activeMission)
			if ev := clickAt(s, tc.index); ev != tc.wantEvent {
				t.Fatalf("expected %s, got %s", tc.wantEvent, ev)
			}
			if s.Submenu() != tc.wantSubmenu {
				t.Fatalf("expected submenu %s, got %s", tc.wantSubmenu, s.Submenu())
			}
		})
	}
}

func TestTransitionTable_NewMissionSubmenu(t *testing.T) {
	for i, want := range []event.MissionDifficulty{event.Easy, event.Medium, event.Hard} {
		s, _ := newTestMenu(true)
		clickAt(s, 1)
		if ev := clickAt(s, i); ev != event.NewMissionEvent(want) {
			t.Fatalf("index %d: expected %s, got %s", i, event.NewMissionEvent(want), ev)
		}
	}

	// Back sits below an extra gap: y offset 200, i.e. row 4.
	s, _ := newTestMenu(true)
	clickAt(s, 1)
	if ev := clickAt(s, 4); !ev.IsNone() {
		t.Fatalf("back should emit nothing, got %s", ev)
	}
	if s.Submenu() != Main {
		t.Fatalf("expected main menu after back, got %s", s.Submenu())
	}
	if got := labels(s); len(got) != 5 || got[0] != msgResume {
		t.Fatalf("main menu should be rebuilt with resume, got %v", got)
	}
}

func TestStubSubmenus_HaveNoButtons(t *testing.T) {
	for _, idx := range []int{1, 2} {
		s, _ := newTestMenu(false)
		clickAt(s, idx)
		if len(s.Buttons()) != 0 {
			t.Fatalf("%s: expected no buttons, got %d", s.Submenu(), len(s.Buttons()))
		}
		if ev := clickAt(s, 0); !ev.IsNone() {
			t.Fatalf("%s: clicking empty submenu emitted %s", s.Submenu(), ev)
		}
	}
}

func TestSubmenuChange_ResetsHoverAndArm(t *testing.T) {
	s, _ := newTestMenu(false)
	clickAt(s, 0)
	if _, ok := s.Hovered(); ok {
		t.Fatal("hover should be cleared when buttons are replaced")
	}
	if _, armed := s.Armed(); armed {
		t.Fatal("arm should be cleared when buttons are replaced")
	}

	// Arm on "hard" inside the submenu, then Escape swaps the buttons out.
	s.Hover(window, over(2))
	s.Press(leftMouse)
	if _, armed := s.Armed(); !armed {
		t.Fatal("press over hard should arm")
	}
	s.Release(escape)
	if _, armed := s.Armed(); armed {
		t.Fatal("escape back to main should clear the arm")
	}
	for i, b := range s.Buttons() {
		if b.Hovered {
			t.Fatalf("fresh main menu has button %d hovered", i)
		}
	}
}

func TestEscape_BacksOutThenResumes(t *testing.T) {
	s, _ := newTestMenu(true)
	if ev := s.Release(escape); ev != event.ResumeMissionEvent {
		t.Fatalf("escape at main: expected resume, got %s", ev)
	}

	for _, idx := range []int{1, 2, 3} {
		s, _ := newTestMenu(true)
		clickAt(s, idx)
		sub := s.Submenu()
		if ev := s.Release(escape); !ev.IsNone() {
			t.Fatalf("escape in %s: expected nothing, got %s", sub, ev)
		}
		if s.Submenu() != Main {
			t.Fatalf("escape in %s: expected main, got %s", sub, s.Submenu())
		}
		if len(s.Buttons()) != 5 {
			t.Fatalf("escape in %s: expected 5 main buttons, got %d", sub, len(s.Buttons()))
		}
		if ev := s.Release(escape); ev != event.ResumeMissionEvent {
			t.Fatalf("second escape: expected resume, got %s", ev)
		}
	}
}

func TestUpdate_NoEvent(t *testing.T) {
	s, _ := newTestMenu(false)
	if ev := s.Update(); !ev.IsNone() {
		t.Fatalf("expected nothing, got %s", ev)
	}
}

func TestRender_DrawsTitleAndButtons(t *testing.T) {
	s, _ := newTestMenu(false)
	s.Hover(window, over(1))
	before := s.Buttons()[1]

	c := mediatest.NewCanvas(window.W, window.H)
	s.Render(c)

	if len(c.Clears) != 1 || c.Clears[0] != media.Black {
		t.Fatalf("expected one black clear, got %v", c.Clears)
	}
	if len(c.Images) != 1 || c.Images[0].Transform.X != 400 || c.Images[0].Transform.ScaleX != 1000.0/2560 {
		t.Fatalf("unexpected background draw %+v", c.Images)
	}
	title, ok := c.FindText(msgTitle)
	if !ok || title.Face != media.FaceTitle || title.Size != 240 || title.Y != 700 {
		t.Fatalf("unexpected title draw %+v", title)
	}
	hovered, ok := c.FindText(msgLoadMission)
	if !ok || hovered.Color != media.Mars || hovered.X != 100 || hovered.Y != 150 {
		t.Fatalf("unexpected hovered button draw %+v", hovered)
	}
	plain, _ := c.FindText(msgExit)
	if plain.Color != media.Red {
		t.Fatalf("idle button should be red, got %v", plain.Color)
	}
	if s.Buttons()[1] != before {
		t.Fatal("render mutated button state")
	}
}
