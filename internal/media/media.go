// Package media declares the collaborators the core draws, measures,
// plays and labels through. Implementations live in render, audio and
// locale; the core only sees these interfaces.
package media

import "image/color"

// Face selects a font face.
type Face uint8

const (
	FaceBody  Face = iota // menu buttons, mission HUD
	FaceTitle             // menu title
)

// ImageID selects a loaded image.
type ImageID uint8

const (
	ImageBackground ImageID = iota
)

// Transform scales an image by (ScaleX, ScaleY) and puts its top-left
// corner at (X, Y).
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Canvas is a drawing context bound to the current viewport.
type Canvas interface {
	// Size returns the viewport size.
	Size() (w, h float64)
	Clear(c color.Color)
	// Text draws s with its baseline starting at (x, y).
	Text(face Face, size float64, s string, x, y float64, c color.Color)
	Image(id ImageID, t Transform)
}

// Metrics measures rendered text.
type Metrics interface {
	TextWidth(face Face, size float64, s string) float64
}

// Sound selects a sound effect or track.
type Sound uint8

const (
	SoundTapMuted Sound = iota // hover feedback
	SoundTheme                 // startup music
)

func (s Sound) String() string {
	switch s {
	case SoundTapMuted:
		return "tap-muted"
	case SoundTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Audio plays sounds. Play is fire-and-forget and must not block.
type Audio interface {
	Play(s Sound, volume float64)
}

// Strings resolves user-visible text by message ID. data may be nil.
type Strings interface {
	Text(id string, data map[string]any) string
}
