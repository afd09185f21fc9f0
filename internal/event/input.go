package event

import "fmt"

// Point is a cursor position in window pixels.
type Point struct {
	X, Y float64
}

// Size is a window or viewport size in pixels.
type Size struct {
	W, H float64
}

// Device says which field of a Button identifies it.
type Device uint8

const (
	DeviceMouse Device = iota
	DeviceKeyboard
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota // primary
	MouseRight
	MouseMiddle
)

// Key is a keyboard key, named the way the driver reports it (e.g. "Escape").
type Key string

const (
	KeyEscape Key = "Escape"
	KeyEnter  Key = "Enter"
	KeySpace  Key = "Space"
)

// Button is the identity of a pressed or released mouse button or key.
type Button struct {
	Device Device
	Mouse  MouseButton
	Key    Key
}

// Mouse returns the Button for a pointer button.
func Mouse(b MouseButton) Button { return Button{Device: DeviceMouse, Mouse: b} }

// Keyboard returns the Button for a key.
func Keyboard(k Key) Button { return Button{Device: DeviceKeyboard, Key: k} }

// IsPrimary reports whether b is the left mouse button.
func (b Button) IsPrimary() bool { return b.Device == DeviceMouse && b.Mouse == MouseLeft }

// IsKey reports whether b is the keyboard key k.
func (b Button) IsKey(k Key) bool { return b.Device == DeviceKeyboard && b.Key == k }

func (b Button) String() string {
	if b.Device == DeviceKeyboard {
		return "key:" + string(b.Key)
	}
	switch b.Mouse {
	case MouseLeft:
		return "mouse:left"
	case MouseRight:
		return "mouse:right"
	case MouseMiddle:
		return "mouse:middle"
	default:
		return fmt.Sprintf("mouse:%d", uint8(b.Mouse))
	}
}
