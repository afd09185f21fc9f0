package media

import "image/color"

// Palette.
var (
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red   = color.RGBA{0x9e, 0x13, 0x16, 0xff} // text
	Mars  = color.RGBA{0xaa, 0x43, 0x37, 0xff} // hovered text
)
