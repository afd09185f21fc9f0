// Package render draws screens onto ebiten images.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/mars-mission/mars/internal/media"
)

// Canvas adapts an ebiten image to media.Canvas. Target must be called
// with the frame's screen before drawing.
type Canvas struct {
	fonts  *Fonts
	images Images
	dst    *ebiten.Image
}

func NewCanvas(fonts *Fonts, images Images) *Canvas {
	return &Canvas{fonts: fonts, images: images}
}

// Target sets the image subsequent calls draw onto.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

// Text draws s with its baseline-left corner at (x, y). text/v2 positions
// from the top of the line, so the ascent is subtracted.
func (c *Canvas) Text(id media.Face, size float64, s string, x, y float64, col color.Color) {
	face := c.fonts.face(id, size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) Image(id media.ImageID, t media.Transform) {
	img, ok := c.images[id]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Translate(t.X, t.Y)
	c.dst.DrawImage(img, op)
}
