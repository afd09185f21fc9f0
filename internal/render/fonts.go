package render

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mars-mission/mars/internal/media"
)

// Fonts holds the parsed typefaces and answers width queries for the menu's
// hit-testing.
type Fonts struct {
	body  *text.GoTextFaceSource
	title *text.GoTextFaceSource

	mu     sync.Mutex
	widths *widthCache
}

// NewFonts parses the embedded Go fonts.
func NewFonts() (*Fonts, error) {
	body, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, media.NewAssetError("parse font", "goregular", err)
	}
	title, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, media.NewAssetError("parse font", "gobold", err)
	}
	return &Fonts{
		body:   body,
		title:  title,
		widths: newWidthCache(defaultWidthCacheSize),
	}, nil
}

func (f *Fonts) face(id media.Face, size float64) *text.GoTextFace {
	src := f.body
	if id == media.FaceTitle {
		src = f.title
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// TextWidth returns the advance width of s in pixels.
func (f *Fonts) TextWidth(id media.Face, size float64, s string) float64 {
	k := widthKey{face: id, size: size, text: s}

	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.widths.get(k); ok {
		return w
	}
	w, _ := text.Measure(s, f.face(id, size), 0)
	f.widths.set(k, w)
	return w
}
