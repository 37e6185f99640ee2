package bitmapface

import (
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer measures text set in a font face. It is not safe for concurrent
// use, as font faces are not.
type Measurer struct {
	face       font.Face
	lineHeight float32 // native line height of face
}

// New creates a measurer for face. A nil face selects basicfont.Face7x13.
func New(face font.Face) *Measurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	lh := float32(m.Ascent+m.Descent) / 64
	if lh <= 0 {
		tracer().Errorf("font face without line height, assuming 1px")
		lh = 1
	}
	return &Measurer{face: face, lineHeight: lh}
}

// LineHeight returns the line height for a font size. Size 0 selects the
// native size of the face.
func (bm *Measurer) LineHeight(size float32) float32 {
	return bm.lineHeight * bm.scale(size)
}

func (bm *Measurer) scale(size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / bm.lineHeight
}

// Measure implements frame.Measurer. The font family is ignored.
func (bm *Measurer) Measure(s, family string, size, wrapWidth float32) (float32, float32) {
	scale := bm.scale(size)
	w, lines := text.Extent(s, wrapWidth, func(s string) float32 {
		return float32(font.MeasureString(bm.face, s)) / 64 * scale
	})
	return w, float32(lines) * bm.lineHeight * scale
}

var _ frame.Measurer = &Measurer{}
