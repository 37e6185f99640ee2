package monospace

import (
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/text"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Ratios of cell width and line height to the font size, for measurers
// without a fixed cell width.
const (
	CellRatio    = 0.6
	LeadingRatio = 1.2
)

// Measurer measures monospace text.
type Measurer struct {
	em      float32
	context *uax11.Context
}

// New creates a measurer. If em is positive, cells are em wide and lines
// 2 em high, whatever the font size. Otherwise cells and lines scale with the
// font size. context selects the treatment of ambiguous East Asian widths,
// nil means uax11.LatinContext.
func New(em float32, context *uax11.Context) *Measurer {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return &Measurer{em: em, context: context}
}

func (ms *Measurer) cell(size float32) float32 {
	if ms.em > 0 {
		return ms.em
	}
	return size * CellRatio
}

func (ms *Measurer) lineHeight(size float32) float32 {
	if ms.em > 0 {
		return 2 * ms.em
	}
	return size * LeadingRatio
}

// Cells returns the number of cells a single line of text occupies.
func (ms *Measurer) Cells(s string) int {
	gstr := grapheme.StringFromString(s)
	n := 0
	for i := 0; i < gstr.Len(); i++ {
		n += uax11.Width([]byte(gstr.Nth(i)), ms.context)
	}
	return n
}

// Measure implements frame.Measurer. The font family is ignored.
func (ms *Measurer) Measure(s, family string, size, wrapWidth float32) (float32, float32) {
	cell := ms.cell(size)
	if cell <= 0 {
		tracer().Errorf("monospace measurer without cell width, font size is %g", size)
		return 0, 0
	}
	w, lines := text.Extent(s, wrapWidth, func(s string) float32 {
		return float32(ms.Cells(s)) * cell
	})
	return w, float32(lines) * ms.lineHeight(size)
}

var _ frame.Measurer = &Measurer{}
