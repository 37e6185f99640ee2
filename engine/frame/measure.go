package frame

// Measurer measures the extent of a text set in a given font family and size.
// A wrapWidth > 0 asks the measurer to break text into lines not wider
// than wrapWidth, if possible.
type Measurer interface {
	Measure(text, family string, size, wrapWidth float32) (w, h float32)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(text, family string, size, wrapWidth float32) (w, h float32)

// Measure calls f.
func (f MeasureFunc) Measure(text, family string, size, wrapWidth float32) (float32, float32) {
	return f(text, family, size, wrapWidth)
}

// memo remembers the result of the last measurement within a single box
// resolution, so that text is measured at most once per wrap width.
type memo struct {
	measurer Measurer
	text     string
	family   string
	size     float32
	valid    bool
	wrap     float32
	w, h     float32
}

func (m *memo) measure(wrapWidth float32) (float32, float32) {
	if wrapWidth <= 0 {
		wrapWidth = 0
	}
	if m.valid && (m.wrap == wrapWidth || (m.wrap == 0 && m.w <= wrapWidth)) {
		return m.w, m.h
	}
	if m.text == "" {
		m.valid, m.wrap, m.w, m.h = true, wrapWidth, 0, 0
		return 0, 0
	}
	if m.measurer == nil {
		tracer().Errorf("no measurer for text '%s'", m.text)
		m.valid, m.wrap, m.w, m.h = true, wrapWidth, 0, 0
		return 0, 0
	}
	m.w, m.h = m.measurer.Measure(m.text, m.family, m.size, wrapWidth)
	m.valid, m.wrap = true, wrapWidth
	return m.w, m.h
}
