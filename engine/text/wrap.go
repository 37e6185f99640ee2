package text

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"
)

// Line is a line of wrapped text. Trailing whitespace is not part of a line.
type Line struct {
	Text  string
	Width float32
}

// Advance returns the width of a string set on a single line.
type Advance func(s string) float32

// Wrap breaks text into lines not wider than wrapWidth, if possible. Lines
// break at newline characters and, for wrapWidth > 0, greedily at UAX#14
// wrap opportunities. A fragment wider than wrapWidth gets a line of its
// own.
func Wrap(text string, wrapWidth float32, advance Advance) []Line {
	text = norm.NFC.String(text)
	var lines []Line
	for _, para := range strings.Split(text, "\n") {
		lines = wrapParagraph(para, wrapWidth, advance, lines)
	}
	return lines
}

// Extent returns width and number of lines of wrapped text.
func Extent(text string, wrapWidth float32, advance Advance) (float32, int) {
	lines := Wrap(text, wrapWidth, advance)
	var w float32
	for _, l := range lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return w, len(lines)
}

func wrapParagraph(para string, wrapWidth float32, advance Advance, lines []Line) []Line {
	if wrapWidth <= 0 || advance(para) <= wrapWidth {
		return appendLine(lines, para, advance)
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(para))
	var line strings.Builder
	for seg.Next() {
		frag := seg.Text()
		candidate := strings.TrimRightFunc(line.String()+frag, unicode.IsSpace)
		if line.Len() > 0 && advance(candidate) > wrapWidth {
			lines = appendLine(lines, line.String(), advance)
			line.Reset()
		}
		line.WriteString(frag)
	}
	lines = appendLine(lines, line.String(), advance)
	tracer().Debugf("wrapped '%s' at %g, %d lines so far", para, wrapWidth, len(lines))
	return lines
}

func appendLine(lines []Line, s string, advance Advance) []Line {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	return append(lines, Line{Text: s, Width: advance(s)})
}
