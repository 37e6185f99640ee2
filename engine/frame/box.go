package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
)

// Box holds the resolved rectangles of a widget, following the CSS box model.
type Box struct {
	Margin  dimen.Rect // outside of border
	Border  dimen.Rect // outer edge of the border
	Padding dimen.Rect // inside of border
	Content dimen.Rect
	Text    dimen.Rect // placed within Content
}

// Sizing flags control how a box is sized and in which direction it grows.
type Sizing uint8

// Sizing flags. Without an expand flag, a box is fitted to its content along
// that axis.
const (
	ExpandH Sizing = 1 << iota // fill available width
	ExpandV                    // fill available height
	ToLeft                     // grow from the anchor to the left
	ToTop                      // grow from the anchor upwards

	Expand = ExpandH | ExpandV
)

func (s Sizing) String() string {
	str := ""
	flag := func(f Sizing, name string) {
		if s&f != 0 {
			if str != "" {
				str += "|"
			}
			str += name
		}
	}
	flag(ExpandH, "expand-h")
	flag(ExpandV, "expand-v")
	flag(ToLeft, "to-left")
	flag(ToTop, "to-top")
	if str == "" {
		return "fit"
	}
	return str
}

// Width is the width of the margin box.
func (box Box) Width() float32 {
	return box.Margin.Width()
}

// Height is the height of the margin box.
func (box Box) Height() float32 {
	return box.Margin.Height()
}

// Translate shifts all rectangles of a box by v.
func (box Box) Translate(v dimen.Point) Box {
	return Box{
		Margin:  box.Margin.Translate(v),
		Border:  box.Border.Translate(v),
		Padding: box.Padding.Translate(v),
		Content: box.Content.Translate(v),
		Text:    box.Text.Translate(v),
	}
}

// TranslateX shifts all rectangles of a box horizontally.
func (box Box) TranslateX(dx float32) Box {
	return box.Translate(dimen.Point{X: dx})
}

// TranslateY shifts all rectangles of a box vertically.
func (box Box) TranslateY(dy float32) Box {
	return box.Translate(dimen.Point{Y: dy})
}

// Nested checks that content ⊆ padding ⊆ border ⊆ margin.
func (box Box) Nested() bool {
	return box.Padding.Contains(box.Content) &&
		box.Border.Contains(box.Padding) &&
		box.Margin.Contains(box.Border)
}

// DebugString returns a textual representation of a box's rectangles.
// Intended for debugging.
func (box Box) DebugString() string {
	s := "box{\n"
	s += fmt.Sprintf("   margin  = %v\n", box.Margin)
	s += fmt.Sprintf("   border  = %v\n", box.Border)
	s += fmt.Sprintf("   padding = %v\n", box.Padding)
	s += fmt.Sprintf("   content = %v\n", box.Content)
	s += fmt.Sprintf("   text    = %v\n", box.Text)
	s += "}"
	return s
}

// BoxAt creates a box with all rectangles set to r. Used for items without
// any decoration, e.g. spacers.
func BoxAt(r dimen.Rect) Box {
	return Box{Margin: r, Border: r, Padding: r, Content: r, Text: r}
}
