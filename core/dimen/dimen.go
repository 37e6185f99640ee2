// Package dimen implements dimensions, units and screen geometry.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// Dimensions are screen pixels, already multiplied by the UI scale factor.
// Sub-pixel values are legal; rounding is left to the renderer.

// Infinity is the largest possible dimension. Max-dimensions default to it.
const Infinity float32 = math.MaxFloat32

// Point is a point on the screen, or a size if interpreted as a vector.
type Point struct {
	X, Y float32
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Rect is a rectangle on the screen. Y grows downwards.
type Rect struct {
	TopL, BotR Point
}

// R is a shortcut to create a rectangle from coordinates.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{TopL: Point{x0, y0}, BotR: Point{x1, y1}}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() float32 {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() float32 {
	return r.BotR.Y - r.TopL.Y
}

// Size returns width and height as a vector.
func (r Rect) Size() Point {
	return Point{r.Width(), r.Height()}
}

// Empty is true if r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Translate moves r along a vector.
func (r Rect) Translate(v Point) Rect {
	return Rect{TopL: r.TopL.Add(v), BotR: r.BotR.Add(v)}
}

// TranslateX moves r horizontally.
func (r Rect) TranslateX(dx float32) Rect {
	r.TopL.X += dx
	r.BotR.X += dx
	return r
}

// TranslateY moves r vertically.
func (r Rect) TranslateY(dy float32) Rect {
	r.TopL.Y += dy
	r.BotR.Y += dy
	return r
}

// Canonical swaps the coordinates of each axis, if necessary, so that
// TopL is the minimum and BotR the maximum.
func (r Rect) Canonical() Rect {
	if r.TopL.X > r.BotR.X {
		r.TopL.X, r.BotR.X = r.BotR.X, r.TopL.X
	}
	if r.TopL.Y > r.BotR.Y {
		r.TopL.Y, r.BotR.Y = r.BotR.Y, r.TopL.Y
	}
	return r
}

// Contains is true if o lies completely inside of r (borders may touch).
func (r Rect) Contains(o Rect) bool {
	return o.TopL.X >= r.TopL.X && o.TopL.Y >= r.TopL.Y &&
		o.BotR.X <= r.BotR.X && o.BotR.Y <= r.BotR.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		TopL: Point{Min(r.TopL.X, o.TopL.X), Min(r.TopL.Y, o.TopL.Y)},
		BotR: Point{Max(r.BotR.X, o.BotR.X), Max(r.BotR.Y, o.BotR.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f – %.1f,%.1f]", r.TopL.X, r.TopL.Y, r.BotR.X, r.BotR.Y)
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts d to [lo, hi]. If lo > hi, lo wins.
func Clamp(d, lo, hi float32) float32 {
	if d > hi {
		d = hi
	}
	if d < lo {
		d = lo
	}
	return d
}
