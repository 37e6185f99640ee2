package css

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestColorForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	red := RGBA(255, 0, 0, 255)
	for _, s := range []string{"#ff0000", "#F00", "#ff0000ff", "rgb(255, 0, 0)",
		"rgba(255,0,0,255)", "rgb(1.0, 0, 0)", "Red", "RED", "hsv(0.0, 1, 1)", "hsl(0, 1.0, 0.5)"} {
		c, ok := ParseColor(s)
		assert.True(t, ok, "input %q", s)
		assert.Equal(t, red, c, "input %q", s)
	}
	c, ok := ParseColor("transparent")
	assert.True(t, ok)
	assert.False(t, c.Visible())
	c, _ = ParseColor("rgba(0.0, 0, 0, 0.5)")
	assert.Equal(t, uint8(128), c.Alpha())
	_, ok = ParseColor("no-such-color")
	assert.False(t, ok)
	_, ok = ParseColor("#12345")
	assert.False(t, ok)
	_, ok = ParseColor("rgb(1,2)")
	assert.False(t, ok)
}

func TestColorPacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	c := RGBA(10, 20, 30, 40)
	assert.Equal(t, Color(40<<24|30<<16|20<<8|10), c)
	r, g, b, a := c.Components()
	assert.Equal(t, []uint8{10, 20, 30, 40}, []uint8{r, g, b, a})
	assert.Equal(t, "#0a141e28", c.String())
	assert.Equal(t, RGBA(5, 10, 15, 40), c.Darken(0.5))
	assert.Equal(t, RGBA(255, 255, 255, 40), c.Lighten(1))
}

func TestNamedColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	c, ok := NamedColor("cornflowerblue")
	assert.True(t, ok)
	assert.Equal(t, RGBA(100, 149, 237, 255), c)
	assert.Contains(t, ColorNamesWithPrefix("dark"), "darkorange")
	assert.Greater(t, len(namedColorTable), 140)
}

func TestGradient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	g, ok := ParseGradient("linear-gradient(to right, red, green 40%, blue)")
	assert.True(t, ok)
	assert.Equal(t, DirRight, g.Dir)
	if assert.Len(t, g.Segments, 2) {
		assert.InDelta(t, 0.4, g.Segments[0].Pos, 0.0001)
		assert.InDelta(t, 0.6, g.Segments[1].Pos, 0.0001)
		assert.Equal(t, RGBA(255, 0, 0, 255), g.Segments[0].From)
		assert.Equal(t, g.Segments[0].To, g.Segments[1].From)
	}
	g, ok = ParseGradient("linear-gradient(45deg, red, rgb(0, 255, 0), blue, white, black)")
	assert.True(t, ok)
	assert.Equal(t, DirAngle, g.Dir)
	assert.Equal(t, float32(45), g.Angle)
	assert.Len(t, g.Segments, MaxColorStops-1)
	g, ok = ParseGradient("linear-gradient(to right, red 10%, blue, green)")
	assert.True(t, ok)
	if assert.Len(t, g.Segments, 2) {
		assert.InDelta(t, 0.45, g.Segments[0].Pos, 0.0001, "first stop position counts")
		assert.InDelta(t, 0.45, g.Segments[1].Pos, 0.0001)
	}
	_, ok = ParseGradient("linear-gradient(red)")
	assert.False(t, ok)
}

func TestBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	ctx := dimen.UnitContext{FontSize: 16, Scale: 1}
	b, ok := ParseBorder("2px solid #ff0000", ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(2), b.Thickness)
	assert.Equal(t, RGBA(255, 0, 0, 255), b.Color)
	b, ok = ParseBorder("dashed blue", ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(1), b.Thickness)
	assert.Equal(t, LineDashed, b.Line)
	b, ok = ParseBorder("none", ctx)
	assert.True(t, ok)
	assert.False(t, b.Exists())
}

func TestShadow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	ctx := dimen.UnitContext{FontSize: 16, Scale: 1}
	s, ok := ParseShadow("2px 3px 4px 1px rgba(0, 0, 0, 128)", ctx)
	assert.True(t, ok)
	assert.Equal(t, dimen.Point{X: 2, Y: 3}, s.Offset)
	assert.Equal(t, float32(4), s.Blur)
	assert.Equal(t, float32(1), s.Spread)
	assert.Equal(t, uint8(128), s.Color.Alpha())
	s, ok = ParseShadow("-1 -1 gray", ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(-1), s.Offset.X)
	_, ok = ParseShadow("red", ctx)
	assert.False(t, ok)
}

func TestSplitDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	decls := SplitDeclarations(`Background-Color: red; font-family: "Noto Sans"; padding: 1px 2px`)
	if assert.Len(t, decls, 3) {
		assert.Equal(t, "background-color", decls[0].Property)
		assert.Equal(t, "Noto Sans", decls[1].Value)
		assert.Equal(t, "1px 2px", decls[2].Value)
	}
	decls = SplitDeclarations("color: red; this is garbage; width: 10px")
	if assert.Len(t, decls, 2) {
		assert.Equal(t, "width", decls[1].Property)
	}
	assert.Empty(t, SplitDeclarations("   "))
}

func TestUnterminatedDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	decls := SplitDeclarations("padding: 5px")
	if assert.Len(t, decls, 1) {
		assert.Equal(t, Declaration{Property: "padding", Value: "5px"}, decls[0])
	}
	decls = SplitDeclarations("width: 25px; height: 10px")
	if assert.Len(t, decls, 2) {
		assert.Equal(t, Declaration{Property: "height", Value: "10px"}, decls[1])
	}
	decls = SplitDeclarations("  color : red ;  ")
	if assert.Len(t, decls, 1) {
		assert.Equal(t, "red", decls[0].Value)
	}
}

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	sides, ok := SplitFourSides("1px 2px 3px")
	assert.True(t, ok)
	assert.Equal(t, [4]string{"1px", "2px", "3px", "2px"}, sides)
	_, ok = SplitFourSides("1 2 3 4 5")
	assert.False(t, ok)
	assert.Equal(t, []string{"2px", "solid", "rgb(1, 2, 3)"}, SplitTokens(" 2px solid rgb(1, 2, 3) "))
	assert.Equal(t, []string{"to right", "red 10%", "rgb(0,0,0)"}, SplitArgs("to right, red 10%,rgb(0,0,0)"))
}
