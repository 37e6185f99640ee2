package ui

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/style/css"
	"github.com/npillmayer/boxflow/engine/style/theme"
	"github.com/npillmayer/boxflow/engine/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// cells measures every character as 8 × 16 pixels.
var cells = frame.MeasureFunc(func(text, family string, size, wrapWidth float32) (float32, float32) {
	return float32(len(text) * 8), 16
})

func TestLayoutFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	ctx := New(nil, cells)
	ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
	_, err := ctx.BeginLayout(layout.Spec{Kind: layout.Horizontal})
	assert.NoError(t, err)
	a, _ := ctx.AddWidget(widget.Label, "ab", 0)
	b, box := ctx.AddWidget(widget.Label, "cde", 0)
	assert.Equal(t, dimen.R(16, 0, 40, 16), box.Margin)
	r := ctx.EndLayout(1)
	assert.NoError(t, ctx.EndFrame())
	assert.Equal(t, dimen.R(0, 0, 40, 16), r)
	assert.Equal(t, dimen.R(0, 0, 16, 16), ctx.GetGeometry(a))
	assert.Equal(t, dimen.R(16, 0, 40, 16), ctx.GetGeometry(b))
	assert.Len(t, ctx.Items(), 3)
	assert.True(t, ctx.Items()[0].IsLayout())
}

func TestRelativeStyleInsideLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	ctx := New(nil, cells)
	ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
	var id widget.ID
	err := ctx.WithLayout(layout.Spec{Kind: layout.Vertical, Fill: layout.FillAll}, func() error {
		return ctx.WithStyle(style.DefaultStyle("width: 50%"), func() error {
			id, _ = ctx.AddWidget(widget.Label, "a", 0)
			return nil
		})
	})
	assert.NoError(t, err)
	assert.NoError(t, ctx.EndFrame())
	assert.Equal(t, dimen.R(0, 0, 100, 16), ctx.GetGeometry(id))
}

func TestUnbalancedFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	ctx := New(nil, cells)
	ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
	assert.NoError(t, ctx.PushStyle(style.DefaultStyle("color: red")))
	_, err := ctx.BeginLayout(layout.Spec{})
	assert.NoError(t, err)
	ctx.PushSpan(frame.ExpandH)
	err = ctx.EndFrame()
	assert.Error(t, err)
	assert.Equal(t, core.EUNBALANCED, core.Code(err))
	msg := core.UserMessage(err)
	assert.Contains(t, msg, "layout=1")
	assert.Contains(t, msg, "style=1")
	assert.Contains(t, msg, "span=1")
	assert.NotContains(t, msg, "sizing")
	//
	ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
	assert.Equal(t, 0, ctx.StyleDepth(), "next frame must start at rest")
	assert.NoError(t, ctx.EndFrame())
}

func TestScopesSurvivePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	ctx := New(nil, cells)
	ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
	func() {
		defer func() {
			assert.NotNil(t, recover())
		}()
		ctx.WithStyle(style.DefaultStyle("padding: 1px"), func() error {
			return ctx.WithLayout(layout.Spec{}, func() error {
				return ctx.WithSizing(layout.Sizing{Width: 40}, func() error {
					ctx.AddWidget(widget.Label, "a", 0)
					panic("widget failure")
				})
			})
		})
	}()
	boom := errors.New("early return")
	err := ctx.WithSpan(frame.ExpandH, func() error {
		return boom
	})
	assert.Equal(t, boom, err)
	assert.NoError(t, ctx.EndFrame())
}

var sheet = `
button { padding: 2px; color: red }
button:hover { color: blue }
#button-1 { margin: 1px }
`

func TestThemedWidgets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	th, err := theme.LoadTheme(sheet)
	assert.NoError(t, err)
	ctx := New(nil, cells)
	ctx.SetTheme(th)
	draw := func() (widget.ID, widget.ID) {
		ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
		defer func() { assert.NoError(t, ctx.EndFrame()) }()
		var first, second widget.ID
		ctx.WithStyle(style.DefaultStyle("color: green"), func() error {
			first, _ = ctx.AddWidget(widget.Button, "x", 0)
			second, _ = ctx.AddWidget(widget.Button, "y", 0)
			return nil
		})
		return first, second
	}
	first, second := draw()
	green := css.RGBA(0, 128, 0, 255)
	assert.Equal(t, green, ctx.Store().Style(first).FgColor, "pushed style must win over theme")
	assert.Equal(t, float32(2), ctx.Store().Style(first).Padding.Left)
	assert.Equal(t, dimen.R(0, 0, 12, 20), ctx.GetGeometry(first))
	assert.Equal(t, dimen.R(0, 20, 14, 42), ctx.GetGeometry(second))
	//
	ctx.SetState(first, style.StateHovered)
	first, _ = draw()
	assert.Equal(t, css.RGBA(0, 0, 255, 255), ctx.Store().Style(first).FgColor,
		"hover rule must apply to hovered widget")
	hits, _ := ctx.CacheStats()
	assert.Greater(t, hits, 0)
}

func TestPushedStyleBeatsThemeInEveryState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.ui")
	defer teardown()
	//
	th, err := theme.LoadTheme(`button { background-color: red; padding: 1px } button:focus { padding: 3px }`)
	assert.NoError(t, err)
	ctx := New(nil, cells)
	ctx.SetTheme(th)
	blue := css.RGBA(0, 0, 255, 255)
	for _, state := range []style.State{style.StateDefault, style.StateHovered, style.StateFocused} {
		ctx.BeginFrame(dimen.Point{X: 200, Y: 100})
		assert.NoError(t, ctx.PushStyle(style.DefaultStyle("background-color: blue")))
		id := ctx.Store().Allocate(widget.Button)
		ctx.SetState(id, state)
		st := ctx.GetStyle(id, state)
		assert.Equal(t, blue, st.BgColor, "state %v", state)
		if state == style.StateFocused {
			assert.Equal(t, float32(3), st.Padding.Top, "theme rule for the state wins over theme default")
		} else {
			assert.Equal(t, float32(1), st.Padding.Top)
		}
		ctx.PopStyle(1)
		assert.NoError(t, ctx.EndFrame())
	}
}
