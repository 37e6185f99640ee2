package layout

import (
	"math"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/widget"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LayoutTestEnviron struct {
	suite.Suite
	env   style.Environment
	store *widget.Store
	e     *Engine
}

// listen for 'go test' command --> run test methods
func TestLayoutScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.layout")
	defer teardown()
	suite.Run(t, new(LayoutTestEnviron))
}

// run once, before test suite methods
func (env *LayoutTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("boxflow.layout").SetTraceLevel(tracing.LevelInfo)
	env.env = style.DefaultEnvironment(parameters.NewUIRegisters())
}

// run before every test method
func (env *LayoutTestEnviron) SetupTest() {
	env.store = widget.NewStore()
	env.e = NewEngine(env.store, frame.MeasureFunc(fixedMeasure))
	env.e.Reset(dimen.R(0, 0, 300, 200))
}

// fixedMeasure sets every character in a cell of 8 × 16 pixels.
func fixedMeasure(text, family string, size, wrapWidth float32) (float32, float32) {
	w := float32(len(text) * 8)
	if wrapWidth > 0 && w > wrapWidth {
		lines := float32(math.Ceil(float64(w / wrapWidth)))
		return wrapWidth, lines * 16
	}
	return w, 16
}

func (env *LayoutTestEnviron) style(text string) *style.Descriptor {
	d, _ := style.Parse(text, env.env)
	return &d
}

// add places a label and returns its id and item index.
func (env *LayoutTestEnviron) add(st *style.Descriptor, text string, flags frame.Sizing) (widget.ID, int) {
	id := env.store.Allocate(widget.Label)
	box := env.e.BoxModelBounds(st, text, flags, nil)
	return id, env.e.Add(id, box, st)
}

func (env *LayoutTestEnviron) begin(spec Spec) dimen.Rect {
	r, err := env.e.Begin(spec)
	env.Require().NoError(err)
	return r
}

// --- Tests -----------------------------------------------------------------

func (env *LayoutTestEnviron) TestWrapRows() {
	const N, w, W = 10, 25, 100
	env.begin(Spec{
		Kind:     Horizontal,
		Fill:     FillHorizontal,
		Overflow: [2]style.Overflow{style.OverflowWrap, style.OverflowClip},
		Size:     dimen.Point{X: W},
	})
	st := env.style("width: 25px; height: 10px")
	var indices []int
	for i := 0; i < N; i++ {
		_, idx := env.add(st, "", 0)
		indices = append(indices, idx)
	}
	r := env.e.End(1)
	rows := map[int]float32{}
	for _, idx := range indices {
		it := env.e.Items()[idx]
		env.Equal(float32(w), it.Box.Margin.Width())
		env.LessOrEqual(it.Box.Margin.BotR.X, float32(W))
		rows[it.Row] += it.Box.Margin.Width()
	}
	env.Equal(int(math.Ceil(float64(N*w)/W)), len(rows), "number of rows")
	for row, extent := range rows {
		env.LessOrEqual(extent, float32(W), "row %d too wide", row)
	}
	env.Equal(dimen.R(0, 0, W, 30), r, "layout must shrink vertically to its rows")
	env.Equal(0, env.e.Depth())
}

func (env *LayoutTestEnviron) TestJustify() {
	env.begin(Spec{
		Kind:  Horizontal,
		Fill:  FillHorizontal,
		Align: style.AlignJustify,
		Size:  dimen.Point{X: 100},
	})
	st := env.style("width: 20px; height: 10px")
	var ids []widget.ID
	for i := 0; i < 3; i++ {
		id, _ := env.add(st, "", 0)
		ids = append(ids, id)
	}
	env.e.End(1)
	gap := float32(100-3*20) / 4
	prev := float32(0)
	for _, id := range ids {
		g := env.store.Geometry(id)
		env.InDelta(gap, g.TopL.X-prev, 0.001)
		prev = g.BotR.X
	}
	env.InDelta(gap, 100-prev, 0.001)
}

func (env *LayoutTestEnviron) TestCenterAndFarEdge() {
	env.begin(Spec{
		Kind:  Horizontal,
		Fill:  FillAll,
		Align: style.AlignHCenter | style.AlignBottom,
		Size:  dimen.Point{X: 100, Y: 50},
	})
	st := env.style("width: 20px; height: 10px")
	a, _ := env.add(st, "", 0)
	b, _ := env.add(st, "", 0)
	env.e.End(1)
	env.Equal(dimen.R(30, 40, 50, 50), env.store.Geometry(a))
	env.Equal(dimen.R(50, 40, 70, 50), env.store.Geometry(b))
}

func (env *LayoutTestEnviron) TestFitLayoutDoesNotAlign() {
	env.begin(Spec{Kind: Vertical, Align: style.AlignVCenter | style.AlignJustify, Spacing: dimen.Point{Y: 5}})
	a, _ := env.add(env.style("padding: 2px"), "abc", 0)
	b, _ := env.add(nil, "hello", 0)
	r := env.e.End(1)
	env.Equal(dimen.R(0, 0, 28, 20), env.store.Geometry(a))
	env.Equal(dimen.R(0, 25, 40, 41), env.store.Geometry(b))
	env.Equal(dimen.R(0, 0, 40, 41), r)
}

func (env *LayoutTestEnviron) TestNestedLayouts() {
	outer := env.begin(Spec{Kind: Vertical, Fill: FillHorizontal, Align: style.AlignHCenter})
	env.Equal(float32(300), outer.Width())
	env.begin(Spec{Kind: Horizontal, Spacing: dimen.Point{X: 10}})
	st := env.style("width: 40px; height: 20px")
	a, _ := env.add(st, "", 0)
	b, _ := env.add(st, "", 0)
	inner := env.e.End(1)
	env.Equal(float32(90), inner.Width())
	c, _ := env.add(st, "", 0)
	env.e.End(1)
	// the column is centered as a block, the inner layout moves with its children
	env.Equal(dimen.R(105, 0, 145, 20), env.store.Geometry(a))
	env.Equal(dimen.R(155, 0, 195, 20), env.store.Geometry(b))
	env.Equal(dimen.R(105, 20, 145, 40), env.store.Geometry(c))
	items := env.e.Items()
	env.Require().Len(items, 5)
	env.True(items[0].IsLayout())
	env.True(items[1].IsLayout())
	env.Equal(0, items[1].Parent)
	env.Equal(3, items[1].Last)
	env.Equal(1, items[2].Parent)
	env.Equal(0, items[4].Parent)
	env.Equal(dimen.R(105, 0, 195, 20), env.store.Geometry(items[1].ID))
	env.Equal(dimen.R(0, 0, 300, 40), env.store.Geometry(items[0].ID))
}

func (env *LayoutTestEnviron) TestStyledLayout() {
	_, err := env.e.BeginStyled("direction: row; border: 2px solid black; padding: 3px; spacing: 4px",
		env.env, nil)
	env.Require().NoError(err)
	a, _ := env.add(env.style("width: 10px; height: 10px"), "", 0)
	b, _ := env.add(env.style("width: 10px; height: 10px"), "", 0)
	r := env.e.End(1)
	env.Equal(dimen.R(5, 5, 15, 15), env.store.Geometry(a))
	env.Equal(dimen.R(19, 5, 29, 15), env.store.Geometry(b))
	env.Equal(dimen.R(0, 0, 34, 20), r)
	box := env.store.Box(env.e.Items()[0].ID)
	env.Equal(dimen.R(2, 2, 32, 18), box.Padding)
	env.True(box.Nested())
}

func (env *LayoutTestEnviron) TestStackBalance() {
	env.begin(Spec{Kind: Horizontal})
	env.begin(Spec{Kind: Vertical})
	env.Equal(2, env.e.Depth())
	env.e.End(1)
	env.Equal(1, env.e.Depth())
	env.e.End(1)
	env.Equal(0, env.e.Depth())
	env.NotPanics(func() { env.e.End(5) })
	env.Equal(0, env.e.Depth())
	//
	for i := 0; i < MaxNesting; i++ {
		env.begin(Spec{Kind: Horizontal})
	}
	_, err := env.e.Begin(Spec{Kind: Horizontal})
	env.Require().Error(err)
	env.Equal(core.EOVERFLOW, core.Code(err))
	env.Contains(core.UserMessage(err), "layout stack")
	env.e.End(MaxNesting + 3)
	env.Equal(0, env.e.Depth())
}

func (env *LayoutTestEnviron) TestSizingAndSpans() {
	env.begin(Spec{Kind: Horizontal, Fill: FillHorizontal, Size: dimen.Point{X: 200},
		Sizing: &Sizing{Width: 0.5, RelWidth: true, Height: 12}})
	env.Equal(1, env.e.SizingDepth())
	a, _ := env.add(env.style("margin: 0 5px"), "x", 0)
	env.Equal(dimen.R(0, 0, 100, 12), env.store.Geometry(a))
	env.e.PushSizing(Sizing{})
	env.e.SetSpan(frame.ExpandH)
	env.Equal(1, env.e.SpanDepth())
	b, _ := env.add(nil, "yy", 0)
	env.Equal(0, env.e.SpanDepth(), "one-shot span must be consumed")
	env.Equal(dimen.R(100, 0, 200, 16), env.store.Geometry(b))
	env.Equal(2, env.e.SizingDepth())
	env.e.End(1)
	env.Equal(1, env.e.SizingDepth(), "End pops the sizing entry pushed by Begin")
	env.e.PopSizing(1)
	env.Equal(0, env.e.SizingDepth())
	env.e.PopSizing(1)
	env.Equal(0, env.e.SizingDepth())
}

func (env *LayoutTestEnviron) TestExpandPrecedence() {
	// top level: window
	a, _ := env.add(nil, "abc", frame.ExpandH)
	env.Equal(dimen.R(0, 0, 300, 16), env.store.Geometry(a))
	// top level: neighbor bounds the expansion
	id := env.store.Allocate(widget.Button)
	box := env.e.BoxModelBounds(env.style("width: 50px"), "", 0, nil)
	env.e.Add(id, box.TranslateX(200), nil)
	env.e.MoveFrom(a, Down)
	nb := NoNeighbors
	nb.Right = id
	box = env.e.BoxModelBounds(nil, "abc", frame.ExpandH, &nb)
	env.Equal(float32(200), box.Margin.BotR.X)
	// enclosing fill layout wins over the neighbor
	env.begin(Spec{Kind: Vertical, Fill: FillHorizontal, Size: dimen.Point{X: 120}})
	box = env.e.BoxModelBounds(nil, "abc", frame.ExpandH, &nb)
	env.Equal(float32(120), box.Margin.Width())
	env.e.End(1)
	// a fit layout has no bound: the flag is ignored
	env.begin(Spec{Kind: Horizontal})
	box = env.e.BoxModelBounds(nil, "abc", frame.ExpandH, nil)
	env.Equal(float32(24), box.Margin.Width())
	env.e.End(1)
}

func (env *LayoutTestEnviron) TestAdHocMoves() {
	st := env.style("width: 50px; height: 20px")
	a, _ := env.add(st, "", 0)
	env.Equal(dimen.Point{X: 0, Y: 20}, env.e.Cursor())
	env.e.Move(Right)
	env.Equal(dimen.Point{X: 50, Y: 0}, env.e.Cursor())
	b, _ := env.add(st, "", 0)
	env.Equal(dimen.R(50, 0, 100, 20), env.store.Geometry(b))
	env.e.MoveBetween(b, a, true, true)
	env.Equal(dimen.Point{X: 100, Y: 20}, env.e.Cursor())
	env.e.MoveBy(dimen.Point{X: 5, Y: 5}, Left|Up)
	env.Equal(dimen.Point{X: 95, Y: 15}, env.e.Cursor())
	env.e.AddSpacing(dimen.Point{X: 1, Y: 1})
	env.Equal(dimen.Point{X: 96, Y: 16}, env.e.Cursor())
	env.e.MoveTo(dimen.Point{X: 7, Y: 8})
	env.Equal(dimen.Point{X: 7, Y: 8}, env.e.Cursor())
	env.begin(Spec{Kind: Horizontal})
	env.e.MoveTo(dimen.Point{X: 99, Y: 99})
	env.Equal(dimen.Point{X: 7, Y: 8}, env.e.Cursor(), "moves are ignored inside layouts")
	env.e.End(1)
}

func (env *LayoutTestEnviron) TestParseLayoutStyle() {
	spec, st := ParseLayoutStyle("direction: column; fill: all; spacing: 4px 2px; overflow-x: wrap;"+
		"align: center; width: 100px; padding: 5px; bogus: 1", env.env)
	env.Equal(Vertical, spec.Kind)
	env.Equal(FillAll, spec.Fill)
	env.Equal(dimen.Point{X: 4, Y: 2}, spec.Spacing)
	env.Equal(style.OverflowWrap, spec.Overflow[0])
	env.Equal(style.OverflowClip, spec.Overflow[1])
	env.Equal(style.AlignHCenter|style.AlignVCenter, spec.Align)
	env.Equal(float32(110), spec.Size.X)
	env.Equal(float32(0), spec.Size.Y)
	env.Equal(float32(5), st.Padding.Top)
	//
	spec, _ = ParseLayoutStyle("halign: right; valign: justify", env.env)
	env.Equal(style.AlignRight|style.AlignJustify, spec.Align)
}

func (env *LayoutTestEnviron) TestGrowFromFarEdge() {
	env.begin(Spec{Kind: Horizontal, Fill: FillHorizontal, Size: dimen.Point{X: 200}})
	right, _ := env.add(nil, "abc", frame.ToLeft)
	left, _ := env.add(nil, "ab", 0)
	next, _ := env.add(nil, "cd", frame.ToLeft)
	r := env.e.End(1)
	env.Equal(dimen.R(176, 0, 200, 16), env.store.Geometry(right))
	env.Equal(dimen.R(0, 0, 16, 16), env.store.Geometry(left))
	env.Equal(dimen.R(160, 0, 176, 16), env.store.Geometry(next))
	env.Equal(dimen.R(0, 0, 200, 16), r)
	//
	env.begin(Spec{Kind: Vertical, Fill: FillVertical, Size: dimen.Point{Y: 100}})
	bottom, _ := env.add(nil, "a", frame.ToTop)
	env.e.End(1)
	env.Equal(dimen.R(0, 100, 8, 116), env.store.Geometry(bottom), "second layout starts below the first")
}

func (env *LayoutTestEnviron) TestFarEdgeItemsWrap() {
	env.begin(Spec{
		Kind:     Horizontal,
		Fill:     FillHorizontal,
		Overflow: [2]style.Overflow{style.OverflowWrap, style.OverflowClip},
		Size:     dimen.Point{X: 100},
	})
	pinned, _ := env.add(nil, "abcdefgh", frame.ToLeft)
	wrapped, _ := env.add(nil, "abcde", 0)
	env.e.End(1)
	env.Equal(dimen.R(36, 0, 100, 16), env.store.Geometry(pinned))
	env.Equal(dimen.R(0, 16, 40, 32), env.store.Geometry(wrapped), "no room left of the pinned item")
}

func (env *LayoutTestEnviron) TestCrossCenterWinsOverJustify() {
	env.begin(Spec{
		Kind:     Horizontal,
		Fill:     FillAll,
		Align:    style.AlignJustify | style.AlignVCenter,
		Overflow: [2]style.Overflow{style.OverflowWrap, style.OverflowClip},
		Size:     dimen.Point{X: 100, Y: 100},
	})
	st := env.style("width: 40px; height: 10px")
	var ids []widget.ID
	for i := 0; i < 4; i++ {
		id, _ := env.add(st, "", 0)
		ids = append(ids, id)
	}
	env.e.End(1)
	env.InDelta(float32(40), env.store.Geometry(ids[0]).TopL.Y, 0.001)
	env.InDelta(float32(50), env.store.Geometry(ids[2]).TopL.Y, 0.001)
	env.InDelta(float32(20)/3, env.store.Geometry(ids[0]).TopL.X, 0.001, "rows are still justified")
}
