package ui

import (
	"fmt"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/style/theme"
	"github.com/npillmayer/boxflow/engine/widget"
)

// Context holds the state of a UI across frames. It is not safe for
// concurrent use.
type Context struct {
	params  *parameters.UIRegisters
	env     style.Environment
	store   *widget.Store
	engine  *layout.Engine
	styles  *style.Stack
	cache   style.Cache
	theme   *theme.Theme
	window  dimen.Rect
	inFrame bool
}

// New creates a context. params may be nil, in which case default UI
// parameters are used. measurer is used for widget texts.
func New(params *parameters.UIRegisters, measurer frame.Measurer) *Context {
	if params == nil {
		params = parameters.NewUIRegisters()
	}
	env := style.DefaultEnvironment(params)
	store := widget.NewStore()
	return &Context{
		params: params,
		env:    env,
		store:  store,
		engine: layout.NewEngine(store, measurer),
		styles: style.NewStack(env),
	}
}

// Env returns the environment for parsing style texts of the current frame.
func (c *Context) Env() style.Environment {
	return c.env
}

// Params returns the UI parameters of c.
func (c *Context) Params() *parameters.UIRegisters {
	return c.params
}

// Store returns the widget store.
func (c *Context) Store() *widget.Store {
	return c.store
}

// Engine returns the layout engine.
func (c *Context) Engine() *layout.Engine {
	return c.engine
}

// Items returns the layout items of the current (or last) frame.
func (c *Context) Items() []layout.Item {
	return c.engine.Items()
}

// SetTheme sets the theme to style widgets with. th may be nil.
func (c *Context) SetTheme(th *theme.Theme) {
	c.theme = th
}

// --- Frames ----------------------------------------------------------------

// BeginFrame starts a new frame drawn into a window of the given size.
// Geometry and styles of the previous frame are discarded, widget states are
// kept.
func (c *Context) BeginFrame(window dimen.Point) {
	if c.inFrame {
		tracer().Errorf("begin of frame inside of frame")
	}
	c.inFrame = true
	c.window = dimen.Rect{BotR: window}
	c.env = style.DefaultEnvironment(c.params).WithParent(window)
	c.store.Reset()
	c.engine.Reset(c.window)
	c.styles.SetDefaults(style.Defaults(c.env))
	c.styles.Reset()
	tracer().Debugf("begin frame %v", window)
}

// EndFrame finishes a frame. If any of the layout, sizing, style or span
// stacks is not at rest, it returns an error of kind core.EUNBALANCED naming
// all of them. The geometry of the frame stays available until the next
// call to BeginFrame.
func (c *Context) EndFrame() error {
	if !c.inFrame {
		tracer().Errorf("end of frame outside of frame")
	}
	c.inFrame = false
	tracer().Debugf("end frame, %d items", len(c.engine.Items()))
	err := core.Unbalanced(
		core.StackDepth{Stack: "layout", Depth: c.engine.Depth()},
		core.StackDepth{Stack: "sizing", Depth: c.engine.SizingDepth()},
		core.StackDepth{Stack: "style", Depth: c.styles.Depth()},
		core.StackDepth{Stack: "span", Depth: c.engine.SpanDepth()},
	)
	if err != nil {
		tracer().Errorf("%v", err)
	}
	return err
}

// --- Styles ----------------------------------------------------------------

// PushStyle opens a style scope. Relative lengths are resolved against the
// interior of the current layout, or the window.
func (c *Context) PushStyle(ss style.StateStyles) error {
	return c.styles.Push(ss, c.scopeEnv())
}

// PopStyle closes depth style scopes.
func (c *Context) PopStyle(depth int) {
	c.styles.Pop(depth)
}

// ModifyStyle parses text onto the current style scope's slot for state.
func (c *Context) ModifyStyle(state style.State, text string) style.Property {
	return c.styles.Modify(state, text, c.scopeEnv())
}

// StyleDepth returns the number of open style scopes.
func (c *Context) StyleDepth() int {
	return c.styles.Depth()
}

func (c *Context) scopeEnv() style.Environment {
	env := c.env
	if l := c.engine.Top(); l != nil {
		r := l.Interior()
		p := dimen.Point{X: r.Width(), Y: r.Height()}
		if r.BotR.X >= dimen.Infinity {
			p.X = c.window.Width()
		}
		if r.BotR.Y >= dimen.Infinity {
			p.Y = c.window.Height()
		}
		env = env.WithParent(p)
	}
	return env
}

// GetStyle resolves the style of widget id in state. The result starts from
// the current style scope. Matching theme rules fill in what has not been
// pushed: default rules yield to properties pushed for any slot in effect,
// rules for the state yield only to properties pushed for that state. The
// returned descriptor is a copy.
func (c *Context) GetStyle(id widget.ID, state style.State) *style.Descriptor {
	d := *c.styles.Get(state)
	if c.theme == nil {
		return &d
	}
	texts := c.theme.StylesFor(id.Type().String(), elementID(id))
	if texts.IsEmpty() {
		return &d
	}
	env := c.scopeEnv()
	def, own := c.styles.Pushed(state)
	if text := texts[style.SlotDefault]; text != "" {
		themed, props := c.cache.Parse(text, env)
		style.Overlay(&themed, &d, props&^(def|own))
	}
	if slot := style.SlotFor(state); slot != style.SlotDefault && texts[slot] != "" {
		themed, props := c.cache.Parse(texts[slot], env)
		style.Overlay(&themed, &d, props&^own)
	}
	return &d
}

// CacheStats returns hit and miss counts of the theme style cache.
func (c *Context) CacheStats() (hits, misses int) {
	return c.cache.Stats()
}

// elementID is the id attribute theme selectors see for a widget, e.g.
// "button-2".
func elementID(id widget.ID) string {
	return fmt.Sprintf("%s-%d", id.Type(), id.Index())
}

// --- Widgets ---------------------------------------------------------------

// AddWidget places a widget of type t showing text. flags may request
// expansion (frame.ExpandH, frame.ExpandV) and its direction. It returns the
// widget's id and resolved box.
func (c *Context) AddWidget(t widget.Type, text string, flags frame.Sizing) (widget.ID, frame.Box) {
	return c.AddWidgetBetween(t, text, flags, nil)
}

// AddWidgetBetween works like AddWidget, with expansion bounded by
// neighbor widgets. nb may be nil.
func (c *Context) AddWidgetBetween(t widget.Type, text string, flags frame.Sizing,
	nb *layout.Neighbors) (widget.ID, frame.Box) {
	//
	if !c.inFrame {
		tracer().Errorf("widget added outside of frame")
	}
	id := c.store.Allocate(t)
	st := c.GetStyle(id, c.store.State(id))
	box := c.engine.BoxModelBounds(st, text, flags, nb)
	idx := c.engine.Add(id, box, st)
	box = c.engine.Items()[idx].Box
	tracer().Debugf("widget %v '%s' at %v", id, text, box.Margin)
	return id, box
}

// SetState sets the state of widget id, effective from the next frame on.
func (c *Context) SetState(id widget.ID, state style.State) {
	c.store.SetState(id, state)
}

// GetGeometry returns the margin box of widget id. Geometry of widgets
// inside layouts is final once the outermost layout has been closed.
func (c *Context) GetGeometry(id widget.ID) dimen.Rect {
	return c.store.Geometry(id)
}

// --- Layouts ---------------------------------------------------------------

// BeginLayout opens a layout, see layout.Engine.Begin.
func (c *Context) BeginLayout(spec layout.Spec) (dimen.Rect, error) {
	return c.engine.Begin(spec)
}

// BeginLayoutStyled opens a layout described by style text, see
// layout.ParseLayoutStyle. nb may be nil.
func (c *Context) BeginLayoutStyled(text string, nb *layout.Neighbors) (dimen.Rect, error) {
	return c.engine.BeginStyled(text, c.scopeEnv(), nb)
}

// EndLayout closes depth layouts and returns the margin box of the layout
// closed last.
func (c *Context) EndLayout(depth int) dimen.Rect {
	return c.engine.End(depth)
}

// PushSizing, PopSizing, PushSpan, SetSpan and PopSpan delegate to the
// layout engine.

func (c *Context) PushSizing(sz layout.Sizing) { c.engine.PushSizing(sz) }

func (c *Context) PopSizing(depth int) { c.engine.PopSizing(depth) }

func (c *Context) PushSpan(dir frame.Sizing) { c.engine.PushSpan(dir) }

func (c *Context) SetSpan(dir frame.Sizing) { c.engine.SetSpan(dir) }

func (c *Context) PopSpan(depth int) { c.engine.PopSpan(depth) }

// --- Scopes ----------------------------------------------------------------

// WithLayout opens a layout, calls fn and closes the layout, even if fn
// panics.
func (c *Context) WithLayout(spec layout.Spec, fn func() error) error {
	if _, err := c.engine.Begin(spec); err != nil {
		return err
	}
	defer c.engine.End(1)
	return fn()
}

// WithStyle opens a style scope, calls fn and closes the scope, even if fn
// panics.
func (c *Context) WithStyle(ss style.StateStyles, fn func() error) error {
	if err := c.PushStyle(ss); err != nil {
		return err
	}
	defer c.styles.Pop(1)
	return fn()
}

// WithSizing activates sz for the widgets placed by fn.
func (c *Context) WithSizing(sz layout.Sizing, fn func() error) error {
	c.engine.PushSizing(sz)
	defer c.engine.PopSizing(1)
	return fn()
}

// WithSpan lets the widgets placed by fn expand along dir.
func (c *Context) WithSpan(dir frame.Sizing, fn func() error) error {
	c.engine.PushSpan(dir)
	defer c.engine.PopSpan(1)
	return fn()
}

// --- Moving the ad-hoc cursor ----------------------------------------------

// Move places the next ad-hoc widget next to widget id, see
// layout.Engine.MoveFrom.
func (c *Context) Move(id widget.ID, dir layout.Direction) {
	c.engine.MoveFrom(id, dir)
}

// MoveFromLast places the next ad-hoc widget next to the one placed last.
func (c *Context) MoveFromLast(dir layout.Direction) {
	c.engine.Move(dir)
}

// MoveBetween takes the cursor's x-coordinate from widget hid and its
// y-coordinate from widget vid.
func (c *Context) MoveBetween(hid, vid widget.ID, toRight, toBottom bool) {
	c.engine.MoveBetween(hid, vid, toRight, toBottom)
}

// MoveBy moves the ad-hoc cursor by amount.
func (c *Context) MoveBy(amount dimen.Point, dir layout.Direction) {
	c.engine.MoveBy(amount, dir)
}

// MoveTo sets the ad-hoc cursor.
func (c *Context) MoveTo(pos dimen.Point) {
	c.engine.MoveTo(pos)
}

// AddSpacing advances the ad-hoc cursor by v.
func (c *Context) AddSpacing(v dimen.Point) {
	c.engine.AddSpacing(v)
}
