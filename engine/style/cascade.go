package style

import (
	"fmt"

	"github.com/npillmayer/boxflow/core"
)

// State is a set of interaction state flags of a widget.
type State uint16

// Interaction states. A widget may be in more than one state at a time.
const (
	StateDefault      State = 1
	StateFocused      State = 2
	StateHovered      State = 4
	StatePressed      State = 8
	StateChecked      State = 16
	StatePartialCheck State = 32
	StateSelected     State = 64
	StateDragged      State = 128
	StateDisabled     State = 256
)

// Slot selects one of the six per-state descriptors of a nesting level.
type Slot int

// Style slots.
const (
	SlotDefault Slot = iota
	SlotDisabled
	SlotHovered
	SlotPressed
	SlotFocused
	SlotChecked
	SlotCount
)

var slotNames = [...]string{"default", "disabled", "hovered", "pressed", "focused", "checked"}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// SlotFor selects the style slot for a set of state flags. If more than one
// state is set, the most specific one wins, in order
//
//    Pressed > Hovered > Focused > Checked > Disabled > Default
//
// A partially checked or selected widget uses the Checked slot.
func SlotFor(st State) Slot {
	switch {
	case st&StatePressed != 0:
		return SlotPressed
	case st&StateHovered != 0:
		return SlotHovered
	case st&StateFocused != 0:
		return SlotFocused
	case st&(StateChecked|StatePartialCheck|StateSelected) != 0:
		return SlotChecked
	case st&StateDisabled != 0:
		return SlotDisabled
	}
	return SlotDefault
}

// StateStyles holds a style text per slot. Empty texts leave a slot as
// inherited.
type StateStyles [SlotCount]string

// DefaultStyle creates StateStyles with only the default slot set.
func DefaultStyle(text string) StateStyles {
	return StateStyles{SlotDefault: text}
}

// IsEmpty is true if no slot carries a style text.
func (ss StateStyles) IsEmpty() bool {
	for _, s := range ss {
		if s != "" {
			return false
		}
	}
	return true
}

// cascadeRule copies one property from src to dest.
type cascadeRule struct {
	prop Property
	copy func(src, dest *Descriptor)
}

var cascadeRules = []cascadeRule{
	{PropBackground, func(s, d *Descriptor) { d.BgColor, d.Gradient = s.BgColor, s.Gradient }},
	{PropFgColor, func(s, d *Descriptor) { d.FgColor = s.FgColor }},
	{PropFontSize, func(s, d *Descriptor) { d.Font.Size = s.Font.Size }},
	{PropFontFamily, func(s, d *Descriptor) {
		d.Font.Family = s.Font.Family
		d.Font.Flags = d.Font.Flags&^FontMono | s.Font.Flags&FontMono
	}},
	{PropFontWeight, func(s, d *Descriptor) {
		d.Font.Flags = d.Font.Flags&^(FontBold|FontLight) | s.Font.Flags&(FontBold|FontLight)
	}},
	{PropFontStyle, func(s, d *Descriptor) {
		d.Font.Flags = d.Font.Flags&^FontItalic | s.Font.Flags&FontItalic
	}},
	{PropHeight, func(s, d *Descriptor) { d.Dimension.Y = s.Dimension.Y }},
	{PropWidth, func(s, d *Descriptor) { d.Dimension.X = s.Dimension.X }},
	{PropListBulletType, func(s, d *Descriptor) { d.ListBullet = s.ListBullet }},
	{PropHAlignment, func(s, d *Descriptor) { d.Align = d.Align&^AlignHorizontal | s.Align&AlignHorizontal }},
	{PropVAlignment, func(s, d *Descriptor) { d.Align = d.Align&^AlignVertical | s.Align&AlignVertical }},
	{PropPadding, func(s, d *Descriptor) { d.Padding, d.relSides[0] = s.Padding, s.relSides[0] }},
	{PropMargin, func(s, d *Descriptor) { d.Margin, d.relSides[1] = s.Margin, s.relSides[1] }},
	{PropBorder, func(s, d *Descriptor) {
		radius := d.Border.Radius
		d.Border = s.Border
		d.Border.Radius = radius
	}},
	{PropOverflow, func(s, d *Descriptor) { d.Overflow = s.Overflow }},
	{PropBorderRadius, func(s, d *Descriptor) { d.Border.Radius = s.Border.Radius }},
	{PropCellSpacing, func(s, d *Descriptor) { d.CellSpacing = s.CellSpacing }},
	{PropBlink, func(s, d *Descriptor) { d.Blink = s.Blink }},
	{PropTextWrap, func(s, d *Descriptor) { copyTextFlag(s, d, TextNoWrap) }},
	{PropBoxShadow, func(s, d *Descriptor) { d.Shadow = s.Shadow }},
	{PropWordBreak, func(s, d *Descriptor) { copyTextFlag(s, d, TextBreakWords) }},
	{PropWhitespaceCollapse, func(s, d *Descriptor) { copyTextFlag(s, d, TextCollapseWhitespace|TextPreserveWhitespace) }},
	{PropWhitespace, func(s, d *Descriptor) { copyTextFlag(s, d, TextCollapseWhitespace|TextPreserveWhitespace) }},
	{PropTextOverflow, func(s, d *Descriptor) { copyTextFlag(s, d, TextEllipsis) }},
	{PropMinWidth, func(s, d *Descriptor) { d.MinDim.X = s.MinDim.X }},
	{PropMaxWidth, func(s, d *Descriptor) { d.MaxDim.X = s.MaxDim.X }},
	{PropMinHeight, func(s, d *Descriptor) { d.MinDim.Y = s.MinDim.Y }},
	{PropMaxHeight, func(s, d *Descriptor) { d.MaxDim.Y = s.MaxDim.Y }},
	{PropThumbColor, func(s, d *Descriptor) { d.ThumbColor = s.ThumbColor }},
	{PropTrackColor, func(s, d *Descriptor) { d.TrackColor = s.TrackColor }},
	{PropTrackOutlineColor, func(s, d *Descriptor) { d.TrackOutlineColor = s.TrackOutlineColor }},
	{PropThumbOffset, func(s, d *Descriptor) { d.ThumbOffset = s.ThumbOffset }},
}

func copyTextFlag(s, d *Descriptor, mask TextFlags) {
	d.Text = d.Text&^mask | s.Text&mask
}

// CopyStyle fills in every property not specified in dest from src.
// Properties specified in dest are never changed. dest is marked as cascaded
// afterwards, and calling CopyStyle again for a cascaded dest is a no-op.
//
// Two properties share the whitespace flags; if either is specified in dest,
// the flags are kept.
func CopyStyle(src, dest *Descriptor) {
	if src == nil || dest == nil || dest.Specified&PropUpdatedFromBase != 0 {
		return
	}
	whitespace := PropWhitespace | PropWhitespaceCollapse
	for _, rule := range cascadeRules {
		if dest.Specified&rule.prop != 0 {
			continue
		}
		if rule.prop&whitespace != 0 && dest.Specified&whitespace != 0 {
			continue
		}
		if rule.prop == PropTextWrap && dest.Specified&PropWhitespace != 0 {
			continue
		}
		rule.copy(src, dest)
		dest.Relative = dest.Relative&^rule.prop | src.Relative&rule.prop
	}
	dest.Specified |= PropUpdatedFromBase
}

// MaxDepth is the maximum nesting depth of a style stack.
const MaxDepth = 16

// Stack holds the styles of nested style scopes, six descriptors per level.
// The zero value is not usable, create stacks with NewStack.
type Stack struct {
	base   [SlotCount]Descriptor
	levels [MaxDepth][SlotCount]Descriptor
	depth  int
}

// NewStack creates a style stack whose root level holds the defaults for env.
func NewStack(env Environment) *Stack {
	st := &Stack{}
	st.SetDefaults(Defaults(env))
	return st
}

// SetDefaults replaces the root descriptors, from which the first level
// inherits.
func (st *Stack) SetDefaults(d Descriptor) {
	for slot := range st.base {
		st.base[slot] = d
	}
}

// Depth returns the number of pushed levels.
func (st *Stack) Depth() int {
	return st.depth
}

func (st *Stack) top() *[SlotCount]Descriptor {
	if st.depth == 0 {
		return &st.base
	}
	return &st.levels[st.depth-1]
}

// Push opens a new style level. The new level inherits the six descriptors of
// the enclosing level, texts are parsed on top of them, and the default slot
// is cascaded into the other five.
//
// Pushing beyond MaxDepth returns an error of kind core.EOVERFLOW and leaves
// the stack unchanged.
func (st *Stack) Push(texts StateStyles, env Environment) error {
	if st.depth >= MaxDepth {
		err := core.Overflow("style", MaxDepth)
		tracer().Errorf("%v", err)
		return err
	}
	parent := st.top()
	level := &st.levels[st.depth]
	*level = *parent
	for slot := range level {
		if texts[slot] != "" {
			ParseInto(&level[slot], texts[slot], env)
		}
		if Slot(slot) != SlotDefault {
			level[slot].Specified &^= PropUpdatedFromBase
		}
	}
	st.depth++
	for slot := SlotDefault + 1; slot < SlotCount; slot++ {
		CopyStyle(&level[SlotDefault], &level[slot])
	}
	tracer().Debugf("style push → depth %d", st.depth)
	return nil
}

// Pop removes depth levels. Popping more levels than pushed is a no-op for
// the surplus.
func (st *Stack) Pop(depth int) {
	for ; depth > 0 && st.depth > 0; depth-- {
		st.depth--
		st.levels[st.depth] = [SlotCount]Descriptor{}
	}
}

// Get returns the descriptor for the slot selected by state, cascading it
// from the default slot first if that has not yet happened. The descriptor
// is owned by the stack and valid until the level is popped.
func (st *Stack) Get(state State) *Descriptor {
	level := st.top()
	slot := SlotFor(state)
	if slot != SlotDefault {
		CopyStyle(&level[SlotDefault], &level[slot])
	}
	return &level[slot]
}

// Pushed returns the properties specified by style texts for the default
// slot and for the slot selected by state, at the current level.
// Properties cascaded from the default slot are not part of own.
func (st *Stack) Pushed(state State) (def, own Property) {
	level := st.top()
	def = level[SlotDefault].Specified &^ PropUpdatedFromBase
	own = level[SlotFor(state)].Specified &^ PropUpdatedFromBase
	return
}

// Modify parses text onto the slot selected by state at the current level.
// Other slots are not re-cascaded; the slot itself is re-cascaded lazily by
// Get if it is a non-default slot.
func (st *Stack) Modify(state State, text string, env Environment) Property {
	level := st.top()
	slot := SlotFor(state)
	props := ParseInto(&level[slot], text, env)
	if slot != SlotDefault {
		level[slot].Specified &^= PropUpdatedFromBase
	}
	return props
}

// Reset pops all levels.
func (st *Stack) Reset() {
	st.Pop(st.depth)
}

// Overlay copies the properties in props from src to dest, overriding dest,
// and marks them as specified in dest.
func Overlay(src, dest *Descriptor, props Property) {
	if src == nil || dest == nil {
		return
	}
	for _, rule := range cascadeRules {
		if props&rule.prop == 0 {
			continue
		}
		rule.copy(src, dest)
		dest.Relative = dest.Relative&^rule.prop | src.Relative&rule.prop
	}
	dest.Specified |= props &^ PropUpdatedFromBase
}
