package widget

import "fmt"

// Type is a widget type tag.
type Type int16

// Widget types. Sublayout marks a closed layout placed as an item into its
// parent layout.
const (
	Sublayout Type = -2
	Invalid   Type = -1
)

const (
	Label Type = iota
	Button
	RadioButton
	ToggleButton
	Checkbox
	Layout
	Scrollable
	Splitter
	SplitterRegion
	Accordion
	Slider
	Spinner
	TextInput
	DropDown
	TabBar
	ItemGrid
	Charts
	TotalTypes
)

var typeNames = [...]string{"label", "button", "radio", "toggle", "checkbox", "layout",
	"scrollable", "splitter", "splitter-region", "accordion", "slider", "spinner",
	"textinput", "dropdown", "tabbar", "itemgrid", "charts"}

func (t Type) String() string {
	switch {
	case t == Sublayout:
		return "sublayout"
	case t == Invalid:
		return "invalid"
	case t >= 0 && t < TotalTypes:
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// TypeFromString returns the type for a type name, or Invalid.
func TypeFromString(name string) Type {
	for i, n := range typeNames {
		if n == name {
			return Type(i)
		}
	}
	if name == "sublayout" {
		return Sublayout
	}
	return Invalid
}

// TypeBits is the number of low bits of an ID holding the per-type index.
const TypeBits = 16

// MaxIndex is the largest per-type index an ID can hold.
const MaxIndex = 1<<TypeBits - 1

// ID identifies a widget within a frame.
type ID int32

// NoID is the id of nothing.
var NoID = MakeID(Invalid, MaxIndex)

// MakeID packs a widget type and an index.
func MakeID(t Type, index int) ID {
	return ID(int32(t)<<TypeBits | int32(index&MaxIndex))
}

// Type returns the type part of id.
func (id ID) Type() Type {
	return Type(id >> TypeBits)
}

// Index returns the per-type index of id.
func (id ID) Index() int {
	return int(id & MaxIndex)
}

func (id ID) String() string {
	return fmt.Sprintf("%s#%d", id.Type(), id.Index())
}
