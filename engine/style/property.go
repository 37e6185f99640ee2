package style

import (
	"math/bits"
	"strings"
)

// Property is a bitmask with one bit per settable style property.
type Property uint64

// Style properties. Bit positions are stable and may be persisted.
const (
	PropBackground         Property = 1 << 0
	PropFgColor            Property = 1 << 1
	PropFontSize           Property = 1 << 2
	PropFontFamily         Property = 1 << 3
	PropFontWeight         Property = 1 << 4
	PropFontStyle          Property = 1 << 5
	PropHeight             Property = 1 << 6
	PropWidth              Property = 1 << 7
	PropListBulletType     Property = 1 << 8
	PropHAlignment         Property = 1 << 9
	PropVAlignment         Property = 1 << 10
	PropPadding            Property = 1 << 11
	PropMargin             Property = 1 << 12
	PropBorder             Property = 1 << 13
	PropOverflow           Property = 1 << 14
	PropBorderRadius       Property = 1 << 16
	PropCellSpacing        Property = 1 << 17
	PropBlink              Property = 1 << 18
	PropTextWrap           Property = 1 << 19
	PropBoxShadow          Property = 1 << 20
	PropWordBreak          Property = 1 << 21
	PropWhitespaceCollapse Property = 1 << 22
	PropWhitespace         Property = 1 << 23
	PropTextOverflow       Property = 1 << 24
	PropMinWidth           Property = 1 << 25
	PropMaxWidth           Property = 1 << 26
	PropMinHeight          Property = 1 << 27
	PropMaxHeight          Property = 1 << 28
	PropThumbColor         Property = 1 << 29
	PropTrackColor         Property = 1 << 30
	PropTrackOutlineColor  Property = 1 << 31
	PropThumbOffset        Property = 1 << 32

	// PropUpdatedFromBase marks a descriptor which has already been cascaded
	// from its base. It is not a property in its own right.
	PropUpdatedFromBase Property = 1 << 62
)

var propertyNames = map[Property]string{
	PropBackground:         "background",
	PropFgColor:            "color",
	PropFontSize:           "font-size",
	PropFontFamily:         "font-family",
	PropFontWeight:         "font-weight",
	PropFontStyle:          "font-style",
	PropHeight:             "height",
	PropWidth:              "width",
	PropListBulletType:     "list-style-type",
	PropHAlignment:         "text-align",
	PropVAlignment:         "vertical-align",
	PropPadding:            "padding",
	PropMargin:             "margin",
	PropBorder:             "border",
	PropOverflow:           "overflow",
	PropBorderRadius:       "border-radius",
	PropCellSpacing:        "cell-spacing",
	PropBlink:              "blink",
	PropTextWrap:           "text-wrap",
	PropBoxShadow:          "box-shadow",
	PropWordBreak:          "word-break",
	PropWhitespaceCollapse: "white-space-collapse",
	PropWhitespace:         "white-space",
	PropTextOverflow:       "text-overflow",
	PropMinWidth:           "min-width",
	PropMaxWidth:           "max-width",
	PropMinHeight:          "min-height",
	PropMaxHeight:          "max-height",
	PropThumbColor:         "thumb-color",
	PropTrackColor:         "track-color",
	PropTrackOutlineColor:  "track-outline",
	PropThumbOffset:        "thumb-offset",
	PropUpdatedFromBase:    "(cascaded)",
}

// Has is true if all bits of q are set in p.
func (p Property) Has(q Property) bool {
	return p&q == q
}

// Count returns the number of properties set in p.
func (p Property) Count() int {
	return bits.OnesCount64(uint64(p &^ PropUpdatedFromBase))
}

func (p Property) String() string {
	if p == 0 {
		return "{}"
	}
	var names []string
	for i := 0; i < 64; i++ {
		bit := Property(1) << i
		if p&bit == 0 {
			continue
		}
		if name, ok := propertyNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, "?")
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
