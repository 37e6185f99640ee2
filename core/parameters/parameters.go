/*
Package parameters holds UI-wide parameters, e.g. the ambient scale factor
or the default font size.

Parameters live in registers which may be overridden in groups. A group is
opened with Begingroup, values pushed inside the group shadow the base values
and are forgotten at the matching Endgroup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.core'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.core")
}

type UIParameter int

const (
	none UIParameter = iota
	P_SCALING
	P_FONTSCALING
	P_FONTSIZE
	P_FONTFAMILY
	P_MONOFAMILY
	P_SCROLLBARSIZE
	P_TOOLTIPDELAY
	P_STOPPER
)

var parameterNames = [...]string{"none", "scaling", "fontscaling", "fontsize", "fontfamily",
	"monofamily", "scrollbar", "tooltipdelay", "stopper"}

func (p UIParameter) String() string {
	if p < 0 || int(p) >= len(parameterNames) {
		return "UIParameter(" + strconv.Itoa(int(p)) + ")"
	}
	return parameterNames[p]
}

// Key returns the configuration key for a parameter, e.g. "boxflow.fontsize".
func (p UIParameter) Key() string {
	return "boxflow." + p.String()
}

// Default font families, used if nothing else is configured.
const (
	DefaultFontFamily   = "default-font-family"
	MonospaceFontFamily = "monospace-family"
)

type ParameterGroup struct {
	params map[UIParameter]interface{}
	level  int
	next   *ParameterGroup
}

type UIRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewUIRegisters() *UIRegisters {
	regs := &UIRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_SCALING] = float32(1)               // ambient scale factor
	p[P_FONTSCALING] = float32(1)           // factor for font sizes
	p[P_FONTSIZE] = float32(16)             // default font size in px
	p[P_FONTFAMILY] = DefaultFontFamily     // a string
	p[P_MONOFAMILY] = MonospaceFontFamily   // a string
	p[P_SCROLLBARSIZE] = float32(15)        // px
	p[P_TOOLTIPDELAY] = 500                 // ms
}

// FromConfiguration creates registers and overrides every parameter found in conf.
// Keys are of the form "boxflow.<parameter>", e.g. "boxflow.scaling".
// Values which cannot be parsed are reported and ignored.
func FromConfiguration(conf schuko.Configuration) *UIRegisters {
	regs := NewUIRegisters()
	if conf == nil {
		return regs
	}
	for p := P_SCALING; p < P_STOPPER; p++ {
		if !conf.IsSet(p.Key()) {
			continue
		}
		switch regs.base[p].(type) {
		case float32:
			f, err := strconv.ParseFloat(conf.GetString(p.Key()), 32)
			if err != nil {
				tracer().Errorf("configuration %s: %v", p.Key(), err)
				continue
			}
			regs.base[p] = float32(f)
		case int:
			n, err := strconv.Atoi(conf.GetString(p.Key()))
			if err != nil {
				tracer().Errorf("configuration %s: %v", p.Key(), err)
				continue
			}
			regs.base[p] = n
		case string:
			regs.base[p] = conf.GetString(p.Key())
		}
		tracer().Debugf("configuration %s = %v", p.Key(), regs.base[p])
	}
	return regs
}

func (regs *UIRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *UIRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// GroupLevel returns the current grouping depth, 0 outside of any group.
func (regs *UIRegisters) GroupLevel() int {
	return regs.grouplevel
}

func (regs *UIRegisters) Push(key UIParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[UIParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *UIRegisters) Get(key UIParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of UI parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *UIRegisters) S(key UIParameter) string {
	return regs.Get(key).(string)
}

func (regs *UIRegisters) N(key UIParameter) int {
	return regs.Get(key).(int)
}

func (regs *UIRegisters) F(key UIParameter) float32 {
	return regs.Get(key).(float32)
}

// DefaultFontSize is the default font size multiplied by the font scaling.
func (regs *UIRegisters) DefaultFontSize() float32 {
	return regs.F(P_FONTSIZE) * regs.F(P_FONTSCALING)
}
