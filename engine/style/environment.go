package style

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/parameters"
)

// Environment holds the context needed to resolve relative lengths at parse
// time. Environments are comparable and are used as part of cache keys.
type Environment struct {
	FontSize        float32     // currently active font size, for 'em'
	DefaultFontSize float32     // reference for font-size keywords
	Parent          dimen.Point // parent's dimension, for '%'
	Scale           float32     // ambient UI scale factor
	FontScale       float32     // scale factor for font sizes
	FontFamily      string      // default font family
	MonoFamily      string      // family to use for 'monospace'
}

// DefaultEnvironment creates an environment from UI parameters. The parent
// dimension is left at zero; callers set it to the current layout's extent.
func DefaultEnvironment(regs *parameters.UIRegisters) Environment {
	if regs == nil {
		regs = parameters.NewUIRegisters()
	}
	size := regs.DefaultFontSize()
	return Environment{
		FontSize:        size,
		DefaultFontSize: size,
		Scale:           regs.F(parameters.P_SCALING),
		FontScale:       regs.F(parameters.P_FONTSCALING),
		FontFamily:      regs.S(parameters.P_FONTFAMILY),
		MonoFamily:      regs.S(parameters.P_MONOFAMILY),
	}
}

// WithParent returns a copy of env with a different parent dimension.
func (env Environment) WithParent(parent dimen.Point) Environment {
	env.Parent = parent
	return env
}

// WithFontSize returns a copy of env with a different active font size.
func (env Environment) WithFontSize(size float32) Environment {
	if size > 0 {
		env.FontSize = size
	}
	return env
}

// Horizontal returns the unit context for horizontal lengths.
func (env Environment) Horizontal() dimen.UnitContext {
	return dimen.UnitContext{FontSize: env.FontSize, Parent: env.Parent.X, Scale: env.Scale}
}

// Vertical returns the unit context for vertical lengths.
func (env Environment) Vertical() dimen.UnitContext {
	return dimen.UnitContext{FontSize: env.FontSize, Parent: env.Parent.Y, Scale: env.Scale}
}

// axis returns the unit context for a side: left and right are horizontal.
func (env Environment) axis(side int) dimen.UnitContext {
	if side == Left || side == Right {
		return env.Horizontal()
	}
	return env.Vertical()
}
