package report

import "github.com/fatih/color"

// Palette holds the decorations applied to each output segment. It is built
// once per run and never mutated afterwards.
type Palette struct {
	Location *color.Color
	Width    *color.Color
	Source   *color.Color
	Failure  *color.Color
}

// DefaultPalette returns blue locations and widths, yellow source text and
// red failures.
func DefaultPalette() Palette {
	return Palette{
		Location: color.New(color.FgBlue),
		Width:    color.New(color.FgBlue),
		Source:   color.New(color.FgYellow),
		Failure:  color.New(color.FgRed),
	}
}

// PlainPalette returns a palette that never emits escape codes.
func PlainPalette() Palette {
	p := DefaultPalette()
	p.Location.DisableColor()
	p.Width.DisableColor()
	p.Source.DisableColor()
	p.Failure.DisableColor()

	return p
}

// NewPalette returns PlainPalette when noColor is set, DefaultPalette
// otherwise. The default still honors fatih/color terminal detection.
func NewPalette(noColor bool) Palette {
	if noColor {
		return PlainPalette()
	}

	return DefaultPalette()
}
