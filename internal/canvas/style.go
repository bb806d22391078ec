package canvas

import "github.com/charmbracelet/lipgloss"

// Color is an ANSI color understood by lipgloss. The empty Color leaves the
// cell's current color untouched when patching.
type Color string

const (
	Black       Color = "0"
	Red         Color = "1"
	Green       Color = "2"
	Yellow      Color = "3"
	Blue        Color = "4"
	Cyan        Color = "6"
	Gray        Color = "7"
	DarkGray    Color = "8"
	LightRed    Color = "9"
	LightGreen  Color = "10"
	LightYellow Color = "11"
	LightBlue   Color = "12"
	LightCyan   Color = "14"
	White       Color = "15"
)

// Style is the per-cell appearance. It is comparable so that runs of equal
// cells can be flushed together.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

func NewStyle() Style { return Style{} }

func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

func (s Style) Bolded() Style {
	s.Bold = true
	return s
}

// Patch layers o over s: set colors in o win, bold is additive.
func (s Style) Patch(o Style) Style {
	if o.Fg != "" {
		s.Fg = o.Fg
	}
	if o.Bg != "" {
		s.Bg = o.Bg
	}
	s.Bold = s.Bold || o.Bold
	return s
}

func (s Style) toLipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Fg != "" {
		ls = ls.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != "" {
		ls = ls.Background(lipgloss.Color(s.Bg))
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	return ls
}
