package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A wide rune occupies its own cell plus a
// continuation cell with an empty Symbol.
type Cell struct {
	Symbol string
	Style  Style
}

func blank() Cell { return Cell{Symbol: " "} }

// Buffer is the drawing surface handed to widgets for one frame.
type Buffer struct {
	area  Rect
	cells []Cell
}

func NewBuffer(area Rect) *Buffer {
	if area.Width < 0 {
		area.Width = 0
	}
	if area.Height < 0 {
		area.Height = 0
	}
	b := &Buffer{area: area, cells: make([]Cell, area.Width*area.Height)}
	for i := range b.cells {
		b.cells[i] = blank()
	}
	return b
}

func (b *Buffer) Area() Rect { return b.area }

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Cell returns the cell at x,y, or nil outside the buffer.
func (b *Buffer) Cell(x, y int) *Cell {
	i, ok := b.index(x, y)
	if !ok {
		return nil
	}
	return &b.cells[i]
}

// SetString writes s starting at x,y without wrapping, clipped to the buffer
// and to maxWidth cells. It returns the x position after the last cell
// written.
func (b *Buffer) SetString(x, y int, s string, style Style, maxWidth int) int {
	limit := x + maxWidth
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		if r == '\t' {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit || x+w > b.area.Right() {
			break
		}
		if c := b.Cell(x, y); c != nil {
			c.Symbol = string(r)
			c.Style = c.Style.Patch(style)
		}
		for i := 1; i < w; i++ {
			if c := b.Cell(x+i, y); c != nil {
				c.Symbol = ""
				c.Style = c.Style.Patch(style)
			}
		}
		x += w
	}
	return x
}

// SetLine writes the spans of line one after another on row y.
func (b *Buffer) SetLine(x, y int, line Line, maxWidth int) int {
	end := x + maxWidth
	for _, sp := range line.Spans {
		if x >= end {
			break
		}
		x = b.SetString(x, y, sp.Content, line.Style.Patch(sp.Style), end-x)
	}
	return x
}

// SetStyle patches style onto every cell of area.
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = area.Intersect(b.area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := b.Cell(x, y)
			c.Style = c.Style.Patch(style)
		}
	}
}

// Clear resets every cell of area to an unstyled blank.
func (b *Buffer) Clear(area Rect) {
	area = area.Intersect(b.area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			*b.Cell(x, y) = blank()
		}
	}
}

// Row returns the symbols of row y without styling.
func (b *Buffer) Row(y int) string {
	if y < b.area.Y || y >= b.area.Bottom() {
		return ""
	}
	var sb strings.Builder
	for x := b.area.X; x < b.area.Right(); x++ {
		sb.WriteString(b.Cell(x, y).Symbol)
	}
	return sb.String()
}

// Plain returns all rows without styling, trailing spaces trimmed.
func (b *Buffer) Plain() string {
	lines := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		lines = append(lines, strings.TrimRight(b.Row(y), " "))
	}
	return strings.Join(lines, "\n")
}

// String renders the buffer as terminal output, one line per row, emitting
// one lipgloss render per run of identically styled cells.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		if y > b.area.Y {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var current Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == (Style{}) {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(current.toLipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for x := b.area.X; x < b.area.Right(); x++ {
			c := b.Cell(x, y)
			if c.Style != current {
				flush()
				current = c.Style
			}
			run.WriteString(c.Symbol)
		}
		flush()
	}
	return sb.String()
}
