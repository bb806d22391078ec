package canvas

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Borders selects which edges of a Block are drawn.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) has(o Borders) bool { return b&o != 0 }

// Padding is the space between a Block's borders and its content.
type Padding struct {
	Top, Right, Bottom, Left int
}

func PadHorizontal(n int) Padding { return Padding{Left: n, Right: n} }

// Block is a bordered, optionally titled container. Glyphs come from a
// lipgloss.Border so the border sets match the rest of the charm stack.
type Block struct {
	Borders     Borders
	BorderType  lipgloss.Border
	BorderStyle Style
	Style       Style
	Title       string
	Padding     Padding
}

// Bordered returns a block with all four borders in the normal line set.
func Bordered() Block {
	return Block{Borders: BordersAll, BorderType: lipgloss.NormalBorder()}
}

func NewBlock() Block {
	return Block{BorderType: lipgloss.NormalBorder()}
}

// Inner is the content area left inside the borders and padding.
func (b Block) Inner(area Rect) Rect {
	in := area
	if b.Borders.has(BorderLeft) {
		in.X++
		in.Width--
	}
	if b.Borders.has(BorderRight) {
		in.Width--
	}
	if b.Borders.has(BorderTop) {
		in.Y++
		in.Height--
	}
	if b.Borders.has(BorderBottom) {
		in.Height--
	}
	in.X += b.Padding.Left
	in.Y += b.Padding.Top
	in.Width -= b.Padding.Left + b.Padding.Right
	in.Height -= b.Padding.Top + b.Padding.Bottom
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

func (b Block) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area())
	if area.Empty() {
		return
	}
	buf.SetStyle(area, b.Style)
	bs := b.Style.Patch(b.BorderStyle)
	g := b.BorderType
	left, right := area.X, area.Right()-1
	top, bottom := area.Y, area.Bottom()-1

	if b.Borders.has(BorderTop) {
		for x := left; x <= right; x++ {
			buf.SetString(x, top, g.Top, bs, 1)
		}
	}
	if b.Borders.has(BorderBottom) {
		for x := left; x <= right; x++ {
			buf.SetString(x, bottom, g.Bottom, bs, 1)
		}
	}
	if b.Borders.has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			buf.SetString(left, y, g.Left, bs, 1)
		}
	}
	if b.Borders.has(BorderRight) {
		for y := top; y <= bottom; y++ {
			buf.SetString(right, y, g.Right, bs, 1)
		}
	}
	corner := func(x, y int, glyph string, edges Borders) {
		if b.Borders&edges == edges {
			buf.SetString(x, y, glyph, bs, 1)
		}
	}
	corner(left, top, g.TopLeft, BorderTop|BorderLeft)
	corner(right, top, g.TopRight, BorderTop|BorderRight)
	corner(left, bottom, g.BottomLeft, BorderBottom|BorderLeft)
	corner(right, bottom, g.BottomRight, BorderBottom|BorderRight)

	if b.Title != "" && b.Borders.has(BorderTop) {
		x, width := left, area.Width
		if b.Borders.has(BorderLeft) {
			x++
			width--
		}
		if b.Borders.has(BorderRight) {
			width--
		}
		if width > 0 {
			title := runewidth.Truncate(b.Title, width, "")
			buf.SetString(x, top, title, b.Style, width)
		}
	}
}
