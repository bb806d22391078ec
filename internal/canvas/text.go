package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Span is a run of text with one style.
type Span struct {
	Content string
	Style   Style
}

func Raw(s string) Span { return Span{Content: s} }

func Styled(s string, style Style) Span { return Span{Content: s, Style: style} }

// Line is a single row of spans. Style is applied beneath every span.
type Line struct {
	Spans     []Span
	Style     Style
	Alignment Alignment
}

func NewLine(spans ...Span) Line { return Line{Spans: spans} }

func (l Line) Width() int {
	w := 0
	for _, sp := range l.Spans {
		w += runewidth.StringWidth(sp.Content)
	}
	return w
}

func (l Line) String() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Content)
	}
	return sb.String()
}

// Render draws the line on the first row of area, honoring its alignment.
func (l Line) Render(area Rect, buf *Buffer) {
	if area.Empty() {
		return
	}
	buf.SetStyle(Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}, l.Style)
	x := area.X
	switch l.Alignment {
	case AlignCenter:
		x += max((area.Width-l.Width())/2, 0)
	case AlignRight:
		x += max(area.Width-l.Width(), 0)
	}
	buf.SetLine(x, area.Y, l, area.Right()-x)
}

// Text is a block of lines.
type Text []Line

// TextFrom splits s on newlines into unstyled lines carrying style.
func TextFrom(s string, style Style) Text {
	parts := strings.Split(s, "\n")
	t := make(Text, len(parts))
	for i, p := range parts {
		t[i] = Line{Spans: []Span{Raw(p)}, Style: style}
	}
	return t
}

func (t Text) Height() int { return len(t) }

func (t Text) Width() int {
	w := 0
	for _, l := range t {
		w = max(w, l.Width())
	}
	return w
}

// Centered returns a copy with every line centered.
func (t Text) Centered() Text {
	out := make(Text, len(t))
	for i, l := range t {
		l.Alignment = AlignCenter
		out[i] = l
	}
	return out
}

func (t Text) Render(area Rect, buf *Buffer) {
	for i, l := range t {
		if i >= area.Height {
			return
		}
		l.Render(Rect{X: area.X, Y: area.Y + i, Width: area.Width, Height: 1}, buf)
	}
}

// Paragraph is plain text word-wrapped to the width of its area.
type Paragraph struct {
	Text  string
	Style Style
	Block *Block
}

func NewParagraph(text string) Paragraph { return Paragraph{Text: text} }

func (p Paragraph) WithBlock(b Block) Paragraph {
	p.Block = &b
	return p
}

func (p Paragraph) WithStyle(s Style) Paragraph {
	p.Style = s
	return p
}

func (p Paragraph) Render(area Rect, buf *Buffer) {
	inner := area
	if p.Block != nil {
		p.Block.Render(area, buf)
		inner = p.Block.Inner(area)
	}
	if inner.Empty() {
		return
	}
	buf.SetStyle(inner, p.Style)
	for i, line := range WrapLines(p.Text, inner.Width) {
		if i >= inner.Height {
			break
		}
		buf.SetString(inner.X, inner.Y+i, line, p.Style, inner.Width)
	}
}

// WrapLines word-wraps s to width cells, hard-wrapping words that are
// longer than a full line.
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
