package widget

import "todo/internal/canvas"

// CenteredText draws text centered both ways inside an optional block.
type CenteredText struct {
	Text  canvas.Text
	Block *canvas.Block
}

func NewCenteredText(text canvas.Text) CenteredText {
	return CenteredText{Text: text}
}

func (c CenteredText) WithBlock(b canvas.Block) CenteredText {
	c.Block = &b
	return c
}

func (c CenteredText) Render(area canvas.Rect, buf *canvas.Buffer) {
	inner := area
	if c.Block != nil {
		c.Block.Render(area, buf)
		inner = c.Block.Inner(area)
	}
	h := c.Text.Height()
	rows := canvas.Vertical(inner,
		canvas.Length(max((inner.Height-h)/2, 0)),
		canvas.Length(h),
		canvas.Fill(1),
	)
	c.Text.Centered().Render(rows[1], buf)
}
