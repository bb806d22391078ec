package todo

import (
	"fmt"

	"todo/internal/canvas"
	"todo/internal/theme"
	"todo/internal/widget"
)

const highlightSymbol = "> "

// Render draws the task rows, or an empty-list placeholder, into area.
func (l *List) Render(area canvas.Rect, buf *canvas.Buffer) {
	if len(l.tasks) == 0 {
		block := canvas.Bordered()
		block.Style = theme.Panel
		widget.NewCenteredText(canvas.TextFrom("Todo list empty", theme.Hint)).
			WithBlock(block).
			Render(area, buf)
		return
	}

	buf.SetStyle(area, theme.Panel)
	selected, hasSelection := l.Index()
	offset := 0
	if hasSelection && selected >= area.Height {
		offset = selected - area.Height + 1
	}
	for row := 0; row < area.Height && offset+row < len(l.tasks); row++ {
		i := offset + row
		rowArea := canvas.Rect{X: area.X, Y: area.Y + row, Width: area.Width, Height: 1}
		line := rowLine(i, l.tasks[i])
		prefix := "  "
		if hasSelection && i == selected {
			prefix = highlightSymbol
		}
		line.Spans = append([]canvas.Span{canvas.Raw(prefix)}, line.Spans...)
		line.Render(rowArea, buf)
		if hasSelection && i == selected {
			buf.SetStyle(rowArea, theme.Highlight)
		}
	}
}

func rowLine(i int, t Task) canvas.Line {
	return canvas.Line{
		Spans: []canvas.Span{
			statusBadge(t.Status),
			canvas.Raw(" | "),
			canvas.Styled(fmt.Sprintf("(#%d) ", i), theme.Index),
			canvas.Raw(t.Title),
		},
		Style: theme.RowBackground(i),
	}
}

func statusBadge(s Status) canvas.Span {
	if s == StatusComplete {
		return canvas.Styled("complete   ", theme.Complete)
	}
	return canvas.Styled("in progress", theme.InProgress)
}
