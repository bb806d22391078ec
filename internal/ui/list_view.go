package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/notify"
	"todo/internal/theme"
	"todo/internal/widget"
)

const emptyDescriptionHint = "scroll on some tasks to view their content here"

type listView struct {
	env *env
}

func newList(e *env) *listView { return &listView{env: e} }

func (v *listView) HandleKey(st *State, msg tea.KeyMsg) Command {
	km := v.env.keys
	switch {
	case key.Matches(msg, km.Down):
		st.Todos.Next()
	case key.Matches(msg, km.Up):
		st.Todos.Prev()
	case key.Matches(msg, km.Toggle):
		st.Todos.ToggleCurrentStatus()
		if t, ok := st.Todos.Selected(); ok {
			v.env.logger.Info("task toggled", "id", t.ID.String(), "status", t.Status.String())
		}
	case key.Matches(msg, km.Delete):
		removed, ok := st.Todos.DeleteCurrent()
		if !ok {
			return none
		}
		v.env.logger.Info("task deleted", "id", removed.ID.String(), "title", removed.Title)
		v.env.push(st, " deleted item ",
			fmt.Sprintf("deleted item `%s` from todo list with status %s", removed.Title, removed.Status),
			notify.Warn)
	}
	return none
}

func (v *listView) Render(st *State, area canvas.Rect, buf *canvas.Buffer) {
	rows := canvas.Vertical(area,
		canvas.Percentage(50),
		canvas.Fill(1),
		canvas.Length(1),
	)
	st.Todos.Render(rows[0], buf)
	v.renderDescription(st, rows[1], buf)
	v.controls().Render(rows[2], buf)
}

func (v *listView) renderDescription(st *State, area canvas.Rect, buf *canvas.Buffer) {
	outer := canvas.NewBlock()
	outer.Borders = canvas.BorderTop
	outer.Style = theme.Panel

	task, ok := st.Todos.Selected()
	if !ok {
		widget.NewCenteredText(canvas.TextFrom(emptyDescriptionHint, theme.Hint)).
			WithBlock(outer).
			Render(area, buf)
		return
	}

	outer.Render(area, buf)
	inner := canvas.Bordered()
	inner.Padding = canvas.PadHorizontal(1)
	inner.BorderStyle = theme.DescriptionBorder
	inner.Style = theme.Panel
	canvas.NewParagraph(task.Description).
		WithBlock(inner).
		Render(outer.Inner(area).Inset(1, 5), buf)
}

func (v *listView) controls() canvas.Line {
	km := v.env.keys
	return widget.Controls(
		widget.Pair(km.Up, km.Down),
		widget.ControlOf(km.Toggle),
		widget.ControlOf(km.NewTask),
		widget.ControlOf(km.Delete),
		widget.ControlOf(km.Quit),
	)
}
