package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/notify"
	"todo/internal/theme"
	"todo/internal/todo"
	"todo/internal/widget"
)

// newTaskView is the form for adding a task. Its fields live only as long
// as the view instance.
type newTaskView struct {
	env         *env
	title       widget.Input
	description widget.Input
}

func newNewTask(e *env) *newTaskView {
	return &newTaskView{
		env:         e,
		title:       widget.NewInput(),
		description: widget.NewInput(),
	}
}

func (v *newTaskView) HandleKey(st *State, msg tea.KeyMsg) Command {
	km := v.env.keys
	if st.Mode == Normal {
		if key.Matches(msg, km.Focus) {
			v.focus(&v.title, &v.description)
			st.Mode = Writing
			v.env.logger.Debug("mode changed", "from", Normal.String(), "to", Writing.String())
		}
		return none
	}

	switch {
	case key.Matches(msg, km.Normal):
		v.title.Blur()
		v.description.Blur()
		st.Mode = Normal
		v.env.logger.Debug("mode changed", "from", Writing.String(), "to", Normal.String())
	case key.Matches(msg, km.Focus):
		if v.title.Focused() {
			v.focus(&v.description, &v.title)
		} else {
			v.focus(&v.title, &v.description)
		}
	case key.Matches(msg, km.Submit):
		return v.submit(st)
	default:
		if v.title.Focused() {
			v.title.Update(msg)
		} else {
			v.description.Update(msg)
		}
	}
	return none
}

func (v *newTaskView) focus(on, off *widget.Input) {
	off.Blur()
	on.Focus()
}

func (v *newTaskView) submit(st *State) Command {
	title := strings.TrimSpace(v.title.Value())
	description := strings.TrimSpace(v.description.Value())
	if title == "" || description == "" {
		v.env.push(st, " missing fields ", "a new task needs both a title and a description", notify.Error)
		return none
	}
	t := todo.NewTask(title, description)
	st.Todos.Add(t)
	v.env.logger.Info("task added", "id", t.ID.String(), "title", t.Title)
	v.env.push(st, " added item ", fmt.Sprintf("added item `%s` to todo list", title), notify.Info)
	return switchView(ListView)
}

func (v *newTaskView) Render(st *State, area canvas.Rect, buf *canvas.Buffer) {
	buf.SetStyle(area, theme.Panel)
	rows := canvas.Vertical(area,
		canvas.Length(3),
		canvas.Fill(1),
		canvas.Length(1),
	)
	v.title.Render(rows[0], buf)
	v.description.Render(rows[1], buf)
	v.controls(st.Mode).Render(rows[2], buf)
}

func (v *newTaskView) controls(mode Mode) canvas.Line {
	km := v.env.keys
	if mode == Writing {
		return widget.Controls(
			widget.ControlOf(km.Focus),
			widget.ControlOf(km.Submit),
			widget.ControlOf(km.Normal),
		)
	}
	return widget.Controls(
		widget.ControlOf(km.Focus),
		widget.ControlOf(km.List),
		widget.ControlOf(km.Quit),
	)
}
