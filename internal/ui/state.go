package ui

import (
	"todo/internal/notify"
	"todo/internal/todo"
)

type RunState int

const (
	Running RunState = iota
	Exiting
)

func (r RunState) String() string {
	if r == Exiting {
		return "exiting"
	}
	return "running"
}

// Mode decides whether keys are commands or text for the focused field.
type Mode int

const (
	Normal Mode = iota
	Writing
)

func (m Mode) String() string {
	if m == Writing {
		return "writing"
	}
	return "normal"
}

type ViewKind int

const (
	ListView ViewKind = iota
	NewTaskView
)

func (v ViewKind) String() string {
	if v == NewTaskView {
		return "new task"
	}
	return "list"
}

// State is everything the shell owns. Views get it for the length of one key
// dispatch or one render.
type State struct {
	Running       RunState
	Mode          Mode
	Todos         *todo.List
	Notifications *notify.Stack
}

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdSwitchView
	cmdForward
)

// Command is the effect of a key, decided before any state changes.
type Command struct {
	kind commandKind
	view ViewKind
}

var (
	none    = Command{kind: cmdNone}
	quit    = Command{kind: cmdQuit}
	forward = Command{kind: cmdForward}
)

func switchView(v ViewKind) Command { return Command{kind: cmdSwitchView, view: v} }
