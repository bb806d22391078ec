package ui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/config"
	"todo/internal/keys"
	"todo/internal/notify"
	"todo/internal/todo"
)

// View receives the keys the shell forwards and draws one screen.
type View interface {
	HandleKey(st *State, msg tea.KeyMsg) Command
	Render(st *State, area canvas.Rect, buf *canvas.Buffer)
}

// env is what views share with the shell besides State.
type env struct {
	keys                 *keys.KeyMap
	notificationDuration time.Duration
	logger               *slog.Logger
}

func (e *env) push(st *State, title, content string, level notify.Level) {
	st.Notifications.Push(notify.New(title, content, e.notificationDuration, level, st.Notifications.Now()))
	e.logger.Info("notification pushed", "level", level.String(), "title", title)
}

// Application is the shell: it owns State, routes keys and draws frames.
type Application struct {
	state State
	view  View
	kind  ViewKind
	env   *env
	clock func() time.Time
}

type Option func(*Application)

func WithKeyMap(km *keys.KeyMap) Option {
	return func(a *Application) { a.env.keys = km }
}

func WithNotificationDuration(d time.Duration) Option {
	return func(a *Application) { a.env.notificationDuration = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Application) {
		if l != nil {
			a.env.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of notification timestamps.
func WithClock(clock func() time.Time) Option {
	return func(a *Application) { a.clock = clock }
}

func New(opts ...Option) *Application {
	a := &Application{
		env: &env{
			keys:                 keys.DefaultKeyMap(),
			notificationDuration: config.DefaultNotificationDuration,
			logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init loads seed tasks and shows the list.
func (a *Application) Init(seed []todo.Task) {
	a.state = State{
		Running:       Running,
		Mode:          Normal,
		Todos:         todo.NewList(seed...),
		Notifications: notify.NewStack(a.clock),
	}
	a.setView(ListView)
	a.env.logger.Info("application initialized", "tasks", len(seed))
}

// SeedTasks turns configured seeds into fresh tasks.
func SeedTasks(seeds []config.Seed) []todo.Task {
	tasks := make([]todo.Task, 0, len(seeds))
	for _, s := range seeds {
		tasks = append(tasks, todo.NewTask(s.Title, s.Description))
	}
	return tasks
}

func (a *Application) State() *State { return &a.state }

func (a *Application) ActiveView() ViewKind { return a.kind }

func (a *Application) Running() bool { return a.state.Running == Running }

// HandleKey dispatches one key press.
func (a *Application) HandleKey(msg tea.KeyMsg) {
	a.apply(a.route(a.state.Mode, msg), msg)
}

// route decides what a key means without touching state. Shell bindings
// only apply in normal mode.
func (a *Application) route(mode Mode, msg tea.KeyMsg) Command {
	if mode != Normal {
		return forward
	}
	km := a.env.keys
	switch {
	case key.Matches(msg, km.NewTask):
		return switchView(NewTaskView)
	case key.Matches(msg, km.List):
		return switchView(ListView)
	case key.Matches(msg, km.Quit):
		return quit
	default:
		return forward
	}
}

func (a *Application) apply(cmd Command, msg tea.KeyMsg) {
	switch cmd.kind {
	case cmdQuit:
		a.state.Running = Exiting
		a.env.logger.Info("quit requested")
	case cmdSwitchView:
		a.setView(cmd.view)
	case cmdForward:
		if a.view == nil {
			return
		}
		next := a.view.HandleKey(&a.state, msg)
		if next.kind != cmdForward {
			a.apply(next, msg)
		}
	}
}

// setView installs a fresh instance of kind. Every view starts in normal mode.
func (a *Application) setView(kind ViewKind) {
	switch kind {
	case NewTaskView:
		a.view = newNewTask(a.env)
	default:
		a.view = newList(a.env)
	}
	if a.state.Mode != Normal {
		a.env.logger.Debug("mode changed", "from", a.state.Mode.String(), "to", Normal.String())
	}
	a.state.Mode = Normal
	a.kind = kind
	a.env.logger.Debug("view switched", "view", kind.String())
}

// Render draws the active view, then the notification overlay on the same
// area. It panics when called before Init.
func (a *Application) Render(area canvas.Rect, buf *canvas.Buffer) {
	if a.view == nil {
		panic(fmt.Sprintf("ui: render of %s view before Init", a.kind))
	}
	a.view.Render(&a.state, area, buf)
	a.state.Notifications.Render(area, buf)
}

// Tick drops expired notifications.
func (a *Application) Tick() {
	if a.state.Notifications == nil {
		return
	}
	if n := a.state.Notifications.Cleanup(a.state.Notifications.Now()); n > 0 {
		a.env.logger.Debug("notifications expired", "count", n)
	}
}
