package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/config"
	"todo/internal/keys"
)

type tickMsg time.Time

// Model adapts Application to bubbletea. Each tick is one poll of the loop:
// expired notifications are dropped and the frame is redrawn.
type Model struct {
	app      *Application
	interval time.Duration
	width    int
	height   int
}

func NewModel(app *Application, interval time.Duration) Model {
	return Model{app: app, interval: interval}
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		m.app.Tick()
		return m, tick(m.interval)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.app.State().Running = Exiting
			return m, tea.Quit
		}
		m.app.HandleKey(msg)
		if !m.app.Running() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 || !m.app.Running() {
		return ""
	}
	buf := canvas.NewBuffer(canvas.Rect{Width: m.width, Height: m.height})
	m.app.Render(buf.Area(), buf)
	return buf.String()
}

// Run builds the application from cfg and drives it on the alternate screen
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, opts ...tea.ProgramOption) error {
	app := New(
		WithKeyMap(keys.FromConfig(cfg.Keys)),
		WithNotificationDuration(cfg.NotificationDuration.Duration),
		WithLogger(logger),
	)
	app.Init(SeedTasks(cfg.Seed))

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(NewModel(app, cfg.PollInterval.Duration), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("couldn't run terminal interface: %w", err)
	}
	app.env.logger.Info("application stopped")
	return nil
}
