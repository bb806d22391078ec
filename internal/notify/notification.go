package notify

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"todo/internal/canvas"
	"todo/internal/theme"
)

type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) border() canvas.Style {
	switch l {
	case Warn:
		return theme.WarnBorder
	case Error:
		return theme.ErrorBorder
	default:
		return theme.InfoBorder
	}
}

// Notification is an immutable overlay message that stays visible for a
// fixed span after it was created.
type Notification struct {
	title    string
	content  string
	duration time.Duration
	created  time.Time
	level    Level
}

func New(title, content string, d time.Duration, level Level, created time.Time) Notification {
	return Notification{title: title, content: content, duration: d, created: created, level: level}
}

func (n Notification) Title() string { return n.title }
func (n Notification) Content() string { return n.content }
func (n Notification) Duration() time.Duration { return n.duration }
func (n Notification) Level() Level { return n.level }

// AliveAt reports whether now is inside [created, created+duration). A clock
// that reads earlier than the creation time counts as expired.
func (n Notification) AliveAt(now time.Time) bool {
	elapsed := now.Sub(n.created)
	if elapsed < 0 {
		return false
	}
	return elapsed < n.duration
}

// Render draws the notification hugging the right edge of area.
func (n Notification) Render(area canvas.Rect, buf *canvas.Buffer) {
	width := min(runewidth.StringWidth(n.content)+4, area.Width)
	cols := canvas.Horizontal(area, canvas.Fill(1), canvas.Length(width))
	panel := cols[1]
	if panel.Empty() {
		return
	}
	buf.Clear(panel)

	block := canvas.Bordered()
	block.BorderType = lipgloss.ThickBorder()
	block.Title = n.title
	block.Style = theme.Panel
	block.BorderStyle = n.level.border()
	block.Padding = canvas.PadHorizontal(1)
	canvas.NewParagraph(n.content).
		WithStyle(theme.Panel).
		WithBlock(block).
		Render(panel, buf)
}
