package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCenteredTextWithoutBlock(t *testing.T) {
	buf := canvas.NewBuffer(canvas.Rect{Width: 20, Height: 5})
	NewCenteredText(canvas.TextFrom("hi", theme.Hint)).Render(buf.Area(), buf)
	if got := buf.Row(2); got != "         hi         " {
		t.Fatalf("row 2 = %q", got)
	}
	if c := buf.Cell(9, 2); c.Style.Fg != canvas.Cyan {
		t.Fatalf("hint color = %q, want cyan", c.Style.Fg)
	}
}

func TestCenteredTextInsideBlock(t *testing.T) {
	buf := canvas.NewBuffer(canvas.Rect{Width: 20, Height: 7})
	NewCenteredText(canvas.TextFrom("hi", theme.Hint)).
		WithBlock(canvas.Bordered()).
		Render(buf.Area(), buf)
	if got := buf.Row(3); got != "│        hi        │" {
		t.Fatalf("row 3 = %q", got)
	}
}

func TestCenteredTextTallerThanArea(t *testing.T) {
	buf := canvas.NewBuffer(canvas.Rect{Width: 5, Height: 2})
	NewCenteredText(canvas.TextFrom("a\nb\nc", canvas.Style{})).Render(buf.Area(), buf)
	if got := buf.Plain(); got != "  a\n  b" {
		t.Fatalf("clipped text = %q", got)
	}
}

func TestControlsStrip(t *testing.T) {
	up := key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "UP"))
	down := key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "DN"))
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q/esc", "quit"))

	line := Controls(Pair(up, down), ControlOf(quit))
	if got, want := line.String(), " k/j - UP/DN | q/esc - quit "; got != want {
		t.Fatalf("strip = %q, want %q", got, want)
	}
	if line.Style != theme.Highlight {
		t.Fatalf("strip style = %+v", line.Style)
	}
	if sep := line.Spans[1]; sep.Content != "|" || sep.Style != theme.Separator {
		t.Fatalf("separator span = %+v", sep)
	}
	if Controls().String() != "" {
		t.Fatal("empty strip should render nothing")
	}
}

func TestInputEditing(t *testing.T) {
	in := NewInput()
	in.Update(runes("x"))
	if in.Value() != "" {
		t.Fatalf("unfocused input accepted a key: %q", in.Value())
	}

	in.Focus()
	for _, r := range "ab c" {
		if r == ' ' {
			in.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		in.Update(runes(string(r)))
	}
	if in.Value() != "ab c" {
		t.Fatalf("value = %q, want %q", in.Value(), "ab c")
	}
	in.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if in.Value() != "ab " {
		t.Fatalf("backspace left %q", in.Value())
	}

	in.Blur()
	if in.Focused() {
		t.Fatal("blur should unfocus")
	}
	in.Reset()
	if in.Value() != "" {
		t.Fatalf("reset left %q", in.Value())
	}
}

func TestInputRender(t *testing.T) {
	buf := canvas.NewBuffer(canvas.Rect{Width: 16, Height: 3})
	in := NewInput()
	in.SetValue("milk")
	in.Render(buf.Area(), buf)

	if got := buf.Row(0); !strings.HasPrefix(got, "┌input") {
		t.Fatalf("title row = %q", got)
	}
	if got := buf.Row(1); got != "│  milk        │" {
		t.Fatalf("value row = %q", got)
	}
	if c := buf.Cell(0, 1); c.Style.Fg != canvas.White {
		t.Fatalf("unfocused border = %q, want white", c.Style.Fg)
	}

	in.Focus()
	in.Render(buf.Area(), buf)
	if c := buf.Cell(0, 1); c.Style.Fg != canvas.LightBlue {
		t.Fatalf("focused border = %q, want light blue", c.Style.Fg)
	}
}
