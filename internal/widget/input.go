package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/canvas"
	"todo/internal/theme"
)

// Input is a single text field. Editing is delegated to a textinput.Model;
// drawing goes through the canvas so the field sits inside the frame layout.
type Input struct {
	ti    textinput.Model
	Title string
}

func NewInput() Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	return Input{ti: ti, Title: "input"}
}

func (i *Input) Focus() {
	// The blink command is dropped; the cursor is never drawn.
	_ = i.ti.Focus()
}

func (i *Input) Blur() { i.ti.Blur() }

func (i Input) Focused() bool { return i.ti.Focused() }

func (i Input) Value() string { return i.ti.Value() }

func (i *Input) SetValue(v string) {
	i.ti.SetValue(v)
	i.ti.CursorEnd()
}

func (i *Input) Reset() { i.ti.Reset() }

// Update feeds a key to the field. Unfocused fields ignore input.
func (i *Input) Update(msg tea.KeyMsg) {
	if !i.ti.Focused() {
		return
	}
	i.ti, _ = i.ti.Update(msg)
}

func (i Input) Render(area canvas.Rect, buf *canvas.Buffer) {
	border := theme.Unfocused
	if i.Focused() {
		border = theme.Focused
	}
	block := canvas.Bordered()
	block.Title = i.Title
	block.Padding = canvas.PadHorizontal(2)
	block.BorderStyle = border
	canvas.NewParagraph(i.Value()).WithBlock(block).Render(area, buf)
}
