package theme

import "todo/internal/canvas"

// Panel is the white-on-black base used by every container block.
var Panel = canvas.NewStyle().
	Foreground(canvas.White).
	Background(canvas.Black)

// Highlight marks the selected row and the controls strip.
var Highlight = canvas.NewStyle().
	Foreground(canvas.Black).
	Background(canvas.White).
	Bolded()

// Hint is used for centered placeholder messages.
var Hint = canvas.NewStyle().Foreground(canvas.Cyan)

// Index colors the "(#n)" prefix of a task row.
var Index = canvas.NewStyle().Foreground(canvas.LightCyan)

// Separator colors the "|" between controls strip entries.
var Separator = canvas.NewStyle().Foreground(canvas.Black)

var (
	InProgress = canvas.NewStyle().Foreground(canvas.LightBlue)
	Complete   = canvas.NewStyle().Foreground(canvas.LightGreen)
)

// Focused and Unfocused are the input field border colors.
var (
	Focused   = canvas.NewStyle().Foreground(canvas.LightBlue)
	Unfocused = canvas.NewStyle().Foreground(canvas.White)
)

// DescriptionBorder outlines the selected task's description.
var DescriptionBorder = canvas.NewStyle().Foreground(canvas.LightBlue)

// RowBackground alternates task rows between dark gray and black.
func RowBackground(i int) canvas.Style {
	if i%2 == 0 {
		return canvas.NewStyle().Background(canvas.DarkGray)
	}
	return canvas.NewStyle().Background(canvas.Black)
}

// Level border colors for notifications.
var (
	InfoBorder  = canvas.NewStyle().Foreground(canvas.LightBlue)
	WarnBorder  = canvas.NewStyle().Foreground(canvas.LightYellow)
	ErrorBorder = canvas.NewStyle().Foreground(canvas.LightRed)
)
