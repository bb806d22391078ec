package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"todo/internal/canvas"
	"todo/internal/theme"
)

// Control is one entry of the controls strip.
type Control struct {
	Key  string
	Desc string
}

// ControlOf reads the help label of a key binding.
func ControlOf(b key.Binding) Control {
	h := b.Help()
	return Control{Key: h.Key, Desc: h.Desc}
}

// Pair merges two bindings into one entry, e.g. "k/j - UP/DN".
func Pair(a, b key.Binding) Control {
	ha, hb := a.Help(), b.Help()
	return Control{Key: ha.Key + "/" + hb.Key, Desc: ha.Desc + "/" + hb.Desc}
}

// Controls builds the strip: " key - desc " spans separated by "|".
func Controls(controls ...Control) canvas.Line {
	spans := make([]canvas.Span, 0, 2*len(controls))
	for i, c := range controls {
		if i > 0 {
			spans = append(spans, canvas.Styled("|", theme.Separator))
		}
		spans = append(spans, canvas.Raw(fmt.Sprintf(" %s - %s ", c.Key, c.Desc)))
	}
	return canvas.Line{Spans: spans, Style: theme.Highlight}
}
