package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen's worth of output between two screen clears.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csi         = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	osc         = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

func splitFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range clearScreen.Split(stream, -1) {
		segment = strings.Trim(segment, "\x00")
		plain := tidy(Strip(segment))
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	return frames
}

// Strip removes escape sequences and shift characters from s.
func Strip(s string) string {
	s = osc.ReplaceAllString(s, "")
	s = csi.ReplaceAllString(s, "")
	return strings.NewReplacer("\x0e", "", "\x0f", "").Replace(s)
}

// tidy trims trailing spaces on every line and drops trailing blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// LastFrame returns the final frame, if any was captured.
func (r *Recording) LastFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Saw reports whether text was ever written to the screen.
func (r *Recording) Saw(text string) bool {
	if r == nil {
		return false
	}
	return strings.Contains(Strip(string(r.Raw)), text)
}
