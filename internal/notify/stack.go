package notify

import (
	"time"

	"todo/internal/canvas"
)

// SlotHeight is the number of rows reserved for one notification.
const SlotHeight = 3

// Stack holds notifications oldest first.
type Stack struct {
	items []Notification
	clock func() time.Time
}

// NewStack returns an empty stack reading time from clock, or time.Now when
// clock is nil.
func NewStack(clock func() time.Time) *Stack {
	if clock == nil {
		clock = time.Now
	}
	return &Stack{clock: clock}
}

func (s *Stack) Now() time.Time { return s.clock() }

func (s *Stack) Push(n Notification) { s.items = append(s.items, n) }

// IsEmpty ignores expiry.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack) Len() int { return len(s.items) }

// Items returns a copy of the stored notifications, oldest first.
func (s *Stack) Items() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Cleanup drops every notification that is no longer alive at now, keeping
// the order of the rest. It returns how many were dropped.
func (s *Stack) Cleanup(now time.Time) int {
	kept := s.items[:0]
	for _, n := range s.items {
		if n.AliveAt(now) {
			kept = append(kept, n)
		}
	}
	dropped := len(s.items) - len(kept)
	clear(s.items[len(kept):])
	s.items = kept
	return dropped
}

// Slots is the number of notifications that fit in an area of height h.
func Slots(h int) int {
	return max(1, h/SlotHeight)
}

// Render drops expired notifications, then draws the oldest ones top-down in
// equal bands. It returns how many were drawn.
func (s *Stack) Render(area canvas.Rect, buf *canvas.Buffer) int {
	s.Cleanup(s.clock())
	if s.IsEmpty() || area.Empty() {
		return 0
	}
	slots := Slots(area.Height)
	constraints := make([]canvas.Constraint, slots)
	for i := range constraints {
		constraints[i] = canvas.Fill(1)
	}
	bands := canvas.Vertical(area, constraints...)
	shown := min(len(s.items), slots)
	for i := 0; i < shown; i++ {
		s.items[i].Render(bands[i], buf)
	}
	return shown
}
