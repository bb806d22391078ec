package canvas

// Rect is a rectangular region of terminal cells. X and Y are the top-left
// corner; a Rect with zero width or height covers no cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rect by the given vertical and horizontal margins on
// every side. Margins larger than the rect collapse it to zero size.
func (r Rect) Inset(vertical, horizontal int) Rect {
	out := Rect{
		X:      r.X + horizontal,
		Y:      r.Y + vertical,
		Width:  r.Width - 2*horizontal,
		Height: r.Height - 2*vertical,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
