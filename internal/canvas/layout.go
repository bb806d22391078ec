package canvas

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindRatio
	kindMin
	kindFill
)

// Constraint sizes one segment of a split.
type Constraint struct {
	kind  constraintKind
	value int
	den   int
}

// Length is a fixed number of cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: n} }

// Percentage is p percent of the total, rounded down.
func Percentage(p int) Constraint { return Constraint{kind: kindPercentage, value: p} }

// Ratio is num/den of the total, rounded down.
func Ratio(num, den int) Constraint { return Constraint{kind: kindRatio, value: num, den: den} }

// Min is at least n cells and grows into leftover space when no Fill
// segment claims it.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: n} }

// Fill takes a share of the leftover space proportional to weight.
func Fill(weight int) Constraint { return Constraint{kind: kindFill, value: weight} }

// Vertical splits area into stacked rows.
func Vertical(area Rect, constraints ...Constraint) []Rect {
	sizes := solve(area.Height, constraints)
	out := make([]Rect, len(sizes))
	y := area.Y
	for i, h := range sizes {
		out[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
	}
	return out
}

// Horizontal splits area into side-by-side columns.
func Horizontal(area Rect, constraints ...Constraint) []Rect {
	sizes := solve(area.Width, constraints)
	out := make([]Rect, len(sizes))
	x := area.X
	for i, w := range sizes {
		out[i] = Rect{X: x, Y: area.Y, Width: w, Height: area.Height}
		x += w
	}
	return out
}

func solve(total int, constraints []Constraint) []int {
	if total < 0 {
		total = 0
	}
	sizes := make([]int, len(constraints))
	used := 0
	for i, c := range constraints {
		switch c.kind {
		case kindLength, kindMin:
			sizes[i] = max(c.value, 0)
		case kindPercentage:
			sizes[i] = total * clamp(c.value, 0, 100) / 100
		case kindRatio:
			if c.den > 0 {
				sizes[i] = total * max(c.value, 0) / c.den
			}
		}
		used += sizes[i]
	}

	// Over-constrained: shrink from the last segment backwards.
	for i := len(sizes) - 1; i >= 0 && used > total; i-- {
		cut := min(sizes[i], used-total)
		sizes[i] -= cut
		used -= cut
	}

	leftover := total - used
	if leftover <= 0 {
		return sizes
	}
	growers, weights := growable(constraints)
	if len(growers) == 0 {
		return sizes
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	given := 0
	for i, idx := range growers {
		share := leftover * weights[i] / sum
		sizes[idx] += share
		given += share
	}
	// Integer remainder goes to the earliest segments, one cell each.
	for i := 0; given < leftover; i = (i + 1) % len(growers) {
		sizes[growers[i]]++
		given++
	}
	return sizes
}

func growable(constraints []Constraint) ([]int, []int) {
	var idx, weights []int
	for i, c := range constraints {
		if c.kind == kindFill {
			idx = append(idx, i)
			weights = append(weights, max(c.value, 1))
		}
	}
	if len(idx) > 0 {
		return idx, weights
	}
	for i, c := range constraints {
		if c.kind == kindMin {
			idx = append(idx, i)
			weights = append(weights, 1)
		}
	}
	return idx, weights
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
