package canvas

import (
	"testing"

	"pgregory.net/rapid"
)

func heights(rs []Rect) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Height
	}
	return out
}

func widths(rs []Rect) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Width
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVerticalSplit(t *testing.T) {
	cases := []struct {
		name        string
		height      int
		constraints []Constraint
		want        []int
	}{
		{name: "list layout", height: 21, constraints: []Constraint{Percentage(50), Fill(1), Length(1)}, want: []int{10, 10, 1}},
		{name: "even fill remainder goes first", height: 10, constraints: []Constraint{Fill(1), Fill(1), Fill(1)}, want: []int{4, 3, 3}},
		{name: "over constrained shrinks last", height: 7, constraints: []Constraint{Length(5), Length(5)}, want: []int{5, 2}},
		{name: "min grows without fill", height: 12, constraints: []Constraint{Length(3), Min(0)}, want: []int{3, 9}},
		{name: "ratio rounds down", height: 10, constraints: []Constraint{Ratio(1, 3), Ratio(1, 3)}, want: []int{3, 3}},
		{name: "zero height", height: 0, constraints: []Constraint{Percentage(50), Fill(1), Length(1)}, want: []int{0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs := Vertical(Rect{Width: 10, Height: tc.height}, tc.constraints...)
			if got := heights(rs); !equalInts(got, tc.want) {
				t.Fatalf("heights mismatch: got %v want %v", got, tc.want)
			}
			y := 0
			for i, r := range rs {
				if r.Y != y {
					t.Fatalf("segment %d starts at %d, want %d", i, r.Y, y)
				}
				if r.Width != 10 {
					t.Fatalf("segment %d width %d, want 10", i, r.Width)
				}
				y += r.Height
			}
		})
	}
}

func TestHorizontalRightAligned(t *testing.T) {
	rs := Horizontal(Rect{X: 2, Y: 1, Width: 20, Height: 3}, Fill(1), Length(8))
	if got := widths(rs); !equalInts(got, []int{12, 8}) {
		t.Fatalf("widths mismatch: got %v", got)
	}
	if rs[1].X != 14 || rs[1].Right() != 22 {
		t.Fatalf("right column misplaced: %+v", rs[1])
	}

	rs = Horizontal(Rect{Width: 20, Height: 3}, Fill(1), Length(30))
	if got := widths(rs); !equalInts(got, []int{0, 20}) {
		t.Fatalf("oversized column should clamp to area: got %v", got)
	}
}

func TestSplitNeverExceedsTotal(t *testing.T) {
	gen := rapid.Custom(func(t *rapid.T) Constraint {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		switch rapid.IntRange(0, 4).Draw(t, "kind") {
		case 0:
			return Length(n)
		case 1:
			return Percentage(rapid.IntRange(0, 100).Draw(t, "p"))
		case 2:
			return Ratio(1, rapid.IntRange(1, 8).Draw(t, "den"))
		case 3:
			return Min(n)
		default:
			return Fill(rapid.IntRange(1, 3).Draw(t, "w"))
		}
	})
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 120).Draw(t, "total")
		cs := rapid.SliceOfN(gen, 1, 6).Draw(t, "constraints")
		rs := Vertical(Rect{Width: 1, Height: total}, cs...)
		sum := 0
		hasFill := false
		for i, r := range rs {
			if r.Height < 0 {
				t.Fatalf("segment %d negative height %d", i, r.Height)
			}
			sum += r.Height
		}
		for _, c := range cs {
			if c.kind == kindFill {
				hasFill = true
			}
		}
		if sum > total {
			t.Fatalf("segments sum to %d, more than %d", sum, total)
		}
		if hasFill && sum != total {
			t.Fatalf("fill present but %d of %d cells used", sum, total)
		}
	})
}
