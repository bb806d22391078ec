package todo

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func titles(l *List) []string {
	var out []string
	for _, t := range l.Tasks() {
		out = append(out, t.Title)
	}
	return out
}

func seeded(n int) *List {
	l := NewList()
	for i := 0; i < n; i++ {
		l.Add(NewTask(fmt.Sprintf("T%d", i), fmt.Sprintf("description %d", i)))
	}
	return l
}

func TestNewTaskDefaults(t *testing.T) {
	a := NewTask("a", "b")
	if a.Status != StatusInProgress {
		t.Fatalf("new task status = %v", a.Status)
	}
	if a.ID == NewTask("a", "b").ID {
		t.Fatal("tasks must get distinct IDs")
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusInProgress.String(); got != "in progress" {
		t.Fatalf("in progress = %q", got)
	}
	if got := StatusComplete.String(); got != "complete" {
		t.Fatalf("complete = %q", got)
	}
}

func TestEmptyListHasNoSelection(t *testing.T) {
	l := NewList()
	l.Next()
	l.Prev()
	if _, ok := l.Selected(); ok {
		t.Fatal("empty list must not report a selection")
	}
	if _, ok := l.DeleteCurrent(); ok {
		t.Fatal("delete on empty list must do nothing")
	}
	l.ToggleCurrentStatus()
}

func TestCursorMovement(t *testing.T) {
	l := seeded(3)
	if _, ok := l.Selected(); ok {
		t.Fatal("cursor should start unset")
	}
	l.Next()
	if i, _ := l.Index(); i != 0 {
		t.Fatalf("first next selects %d, want 0", i)
	}
	l.Next()
	l.Next()
	l.Next()
	if i, _ := l.Index(); i != 2 {
		t.Fatalf("next past the end selects %d, want 2", i)
	}
	l.Prev()
	l.Prev()
	l.Prev()
	if i, _ := l.Index(); i != 0 {
		t.Fatalf("prev past the start selects %d, want 0", i)
	}

	l = seeded(3)
	l.Prev()
	if i, _ := l.Index(); i != 2 {
		t.Fatalf("prev from unset selects %d, want last", i)
	}
}

func TestAddKeepsCursor(t *testing.T) {
	l := seeded(2)
	l.Next()
	l.Add(NewTask("new", ""))
	if i, _ := l.Index(); i != 0 {
		t.Fatalf("add moved cursor to %d", i)
	}
	if got := titles(l); got[len(got)-1] != "new" {
		t.Fatalf("add did not append: %v", got)
	}
}

func TestScrollAndToggle(t *testing.T) {
	l := seeded(3)
	l.Next()
	l.Next()
	l.ToggleCurrentStatus()

	tasks := l.Tasks()
	if tasks[1].Status != StatusComplete {
		t.Fatalf("T1 status = %v, want complete", tasks[1].Status)
	}
	if tasks[0].Status != StatusInProgress || tasks[2].Status != StatusInProgress {
		t.Fatal("only T1 should change")
	}
	if i, _ := l.Index(); i != 1 {
		t.Fatalf("selection moved to %d", i)
	}
}

func TestDeleteCurrent(t *testing.T) {
	cases := []struct {
		name       string
		size       int
		moves      int
		wantTitle  string
		wantTitles []string
		wantCursor int
		wantUnset  bool
	}{
		{name: "first", size: 3, moves: 1, wantTitle: "T0", wantTitles: []string{"T1", "T2"}, wantCursor: 0},
		{name: "middle", size: 3, moves: 2, wantTitle: "T1", wantTitles: []string{"T0", "T2"}, wantCursor: 1},
		{name: "last", size: 3, moves: 3, wantTitle: "T2", wantTitles: []string{"T0", "T1"}, wantUnset: true},
		{name: "only", size: 1, moves: 1, wantTitle: "T0", wantTitles: nil, wantUnset: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := seeded(tc.size)
			for i := 0; i < tc.moves; i++ {
				l.Next()
			}
			removed, ok := l.DeleteCurrent()
			if !ok || removed.Title != tc.wantTitle {
				t.Fatalf("removed %q (ok=%v), want %q", removed.Title, ok, tc.wantTitle)
			}
			got := titles(l)
			if fmt.Sprint(got) != fmt.Sprint(tc.wantTitles) {
				t.Fatalf("remaining %v, want %v", got, tc.wantTitles)
			}
			i, ok := l.Index()
			if tc.wantUnset {
				if ok {
					t.Fatalf("cursor should be unset, got %d", i)
				}
				return
			}
			if !ok || i != tc.wantCursor {
				t.Fatalf("cursor = %d (ok=%v), want %d", i, ok, tc.wantCursor)
			}
		})
	}
}

func TestDeleteWithNotificationScenario(t *testing.T) {
	l := NewList(NewTask("a", ""), NewTask("b", ""))
	l.Next()
	l.Next()
	l.Prev()
	l.ToggleCurrentStatus()
	l.ToggleCurrentStatus()
	removed, ok := l.DeleteCurrent()
	if !ok || removed.Title != "a" || removed.Status != StatusInProgress {
		t.Fatalf("removed %+v", removed)
	}
	if got := titles(l); len(got) != 1 || got[0] != "b" {
		t.Fatalf("remaining %v", got)
	}
	if sel, ok := l.Selected(); !ok || sel.Title != "b" {
		t.Fatalf("cursor should move onto the following task, got %+v", sel)
	}
}

type op int

const (
	opNext op = iota
	opPrev
	opAdd
	opDelete
	opToggle
)

func genOps(t *rapid.T) []op {
	return rapid.SliceOfN(rapid.SampledFrom([]op{opNext, opPrev, opAdd, opDelete, opToggle}), 0, 60).Draw(t, "ops")
}

func apply(l *List, o op, n int) {
	switch o {
	case opNext:
		l.Next()
	case opPrev:
		l.Prev()
	case opAdd:
		l.Add(NewTask(fmt.Sprintf("task-%d", n), ""))
	case opDelete:
		l.DeleteCurrent()
	case opToggle:
		l.ToggleCurrentStatus()
	}
}

func TestSelectionStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := seeded(rapid.IntRange(0, 8).Draw(t, "size"))
		for n, o := range genOps(t) {
			apply(l, o, n)
			sel, ok := l.Selected()
			if !ok {
				continue
			}
			i, _ := l.Index()
			if i < 0 || i >= l.Len() {
				t.Fatalf("cursor %d out of range [0,%d)", i, l.Len())
			}
			if l.Tasks()[i].ID != sel.ID {
				t.Fatalf("selected task does not match position %d", i)
			}
		}
	})
}

func TestDeletionPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := seeded(rapid.IntRange(0, 8).Draw(t, "size"))
		for n, o := range genOps(t) {
			apply(l, o, n)
		}
		before := titles(l)
		i, selected := l.Index()
		removed, ok := l.DeleteCurrent()
		if ok != selected {
			t.Fatalf("delete reported %v with selection %v", ok, selected)
		}
		after := titles(l)
		if !ok {
			if fmt.Sprint(before) != fmt.Sprint(after) {
				t.Fatalf("delete without selection changed %v to %v", before, after)
			}
			return
		}
		want := append(append([]string{}, before[:i]...), before[i+1:]...)
		if fmt.Sprint(after) != fmt.Sprint(want) {
			t.Fatalf("after deleting %q at %d: got %v want %v", removed.Title, i, after, want)
		}
		j, stillSelected := l.Index()
		if i < len(after) {
			if !stillSelected || j != i {
				t.Fatalf("cursor should stay on index %d, got %d (%v)", i, j, stillSelected)
			}
		} else if stillSelected {
			t.Fatalf("cursor should be unset after removing the last task, got %d", j)
		}
	})
}

func TestToggleIsInvolutive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := seeded(rapid.IntRange(0, 8).Draw(t, "size"))
		for n, o := range genOps(t) {
			apply(l, o, n)
		}
		before := l.Tasks()
		l.ToggleCurrentStatus()
		l.ToggleCurrentStatus()
		after := l.Tasks()
		for i := range before {
			if before[i].Status != after[i].Status {
				t.Fatalf("task %d status %v became %v", i, before[i].Status, after[i].Status)
			}
		}
	})
}
