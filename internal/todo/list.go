package todo

// List is an ordered collection of tasks with a selection cursor. The
// cursor is either unset or an index in [0, Len()).
type List struct {
	tasks  []Task
	cursor int
}

const unset = -1

func NewList(tasks ...Task) *List {
	l := &List{cursor: unset}
	l.tasks = append(l.tasks, tasks...)
	return l
}

func (l *List) Len() int { return len(l.tasks) }

// Tasks returns a copy of the tasks in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Index reports the cursor position when it points at a task.
func (l *List) Index() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.tasks) {
		return 0, false
	}
	return l.cursor, true
}

func (l *List) Selected() (Task, bool) {
	i, ok := l.Index()
	if !ok {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Next moves the cursor toward the end, selecting the first task when
// nothing is selected. It stops on the last task.
func (l *List) Next() {
	if len(l.tasks) == 0 {
		l.cursor = unset
		return
	}
	i, ok := l.Index()
	if !ok {
		l.cursor = 0
		return
	}
	l.cursor = min(i+1, len(l.tasks)-1)
}

// Prev moves the cursor toward the start, selecting the last task when
// nothing is selected. It stops on the first task.
func (l *List) Prev() {
	if len(l.tasks) == 0 {
		l.cursor = unset
		return
	}
	i, ok := l.Index()
	if !ok {
		l.cursor = len(l.tasks) - 1
		return
	}
	l.cursor = max(i-1, 0)
}

// Add appends t without moving the cursor.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// DeleteCurrent removes and returns the selected task. The cursor then
// points at the task that followed it, or is unset when the removed task was
// the last one.
func (l *List) DeleteCurrent() (Task, bool) {
	i, ok := l.Index()
	if !ok {
		return Task{}, false
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	if i >= len(l.tasks) {
		l.cursor = unset
	}
	return removed, true
}

func (l *List) ToggleCurrentStatus() {
	if i, ok := l.Index(); ok {
		l.tasks[i].ToggleStatus()
	}
}
