package todo

import "github.com/google/uuid"

type Status int

const (
	StatusInProgress Status = iota
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	default:
		return "in progress"
	}
}

// Task is a single todo entry. ID is stable for the task's lifetime; its
// position in a List is display-only.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      Status
}

// NewTask returns an in-progress task with a fresh ID.
func NewTask(title, description string) Task {
	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      StatusInProgress,
	}
}

func (t *Task) ToggleStatus() {
	if t.Status == StatusComplete {
		t.Status = StatusInProgress
		return
	}
	t.Status = StatusComplete
}
