package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Next returns the status that follows s in the preparation workflow.
// StatusDone is terminal and maps to itself.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusDone
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDone
}

func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusInProgress, StatusDone:
		return Status(raw), true
	}
	return "", false
}

type Order struct {
	ID        uint
	ClientID  uint
	DishName  string
	Notes     *string
	Status    Status
	CreatedAt time.Time
}
