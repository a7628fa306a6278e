package models

import (
	"strings"
	"time"
)

// Task represents a single to-do entry
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"` // empty means no description
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	CategoryID  int        `json:"category_id"`
}

// NewTask returns a task with the default priority and no due date
func NewTask(title string) *Task {
	return &Task{
		Title:    title,
		Priority: PriorityMedium,
	}
}

// GetID lets output formatters print just the identifier in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// HasDescription reports whether the task carries a non-blank description
func (t *Task) HasDescription() bool {
	return strings.TrimSpace(t.Description) != ""
}

// IsOverdue reports whether the task is still open and its due date has passed
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// Clone returns a deep copy so callers can mutate drafts without touching snapshots
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// DueDateLayout is the human-facing due date format
const DueDateLayout = "Jan 02, 2006"

// DueDateInputLayout is the format accepted when typing a due date
const DueDateInputLayout = "2006-01-02"

// FormatDueDate renders a due date for display, or "" when unset
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format(DueDateLayout)
}
