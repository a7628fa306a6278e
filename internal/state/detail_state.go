package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

var (
	// ErrTitleRequired is returned by Save when the draft title is blank
	ErrTitleRequired = errors.New("title is required")
	// ErrNothingLoaded is returned when saving or deleting without a task
	ErrNothingLoaded = errors.New("no task loaded")
)

// DetailStatus is the lifecycle of the detail screen.
type DetailStatus int

const (
	DetailEmpty    DetailStatus = iota // Nothing loaded yet
	DetailNew                          // Editing a draft that is not stored yet
	DetailLoaded                       // Editing an existing task
	DetailNotFound                     // The requested task does not exist
	DetailDeleted                      // The task was deleted from this screen
)

// Draft holds the editable fields of a task.
type Draft struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     *time.Time
}

func draftFrom(t *models.Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.Clone().DueDate,
	}
}

// DetailState manages the add and edit screens.
// The draft is edited freely; nothing is written until Save.
type DetailState struct {
	tasks taskservice.Service

	mu         sync.Mutex
	status     DetailStatus
	task       *models.Task // stored version, nil in DetailNew
	draft      Draft
	titleError bool

	// gen changes whenever the screen starts over, so a Load that began
	// earlier knows its result is stale
	gen uint64
}

// NewDetailState creates an empty detail state.
func NewDetailState(tasks taskservice.Service) *DetailState {
	return &DetailState{tasks: tasks}
}

// Load fetches the task and fills the draft from it.
// A missing task is reported through the DetailNotFound status, not an error.
func (s *DetailState) Load(ctx context.Context, id int) (DetailStatus, error) {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	task, err := s.tasks.GetTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return s.status, nil
	}

	s.titleError = false
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound), errors.Is(err, taskservice.ErrInvalidTaskID):
		s.status = DetailNotFound
		s.task = nil
		s.draft = Draft{}
		return s.status, nil
	case err != nil:
		return s.status, err
	}

	s.status = DetailLoaded
	s.task = task
	s.draft = draftFrom(task)
	return s.status, nil
}

// BeginLoad clears the screen while a task is being fetched, so nothing
// can be saved or deleted until Load finishes.
func (s *DetailState) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.status = DetailEmpty
	s.task = nil
	s.draft = Draft{}
	s.titleError = false
}

// NewDraft starts a blank draft for the add screen.
func (s *DetailState) NewDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.status = DetailNew
	s.task = nil
	s.draft = Draft{Priority: models.PriorityMedium}
	s.titleError = false
}

// Status returns where the screen is in its lifecycle.
func (s *DetailState) Status() DetailStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Task returns a copy of the stored task, or nil.
func (s *DetailState) Task() *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task.Clone()
}

// Draft returns a copy of the draft.
func (s *DetailState) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	if d.DueDate != nil {
		due := *d.DueDate
		d.DueDate = &due
	}
	return d
}

// TitleError reports whether the last Save was rejected for a blank title.
func (s *DetailState) TitleError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.titleError
}

// SetTitle updates the draft title and clears the title error.
func (s *DetailState) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Title = title
	s.titleError = false
}

func (s *DetailState) SetDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Description = description
}

// CyclePriority advances the draft priority and returns it.
func (s *DetailState) CyclePriority() models.Priority {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Priority = s.draft.Priority.Next()
	return s.draft.Priority
}

// SetDueDate sets or, with nil, clears the draft due date.
func (s *DetailState) SetDueDate(due *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if due == nil {
		s.draft.DueDate = nil
		return
	}
	d := *due
	s.draft.DueDate = &d
}

// SetDueDateInput parses a typed date (YYYY-MM-DD). Blank input clears it.
func (s *DetailState) SetDueDateInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		s.SetDueDate(nil)
		return nil
	}
	due, err := time.ParseInLocation(models.DueDateInputLayout, input, time.Local)
	if err != nil {
		return fmt.Errorf("invalid due date %q (use YYYY-MM-DD)", input)
	}
	s.SetDueDate(&due)
	return nil
}

// Save validates and persists the draft. A blank title sets the title error
// and returns ErrTitleRequired without writing anything. The title is
// trimmed and a blank description is cleared. In add mode the task is
// inserted and the state switches to editing it.
func (s *DetailState) Save(ctx context.Context) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(s.draft.Title)
	if title == "" {
		s.titleError = true
		return nil, ErrTitleRequired
	}
	description := s.draft.Description
	if strings.TrimSpace(description) == "" {
		description = ""
	}

	switch s.status {
	case DetailNew:
		task, err := s.tasks.AddTask(ctx, taskservice.AddTaskRequest{
			Title:       title,
			Description: description,
			Priority:    s.draft.Priority,
			DueDate:     s.draft.DueDate,
		})
		if err != nil {
			return nil, err
		}
		s.status = DetailLoaded
		s.task = task
		s.draft = draftFrom(task)
		return task.Clone(), nil

	case DetailLoaded:
		updated := s.task.Clone()
		updated.Title = title
		updated.Description = description
		updated.Priority = s.draft.Priority
		updated.DueDate = s.draft.DueDate
		if err := s.tasks.UpdateTask(ctx, updated); err != nil {
			return nil, err
		}
		s.task = updated
		s.draft = draftFrom(updated)
		return updated.Clone(), nil
	}

	return nil, ErrNothingLoaded
}

// Delete removes the loaded task.
func (s *DetailState) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != DetailLoaded {
		return ErrNothingLoaded
	}
	if err := s.tasks.DeleteTask(ctx, s.task); err != nil {
		return err
	}
	s.status = DetailDeleted
	return nil
}
