package task

import (
	"errors"

	"github.com/thenoetrevino/tick/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrNilTask       = errors.New("task is required")

	// ErrTaskNotFound is re-exported so callers only import the service
	ErrTaskNotFound = models.ErrTaskNotFound
)

// MaxTitleLength is the longest accepted title, in characters
const MaxTitleLength = 255
