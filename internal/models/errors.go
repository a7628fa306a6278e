package models

import "errors"

// Domain-level errors shared by repositories and services
var (
	// ErrTaskNotFound indicates that no task exists with the requested ID
	ErrTaskNotFound = errors.New("task not found")
)
