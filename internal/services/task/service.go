package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/repository"
)

// Service defines all task-related use cases
type Service interface {
	// Read operations
	SubscribeTasks() *events.Subscription[[]*models.Task]
	ListTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int) (*models.Task, error)

	// Write operations
	AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, task *models.Task) error
	ToggleTaskStatus(ctx context.Context, task *models.Task) error
}

// AddTaskRequest encapsulates all data needed to create a task
type AddTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     *time.Time // Optional: nil means no due date
	CategoryID  int        // Optional: 0 means none
	Completed   bool
}

// service implements Service interface
type service struct {
	repo   repository.TaskRepository
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo repository.TaskRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// SubscribeTasks returns the live list of every task, newest first
func (s *service) SubscribeTasks() *events.Subscription[[]*models.Task] {
	return s.repo.Subscribe()
}

// ListTasks reads every task once, newest first
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx)
}

// GetTask returns the task with the given ID or ErrTaskNotFound
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetByID(ctx, taskID)
}

// AddTask handles task creation with validation
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	task, err := s.repo.Insert(ctx, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
		Completed:   req.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task added", "task_id", task.ID, "priority", task.Priority.String())
	return task, nil
}

// UpdateTask writes a full replacement of the task
func (s *service) UpdateTask(ctx context.Context, task *models.Task) error {
	if task == nil {
		return ErrNilTask
	}
	if task.ID <= 0 {
		return ErrInvalidTaskID
	}
	if err := validateTitle(task.Title); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated", "task_id", task.ID)
	return nil
}

// DeleteTask removes the task
func (s *service) DeleteTask(ctx context.Context, task *models.Task) error {
	if task == nil {
		return ErrNilTask
	}
	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "task_id", task.ID)
	return nil
}

// ToggleTaskStatus flips the task's completion flag and leaves every other field alone
func (s *service) ToggleTaskStatus(ctx context.Context, task *models.Task) error {
	if task == nil {
		return ErrNilTask
	}
	if err := s.repo.ToggleStatus(ctx, task); err != nil {
		return fmt.Errorf("failed to toggle task status: %w", err)
	}

	s.logger.Debug("task status toggled", "task_id", task.ID, "completed", !task.Completed)
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
