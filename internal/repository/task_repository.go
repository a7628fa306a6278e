// Package repository translates between storage rows and domain models.
// There is one repository per store.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/thenoetrevino/tick/internal/converters"
	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	Subscribe() *events.Subscription[[]*models.Task]
	List(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Insert(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
	ToggleStatus(ctx context.Context, task *models.Task) error
}

// TaskRepository combines all task operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// Compile-time verification that *TaskRepo implements TaskRepository
var _ TaskRepository = (*TaskRepo)(nil)

// TaskRepo maps the task store to domain tasks
type TaskRepo struct {
	store *database.TaskStore
	live  *events.Feed[[]*models.Task]
}

// NewTaskRepo wraps store. linger keeps the live list warm for that long
// after the last observer leaves.
func NewTaskRepo(store *database.TaskStore, linger time.Duration) *TaskRepo {
	return &TaskRepo{
		store: store,
		live:  events.Relay[[]database.TaskRow](store, converters.TasksToModels, events.WithLinger(linger)),
	}
}

// Subscribe returns the live list of all tasks, newest first
func (r *TaskRepo) Subscribe() *events.Subscription[[]*models.Task] {
	return r.live.Subscribe()
}

// List reads every task once, newest first
func (r *TaskRepo) List(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return converters.TasksToModels(rows), nil
}

// GetByID returns the task or models.ErrTaskNotFound
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	row, err := r.store.GetByID(ctx, int64(id))
	if errors.Is(err, database.ErrNotFound) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return converters.TaskToModel(row), nil
}

// Insert stores the task and returns a copy carrying the assigned id
func (r *TaskRepo) Insert(ctx context.Context, task *models.Task) (*models.Task, error) {
	id, err := r.store.Insert(ctx, converters.TaskToRow(task))
	if err != nil {
		return nil, err
	}
	created := task.Clone()
	created.ID = int(id)
	return created, nil
}

// Update writes a full replacement of the task
func (r *TaskRepo) Update(ctx context.Context, task *models.Task) error {
	return r.store.Update(ctx, converters.TaskToRow(task))
}

// Delete removes the task
func (r *TaskRepo) Delete(ctx context.Context, task *models.Task) error {
	return r.store.Delete(ctx, int64(task.ID))
}

// ToggleStatus flips the completion flag relative to the given task,
// without a read-modify-write of the other fields
func (r *TaskRepo) ToggleStatus(ctx context.Context, task *models.Task) error {
	return r.store.SetCompleted(ctx, int64(task.ID), !task.Completed)
}
