package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// DefaultLinger is how long a view state keeps its upstream subscription
// after the last observer leaves, so a quick screen switch does not reload.
const DefaultLinger = 5 * time.Second

// ListSnapshot is everything the list screen renders.
type ListSnapshot struct {
	// Tasks is the filtered and sorted list
	Tasks     []*models.Task
	Analytics Analytics

	// Query and Sort are the inputs Tasks was computed with
	Query string
	Sort  SortOrder

	// Err is set when the task list could not be read. Tasks is empty then.
	Err error
}

// ListOption configures a ListViewState
type ListOption func(*listConfig)

type listConfig struct {
	linger   time.Duration
	debounce time.Duration
	logger   *slog.Logger
}

// WithListLinger overrides DefaultLinger
func WithListLinger(d time.Duration) ListOption {
	return func(c *listConfig) {
		c.linger = d
	}
}

// WithSearchDebounce delays applying search text until typing pauses for d.
// Zero applies every keystroke immediately.
func WithSearchDebounce(d time.Duration) ListOption {
	return func(c *listConfig) {
		c.debounce = d
	}
}

// WithListLogger sets the logger used for failed intents
func WithListLogger(l *slog.Logger) ListOption {
	return func(c *listConfig) {
		c.logger = l
	}
}

// ListViewState manages the task list screen.
// It combines the live task list with the search text and sort order and
// publishes a fresh ListSnapshot whenever any of them changes.
type ListViewState struct {
	tasks    taskservice.Service
	logger   *slog.Logger
	debounce time.Duration

	mu sync.Mutex

	// all is the latest unfiltered list, nil until the first one arrives
	all     []*models.Task
	loadErr error

	// query is what the user typed; applied is what the snapshot uses.
	// They differ only while a debounce is pending.
	query   string
	applied string
	timer   *time.Timer

	sort     SortOrder
	selected *models.Task

	upstream *events.Subscription[[]*models.Task]
	feed     *events.Feed[ListSnapshot]
}

// NewListViewState creates a list view state over the task service.
// Nothing is loaded until the first Subscribe.
func NewListViewState(tasks taskservice.Service, opts ...ListOption) *ListViewState {
	cfg := &listConfig{linger: DefaultLinger}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	s := &ListViewState{
		tasks:    tasks,
		logger:   cfg.logger,
		debounce: cfg.debounce,
		sort:     SortDateAsc,
	}
	s.feed = events.NewFeed[ListSnapshot](
		events.WithLinger(cfg.linger),
		events.OnActive(s.start),
		events.OnIdle(s.stop),
	)
	return s
}

// ============================================================================
// LIVE SNAPSHOTS
// ============================================================================

// Subscribe returns the live list snapshot. The first observer opens the
// upstream task subscription; it is released once the last one has been
// gone for the linger duration.
func (s *ListViewState) Subscribe() *events.Subscription[ListSnapshot] {
	return s.feed.Subscribe()
}

func (s *ListViewState) start() {
	sub := s.tasks.SubscribeTasks()

	s.mu.Lock()
	s.upstream = sub
	s.mu.Unlock()

	go func() {
		// The live list stays silent when its first query fails, so read
		// once to find out.
		tasks, err := s.tasks.ListTasks(context.Background())
		s.mu.Lock()
		if s.upstream == sub && s.all == nil {
			if err != nil {
				s.logger.Error("failed to load tasks", "error", err)
				s.loadErr = err
			} else {
				s.all = tasks
			}
			s.publishLocked()
		}
		s.mu.Unlock()

		for tasks := range sub.C() {
			s.mu.Lock()
			if s.upstream == sub {
				s.all = tasks
				s.loadErr = nil
				s.publishLocked()
			}
			s.mu.Unlock()
		}
	}()
}

func (s *ListViewState) stop() {
	s.mu.Lock()
	sub := s.upstream
	s.upstream = nil
	s.all = nil
	s.loadErr = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
	s.feed.Reset()
}

// publishLocked recomputes the snapshot. Callers hold s.mu.
func (s *ListViewState) publishLocked() {
	if s.loadErr != nil {
		s.feed.Publish(ListSnapshot{Query: s.applied, Sort: s.sort, Err: s.loadErr})
		return
	}
	if s.all == nil {
		return
	}
	visible, analytics := Apply(s.all, s.applied, s.sort)
	s.feed.Publish(ListSnapshot{
		Tasks:     visible,
		Analytics: analytics,
		Query:     s.applied,
		Sort:      s.sort,
	})
}

// ============================================================================
// SEARCH AND SORT
// ============================================================================

// SearchQuery returns the search text as typed.
func (s *ListViewState) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetSearchQuery updates the search text. With a debounce configured the
// snapshot follows once typing pauses; otherwise it follows immediately.
func (s *ListViewState) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	if s.debounce <= 0 {
		s.applied = q
		s.publishLocked()
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.applyQuery)
}

// applyQuery is the debounce timer callback
func (s *ListViewState) applyQuery() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer = nil
	if s.applied == s.query {
		return
	}
	s.applied = s.query
	s.publishLocked()
}

// SortOrder returns the current sort order.
func (s *ListViewState) SortOrder() SortOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// SetSortOrder changes the sort order and republishes.
func (s *ListViewState) SetSortOrder(o SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sort == o {
		return
	}
	s.sort = o
	s.publishLocked()
}

// CycleSortOrder advances to the next sort order and returns it.
func (s *ListViewState) CycleSortOrder() SortOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = s.sort.Next()
	s.publishLocked()
	return s.sort
}

// ============================================================================
// INTENTS
// ============================================================================

// AddTask creates a task. The list refreshes through the live subscription.
func (s *ListViewState) AddTask(ctx context.Context, req taskservice.AddTaskRequest) (*models.Task, error) {
	task, err := s.tasks.AddTask(ctx, req)
	if err != nil {
		s.logger.Error("failed to add task", "error", err)
		return nil, err
	}
	return task, nil
}

// UpdateTask writes a full replacement of the task.
func (s *ListViewState) UpdateTask(ctx context.Context, task *models.Task) error {
	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		s.logger.Error("failed to update task", "task_id", task.ID, "error", err)
		return err
	}
	return nil
}

// DeleteTask removes the task and clears it from the selection.
func (s *ListViewState) DeleteTask(ctx context.Context, task *models.Task) error {
	if err := s.tasks.DeleteTask(ctx, task); err != nil {
		s.logger.Error("failed to delete task", "task_id", task.ID, "error", err)
		return err
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == task.ID {
		s.selected = nil
	}
	s.mu.Unlock()
	return nil
}

// ToggleTaskStatus flips the completion flag of the task.
func (s *ListViewState) ToggleTaskStatus(ctx context.Context, task *models.Task) error {
	if err := s.tasks.ToggleTaskStatus(ctx, task); err != nil {
		s.logger.Error("failed to toggle task", "task_id", task.ID, "error", err)
		return err
	}
	return nil
}

// LoadTask fetches a single task and makes it the selected task.
// The selection is cleared when the task cannot be loaded.
func (s *ListViewState) LoadTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := s.tasks.GetTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.selected = nil
		return nil, err
	}
	s.selected = task
	return task.Clone(), nil
}

// SelectedTask returns a copy of the task loaded by LoadTask, or nil.
func (s *ListViewState) SelectedTask() *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected.Clone()
}
