package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/preferences"
	"github.com/thenoetrevino/tick/internal/repository"
	"github.com/thenoetrevino/tick/internal/services/settings"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

func TestDetailState_BlankTitleIsRejected(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()
	created, err := svc.AddTask(ctx, taskservice.AddTaskRequest{Title: "Original", Priority: models.PriorityMedium})
	require.NoError(t, err)

	ds := NewDetailState(svc)
	status, err := ds.Load(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, DetailLoaded, status)

	ds.SetTitle("   ")
	_, err = ds.Save(ctx)
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.True(t, ds.TitleError())

	stored, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title, "nothing persisted")

	ds.SetTitle("O")
	assert.False(t, ds.TitleError(), "editing the title clears the error")
}

func TestDetailState_SaveTrimsAndClearsBlankDescription(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()
	created, err := svc.AddTask(ctx, taskservice.AddTaskRequest{
		Title: "Walk dog", Description: "around the park", Priority: models.PriorityLow,
	})
	require.NoError(t, err)

	ds := NewDetailState(svc)
	_, err = ds.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "around the park", ds.Draft().Description)

	ds.SetTitle("  Walk the dog  ")
	ds.SetDescription("  ")
	assert.Equal(t, models.PriorityMedium, ds.CyclePriority())
	require.NoError(t, ds.SetDueDateInput("2025-01-31"))

	saved, err := ds.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Walk the dog", saved.Title)

	stored, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walk the dog", stored.Title)
	assert.Empty(t, stored.Description)
	assert.Equal(t, models.PriorityMedium, stored.Priority)
	require.NotNil(t, stored.DueDate)
	assert.Equal(t, "Jan 31, 2025", models.FormatDueDate(stored.DueDate))
	assert.False(t, stored.Completed)
}

func TestDetailState_NewDraftInserts(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	ds := NewDetailState(svc)
	ds.NewDraft()
	assert.Equal(t, DetailNew, ds.Status())
	assert.Equal(t, models.PriorityMedium, ds.Draft().Priority)
	assert.Nil(t, ds.Draft().DueDate)

	_, err := ds.Save(ctx)
	assert.ErrorIs(t, err, ErrTitleRequired)

	ds.SetTitle(" Buy stamps ")
	saved, err := ds.Save(ctx)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, DetailLoaded, ds.Status())

	stored, err := svc.GetTask(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy stamps", stored.Title)
	assert.Equal(t, models.PriorityMedium, stored.Priority)
}

func TestDetailState_NotFound(t *testing.T) {
	ds := NewDetailState(newTaskService(t))

	status, err := ds.Load(context.Background(), 41)
	require.NoError(t, err)
	assert.Equal(t, DetailNotFound, status)
	assert.Nil(t, ds.Task())

	_, err = ds.Save(context.Background())
	assert.ErrorIs(t, err, ErrTitleRequired)
	ds.SetTitle("anything")
	_, err = ds.Save(context.Background())
	assert.ErrorIs(t, err, ErrNothingLoaded)
}

func TestDetailState_Delete(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()
	created, err := svc.AddTask(ctx, taskservice.AddTaskRequest{Title: "Short lived"})
	require.NoError(t, err)

	ds := NewDetailState(svc)
	_, err = ds.Load(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, ds.Delete(ctx))
	assert.Equal(t, DetailDeleted, ds.Status())

	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.ErrorIs(t, ds.Delete(ctx), ErrNothingLoaded)
}

func TestDetailState_BadDueDate(t *testing.T) {
	ds := NewDetailState(newTaskService(t))
	ds.NewDraft()

	assert.Error(t, ds.SetDueDateInput("31/01/2025"))
	assert.Nil(t, ds.Draft().DueDate)

	require.NoError(t, ds.SetDueDateInput("2025-02-01"))
	require.NoError(t, ds.SetDueDateInput(""))
	assert.Nil(t, ds.Draft().DueDate)
}

func TestSettingsState_CycleTheme(t *testing.T) {
	st := NewSettingsState(settings.NewService(repository.NewSettingsRepo(preferences.NewMemory(), 0), nil))
	assert.Equal(t, models.ThemeSystem, st.Theme())

	next, err := st.CycleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, next)

	next, err = st.CycleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, next)

	require.NoError(t, st.SetTheme(models.ThemeSystem))
	assert.Equal(t, models.ThemeSystem, st.Theme())
}

func TestDetailState_BeginLoadClearsPreviousTask(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()
	created, err := svc.AddTask(ctx, taskservice.AddTaskRequest{Title: "Keep me"})
	require.NoError(t, err)

	ds := NewDetailState(svc)
	_, err = ds.Load(ctx, created.ID)
	require.NoError(t, err)

	ds.BeginLoad()
	assert.Equal(t, DetailEmpty, ds.Status())
	assert.Nil(t, ds.Task())
	assert.ErrorIs(t, ds.Delete(ctx), ErrNothingLoaded)

	_, err = svc.GetTask(ctx, created.ID)
	assert.NoError(t, err)
}

// slowTasks blocks GetTask until released
type slowTasks struct {
	taskservice.Service
	entered chan struct{}
	release chan struct{}
}

func (f *slowTasks) GetTask(ctx context.Context, id int) (*models.Task, error) {
	close(f.entered)
	<-f.release
	return f.Service.GetTask(ctx, id)
}

func TestDetailState_StaleLoadIsDropped(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()
	created, err := svc.AddTask(ctx, taskservice.AddTaskRequest{Title: "Old"})
	require.NoError(t, err)

	slow := &slowTasks{Service: svc, entered: make(chan struct{}), release: make(chan struct{})}
	ds := NewDetailState(slow)

	done := make(chan DetailStatus, 1)
	go func() {
		status, _ := ds.Load(ctx, created.ID)
		done <- status
	}()
	<-slow.entered

	ds.NewDraft()
	close(slow.release)

	assert.Equal(t, DetailNew, <-done)
	assert.Equal(t, DetailNew, ds.Status())
	assert.Empty(t, ds.Draft().Title)
}
