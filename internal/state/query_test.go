package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/models"
)

func day(d int) *time.Time {
	t := time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func titles(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestFilterTasks(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "Buy Milk"},
		{ID: 2, Title: "Groceries", Description: "eggs, MILK, bread"},
		{ID: 3, Title: "Call plumber"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty passes all", "", []string{"Buy Milk", "Groceries", "Call plumber"}},
		{"blank passes all", "   ", []string{"Buy Milk", "Groceries", "Call plumber"}},
		{"title or description, ignoring case", "milk", []string{"Buy Milk", "Groceries"}},
		{"no match", "dentist", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(FilterTasks(tasks, tt.query)))
		})
	}
}

func TestSortTasks_DateAscUndatedLast(t *testing.T) {
	tasks := []*models.Task{
		{Title: "undated"},
		{Title: "late", DueDate: day(20)},
		{Title: "early", DueDate: day(2)},
		{Title: "also undated"},
	}

	sorted := SortTasks(tasks, SortDateAsc)
	assert.Equal(t, []string{"early", "late", "undated", "also undated"}, titles(sorted))
	assert.Equal(t, "undated", tasks[0].Title, "input must not be reordered")
}

func TestSortTasks_PriorityDescKeepsStoreOrder(t *testing.T) {
	tasks := []*models.Task{
		{Title: "a", Priority: models.PriorityLow},
		{Title: "b", Priority: models.PriorityHigh},
		{Title: "c", Priority: models.PriorityMedium},
		{Title: "d", Priority: models.PriorityHigh},
	}

	assert.Equal(t, []string{"b", "d", "c", "a"}, titles(SortTasks(tasks, SortPriorityDesc)))
}

func TestSortTasks_TitleAscIgnoresCase(t *testing.T) {
	tasks := []*models.Task{{Title: "banana"}, {Title: "Apple"}, {Title: "cherry"}}

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(SortTasks(tasks, SortTitleAsc)))
}

func TestAnalyze(t *testing.T) {
	t.Run("four with one completed", func(t *testing.T) {
		tasks := []*models.Task{{Completed: true}, {}, {}, {}}
		assert.Equal(t, Analytics{Total: 4, Completed: 1, Progress: 0.25}, Analyze(tasks))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Analytics{}, Analyze(nil))
	})
}

func TestApply_AnalyticsFollowFilter(t *testing.T) {
	tasks := []*models.Task{
		{Title: "milk", Completed: true},
		{Title: "more milk"},
		{Title: "bread", Completed: true},
	}

	visible, a := Apply(tasks, "MILK", SortTitleAsc)
	assert.Equal(t, []string{"milk", "more milk"}, titles(visible))
	assert.Equal(t, 2, a.Total)
	assert.Equal(t, 1, a.Completed)
	assert.InDelta(t, 0.5, a.Progress, 1e-9)
	assert.Equal(t, 50, a.Percent())
}

func TestSortOrder_CycleAndParse(t *testing.T) {
	assert.Equal(t, SortPriorityDesc, SortDateAsc.Next())
	assert.Equal(t, SortTitleAsc, SortPriorityDesc.Next())
	assert.Equal(t, SortDateAsc, SortTitleAsc.Next())

	for _, o := range SortOrders {
		parsed, err := ParseSortOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	got, err := ParseSortOrder("priority")
	require.NoError(t, err)
	assert.Equal(t, SortPriorityDesc, got)

	_, err = ParseSortOrder("random")
	assert.Error(t, err)
}
