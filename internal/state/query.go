// Package state holds the presentation-agnostic view state of every screen.
// The TUI renders it and the CLI reuses its query helpers.
package state

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/tick/internal/models"
)

// SortOrder represents how the task list is ordered.
type SortOrder int

const (
	SortDateAsc      SortOrder = iota // Earliest due date first, undated last
	SortPriorityDesc                  // HIGH, then MEDIUM, then LOW
	SortTitleAsc                      // Alphabetical, ignoring case
)

// SortOrders lists every order in cycling order
var SortOrders = []SortOrder{SortDateAsc, SortPriorityDesc, SortTitleAsc}

// String returns the stable name of the sort order
func (o SortOrder) String() string {
	switch o {
	case SortPriorityDesc:
		return "PRIORITY_DESC"
	case SortTitleAsc:
		return "TITLE_ASC"
	default:
		return "DATE_ASC"
	}
}

// Label returns a display label
func (o SortOrder) Label() string {
	switch o {
	case SortPriorityDesc:
		return "Priority"
	case SortTitleAsc:
		return "Title"
	default:
		return "Due date"
	}
}

// Next returns the following sort order, wrapping around.
// Order: Due date -> Priority -> Title -> Due date
func (o SortOrder) Next() SortOrder {
	return SortOrders[(int(o)+1)%len(SortOrders)]
}

// ParseSortOrder accepts the stable names (DATE_ASC, ...) and the short
// aliases date, priority and title, ignoring case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DATE_ASC", "DATE", "DUE":
		return SortDateAsc, nil
	case "PRIORITY_DESC", "PRIORITY":
		return SortPriorityDesc, nil
	case "TITLE_ASC", "TITLE":
		return SortTitleAsc, nil
	}
	return SortDateAsc, fmt.Errorf("invalid sort order %q (must be date, priority or title)", s)
}

// Analytics summarises a filtered task list.
type Analytics struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	// Progress is Completed/Total, or 0 for an empty list
	Progress float64 `json:"progress"`
}

// Percent returns the progress as a whole percentage
func (a Analytics) Percent() int {
	return int(a.Progress * 100)
}

// FilterTasks keeps the tasks whose title or description contains query,
// ignoring case. A blank query keeps everything. The input is not modified.
func FilterTasks(tasks []*models.Task, query string) []*models.Task {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(tasks)
	}

	needle := strings.ToLower(query)
	filtered := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SortTasks returns a stably sorted copy of tasks. Ties keep their input order.
func SortTasks(tasks []*models.Task, order SortOrder) []*models.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []*models.Task{}
	}

	switch order {
	case SortPriorityDesc:
		slices.SortStableFunc(sorted, func(a, b *models.Task) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
	case SortTitleAsc:
		slices.SortStableFunc(sorted, func(a, b *models.Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		slices.SortStableFunc(sorted, compareDueDate)
	}
	return sorted
}

// compareDueDate orders by due date with undated tasks last
func compareDueDate(a, b *models.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	return a.DueDate.Compare(*b.DueDate)
}

// Analyze counts the tasks and the completed ones among them
func Analyze(tasks []*models.Task) Analytics {
	a := Analytics{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			a.Completed++
		}
	}
	if a.Total > 0 {
		a.Progress = float64(a.Completed) / float64(a.Total)
	}
	return a
}

// Apply filters, sorts and analyses tasks in one step
func Apply(tasks []*models.Task, query string, order SortOrder) ([]*models.Task, Analytics) {
	visible := SortTasks(FilterTasks(tasks, query), order)
	return visible, Analyze(visible)
}
