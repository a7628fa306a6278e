package theme

import "github.com/thenoetrevino/tick/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Border         string
	SelectedBg     string
	Title          string
	Subtle         string
	Normal         string
	Completed      string
	Overdue        string
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string
	ErrorFg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Border = scheme.Border
	SelectedBg = scheme.SelectedBg
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Completed = scheme.Completed
	Overdue = scheme.Overdue
	PriorityHigh = scheme.PriorityHigh
	PriorityMedium = scheme.PriorityMedium
	PriorityLow = scheme.PriorityLow
	ErrorFg = scheme.ErrorFg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
