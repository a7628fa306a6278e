package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/config/colors"
	"github.com/thenoetrevino/tick/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	CompletedStyle lipgloss.Style
	OverdueStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style

	priorityStyles map[models.Priority]lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	CompletedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Completed)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Overdue))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.PriorityHigh)),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.PriorityMedium)),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.PriorityLow)),
	}
}

// Priority returns the badge style for a priority level
func Priority(p models.Priority) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return ValueStyle
}

// UseTheme switches the styles to the scheme for theme and reports whether
// the result is dark
func UseTheme(theme models.Theme, c config.Colors) bool {
	dark := config.IsDark(theme, terminalIsDark)
	Init(c.For(dark))
	return dark
}

// MarkdownStyle returns the glamour standard style matching the background
func MarkdownStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// terminalIsDark queries the terminal background, assuming dark when
// stdout is not a terminal
func terminalIsDark() bool {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return true
	}
	return lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
}
