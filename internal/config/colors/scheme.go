package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "lotus", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Task states
	Completed string `yaml:"completed"`
	Overdue   string `yaml:"overdue"`

	// Priority badges
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Validation and failure messages
	ErrorFg string `yaml:"error_fg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	c.MergeFrom(*GetPreset(c.Preset))
}

// MergeFrom copies every color that is set in other and still empty in c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, other.Preset)
	fill(&c.Accent, other.Accent)
	fill(&c.Border, other.Border)
	fill(&c.SelectedBg, other.SelectedBg)
	fill(&c.Title, other.Title)
	fill(&c.Subtle, other.Subtle)
	fill(&c.Normal, other.Normal)
	fill(&c.Completed, other.Completed)
	fill(&c.Overdue, other.Overdue)
	fill(&c.PriorityHigh, other.PriorityHigh)
	fill(&c.PriorityMedium, other.PriorityMedium)
	fill(&c.PriorityLow, other.PriorityLow)
	fill(&c.ErrorFg, other.ErrorFg)
	fill(&c.StatusBarBg, other.StatusBarBg)
	fill(&c.StatusBarText, other.StatusBarText)
}
