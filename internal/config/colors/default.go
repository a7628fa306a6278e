package colors

// Default returns the default color scheme (purple theme, dark background)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// UI elements
		Border:     "#5F87D7",
		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Task states
		Completed: "#5FD75F",
		Overdue:   "#FF5F5F",

		// Priorities
		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFD700",
		PriorityLow:    "#5F87D7",

		ErrorFg: "#FF0000",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
