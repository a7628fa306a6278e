package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: "#624C83", // lotusViolet4

		Border:     "#A09CAC", // lotusViolet1
		SelectedBg: "#C7D7E0", // lotusBlue1

		Title:  "#4D699B", // lotusBlue4
		Subtle: "#8A8980", // lotusGray3
		Normal: "#545464", // lotusInk1

		Completed: "#6F894E", // lotusGreen
		Overdue:   "#C84053", // lotusRed

		PriorityHigh:   "#C84053", // lotusRed
		PriorityMedium: "#CC6D00", // lotusOrange
		PriorityLow:    "#4D699B", // lotusBlue4

		ErrorFg: "#E82424", // lotusRed3

		StatusBarBg:   "#624C83",
		StatusBarText: "#F2ECBC", // lotusWhite3
	}
}
