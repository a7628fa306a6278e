package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	OpenTask      string `yaml:"open_task"`
	DeleteTask    string `yaml:"delete_task"`
	ToggleTask    string `yaml:"toggle_task"`
	CyclePriority string `yaml:"cycle_priority"`

	// Forms
	SaveForm       string `yaml:"save_form"`
	NextField      string `yaml:"next_field"`
	DeleteFromForm string `yaml:"delete_from_form"`

	// List
	Search    string `yaml:"search"`
	CycleSort string `yaml:"cycle_sort"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`
	Back     string `yaml:"back"`
	Settings string `yaml:"settings"`

	// Settings
	CycleTheme string `yaml:"cycle_theme"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		OpenTask:      "enter",
		DeleteTask:    "d",
		ToggleTask:    "space",
		CyclePriority: "ctrl+p",

		// Forms
		SaveForm:       "ctrl+s",
		NextField:      "tab",
		DeleteFromForm: "ctrl+d",

		// List
		Search:    "/",
		CycleSort: "s",

		// Navigation
		PrevTask: "k",
		NextTask: "j",
		Back:     "esc",
		Settings: ",",

		// Settings
		CycleTheme: "t",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.OpenTask == "" {
		k.OpenTask = defaults.OpenTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ToggleTask == "" {
		k.ToggleTask = defaults.ToggleTask
	}
	if k.CyclePriority == "" {
		k.CyclePriority = defaults.CyclePriority
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.DeleteFromForm == "" {
		k.DeleteFromForm = defaults.DeleteFromForm
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.CycleSort == "" {
		k.CycleSort = defaults.CycleSort
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.Settings == "" {
		k.Settings = defaults.Settings
	}
	if k.CycleTheme == "" {
		k.CycleTheme = defaults.CycleTheme
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
