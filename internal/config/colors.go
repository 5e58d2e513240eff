package config

// Theme defines the colors used by styled CLI output
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as ids and timestamps
	Normal string `yaml:"normal"`
	Shared string `yaml:"shared"` // Boards reached through a link

	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultTheme returns the default color scheme (purple theme)
func DefaultTheme() Theme {
	return Theme{
		Preset:  "default",
		Accent:  "#7D56F4",
		Title:   "#FFFDF5",
		Subtle:  "#666666",
		Normal:  "#E0E0E0",
		Shared:  "#22C55E",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#EF4444",
	}
}

// MonochromeTheme returns a black and white color scheme
func MonochromeTheme() Theme {
	return Theme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#808080",
		Normal:  "#D0D0D0",
		Shared:  "#FFFFFF",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (t *Theme) ApplyDefaults() {
	preset := DefaultTheme()
	if t.Preset == "monochrome" {
		preset = MonochromeTheme()
	}

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	if t.Accent == "" {
		t.Accent = preset.Accent
	}
	if t.Title == "" {
		t.Title = preset.Title
	}
	if t.Subtle == "" {
		t.Subtle = preset.Subtle
	}
	if t.Normal == "" {
		t.Normal = preset.Normal
	}
	if t.Shared == "" {
		t.Shared = preset.Shared
	}
	if t.ErrorFg == "" {
		t.ErrorFg = preset.ErrorFg
	}
	if t.ErrorBg == "" {
		t.ErrorBg = preset.ErrorBg
	}
}
