package config

// ColorScheme holds the colors used by CLI output styles
type ColorScheme struct {
	Accent    string `yaml:"accent"`
	Title     string `yaml:"title"`
	Subtle    string `yaml:"subtle"`
	Normal    string `yaml:"normal"`
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent:    "#874BFD",
		Title:     "#D75FD7",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// ApplyDefaults fills in missing color values from the default scheme
func (c *ColorScheme) ApplyDefaults() {
	d := DefaultColorScheme()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Accent, d.Accent)
	fill(&c.Title, d.Title)
	fill(&c.Subtle, d.Subtle)
	fill(&c.Normal, d.Normal)
	fill(&c.InfoFg, d.InfoFg)
	fill(&c.InfoBg, d.InfoBg)
	fill(&c.WarningFg, d.WarningFg)
	fill(&c.WarningBg, d.WarningBg)
	fill(&c.ErrorFg, d.ErrorFg)
	fill(&c.ErrorBg, d.ErrorBg)
}
