package report

// Theme is a fixed color palette applied to a rendered report document.
// It is purely presentational constant data.
type Theme struct {
	Primary    string `json:"primary"`
	Dark       string `json:"dark"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Header     string `json:"header"`
	Border     string `json:"border"`
}

// defaultTheme is the fallback palette for any report type without its own.
var defaultTheme = Theme{
	Primary:    "#1e3a5f",
	Dark:       "#12263f",
	Secondary:  "#3e6390",
	Accent:     "#e8701a",
	Text:       "#1f2933",
	Background: "#f5f7fa",
	Header:     "#ffffff",
	Border:     "#d2d9e0",
}

// themes maps each report type to its palette.
var themes = map[Type]Theme{
	TypeBookings: {
		Primary:    "#1d4ed8",
		Dark:       "#1e3a8a",
		Secondary:  "#3b82f6",
		Accent:     "#f59e0b",
		Text:       "#1f2933",
		Background: "#eff6ff",
		Header:     "#ffffff",
		Border:     "#bfdbfe",
	},
	TypePayments: {
		Primary:    "#047857",
		Dark:       "#064e3b",
		Secondary:  "#10b981",
		Accent:     "#f59e0b",
		Text:       "#1f2933",
		Background: "#ecfdf5",
		Header:     "#ffffff",
		Border:     "#a7f3d0",
	},
	TypeJobs: {
		Primary:    "#7c3aed",
		Dark:       "#5b21b6",
		Secondary:  "#a78bfa",
		Accent:     "#f59e0b",
		Text:       "#1f2933",
		Background: "#f5f3ff",
		Header:     "#ffffff",
		Border:     "#ddd6fe",
	},
	TypeLeaves: {
		Primary:    "#be185d",
		Dark:       "#831843",
		Secondary:  "#ec4899",
		Accent:     "#f59e0b",
		Text:       "#1f2933",
		Background: "#fdf2f8",
		Header:     "#ffffff",
		Border:     "#fbcfe8",
	},
	TypeInventory: {
		Primary:    "#b45309",
		Dark:       "#78350f",
		Secondary:  "#f59e0b",
		Accent:     "#1d4ed8",
		Text:       "#1f2933",
		Background: "#fffbeb",
		Header:     "#ffffff",
		Border:     "#fde68a",
	},
	TypeUsers: {
		Primary:    "#0e7490",
		Dark:       "#155e75",
		Secondary:  "#06b6d4",
		Accent:     "#f59e0b",
		Text:       "#1f2933",
		Background: "#ecfeff",
		Header:     "#ffffff",
		Border:     "#a5f3fc",
	},
}

// ThemeFor resolves the palette for a report type. Resolution is total:
// an unmapped type receives the default palette.
func ThemeFor(t Type) Theme {
	if theme, ok := themes[t]; ok {
		return theme
	}
	return defaultTheme
}
