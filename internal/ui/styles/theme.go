package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
	Cursor      lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Info:    lipgloss.Color("#7aa2f7"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
	Cursor:      lipgloss.Color("#c0caf5"),
}

// Catppuccin is the Mocha flavour
var Catppuccin = Theme{
	Name: "Catppuccin",

	Background:    lipgloss.Color("#1e1e2e"),
	Foreground:    lipgloss.Color("#cdd6f4"),
	ForegroundDim: lipgloss.Color("#6c7086"),

	Primary:   lipgloss.Color("#cba6f7"),
	Secondary: lipgloss.Color("#f5c2e7"),
	Accent:    lipgloss.Color("#89dceb"),

	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
	Info:    lipgloss.Color("#89b4fa"),

	Border:      lipgloss.Color("#45475a"),
	BorderFocus: lipgloss.Color("#cba6f7"),
	Selection:   lipgloss.Color("#313244"),
	Cursor:      lipgloss.Color("#f5e0dc"),
}

// Mono uses ANSI grays only, for terminals with a limited palette
var Mono = Theme{
	Name: "Mono",

	Background:    lipgloss.Color("0"),
	Foreground:    lipgloss.Color("7"),
	ForegroundDim: lipgloss.Color("8"),

	Primary:   lipgloss.Color("15"),
	Secondary: lipgloss.Color("7"),
	Accent:    lipgloss.Color("15"),

	Success: lipgloss.Color("15"),
	Warning: lipgloss.Color("7"),
	Error:   lipgloss.Color("15"),
	Info:    lipgloss.Color("7"),

	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("15"),
	Selection:   lipgloss.Color("8"),
	Cursor:      lipgloss.Color("15"),
}

// Themes maps config names to themes
var Themes = map[string]Theme{
	"tokyo-night": TokyoNight,
	"catppuccin":  Catppuccin,
	"mono":        Mono,
}

// Current holds the active theme
var Current = TokyoNight

// Use makes the named theme current. Unknown names keep the current theme.
func Use(name string) bool {
	t, ok := Themes[name]
	if ok {
		Current = t
	}
	return ok
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth <= 0 || terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Input row
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Stats panel
	StatCard         lipgloss.Style
	StatPendingValue lipgloss.Style
	StatDoneValue    lipgloss.Style
	StatLabel        lipgloss.Style

	// Sections
	SectionTitle lipgloss.Style

	// Task items
	TaskItem     lipgloss.Style
	TaskSelected lipgloss.Style
	TaskText     lipgloss.Style
	TaskDoneText lipgloss.Style
	CheckOpen    lipgloss.Style
	CheckDone    lipgloss.Style
	DeleteMarker lipgloss.Style

	// Empty state
	EmptyPanel lipgloss.Style
	EmptyTitle lipgloss.Style
	Muted      lipgloss.Style

	// Notifications
	Toast            lipgloss.Style
	ToastDestructive lipgloss.Style
	ToastTitle       lipgloss.Style

	// Help text
	Help lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		StatCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Align(lipgloss.Center),

		StatPendingValue: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		StatDoneValue: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		SectionTitle: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true).
			MarginTop(1),

		TaskItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		TaskSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		TaskText: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskDoneText: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		CheckOpen: lipgloss.NewStyle().
			Foreground(t.Border),

		CheckDone: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		DeleteMarker: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		EmptyPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 4).
			Align(lipgloss.Center),

		EmptyTitle: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Toast: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Success).
			Padding(0, 1),

		ToastDestructive: lipgloss.NewStyle().
			Foreground(t.Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Error).
			Padding(0, 1),

		ToastTitle: lipgloss.NewStyle().
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 0, 0, 0),
	}
}
