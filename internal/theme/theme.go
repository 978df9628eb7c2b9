package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	Heading lipgloss.Color
	Link    lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var themes = map[string]Theme{
	"default": Default,
	"gruvbox": Gruvbox,
	"nord":    Nord,
	"dracula": Dracula,
}

var Default = Theme{
	Name:       "default",
	Primary:    lipgloss.Color("#7C3AED"),
	Secondary:  lipgloss.Color("#06B6D4"),
	Accent:     lipgloss.Color("#F59E0B"),
	Text:       lipgloss.Color("#E2E8F0"),
	TextDim:    lipgloss.Color("#64748B"),
	TextBright: lipgloss.Color("#F8FAFC"),
	Background: lipgloss.Color("#0F172A"),
	Surface:    lipgloss.Color("#1E293B"),
	Border:     lipgloss.Color("#334155"),
	Heading:    lipgloss.Color("#A78BFA"),
	Link:       lipgloss.Color("#38BDF8"),
	Error:      lipgloss.Color("#EF4444"),
	Success:    lipgloss.Color("#22C55E"),
	Warning:    lipgloss.Color("#F59E0B"),
}

var Gruvbox = Theme{
	Name:       "gruvbox",
	Primary:    lipgloss.Color("#D65D0E"),
	Secondary:  lipgloss.Color("#458588"),
	Accent:     lipgloss.Color("#D79921"),
	Text:       lipgloss.Color("#EBDBB2"),
	TextDim:    lipgloss.Color("#928374"),
	TextBright: lipgloss.Color("#FBF1C7"),
	Background: lipgloss.Color("#282828"),
	Surface:    lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),
	Heading:    lipgloss.Color("#FB4934"),
	Link:       lipgloss.Color("#83A598"),
	Error:      lipgloss.Color("#FB4934"),
	Success:    lipgloss.Color("#B8BB26"),
	Warning:    lipgloss.Color("#FABD2F"),
}

var Nord = Theme{
	Name:       "nord",
	Primary:    lipgloss.Color("#88C0D0"),
	Secondary:  lipgloss.Color("#81A1C1"),
	Accent:     lipgloss.Color("#EBCB8B"),
	Text:       lipgloss.Color("#D8DEE9"),
	TextDim:    lipgloss.Color("#4C566A"),
	TextBright: lipgloss.Color("#ECEFF4"),
	Background: lipgloss.Color("#2E3440"),
	Surface:    lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#434C5E"),
	Heading:    lipgloss.Color("#88C0D0"),
	Link:       lipgloss.Color("#81A1C1"),
	Error:      lipgloss.Color("#BF616A"),
	Success:    lipgloss.Color("#A3BE8C"),
	Warning:    lipgloss.Color("#EBCB8B"),
}

var Dracula = Theme{
	Name:       "dracula",
	Primary:    lipgloss.Color("#BD93F9"),
	Secondary:  lipgloss.Color("#8BE9FD"),
	Accent:     lipgloss.Color("#FFB86C"),
	Text:       lipgloss.Color("#F8F8F2"),
	TextDim:    lipgloss.Color("#6272A4"),
	TextBright: lipgloss.Color("#FFFFFF"),
	Background: lipgloss.Color("#282A36"),
	Surface:    lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),
	Heading:    lipgloss.Color("#FF79C6"),
	Link:       lipgloss.Color("#8BE9FD"),
	Error:      lipgloss.Color("#FF5555"),
	Success:    lipgloss.Color("#50FA7B"),
	Warning:    lipgloss.Color("#F1FA8C"),
}

// Current is the active theme. Access is confined to the UI goroutine.
var Current = Default

// Set switches the active theme by name. Returns false for unknown names.
func Set(name string) bool {
	t, ok := themes[name]
	if !ok {
		return false
	}
	Current = t
	return true
}

// List returns the available theme names in a stable order.
func List() []string {
	return []string{"default", "gruvbox", "nord", "dracula"}
}
