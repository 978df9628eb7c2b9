package ui

import (
	"fmt"
	"strings"

	"github.com/avelinop/navdeck/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// ButtonList is the navigation deck: the fixed set of route buttons plus
// a "go back" button, driven by a cursor.
type ButtonList struct {
	routes []string
	cursor int
	active string // route currently on screen
	width  int
	height int
}

// NewButtonList creates the deck for the given routes.
func NewButtonList(routes []string) ButtonList {
	return ButtonList{routes: routes}
}

// SetSize updates the deck dimensions.
func (bl *ButtonList) SetSize(w, h int) {
	bl.width = w
	bl.height = h
}

// SetActive marks the route currently being displayed.
func (bl *ButtonList) SetActive(route string) {
	bl.active = route
}

// CursorUp moves the cursor up one button.
func (bl *ButtonList) CursorUp() {
	if bl.cursor > 0 {
		bl.cursor--
	}
}

// CursorDown moves the cursor down one button. The back button sits one
// past the last route.
func (bl *ButtonList) CursorDown() {
	if bl.cursor < len(bl.routes) {
		bl.cursor++
	}
}

// Selected returns the route under the cursor, or ("", true) when the
// cursor is on the back button.
func (bl *ButtonList) Selected() (string, bool) {
	if bl.cursor >= len(bl.routes) {
		return "", true
	}
	return bl.routes[bl.cursor], false
}

// Route returns the route at a 1-based position, for direct number-key
// jumps. Returns false if out of range.
func (bl *ButtonList) Route(n int) (string, bool) {
	if n < 1 || n > len(bl.routes) {
		return "", false
	}
	return bl.routes[n-1], true
}

// View renders the deck.
func (bl *ButtonList) View() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(bl.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Primary).
		Bold(true).
		Width(bl.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(bl.width).
		Padding(0, 1)

	activeMarkStyle := lipgloss.NewStyle().
		Foreground(t.Success).
		Width(bl.width).
		Padding(0, 1)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Routes"))
	sb.WriteString("\n")

	sepWidth := bl.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	for i, route := range bl.routes {
		label := fmt.Sprintf("%d  %s", i+1, route)
		switch {
		case i == bl.cursor:
			sb.WriteString(selectedStyle.Render("▸ " + label))
		case route == bl.active:
			sb.WriteString(activeMarkStyle.Render("● " + label))
		default:
			sb.WriteString(normalStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	backLabel := "←  go back"
	if bl.cursor == len(bl.routes) {
		sb.WriteString(selectedStyle.Render("▸ " + backLabel))
	} else {
		sb.WriteString(normalStyle.Render("  " + backLabel))
	}
	sb.WriteString("\n")

	// Pad so the hint sits at the bottom of the panel.
	linesUsed := 4 + len(bl.routes)
	for i := linesUsed; i < bl.height-1; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("j/k:move  enter:go  H:back"))

	panelStyle := lipgloss.NewStyle().
		Width(bl.width).
		Height(bl.height).
		Background(t.Background)

	return panelStyle.Render(sb.String())
}
