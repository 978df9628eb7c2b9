package ui

import (
	"fmt"

	"github.com/avelinop/navdeck/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the current route and stack position at the bottom of
// the screen.
type StatusBar struct {
	route      string
	currentKey int
	depth      int
	scrollInfo string
	message    string // temporary status message
	width      int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetRoute updates the displayed route.
func (s *StatusBar) SetRoute(route string) {
	s.route = route
}

// SetStackInfo updates the current key and back-stack depth.
func (s *StatusBar) SetStackInfo(currentKey, depth int) {
	s.currentKey = currentKey
	s.depth = depth
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	routeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Primary).
		Padding(0, 1)

	route := s.route
	if route == "" {
		route = "(none)"
	}
	left := routeStyle.Render(route)

	if s.message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(t.Warning).
			Background(t.Surface).
			Padding(0, 1)
		left += msgStyle.Render(s.message)
	}

	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	scrollStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		Background(t.Surface).
		Padding(0, 1)

	right := rightStyle.Render(fmt.Sprintf("key %d · depth %d", s.currentKey, s.depth)) +
		scrollStyle.Render(s.scrollInfo)

	spacerWidth := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(left + spacer + right)
}
