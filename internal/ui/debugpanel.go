package ui

import (
	"fmt"
	"strings"

	"github.com/avelinop/navdeck/internal/nav"
	"github.com/avelinop/navdeck/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// DebugPanel displays the raw history stack so transitions can be watched
// as they happen.
type DebugPanel struct {
	stack   nav.Stack
	route   string
	lastOp  string // most recent storage completion, e.g. "saved key 3"
	width   int
	height  int
	visible bool
}

// NewDebugPanel creates a hidden debug panel.
func NewDebugPanel() DebugPanel {
	return DebugPanel{}
}

// SetSize updates the panel dimensions.
func (dp *DebugPanel) SetSize(w, h int) {
	dp.width = w
	dp.height = h
}

// SetState updates the displayed stack and route.
func (dp *DebugPanel) SetState(route string, stack nav.Stack) {
	dp.route = route
	dp.stack = stack
}

// SetLastOp records the most recent storage completion for display.
func (dp *DebugPanel) SetLastOp(op string) {
	dp.lastOp = op
}

// Toggle switches visibility.
func (dp *DebugPanel) Toggle() {
	dp.visible = !dp.visible
}

// IsVisible reports whether the panel is shown.
func (dp *DebugPanel) IsVisible() bool {
	return dp.visible
}

// View renders the panel.
func (dp *DebugPanel) View() string {
	if !dp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(dp.width).
		Height(dp.height).
		Background(t.Background)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Surface).
		Width(dp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Padding(0, 1)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Stack"))
	sb.WriteString("\n")

	sepWidth := dp.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"route", dp.route},
		{"current", fmt.Sprintf("%d", dp.stack.Current)},
		{"back", formatKeys(dp.stack.Back)},
		{"next", formatKeys(dp.stack.Next)},
		{"history", formatKeys(dp.stack.History)},
	}

	for _, row := range rows {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", row.label)))
		sb.WriteString(valueStyle.Render(row.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if dp.lastOp != "" {
		sb.WriteString(dimStyle.Render("store: " + dp.lastOp))
	} else {
		sb.WriteString(dimStyle.Render("store: (no completions yet)"))
	}
	sb.WriteString("\n")

	return panelStyle.Render(sb.String())
}

func formatKeys(keys []int) string {
	if len(keys) == 0 {
		return "[]"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d", k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
