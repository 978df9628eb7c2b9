package app

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/avelinop/navdeck/internal/nav"
	"github.com/avelinop/navdeck/internal/pages"
	"github.com/avelinop/navdeck/internal/theme"
	"github.com/avelinop/navdeck/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

// stateStore is the persistence capability the app needs: asynchronous in
// effect (every call happens inside a tea.Cmd), keyed by the integer keys
// the stack mints, opaque about what it stores.
type stateStore interface {
	Set(key int, state []byte, skipCache bool) error
	Get(key int, def []byte, skipCache bool) ([]byte, error)
}

// Model is the top-level bubbletea model for navdeck. It owns the full
// application state: the displayed route plus the embedded history stack.
type Model struct {
	// UI components
	buttons    ui.ButtonList
	viewport   ui.PageViewport
	statusBar  ui.StatusBar
	debugPanel ui.DebugPanel

	// Application state
	snap nav.Snapshot

	// Collaborators
	store stateStore
	log   *slog.Logger

	// Rendered pages, keyed by route@width so resizes re-render.
	pageCache *lru.Cache[string, *pages.Page]

	keys       KeyMap
	width      int
	height     int
	ready      bool
	startRoute string
}

// stateSavedMsg is sent when a snapshot write completes.
type stateSavedMsg struct {
	key int
	err error
}

// stateRestoredMsg is sent when a snapshot read completes.
type stateRestoredMsg struct {
	key  int
	data []byte
	err  error
}

// RouteChangedMsg reports an externally triggered route change.
// Acknowledged but ignored for now; reserved for reacting to navigation
// that does not originate from the deck.
type RouteChangedMsg struct {
	Route string
}

// New creates a new navdeck Model. The logger receives the storage
// completion events; pass nil to discard them.
func New(store stateStore, logger *slog.Logger, startRoute string) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pageCache, _ := lru.New[string, *pages.Page](16)

	return Model{
		buttons:    ui.NewButtonList(pages.Routes),
		viewport:   ui.NewPageViewport(),
		statusBar:  ui.NewStatusBar(),
		debugPanel: ui.NewDebugPanel(),
		snap:       nav.Snapshot{Stack: nav.New()},
		store:      store,
		log:        logger,
		pageCache:  pageCache,
		keys:       DefaultKeyMap(),
		startRoute: startRoute,
	}
}

// Snapshot returns the current application state.
func (m Model) Snapshot() nav.Snapshot {
	return m.snap
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		firstSize := !m.ready
		m.ready = true
		m.layout()
		if firstSize && m.startRoute != "" {
			// Show the start route without recording an entry.
			m.showRoute(m.startRoute)
			m.snap.Stack = m.snap.Stack.Revise()
		}
		return m, nil

	case stateSavedMsg:
		return m.handleStateSaved(msg)

	case stateRestoredMsg:
		return m.handleStateRestored(msg)

	case RouteChangedMsg:
		m.log.Debug("route change notification ignored", "route", msg.Route)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading navdeck..."
	}

	t := theme.Current
	dividerStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Background)

	contentHeight := m.height - 1 // status bar
	if contentHeight < 1 {
		contentHeight = 1
	}
	var dividerLines []string
	for i := 0; i < contentHeight; i++ {
		dividerLines = append(dividerLines, "│")
	}
	divider := dividerStyle.Render(strings.Join(dividerLines, "\n"))

	columns := []string{m.buttons.View(), divider, m.viewport.View()}
	if m.debugPanel.IsVisible() {
		columns = append(columns, divider, m.debugPanel.View())
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.statusBar.View())
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)

	contentHeight := m.height - 1
	if contentHeight < 1 {
		contentHeight = 1
	}

	deckWidth := m.width / 4
	if deckWidth < 18 {
		deckWidth = 18
	}
	m.buttons.SetSize(deckWidth, contentHeight)

	viewportWidth := m.width - deckWidth - 1
	if m.debugPanel.IsVisible() {
		panelWidth := m.width * 30 / 100
		if panelWidth < 24 {
			panelWidth = 24
		}
		m.debugPanel.SetSize(panelWidth, contentHeight)
		viewportWidth -= panelWidth + 1
	}
	if viewportWidth < 1 {
		viewportWidth = 1
	}
	m.viewport.SetSize(viewportWidth, contentHeight)
}

// handleKeyMsg processes key events.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CursorDown):
		m.buttons.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.CursorUp):
		m.buttons.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Navigate):
		route, back := m.buttons.Selected()
		if back {
			return m.goBack()
		}
		return m.navigate(route)

	case key.Matches(msg, m.keys.Back):
		return m.goBack()

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.DebugToggle):
		m.debugPanel.Toggle()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.ThemeCycle):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil
	}

	// Number keys jump straight to a route.
	if n, err := strconv.Atoi(msg.String()); err == nil {
		if route, ok := m.buttons.Route(n); ok {
			return m.navigate(route)
		}
	}

	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// navigate records a new history entry for the route and kicks off the
// snapshot write. The in-memory update is synchronous; the write is not.
func (m Model) navigate(route string) (tea.Model, tea.Cmd) {
	stack, key := m.snap.Stack.Push()
	m.snap = nav.Snapshot{Route: route, Stack: stack}

	m.showRoute(route)

	return m, m.saveStateCmd(key, m.snap)
}

// goBack pops one entry, applies the new stack optimistically, and kicks
// off the snapshot read for the popped key. Popping an empty stack still
// issues the read, clamped to key 0.
func (m Model) goBack() (tea.Model, tea.Cmd) {
	stack, popped := m.snap.Stack.Pop()
	m.snap.Stack = stack

	m.syncStatusBar()

	return m, m.restoreStateCmd(popped, m.snap)
}

// cycleTheme switches to the next theme. Deliberately not a navigation:
// the stack is revised in place and no storage operation is issued.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	names := theme.List()
	for i, name := range names {
		if name == theme.Current.Name {
			next := names[(i+1)%len(names)]
			theme.Set(next)
			m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", next))
			break
		}
	}
	m.snap.Stack = m.snap.Stack.Revise()
	return m, nil
}

// saveStateCmd persists a snapshot under the given key.
func (m Model) saveStateCmd(key int, snap nav.Snapshot) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		data, err := snap.Marshal()
		if err != nil {
			return stateSavedMsg{key: key, err: err}
		}
		return stateSavedMsg{key: key, err: store.Set(key, data, false)}
	}
}

// restoreStateCmd reads the snapshot stored under key. The locally
// computed snapshot doubles as the default for keys the store has never
// seen, so a missing entry resolves to the optimistic state.
func (m Model) restoreStateCmd(key int, local nav.Snapshot) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		def, err := local.Marshal()
		if err != nil {
			return stateRestoredMsg{key: key, err: err}
		}
		data, err := store.Get(key, def, false)
		return stateRestoredMsg{key: key, data: data, err: err}
	}
}

// handleStateSaved processes a completed snapshot write. Failures are
// logged and otherwise tolerated; there is no retry.
func (m Model) handleStateSaved(msg stateSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("state save failed", "key", msg.key, "err", msg.err)
		m.statusBar.SetMessage(fmt.Sprintf("save failed: %v", msg.err))
		m.debugPanel.SetLastOp(fmt.Sprintf("save key %d failed", msg.key))
		return m, nil
	}

	m.log.Info("state saved", "key", msg.key)
	m.debugPanel.SetLastOp(fmt.Sprintf("saved key %d", msg.key))
	return m, nil
}

// handleStateRestored reconciles a completed snapshot read: the retrieved
// stack replaces the locally computed one wholesale.
func (m Model) handleStateRestored(msg stateRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("state restore failed", "key", msg.key, "err", msg.err)
		m.statusBar.SetMessage(fmt.Sprintf("restore failed: %v", msg.err))
		m.debugPanel.SetLastOp(fmt.Sprintf("restore key %d failed", msg.key))
		return m, nil
	}

	restored, err := nav.UnmarshalSnapshot(msg.data)
	if err != nil {
		m.log.Error("state restore undecodable", "key", msg.key, "err", err)
		m.debugPanel.SetLastOp(fmt.Sprintf("restore key %d undecodable", msg.key))
		return m, nil
	}

	m.snap.Stack = restored.Stack
	m.log.Info("state restored", "key", msg.key,
		"route", m.snap.Route, "current", m.snap.Stack.Current)
	m.debugPanel.SetLastOp(fmt.Sprintf("restored key %d", msg.key))
	m.syncStatusBar()
	return m, nil
}

// showRoute renders a route's page into the viewport.
func (m *Model) showRoute(route string) {
	page := m.renderRoute(route)
	if page == nil {
		m.statusBar.SetMessage(fmt.Sprintf("no page for %s", route))
		return
	}

	m.viewport.SetContent(page.Content)
	m.buttons.SetActive(route)
	m.statusBar.SetRoute(route)
	m.statusBar.SetMessage("")
	m.syncStatusBar()
}

// renderRoute extracts and renders a route, caching the result per width.
func (m *Model) renderRoute(route string) *pages.Page {
	cacheKey := fmt.Sprintf("%s@%d", route, m.width)
	if page, ok := m.pageCache.Get(cacheKey); ok {
		return page
	}

	article, err := pages.Extract(route)
	if err != nil {
		m.log.Error("page extraction failed", "route", route, "err", err)
		return nil
	}

	renderWidth := m.width - m.width/4 - 1
	if renderWidth <= 0 {
		renderWidth = 80
	}
	page := pages.Render(article, renderWidth)
	m.pageCache.Add(cacheKey, page)
	return page
}

// syncStatusBar pushes current state into the status bar and debug panel.
func (m *Model) syncStatusBar() {
	m.statusBar.SetStackInfo(m.snap.Stack.Current, m.snap.Stack.Depth())
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	m.debugPanel.SetState(m.snap.Route, m.snap.Stack)
}

// showHelp displays the keybinding reference in the viewport.
func (m *Model) showHelp() {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	bindings := []struct{ k, d string }{
		{"j / k", "Move the deck cursor"},
		{"enter", "Navigate to the selected route"},
		{"1-6", "Jump straight to a route"},
		{"H / bksp", "Go back one entry"},
		{"Ctrl+d/u", "Scroll the page"},
		{"g / G", "Top / bottom of page"},
		{"d", "Toggle the stack debug panel"},
		{"T", "Cycle the color theme"},
		{"?", "This help"},
		{"q", "Quit"},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("navdeck keybindings"))
	sb.WriteString("\n\n")
	for _, b := range bindings {
		sb.WriteString(keyStyle.Render(b.k))
		sb.WriteString(descStyle.Render(b.d))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("Help is display-only; it does not record a history entry."))

	m.viewport.SetContent(sb.String())
}
