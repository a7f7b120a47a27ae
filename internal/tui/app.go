// Package tui implements the Atlas terminal user interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/atlas/internal/events"
	"github.com/opencode-ai/atlas/internal/layout"
	"github.com/opencode-ai/atlas/internal/logging"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/opencode-ai/atlas/internal/theme"
	"github.com/opencode-ai/atlas/internal/tui/components"
	"github.com/opencode-ai/atlas/internal/tui/styles"
)

// Config wires the TUI to its collaborators.
type Config struct {
	// Provider owns the theme. Required.
	Provider *theme.Provider

	// Selector picks the navigation composition. Default: layout.NewSelector(0, 0).
	Selector *layout.Selector

	// Events records layout switches. Optional.
	Events events.Repository
}

// Run launches the Atlas TUI program and blocks until it exits. The provider
// is closed on return.
func Run(cfg Config) error {
	if cfg.Provider == nil {
		return fmt.Errorf("theme provider is required")
	}
	defer cfg.Provider.Close()

	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	provider *theme.Provider
	selector *layout.Selector
	events   events.Repository
	logger   zerolog.Logger

	nav            *navigator
	width          int
	height         int
	settingsCursor int
	status         string
}

const (
	minWidth  = 40
	minHeight = 12
)

func newModel(cfg Config) model {
	selector := cfg.Selector
	if selector == nil {
		selector = layout.NewSelector(0, 0)
	}
	return model{
		provider: cfg.Provider,
		selector: selector,
		events:   cfg.Events,
		logger:   logging.Component("tui"),
	}
}

func (m model) Init() tea.Cmd {
	return m.provider.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case theme.LoadedMsg:
		return m, m.provider.Update(msg)
	case theme.SavedMsg:
		if msg.ProviderID == m.provider.ID() {
			if msg.Err != nil {
				m.status = "Theme applied but not saved."
			} else if msg.ID == m.provider.CurrentID() {
				m.status = ""
			}
		}
		return m, m.provider.Update(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.observeWidth(msg.Width)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// observeWidth remounts the navigator when the composition changes.
func (m *model) observeWidth(columns int) tea.Cmd {
	composition, changed := m.selector.Observe(columns)
	if !changed && m.nav != nil {
		return nil
	}

	var previous string
	if m.nav != nil {
		previous = m.nav.composition.String()
	}
	m.nav = newNavigator(composition)
	m.settingsCursor = m.currentThemeIndex()

	m.logger.Debug().
		Str("from", previous).
		Str("to", composition.String()).
		Int("columns", columns).
		Msg("navigation composition mounted")

	if previous == "" || m.events == nil {
		return nil
	}
	return m.recordSwitch(previous, composition.String(), m.selector.LogicalWidth(columns))
}

func (m model) recordSwitch(from, to string, width int) tea.Cmd {
	repo := m.events
	session := m.nav.session
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := events.LogLayoutSwitched(ctx, repo, session, from, to, width); err != nil {
			logger.Warn().Err(err).Msg("failed to record layout switch")
		}
		return nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}
	if !m.provider.Ready() || m.nav == nil {
		return m, nil
	}

	switch key {
	case "tab", "right", "l":
		m.nav.next()
		m.status = ""
	case "shift+tab", "left", "h":
		m.nav.prev()
		m.status = ""
	case "1", "2", "3", "4":
		if m.nav.jump(int(key[0] - '0')) {
			m.status = ""
		}
	case "t":
		cmd := m.provider.Cycle()
		m.settingsCursor = m.currentThemeIndex()
		return m, cmd
	}

	switch m.nav.active {
	case routeWorlds:
		if key == "n" {
			m.status = worldsComingSoon
		}
	case routeSettings:
		return m.handleSettingsKey(key)
	}
	return m, nil
}

const (
	worldsComingSoon = "Creating worlds is coming soon."
	signOutStub      = "Sign-out is not available: accounts are not supported yet."
)

// Settings rows are the themes followed by the sign-out action.
func (m model) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	themes := styles.Ordered()
	rows := len(themes) + 1
	switch key {
	case "down", "j":
		m.settingsCursor = (m.settingsCursor + 1) % rows
	case "up", "k":
		m.settingsCursor = (m.settingsCursor + rows - 1) % rows
	case "enter", " ":
		if m.settingsCursor == len(themes) {
			m.status = signOutStub
			return m, nil
		}
		return m, m.provider.Set(themes[m.settingsCursor].ID)
	}
	return m, nil
}

func (m model) currentThemeIndex() int {
	current := m.provider.CurrentID()
	for i, id := range models.AllThemeIDs() {
		if id == current {
			return i
		}
	}
	return 0
}

func (m model) View() string {
	// Render nothing until the theme is known, so the wrong palette never flashes.
	if !m.provider.Ready() || m.nav == nil {
		return ""
	}

	styleSet := m.provider.Styles()
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(styleSet), "\n"))
	}

	body := m.screenBody(styleSet)
	if m.status != "" {
		body += "\n\n" + styleSet.Warning.Render(m.status)
	}
	hints := components.RenderQuickActionBar(styleSet, components.NavigationActions(m.nav.active == routeSettings))
	body += "\n\n" + hints

	return m.nav.render(styleSet, m.width, m.height, body)
}

func (m model) smallViewLines(styleSet styles.Styles) []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		styleSet.Warning.Render(message),
		styleSet.Muted.Render(hint),
		styleSet.Muted.Render("Press q to quit."),
	}
}
