package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/opencode-ai/atlas/internal/layout"
	"github.com/opencode-ai/atlas/internal/tui/styles"
)

type route int

const (
	routeHome route = iota
	routeWorlds
	routeMaps
	routeSettings
)

var routes = []route{routeHome, routeWorlds, routeMaps, routeSettings}

func (r route) title() string {
	switch r {
	case routeWorlds:
		return "Worlds"
	case routeMaps:
		return "Maps"
	case routeSettings:
		return "Settings"
	default:
		return "Home"
	}
}

func (r route) icon() string {
	switch r {
	case routeWorlds:
		return "🏰"
	case routeMaps:
		return "🗺"
	case routeSettings:
		return "⚙"
	default:
		return "⌂"
	}
}

const sidebarWidth = 22

// navigator is one mounted navigation tree. Switching composition replaces
// the whole navigator, so the route position starts over.
type navigator struct {
	composition layout.Composition
	session     string
	active      route
}

func newNavigator(composition layout.Composition) *navigator {
	return &navigator{
		composition: composition,
		session:     uuid.New().String(),
		active:      routeHome,
	}
}

func (n *navigator) next() {
	n.active = routes[(int(n.active)+1)%len(routes)]
}

func (n *navigator) prev() {
	n.active = routes[(int(n.active)+len(routes)-1)%len(routes)]
}

// jump selects the route at a 1-based position.
func (n *navigator) jump(position int) bool {
	if position < 1 || position > len(routes) {
		return false
	}
	n.active = routes[position-1]
	return true
}

func (n *navigator) render(styleSet styles.Styles, width, height int, body string) string {
	if n.composition == layout.Desktop {
		return n.renderDesktop(styleSet, width, height, body)
	}
	return n.renderMobile(styleSet, width, height, body)
}

func (n *navigator) renderDesktop(styleSet styles.Styles, width, height int, body string) string {
	items := []string{styleSet.Title.Render("ATLAS"), ""}
	for _, r := range routes {
		label := r.icon() + " " + r.title()
		if r == n.active {
			items = append(items, styleSet.SidebarActive.Render(label))
		} else {
			items = append(items, styleSet.SidebarItem.Render(label))
		}
	}

	sidebar := styleSet.Sidebar.
		Width(sidebarWidth).
		Height(max(height-2, 1)).
		Render(strings.Join(items, "\n"))

	content := styleSet.Content.
		Width(max(width-sidebarWidth-4, 1)).
		Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}

func (n *navigator) renderMobile(styleSet styles.Styles, width, height int, body string) string {
	header := styleSet.Title.Render(n.active.icon() + " " + n.active.title())

	tabs := make([]string, 0, len(routes))
	for _, r := range routes {
		if r == n.active {
			tabs = append(tabs, styleSet.TabActive.Render(r.title()))
		} else {
			tabs = append(tabs, styleSet.Tab.Render(r.title()))
		}
	}
	tabBar := styleSet.TabBar.Width(max(width, 1)).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(tabBar)
	content := styleSet.Content.
		Width(max(width-4, 1)).
		Height(max(contentHeight-2, 1)).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, tabBar)
}
