package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/router"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/screens/builder"
	"github.com/abhisek/rhr/internal/screens/info"
	"github.com/abhisek/rhr/internal/screens/pool"
	"github.com/abhisek/rhr/internal/screens/session"
	"github.com/abhisek/rhr/internal/screens/welcome"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// Menu labels, in display order.
const (
	LabelStart   = "START QUIZ"
	LabelPool    = "PROBLEM POOL"
	LabelBuilder = "DIAGRAM BUILDER"
	LabelInfo    = "PROBLEM INFO"
	LabelExit    = "EXIT"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd { return push(session.New(env)) }},
		{Label: LabelPool, Action: func() tea.Cmd { return push(pool.New(env)) }},
		{Label: LabelBuilder, Action: func() tea.Cmd { return push(builder.New(env)) }},
		{Label: LabelInfo, Action: func() tea.Cmd { return push(info.New("")) }},
		{Label: LabelExit, Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// poolNames lists the names of the selected problem types.
func (h *HomeScreen) poolNames() string {
	ids, _ := games.ResolvePool(strings.Join(h.env.Pool, ","))
	names := make([]string, 0, len(ids))
	for _, g := range games.Pool(ids) {
		names = append(names, g.Name())
	}
	return strings.Join(names, ", ")
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(welcome.RenderBanner(cw))
	tagline := theme.Subtitle.Width(cw).Render(welcome.Tagline)
	pool := components.Card(
		theme.Hint.Render("Pool: ")+theme.Body.Render(h.poolNames()), cw)
	menu := components.Card(strings.TrimRight(h.menu.View(), "\n"), cw)

	content := strings.Join([]string{title, tagline, pool, menu}, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
