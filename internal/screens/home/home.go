package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seonho/tutorkit/internal/router"
	"github.com/seonho/tutorkit/internal/screen"
	"github.com/seonho/tutorkit/internal/screens/history"
	"github.com/seonho/tutorkit/internal/screens/setup"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
	"github.com/seonho/tutorkit/internal/tutor"
	"github.com/seonho/tutorkit/internal/ui/components"
	"github.com/seonho/tutorkit/internal/ui/theme"
)

const banner = ` _____      _             _  __ _ _
|_   _|   _| |_ ___  _ __| |/ /(_) |_
  | || | | | __/ _ \| '__| ' / | | __|
  | || |_| | || (_) | |  | . \ | | |_
  |_| \__,_|\__\___/|_|  |_|\_\|_|\__|`

// HomeScreen is the app's entry menu.
type HomeScreen struct {
	menu     components.Menu
	llmReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. When no LLM provider is configured the
// tutoring entry is disabled but history stays browsable.
func New(engine *tutor.Engine, subjStore *subjects.Store, sessions store.SessionRepo, turns store.ConversationRepo, llmReady bool) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "Start Tutoring",
			Disabled: !llmReady,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(engine, subjStore)}
				}
			},
		},
		{
			Label: "Session History",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(sessions, turns, subjStore)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{menu: components.NewMenu(items), llmReady: llmReady}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(banner)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("AI tutoring companion for inquisitive students")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if !s.llmReady {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No LLM provider configured. Set TUTORKIT_GEMINI_API_KEY to enable tutoring.")))
	}

	return b.String()
}
