// Package setup collects the session parameters before a tutoring chat:
// subject, student name, grade.
package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seonho/tutorkit/internal/router"
	"github.com/seonho/tutorkit/internal/screen"
	"github.com/seonho/tutorkit/internal/screens/chat"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
	"github.com/seonho/tutorkit/internal/tutor"
	"github.com/seonho/tutorkit/internal/ui/components"
	"github.com/seonho/tutorkit/internal/ui/layout"
	"github.com/seonho/tutorkit/internal/ui/theme"
)

type step int

const (
	stepSubject step = iota
	stepName
	stepGrade
	stepStarting
)

type sessionStartedMsg struct {
	Session *store.Session
	Err     error
}

// SetupScreen walks through subject, name, and grade before starting.
type SetupScreen struct {
	engine    *tutor.Engine
	subjStore *subjects.Store

	step      step
	menu      components.Menu
	subjectID string
	nameInput components.TextInput
	grade     components.TextInput
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

func New(engine *tutor.Engine, subjStore *subjects.Store) *SetupScreen {
	s := &SetupScreen{
		engine:    engine,
		subjStore: subjStore,
		nameInput: components.NewTextInput("Student name (optional)", false, 30),
		grade:     components.NewTextInput("Grade, e.g. 5 (optional)", true, 2),
	}

	items := make([]components.MenuItem, 0, len(subjects.SupportedSubjects()))
	for _, id := range subjects.SupportedSubjects() {
		id := id
		items = append(items, components.MenuItem{
			Label: subjStore.DisplayName(id),
			Action: func() tea.Cmd {
				s.subjectID = id
				s.step = stepName
				return s.nameInput.Init()
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.step = stepSubject
			return s, nil
		}
		subjectName := s.subjStore.DisplayName(msg.Session.Subject)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: chat.New(s.engine, msg.Session, subjectName)}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && s.step != stepSubject {
			return s.advance()
		}
	}

	switch s.step {
	case stepSubject:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	case stepName:
		var cmd tea.Cmd
		s.nameInput, cmd = s.nameInput.Update(msg)
		return s, cmd
	case stepGrade:
		var cmd tea.Cmd
		s.grade, cmd = s.grade.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) advance() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepName:
		s.step = stepGrade
		return s, s.grade.Init()
	case stepGrade:
		s.step = stepStarting
		subject := s.subjectID
		name := strings.TrimSpace(s.nameInput.Value())
		grade := strings.TrimSpace(s.grade.Value())
		engine := s.engine
		return s, func() tea.Msg {
			sess, err := engine.StartSession(context.Background(), subject, name, grade)
			return sessionStartedMsg{Session: sess, Err: err}
		}
	}
	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	switch s.step {
	case stepSubject:
		b.WriteString(center(width, theme.Title.Render("Choose a subject")))
		b.WriteString("\n\n")
		b.WriteString(center(width, s.menu.View()))
		if s.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("Could not start session: %s", s.errMsg))))
		}
	case stepName:
		b.WriteString(center(width, theme.Title.Render("Who is studying today?")))
		b.WriteString("\n\n")
		b.WriteString(center(width, s.nameInput.View()))
	case stepGrade:
		b.WriteString(center(width, theme.Title.Render("What grade?")))
		b.WriteString("\n\n")
		b.WriteString(center(width, s.grade.View()))
	case stepStarting:
		b.WriteString(center(width, theme.Hint.Render("Starting session...")))
	}

	return b.String()
}

func center(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
