// Package chat is the live tutoring conversation screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seonho/tutorkit/internal/composer"
	"github.com/seonho/tutorkit/internal/screen"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/tutor"
	"github.com/seonho/tutorkit/internal/ui/components"
	"github.com/seonho/tutorkit/internal/ui/layout"
	"github.com/seonho/tutorkit/internal/ui/theme"
)

const thinkingInterval = 250 * time.Millisecond

var thinkingFrames = []string{"·", "··", "···"}

type entry struct {
	student bool
	text    string
	isError bool
}

// ChatScreen drives one tutoring conversation.
type ChatScreen struct {
	engine      *tutor.Engine
	session     *store.Session
	subjectName string

	input      components.TextInput
	transcript []entry
	waiting    bool
	tickCount  int
	turns      int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.SessionInfoProvider = (*ChatScreen)(nil)

func New(engine *tutor.Engine, session *store.Session, subjectName string) *ChatScreen {
	return &ChatScreen{
		engine:      engine,
		session:     session,
		subjectName: subjectName,
		input:       components.NewTextInput("궁금한 것을 물어보세요...", false, 500),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Tutoring"
}

func (s *ChatScreen) SessionInfo() (string, int) {
	return s.subjectName, s.turns
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "End session"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.transcript = append(s.transcript, entry{
				text:    "응답을 가져오지 못했어요. 다시 시도해 주세요.",
				isError: true,
			})
			return s, nil
		}
		s.turns++
		s.transcript = append(s.transcript, entry{text: msg.Reply.Text})
		return s, nil

	case thinkingTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.tickCount++
		return s, tea.Tick(thinkingInterval, func(t time.Time) tea.Msg {
			return thinkingTickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}

	if !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.waiting {
		return nil
	}

	s.transcript = append(s.transcript, entry{student: true, text: text})
	s.input.Model.SetValue("")
	s.waiting = true
	s.tickCount = 0

	engine := s.engine
	in := tutor.TurnInput{
		SessionID: s.session.ID,
		Subject:   s.session.Subject,
		Message:   text,
		Overrides: s.overrides(),
	}

	respond := func() tea.Msg {
		reply, err := engine.Respond(context.Background(), in)
		return replyMsg{Reply: reply, Err: err}
	}
	tick := tea.Tick(thinkingInterval, func(t time.Time) tea.Msg {
		return thinkingTickMsg(t)
	})
	return tea.Batch(respond, tick)
}

func (s *ChatScreen) overrides() (ov composer.Overrides) {
	if s.session.Grade != "" {
		ov.GradeLevel = s.session.Grade + "학년"
	}
	return ov
}

func (s *ChatScreen) View(width, height int) string {
	var b strings.Builder

	studentStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(theme.Error)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 12)

	// Keep the most recent lines that fit above the input row.
	visible := s.transcript
	maxEntries := (height - 4) / 2
	if maxEntries > 0 && len(visible) > maxEntries {
		visible = visible[len(visible)-maxEntries:]
	}

	b.WriteString("\n")
	for _, e := range visible {
		switch {
		case e.isError:
			b.WriteString("  " + errStyle.Render(e.text))
		case e.student:
			b.WriteString("  " + studentStyle.Render("학생") + "  " + bodyStyle.Render(e.text))
		default:
			b.WriteString("  " + tutorStyle.Render("튜터") + "  " + bodyStyle.Render(e.text))
		}
		b.WriteString("\n\n")
	}

	if s.waiting {
		frame := thinkingFrames[s.tickCount%len(thinkingFrames)]
		b.WriteString("  " + theme.Hint.Render("튜터가 생각 중 "+frame))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + s.input.View())
	return b.String()
}
