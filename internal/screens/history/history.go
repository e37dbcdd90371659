// Package history lists past tutoring sessions with a conversation preview.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seonho/tutorkit/internal/router"
	"github.com/seonho/tutorkit/internal/screen"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
	"github.com/seonho/tutorkit/internal/ui/layout"
	"github.com/seonho/tutorkit/internal/ui/theme"
)

const previewTurns = 4

type historyLoadedMsg struct {
	Sessions []store.Session
	Err      error
}

type previewLoadedMsg struct {
	SessionID string
	Turns     []store.TurnRecord
}

// HistoryScreen displays past sessions; Enter expands a preview of the
// conversation's first turns.
type HistoryScreen struct {
	sessions  store.SessionRepo
	turns     store.ConversationRepo
	subjStore *subjects.Store

	rows     []store.Session
	previews map[string][]store.TurnRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(sessions store.SessionRepo, turns store.ConversationRepo, subjStore *subjects.Store) *HistoryScreen {
	return &HistoryScreen{
		sessions:  sessions,
		turns:     turns,
		subjStore: subjStore,
		previews:  make(map[string][]store.TurnRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.sessions == nil {
			return historyLoadedMsg{}
		}
		rows, err := s.sessions.List(context.Background(), 50)
		return historyLoadedMsg{Sessions: rows, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Preview"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case previewLoadedMsg:
		s.previews[msg.SessionID] = msg.Turns
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.togglePreview()
		}
	}
	return s, nil
}

func (s *HistoryScreen) togglePreview() tea.Cmd {
	if s.selected >= len(s.rows) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	sess := s.rows[s.selected]
	if !s.expanded[s.selected] || s.turns == nil {
		return nil
	}
	if _, ok := s.previews[sess.ID]; ok {
		return nil
	}

	turns := s.turns
	return func() tea.Msg {
		all, err := turns.History(context.Background(), sess.ID)
		if err != nil {
			return previewLoadedMsg{SessionID: sess.ID}
		}
		if len(all) > previewTurns {
			all = all[:previewTurns]
		}
		return previewLoadedMsg{SessionID: sess.ID, Turns: all}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start a tutoring chat!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.rows {
		dateStr := sess.UpdatedAt.Format("Jan 02, 2006")
		subjectName := s.subjStore.DisplayName(sess.Subject)

		who := sess.StudentName
		if who == "" {
			who = "(anonymous)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d turns",
			prefix, dateStr, subjectName, who, sess.MessageCount)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderPreview(sess, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderPreview(sess store.Session, width int) string {
	turns, ok := s.previews[sess.ID]
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("    loading...")) + "\n"
	}
	if len(turns) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("    No recorded turns")) + "\n"
	}

	var b strings.Builder
	for _, t := range turns {
		speaker := "튜터"
		if t.Role == "user" {
			speaker = "학생"
		}
		text := t.Text
		if runes := []rune(text); len(runes) > 60 {
			text = string(runes[:60]) + "…"
		}
		line := fmt.Sprintf("    %s: %s", speaker, text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
