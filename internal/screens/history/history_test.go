package history

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSessions() []store.Session {
	return []store.Session{
		{ID: "a", Subject: "science", StudentName: "민수", MessageCount: 3, UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Subject: "science", MessageCount: 1, UpdatedAt: time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)},
	}
}

func newTestHistory() *HistoryScreen {
	return New(nil, nil, subjects.NewStore(nil, nil))
}

func TestLoadingStateBeforeData(t *testing.T) {
	s := newTestHistory()
	view := s.View(80, 24)
	if !strings.Contains(view, "Loading") {
		t.Error("should show a loading state before sessions arrive")
	}
}

func TestEmptyStateAfterLoad(t *testing.T) {
	s := newTestHistory()
	_, _ = s.Update(historyLoadedMsg{})

	view := s.View(80, 24)
	if !strings.Contains(view, "No sessions yet") {
		t.Error("should show the empty state when nothing is recorded")
	}
}

func TestListShowsSessionRows(t *testing.T) {
	s := newTestHistory()
	_, _ = s.Update(historyLoadedMsg{Sessions: testSessions()})

	view := s.View(80, 24)
	if !strings.Contains(view, "민수") {
		t.Error("should show the student name")
	}
	if !strings.Contains(view, "3 turns") {
		t.Error("should show the turn count")
	}
	if !strings.Contains(view, "(anonymous)") {
		t.Error("sessions without a name render as anonymous")
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	s := newTestHistory()
	_, _ = s.Update(historyLoadedMsg{Sessions: testSessions()})

	_, _ = s.Update(keyPress('k'))
	if s.selected != 0 {
		t.Errorf("up at the top should stay at 0, got %d", s.selected)
	}

	_, _ = s.Update(keyPress('j'))
	_, _ = s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("down should clamp to the last row, got %d", s.selected)
	}
}

func TestEnterTogglesPreview(t *testing.T) {
	s := newTestHistory()
	_, _ = s.Update(historyLoadedMsg{Sessions: testSessions()})

	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[0] {
		t.Error("enter should expand the selected row")
	}

	_, _ = s.Update(previewLoadedMsg{SessionID: "a", Turns: []store.TurnRecord{
		{Role: "user", Text: "에너지가 뭐예요?"},
		{Role: "model", Text: "좋은 질문이에요!"},
	}})
	view := s.View(80, 24)
	if !strings.Contains(view, "학생: 에너지가 뭐예요?") {
		t.Error("preview should label the student turn")
	}
	if !strings.Contains(view, "튜터: 좋은 질문이에요!") {
		t.Error("preview should label the tutor turn")
	}

	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.expanded[0] {
		t.Error("enter again should collapse the row")
	}
}

func TestErrorStateRenders(t *testing.T) {
	s := newTestHistory()
	_, _ = s.Update(historyLoadedMsg{Err: errors.New("list failed")})

	view := s.View(80, 24)
	if !strings.Contains(view, "Error") {
		t.Error("load failures should surface in the view")
	}
}
