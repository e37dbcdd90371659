package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/tutor"
)

func newTestChat() *ChatScreen {
	sess := &store.Session{ID: "sess-1", Subject: "science", Grade: "5"}
	return New(nil, sess, "과학")
}

func TestReplyAppendsTutorTurn(t *testing.T) {
	s := newTestChat()
	s.waiting = true

	_, _ = s.Update(replyMsg{Reply: &tutor.Reply{Text: "좋은 질문이에요!"}})

	if s.waiting {
		t.Error("waiting should clear once the reply arrives")
	}
	if s.turns != 1 {
		t.Errorf("expected 1 turn, got %d", s.turns)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "좋은 질문이에요!") {
		t.Error("view should show the tutor reply")
	}
}

func TestReplyErrorShowsRetryNotice(t *testing.T) {
	s := newTestChat()
	s.waiting = true

	_, _ = s.Update(replyMsg{Err: errors.New("provider down")})

	if s.waiting {
		t.Error("waiting should clear on error")
	}
	if s.turns != 0 {
		t.Errorf("a failed turn should not count, got %d", s.turns)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "다시 시도해 주세요") {
		t.Error("view should ask the student to retry")
	}
}

func TestSendIgnoresBlankInput(t *testing.T) {
	s := newTestChat()
	s.input.Model.SetValue("   ")

	if cmd := s.send(); cmd != nil {
		t.Error("blank input should not produce a command")
	}
	if len(s.transcript) != 0 {
		t.Error("blank input should not enter the transcript")
	}
}

func TestSendQueuesStudentMessage(t *testing.T) {
	s := newTestChat()
	s.input.Model.SetValue("왜 하늘은 파란색이에요?")

	cmd := s.send()

	if cmd == nil {
		t.Fatal("expected a command for a non-empty message")
	}
	if !s.waiting {
		t.Error("sending should enter the waiting state")
	}
	if s.input.Value() != "" {
		t.Error("input should clear after sending")
	}
	if len(s.transcript) != 1 || !s.transcript[0].student {
		t.Fatalf("expected one student entry, got %+v", s.transcript)
	}
}

func TestSendWhileWaitingIsIgnored(t *testing.T) {
	s := newTestChat()
	s.waiting = true
	s.input.Model.SetValue("두 번째 질문")

	if cmd := s.send(); cmd != nil {
		t.Error("sends while waiting should be dropped")
	}
}

func TestThinkingTickerStopsWhenIdle(t *testing.T) {
	s := newTestChat()

	_, cmd := s.Update(thinkingTickMsg{})

	if cmd != nil {
		t.Error("ticker should stop when no reply is pending")
	}
}

func TestOverridesCarryGradeLevel(t *testing.T) {
	s := newTestChat()

	if got := s.overrides().GradeLevel; got != "5학년" {
		t.Errorf("expected grade level 5학년, got %q", got)
	}

	s.session.Grade = ""
	if got := s.overrides().GradeLevel; got != "" {
		t.Errorf("no grade should yield no override, got %q", got)
	}
}

func TestSessionInfoReportsSubjectAndTurns(t *testing.T) {
	s := newTestChat()
	s.waiting = true
	_, _ = s.Update(replyMsg{Reply: &tutor.Reply{Text: "응답"}})

	subject, turns := s.SessionInfo()
	if subject != "과학" || turns != 1 {
		t.Errorf("expected (과학, 1), got (%s, %d)", subject, turns)
	}
}
