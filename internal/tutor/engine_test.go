package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/composer"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
)

func textReply(text string) llm.MockResponse {
	content, _ := json.Marshal(text)
	return llm.MockResponse{Content: content, Usage: llm.Usage{InputTokens: 20, OutputTokens: 8}}
}

func newTestEngine(t *testing.T, provider llm.Provider) (*Engine, *store.Store) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "tutor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	subjStore := subjects.NewStore(nil, nil)
	return NewEngine(Deps{
		Subjects: subjStore,
		Analyzer: analyzer.New(subjStore, analyzer.DefaultThresholds(), nil),
		Composer: composer.New(rand.New(rand.NewPCG(1, 2)), nil),
		Selector: materials.NewSelector(provider, nil),
		Provider: provider,
		Sessions: s.Sessions(),
		Turns:    s.Conversations(),
	}), s
}

func TestRespondRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(textReply("좋은 질문이야! 왜 그렇게 생각했어?"))
	e, s := newTestEngine(t, mock)
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "민준", "5학년")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	reply, err := e.Respond(ctx, TurnInput{
		SessionID: sess.ID,
		Subject:   "science",
		Message:   "이게 뭐예요?",
	})
	require.NoError(t, err)
	assert.Equal(t, "좋은 질문이야! 왜 그렇게 생각했어?", reply.Text)
	assert.Equal(t, subjects.TypeConceptQuestion, reply.Classification.Type)

	// Both sides of the exchange landed in the log with the student's
	// classification attached.
	history, err := s.Conversations().History(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "CONCEPT_QUESTION", history[0].ResponseType)
	assert.Greater(t, history[0].Confidence, 0.1)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, "좋은 질문이야! 왜 그렇게 생각했어?", history[1].Text)

	got, err := s.Sessions().Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MessageCount)
}

func TestRespondCarriesHistoryForward(t *testing.T) {
	mock := llm.NewMockProvider(textReply("첫 번째 답"), textReply("두 번째 답"))
	e, _ := newTestEngine(t, mock)
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "", "")
	require.NoError(t, err)

	_, err = e.Respond(ctx, TurnInput{SessionID: sess.ID, Subject: "science", Message: "이게 뭐예요?"})
	require.NoError(t, err)

	_, err = e.Respond(ctx, TurnInput{SessionID: sess.ID, Subject: "science", Message: "잘 모르겠어요"})
	require.NoError(t, err)

	// The second generation saw the stored first exchange plus the new
	// message.
	require.Len(t, mock.Calls, 2)
	assert.Len(t, mock.Calls[0].Messages, 1)
	assert.Len(t, mock.Calls[1].Messages, 3)
}

func TestRespondGenerationParameters(t *testing.T) {
	mock := llm.NewMockProvider(textReply("답"))
	e, _ := newTestEngine(t, mock)
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "", "")
	require.NoError(t, err)

	_, err = e.Respond(ctx, TurnInput{SessionID: sess.ID, Subject: "science", Message: "안녕하세요"})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.InDelta(t, replyTemperature, req.Temperature, 1e-9)
	assert.InDelta(t, replyTopP, req.TopP, 1e-9)
	assert.Equal(t, DefaultMaxReplyTokens, req.MaxTokens)
	assert.Nil(t, req.Schema)
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider())

	_, err := e.Respond(context.Background(), TurnInput{SessionID: "s", Subject: "science", Message: "   "})
	assert.Error(t, err)
}

func TestRespondFailsWhenProviderFails(t *testing.T) {
	// Empty queue: the mock fails every call.
	e, _ := newTestEngine(t, llm.NewMockProvider())
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "", "")
	require.NoError(t, err)

	_, err = e.Respond(ctx, TurnInput{SessionID: sess.ID, Subject: "science", Message: "이게 뭐예요?"})
	assert.Error(t, err)

	// Nothing was persisted for the failed turn.
	history, herr := e.History(ctx, sess.ID)
	require.NoError(t, herr)
	assert.Empty(t, history)
}

type failingTurnRepo struct{}

func (failingTurnRepo) Append(context.Context, *store.TurnRecord) error {
	return errors.New("disk full")
}

func (failingTurnRepo) History(context.Context, string) ([]store.TurnRecord, error) {
	return nil, errors.New("disk full")
}

func TestRespondSurvivesPersistenceFailure(t *testing.T) {
	mock := llm.NewMockProvider(textReply("괜찮아, 계속 해 보자"))
	subjStore := subjects.NewStore(nil, nil)

	e := NewEngine(Deps{
		Subjects: subjStore,
		Analyzer: analyzer.New(subjStore, analyzer.DefaultThresholds(), nil),
		Composer: composer.New(rand.New(rand.NewPCG(1, 2)), nil),
		Provider: mock,
		Turns:    failingTurnRepo{},
	})

	reply, err := e.Respond(context.Background(), TurnInput{
		SessionID: "sess-1",
		Subject:   "science",
		Message:   "이게 뭐예요?",
	})
	require.NoError(t, err)
	assert.Equal(t, "괜찮아, 계속 해 보자", reply.Text)
}

func TestRespondReferencesUnrankedMaterialsWithoutExtractor(t *testing.T) {
	mock := llm.NewMockProvider(textReply("자료를 같이 볼까?"))
	e, _ := newTestEngine(t, mock)
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "", "")
	require.NoError(t, err)

	_, err = e.Respond(ctx, TurnInput{
		SessionID: sess.ID,
		Subject:   "science",
		Message:   "에너지가 뭐예요?",
		Materials: []materials.Material{{Title: "에너지 읽기자료", Type: "link", URL: "https://example.com/energy"}},
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "에너지 읽기자료")
	assert.Contains(t, prompt, "교사가 이 수업을 위해 준비한")
}

type cannedExtractor struct {
	result materials.Extraction
}

func (c cannedExtractor) Extract(context.Context, materials.Material) (materials.Extraction, error) {
	return c.result, nil
}

func TestRespondRanksExtractedMaterials(t *testing.T) {
	// First canned response grades the material, second answers the turn.
	scoreContent, _ := json.Marshal(map[string]any{"score": 0.9, "reason": "직접 관련"})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: scoreContent},
		textReply("자료에 따르면 에너지는 보존돼"),
	)
	e, _ := newTestEngine(t, mock)
	e.deps.Extractor = cannedExtractor{result: materials.Extraction{
		Success:  true,
		Text:     "에너지는 보존된다.",
		Keywords: []string{"에너지"},
		Chunks:   []string{"에너지는 형태만 바뀐다."},
	}}
	ctx := context.Background()

	sess, err := e.StartSession(ctx, "science", "", "")
	require.NoError(t, err)

	reply, err := e.Respond(ctx, TurnInput{
		SessionID: sess.ID,
		Subject:   "science",
		Message:   "에너지가 뭐예요?",
		Materials: []materials.Material{{Title: "에너지 자료", Type: "link", URL: "https://example.com/e"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "자료에 따르면 에너지는 보존돼", reply.Text)

	require.Len(t, mock.Calls, 2)
	// The ranked variant quotes relevance and the best chunk.
	prompt := mock.Calls[1].Messages[0].Content
	assert.Contains(t, prompt, "관련도: 90%")
	assert.Contains(t, prompt, "에너지는 형태만 바뀐다.")
}

func TestReplyTextUnwrapping(t *testing.T) {
	encoded, _ := json.Marshal("  답변  ")
	assert.Equal(t, "답변", replyText(&llm.Response{Content: encoded}))

	raw := json.RawMessage(`{"not":"a string"}`)
	assert.Equal(t, `{"not":"a string"}`, replyText(&llm.Response{Content: raw}))
}
