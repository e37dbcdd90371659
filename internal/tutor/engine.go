// Package tutor orchestrates one tutoring turn: classify the student's
// message, rank any lesson materials, compose the prompt, call the model,
// and persist the exchange.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/composer"
	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/store"
	"github.com/seonho/tutorkit/internal/subjects"
)

// Reply generation parameters. Tuned for short, conversational tutor turns;
// the low token cap keeps replies question-sized rather than lecture-sized.
const (
	replyTemperature = 0.7
	replyTopP        = 0.9

	// DefaultMaxReplyTokens caps one tutor reply.
	DefaultMaxReplyTokens = 150
)

// Deps are the engine's collaborators. Subjects, Analyzer, Composer, and
// Provider are required; Selector, Extractor, and the store repos are
// optional and degrade gracefully when absent.
type Deps struct {
	Subjects  *subjects.Store
	Analyzer  *analyzer.Analyzer
	Composer  *composer.Composer
	Selector  *materials.Selector
	Extractor materials.ContentExtractor
	Provider  llm.Provider
	Sessions  store.SessionRepo
	Turns     store.ConversationRepo
	Log       *logging.Logger
}

// TurnInput is one student message in context.
type TurnInput struct {
	SessionID string
	Subject   string
	Message   string

	// Overrides carries the teacher-configured prompt customizations for
	// this lesson.
	Overrides composer.Overrides

	// Materials are the lesson resources attached by the teacher. They are
	// extracted and ranked when an extractor is configured, otherwise
	// referenced unranked.
	Materials []materials.Material
}

// Reply is the tutor's answer plus the classification that shaped it.
type Reply struct {
	Text           string
	Classification analyzer.Result
}

// Engine drives tutoring turns.
type Engine struct {
	deps      Deps
	maxTokens int
}

func NewEngine(deps Deps) *Engine {
	if deps.Log == nil {
		deps.Log = logging.Nop()
	}
	return &Engine{deps: deps, maxTokens: DefaultMaxReplyTokens}
}

// WithMaxReplyTokens overrides the reply token cap.
func (e *Engine) WithMaxReplyTokens(n int) *Engine {
	if n > 0 {
		e.maxTokens = n
	}
	return e
}

// StartSession creates and persists a new session aggregate.
func (e *Engine) StartSession(ctx context.Context, subject, studentName, grade string) (*store.Session, error) {
	sess := &store.Session{
		ID:          uuid.NewString(),
		Subject:     subject,
		StudentName: studentName,
		Grade:       grade,
		CreatedAt:   time.Now().UTC(),
	}
	if e.deps.Sessions != nil {
		if err := e.deps.Sessions.Create(ctx, sess); err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}
	return sess, nil
}

// History loads a session's conversation in the form the analyzer and
// composer consume. Returns nil history when no store is configured.
func (e *Engine) History(ctx context.Context, sessionID string) ([]conversation.Turn, error) {
	if e.deps.Turns == nil {
		return nil, nil
	}
	records, err := e.deps.Turns.History(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	turns := make([]conversation.Turn, len(records))
	for i, rec := range records {
		turns[i] = conversation.Turn{
			Role:         conversation.Role(rec.Role),
			Text:         rec.Text,
			ResponseType: rec.ResponseType,
		}
	}
	return turns, nil
}

// Respond runs one full tutoring turn. Persistence failures are logged and
// never surface to the student; only classification-to-generation failures
// fail the turn.
func (e *Engine) Respond(ctx context.Context, in TurnInput) (*Reply, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("empty student message")
	}

	history, err := e.History(ctx, in.SessionID)
	if err != nil {
		e.deps.Log.Warn("continuing without stored history", "session", in.SessionID, "error", err)
		history = nil
	}

	result := e.deps.Analyzer.Analyze(in.Message, in.Subject, history)

	ranked, unranked := e.rankMaterials(ctx, in, result)

	cfg, err := e.deps.Subjects.Load(in.Subject)
	if err != nil {
		return nil, fmt.Errorf("load subject config: %w", err)
	}

	msgs := e.deps.Composer.Build(composer.Input{
		Classification: result,
		Message:        in.Message,
		History:        history,
		Overrides:      in.Overrides,
		Ranked:         ranked,
		Unranked:       unranked,
		Config:         cfg,
	})

	resp, err := e.deps.Provider.Generate(llm.WithPurpose(ctx, "tutor-turn"), llm.Request{
		Messages:    msgs,
		Temperature: replyTemperature,
		TopP:        replyTopP,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate tutor reply: %w", err)
	}

	text := replyText(resp)
	e.persistTurn(ctx, in, result, text)

	return &Reply{Text: text, Classification: result}, nil
}

// rankMaterials extracts and ranks the attached materials. Without an
// extractor and selector the materials pass through unranked; a ranking
// that keeps nothing also falls back to the unranked reference list.
func (e *Engine) rankMaterials(ctx context.Context, in TurnInput, result analyzer.Result) ([]materials.Scored, []materials.Material) {
	if len(in.Materials) == 0 {
		return nil, nil
	}
	if e.deps.Extractor == nil || e.deps.Selector == nil {
		return nil, in.Materials
	}

	items := make([]materials.Item, 0, len(in.Materials))
	for _, m := range in.Materials {
		ex, err := e.deps.Extractor.Extract(ctx, m)
		if err != nil {
			e.deps.Log.Warn("material extraction failed", "material", m.Title, "error", err)
			continue
		}
		items = append(items, materials.Item{Material: m, Extracted: ex})
	}

	ranked := e.deps.Selector.Rank(ctx, items, in.Message, materials.RankContext{
		Subject:      in.Subject,
		ResponseType: string(result.Type),
		GradeLevel:   in.Overrides.GradeLevel,
	})
	if len(ranked) == 0 {
		return nil, in.Materials
	}
	return ranked, nil
}

// persistTurn appends both sides of the exchange and bumps the session
// aggregate. Best effort only.
func (e *Engine) persistTurn(ctx context.Context, in TurnInput, result analyzer.Result, replyText string) {
	if e.deps.Turns == nil {
		return
	}

	student := &store.TurnRecord{
		SessionID:    in.SessionID,
		Role:         string(conversation.RoleStudent),
		Text:         in.Message,
		ResponseType: string(result.Type),
		Confidence:   result.Confidence,
	}
	if err := e.deps.Turns.Append(ctx, student); err != nil {
		e.deps.Log.Warn("failed to persist student turn", "session", in.SessionID, "error", err)
		return
	}

	tutor := &store.TurnRecord{
		SessionID: in.SessionID,
		Role:      string(conversation.RoleTutor),
		Text:      replyText,
	}
	if err := e.deps.Turns.Append(ctx, tutor); err != nil {
		e.deps.Log.Warn("failed to persist tutor turn", "session", in.SessionID, "error", err)
	}

	if e.deps.Sessions != nil {
		if err := e.deps.Sessions.BumpMessageCount(ctx, in.SessionID); err != nil {
			e.deps.Log.Warn("failed to bump message count", "session", in.SessionID, "error", err)
		}
	}
}

// replyText unwraps the provider response. Schemaless generations arrive as
// a JSON-encoded string; anything else is used verbatim.
func replyText(resp *llm.Response) string {
	var text string
	if err := json.Unmarshal(resp.Content, &text); err == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string(resp.Content))
}
