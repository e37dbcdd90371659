package composer

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/subjects"
)

func newTestComposer() *Composer {
	return New(rand.New(rand.NewPCG(1, 2)), nil)
}

func scienceConfig(t *testing.T) *subjects.Config {
	t.Helper()
	cfg, err := subjects.NewStore(nil, nil).Load("science")
	require.NoError(t, err)
	return cfg
}

func classificationFor(cfg *subjects.Config, key subjects.TypeKey, ctx analyzer.Context) analyzer.Result {
	return analyzer.Result{
		Type:       key,
		Spec:       cfg.Type(key),
		Confidence: 0.8,
		Context:    ctx,
	}
}

func joinContents(msgs []llm.Message) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func TestBuildEmptyHistory(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeConceptQuestion, analyzer.Context{IsFirstMessage: true}),
		Message:        "이게 뭐예요?",
		Config:         cfg,
	})

	require.Len(t, msgs, 1)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.True(t, strings.HasSuffix(msgs[0].Content, "이게 뭐예요?"))
	// The concept-question type carries a dedicated tutor prompt.
	assert.Contains(t, msgs[0].Content, cfg.Type(subjects.TypeConceptQuestion).PreferredPrompt)
}

func TestBuildWithHistory(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	history := []conversation.Turn{
		{Role: conversation.RoleStudent, Text: "이게 뭐예요?", ResponseType: "CONCEPT_QUESTION"},
		{Role: conversation.RoleTutor, Text: "좋은 질문이야."},
		{Role: conversation.RoleStudent, Text: "그건 알아요", ResponseType: "DEFAULT"},
		{Role: conversation.RoleTutor, Text: "그럼 직접 관찰해 볼까?"},
	}

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{ConversationLength: 4}),
		Message:        "네 해볼게요",
		History:        history,
		Config:         cfg,
	})

	require.Len(t, msgs, len(history)+1)

	// Instruction appears exactly once, attached to the first entry.
	all := joinContents(msgs)
	assert.Equal(t, 1, strings.Count(all, "### 공통 대화 규칙 ###"))
	assert.Contains(t, msgs[0].Content, "### 공통 대화 규칙 ###")
	assert.Contains(t, msgs[0].Content, "이게 뭐예요?")

	// Subsequent turns pass through unchanged.
	assert.Equal(t, "좋은 질문이야.", msgs[1].Content)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "그건 알아요", msgs[2].Content)

	// Current message is the final user turn.
	last := msgs[len(msgs)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Equal(t, "네 해볼게요", last.Content)
}

func TestBuildWindowsLongHistory(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	var history []conversation.Turn
	for i := 0; i < 5; i++ {
		history = append(history,
			conversation.Turn{Role: conversation.RoleStudent, Text: "질문"},
			conversation.Turn{Role: conversation.RoleTutor, Text: "답변"})
	}

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{ConversationLength: 10}),
		Message:        "다음은요?",
		History:        history,
		Config:         cfg,
	})

	// Only the most recent maxHistory turns are retained, plus the current
	// message.
	assert.Len(t, msgs, cfg.MaxHistory()+1)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
}

func TestWindowedHistoryOpensWithUserRole(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	// Eleven turns so windowing drops the first five and a tutor turn
	// lands at the front of the retained slice.
	history := []conversation.Turn{{Role: conversation.RoleStudent, Text: "질문 0"}}
	for i := 0; i < 5; i++ {
		history = append(history,
			conversation.Turn{Role: conversation.RoleTutor, Text: fmt.Sprintf("답변 %d", i)},
			conversation.Turn{Role: conversation.RoleStudent, Text: fmt.Sprintf("질문 %d", i+1)})
	}

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{ConversationLength: 11}),
		Message:        "다음은요?",
		History:        history,
		Config:         cfg,
	})

	// The instruction-bearing entry must carry the user role even though
	// the retained turn it wraps was a tutor turn.
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "### 공통 대화 규칙 ###")
	assert.Contains(t, msgs[0].Content, "답변 2")

	// Later turns keep their own roles.
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
}

func TestTeacherOverrideBeatsConfiguredPrompts(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeConceptQuestion, analyzer.Context{}),
		Message:        "이게 뭐예요?",
		Overrides: Overrides{
			Prompts: map[string]string{"CONCEPT_QUESTION": "개념 질문에는 비유를 하나 들어 설명을 유도하라."},
		},
		Config: cfg,
	})

	content := joinContents(msgs)
	assert.Contains(t, content, "개념 질문에는 비유를 하나 들어 설명을 유도하라.")
	assert.NotContains(t, content, cfg.Type(subjects.TypeConceptQuestion).PreferredPrompt)
}

func TestSamplePromptAffinity(t *testing.T) {
	cfg := scienceConfig(t)
	prompts := cfg.Type(subjects.TypeDefault).SamplePrompts
	require.GreaterOrEqual(t, len(prompts), 3)

	tests := []struct {
		name string
		ctx  analyzer.Context
		want string
	}{
		{"first message prefers a welcoming prompt", analyzer.Context{IsFirstMessage: true}, prompts[0]},
		{"struggling stage prefers encouragement", analyzer.Context{Progression: analyzer.Progression{Stage: "struggling"}}, prompts[1]},
		{"analyzing stage prefers growth prompts", analyzer.Context{Progression: analyzer.Progression{Stage: "analyzing"}}, prompts[2]},
		{"otherwise the first prompt", analyzer.Context{Progression: analyzer.Progression{Stage: "intermediate"}}, prompts[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := samplePromptFor(prompts, tt.ctx)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetacognitiveBasePrompt(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	res := classificationFor(cfg, subjects.TypeDefault, analyzer.Context{})
	res.Metacognitive = analyzer.MetacognitiveNeeds{
		RequiresDiagnosisFirst: true,
		ScaffoldingType:        analyzer.ScaffoldExecutiveRequest,
		AbilityLevel:           analyzer.AbilityMedium,
	}

	msgs := c.Build(Input{Classification: res, Message: "답 알려 주세요", Config: cfg})

	content := joinContents(msgs)
	assert.Contains(t, content, "### 메타인지 스캐폴딩 지침 ###")
	assert.Contains(t, content, "진단 우선")
}

func TestReflectiveWinsOverMetacognitive(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	res := classificationFor(cfg, subjects.TypeDefault, analyzer.Context{})
	res.Metacognitive = analyzer.MetacognitiveNeeds{RequiresDiagnosisFirst: true, ScaffoldingType: analyzer.ScaffoldExecutiveRequest}
	res.Reflective = analyzer.ReflectiveNeeds{RequiresSummary: true, DepthLevel: 2}

	msgs := c.Build(Input{Classification: res, Message: "정리해 주세요", Config: cfg})

	content := joinContents(msgs)
	assert.Contains(t, content, "### 성찰적 학습 지침 ###")
	assert.NotContains(t, content, "### 메타인지 스캐폴딩 지침 ###")
}

func TestMetacognitiveEscalations(t *testing.T) {
	needs := analyzer.MetacognitiveNeeds{
		RequiresDiagnosisFirst:       true,
		ConsecutiveExecutiveRequests: 3,
		TurnsSinceLastEvaluation:     6,
	}
	rules := metacognitiveRules(needs)
	assert.Contains(t, rules, "접근 방식 변경")
	assert.Contains(t, rules, "중간 점검")

	calm := metacognitiveRules(analyzer.MetacognitiveNeeds{RequiresDiagnosisFirst: true})
	assert.NotContains(t, calm, "접근 방식 변경")
	assert.NotContains(t, calm, "중간 점검")
}

func TestMaterialsLayerPrefersRanked(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	ranked := []materials.Scored{{
		Material:   materials.Material{Title: "에너지 보존 읽기자료", Type: "link", URL: "https://example.com/energy"},
		Extracted:  materials.Extraction{Success: true, Text: "에너지는 형태를 바꿀 뿐 사라지지 않는다."},
		Score:      0.82,
		BestChunks: []string{"운동 에너지가 위치 에너지로 바뀌는 예"},
	}}
	unranked := []materials.Material{{Title: "참고 링크", Type: "link", URL: "https://example.com"}}

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{}),
		Message:        "에너지가 뭐예요?",
		Ranked:         ranked,
		Unranked:       unranked,
		Config:         cfg,
	})

	content := joinContents(msgs)
	assert.Contains(t, content, "관련도: 82%")
	assert.Contains(t, content, "에너지 보존 읽기자료")
	assert.Contains(t, content, "운동 에너지가 위치 에너지로 바뀌는 예")
	// Only one material layer variant is ever emitted.
	assert.NotContains(t, content, "교사가 이 수업을 위해 준비한")
}

func TestAbsentLayersAreOmitted(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{IsFirstMessage: true}),
		Message:        "안녕하세요",
		Config:         cfg,
	})

	content := joinContents(msgs)
	assert.NotContains(t, content, "### 수업 목표 및 AI 튜터 핵심 역할 ###")
	assert.NotContains(t, content, "### 참고 학습 자료 ###")
	assert.NotContains(t, content, "### 현재 학습 환경 ###")
	// Always-present layers remain.
	assert.Contains(t, content, "### 공통 대화 규칙 ###")
	assert.Contains(t, content, "### 대화 맥락 ###")
}

func TestLearningEnvironmentLayer(t *testing.T) {
	cfg := scienceConfig(t)
	c := newTestComposer()

	msgs := c.Build(Input{
		Classification: classificationFor(cfg, subjects.TypeDefault, analyzer.Context{}),
		Message:        "시작해요",
		Overrides: Overrides{
			Topic:      "에너지 전환",
			GradeLevel: "초등 5학년",
		},
		Config: cfg,
	})

	content := joinContents(msgs)
	assert.Contains(t, content, "### 현재 학습 환경 ###")
	assert.Contains(t, content, "학습 주제: 에너지 전환")
	assert.Contains(t, content, "학년 수준: 초등 5학년")
	assert.NotContains(t, content, "수업 단계:")
}

func TestBuildFallsBackOnPanic(t *testing.T) {
	c := newTestComposer()

	// A nil subject config cannot be composed against; the top-level
	// recover must still produce a usable prompt.
	msgs := c.Build(Input{
		Classification: analyzer.Result{Type: subjects.TypeDefault},
		Message:        "이게 뭐예요?",
		Config:         nil,
	})

	require.Len(t, msgs, 1)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "이게 뭐예요?")
	assert.Contains(t, msgs[0].Content, "교육 튜터")
}

func TestBuildDeterministicWithSeededSource(t *testing.T) {
	cfg := scienceConfig(t)

	build := func() string {
		c := New(rand.New(rand.NewPCG(7, 7)), nil)
		res := classificationFor(cfg, subjects.TypeDefault, analyzer.Context{})
		res.Reflective = analyzer.ReflectiveNeeds{RequiresSummary: true, RequiresMetacognitiveReflection: true, DepthLevel: 3}
		return joinContents(c.Build(Input{Classification: res, Message: "정리해 주세요", Config: cfg}))
	}

	assert.Equal(t, build(), build())
}

func TestDepthQuestionSearchesUpward(t *testing.T) {
	require.NoError(t, loadBanks())
	c := newTestComposer()

	for level := 1; level <= 6; level++ {
		assert.NotEmpty(t, c.depthQuestion(level), "level %d", level)
	}
	// Below-range levels clamp to 1; above the top bank there is nothing
	// left to ask.
	assert.NotEmpty(t, c.depthQuestion(0))
	assert.Empty(t, c.depthQuestion(7))
}
