package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/subjects"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	store := subjects.NewStore(nil, nil)
	return New(store, DefaultThresholds(), nil)
}

func studentTurn(text string, responseType subjects.TypeKey) conversation.Turn {
	return conversation.Turn{Role: conversation.RoleStudent, Text: text, ResponseType: string(responseType)}
}

func tutorTurn(text string) conversation.Turn {
	return conversation.Turn{Role: conversation.RoleTutor, Text: text}
}

func TestAnalyzeConceptQuestion(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("이게 뭐예요?", "science", nil)

	assert.Equal(t, subjects.TypeConceptQuestion, result.Type)
	assert.Greater(t, result.Confidence, DefaultConfidence)
	require.NotNil(t, result.Spec)
	assert.NotEmpty(t, result.Spec.SamplePrompts)
	assert.True(t, result.Context.IsFirstMessage)
	assert.Equal(t, "beginning", result.Context.Progression.Stage)
	assert.Empty(t, result.AnalysisError)
}

func TestAnalyzeUnmatchedMessageIsDefault(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("안녕하세요", "science", nil)

	assert.Equal(t, subjects.TypeDefault, result.Type)
	assert.Equal(t, DefaultConfidence, result.Confidence)
	assert.Empty(t, result.AnalysisError)
}

func TestAnalyzeRepeatedDeadlockSuggestsChangingApproach(t *testing.T) {
	a := newTestAnalyzer(t)

	msg := "모르겠어요 너무 막막해요"
	history := []conversation.Turn{
		studentTurn(msg, subjects.TypeExplorationDeadlock),
		tutorTurn("어떤 부분이 어려운지 같이 볼까?"),
		studentTurn(msg, subjects.TypeExplorationDeadlock),
		tutorTurn("한 단계씩 나눠서 생각해 보자."),
	}

	result := a.Analyze(msg, "science", history)

	assert.Equal(t, subjects.TypeExplorationDeadlock, result.Type)
	assert.Equal(t, "struggling", result.Context.Progression.Stage)
	require.NotEmpty(t, result.Context.SuggestedActions)
	assert.Equal(t, "change_approach", result.Context.SuggestedActions[0])
	assert.Contains(t, result.Context.SuggestedActions, "encourage")
}

func TestAnalyzeFirstDeadlockDoesNotSuggestChangingApproach(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("모르겠어요 너무 막막해요", "science", nil)

	assert.Equal(t, subjects.TypeExplorationDeadlock, result.Type)
	assert.NotContains(t, result.Context.SuggestedActions, "change_approach")
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	history := []conversation.Turn{
		studentTurn("이게 뭐예요?", subjects.TypeConceptQuestion),
		tutorTurn("좋은 질문이야."),
	}

	first := a.Analyze("만약 온도를 높이면 어떻게 될까요?", "science", history)
	second := a.Analyze("만약 온도를 높이면 어떻게 될까요?", "science", history)

	assert.Equal(t, first.Type, second.Type)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Context, second.Context)
	assert.Equal(t, first.Metacognitive, second.Metacognitive)
	assert.Equal(t, first.Reflective, second.Reflective)
}

func TestAnalyzeUnknownSubjectFallsBackToDefaultSubject(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("이게 뭐예요?", "astrology", nil)

	// The store serves the default subject for unknown IDs, so analysis
	// still classifies normally.
	assert.Equal(t, subjects.TypeConceptQuestion, result.Type)
	assert.Empty(t, result.AnalysisError)
}

func TestAnalyzeDegradesWhenNoConfigLoads(t *testing.T) {
	store := subjects.NewStore(subjects.DirSource{Dir: t.TempDir()}, nil)
	a := New(store, DefaultThresholds(), nil)

	result := a.Analyze("이게 뭐예요?", "science", nil)

	assert.Equal(t, subjects.TypeDefault, result.Type)
	assert.Equal(t, DefaultConfidence, result.Confidence)
	assert.NotEmpty(t, result.AnalysisError)
	require.NotNil(t, result.Spec)
	assert.NotEmpty(t, result.Spec.Strategy)
}

func TestMetacognitiveExecutiveRequest(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("그냥 답 알려 주세요", "math", nil)

	assert.True(t, result.Metacognitive.RequiresDiagnosisFirst)
	assert.Equal(t, ScaffoldExecutiveRequest, result.Metacognitive.ScaffoldingType)
	assert.Equal(t, 1, result.Metacognitive.ConsecutiveExecutiveRequests)
}

func TestMetacognitiveConsecutiveExecutiveRequests(t *testing.T) {
	a := newTestAnalyzer(t)

	history := []conversation.Turn{
		studentTurn("답 알려 주세요", subjects.TypeDefault),
		tutorTurn("먼저 어디까지 해 봤는지 말해 줄래?"),
		studentTurn("그냥 정답 말해 주세요", subjects.TypeDefault),
		tutorTurn("같이 풀어 보자."),
	}

	result := a.Analyze("빨리 답 알려 주세요", "math", history)

	assert.Equal(t, 3, result.Metacognitive.ConsecutiveExecutiveRequests)
}

func TestMetacognitiveSelfEvaluationNeedsHistory(t *testing.T) {
	a := newTestAnalyzer(t)

	msg := "제가 잘 하고 있는 건가요?"

	fresh := a.Analyze(msg, "science", nil)
	assert.False(t, fresh.Metacognitive.RequiresEvaluationPrompt)

	history := []conversation.Turn{
		studentTurn("이게 뭐예요?", subjects.TypeConceptQuestion),
		tutorTurn("좋은 질문이야."),
	}
	ongoing := a.Analyze(msg, "science", history)
	assert.True(t, ongoing.Metacognitive.RequiresEvaluationPrompt)
}

func TestAbilityLevel(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want AbilityLevel
	}{
		{
			"elaborated reasoning reads as high",
			"왜냐하면 물이 끓을 때 생기는 기포는 수증기이고 그래서 제 생각에는 온도가 핵심 변수인 것 같아요 근거는 지난 실험 결과예요",
			AbilityHigh,
		},
		{
			"short struggling message reads as low",
			"모르겠어요",
			AbilityLow,
		},
		{
			"plain question reads as medium",
			"이게 뭐예요?",
			AbilityMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abilityLevel(Normalize(tt.msg), tt.msg))
		})
	}
}

func TestReflectiveSummaryTriggers(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("turn threshold", func(t *testing.T) {
		history := make([]conversation.Turn, 0, 6)
		for i := 0; i < 3; i++ {
			history = append(history,
				studentTurn("이게 뭐예요?", subjects.TypeConceptQuestion),
				tutorTurn("이렇게 생각해 보자."))
		}
		result := a.Analyze("다음은 뭐 해요?", "science", history)
		assert.True(t, result.Reflective.RequiresSummary)
	})

	t.Run("explicit request", func(t *testing.T) {
		result := a.Analyze("지금까지 배운 거 정리해 주세요", "science", nil)
		assert.True(t, result.Reflective.RequiresSummary)
	})

	t.Run("quiet early conversation", func(t *testing.T) {
		result := a.Analyze("이게 뭐예요?", "science", nil)
		assert.False(t, result.Reflective.RequiresSummary)
	})
}

func TestReflectiveConnectionMaking(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("아까 배운 거랑 비슷한 건가요?", "science", nil)

	assert.True(t, result.Reflective.RequiresConnectionMaking)
}

func TestDepthLevel(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		turns int
		want  int
	}{
		{"recall question", "이게 뭐예요?", 0, 1},
		{"comparison question", "이 둘의 차이가 뭔가요 비교해 보고 싶어요", 0, 4},
		{"creation impulse", "제가 직접 새로운 방법을 만들어 보고 싶어요", 0, 6},
		{"long conversation biases upward", "이게 뭐예요?", 6, 2},
		{"very long conversation biases further", "이게 뭐예요?", 12, 3},
		{"bias caps at six", "제가 직접 만들어 보고 싶어요", 12, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, depthLevel(Normalize(tt.msg), tt.turns))
		})
	}
}

func TestAnalyzeNeverPanicsOnOddInput(t *testing.T) {
	a := newTestAnalyzer(t)

	inputs := []string{"", "   ", "\x00\x01", "🙂🙂🙂🙂🙂"}
	for _, in := range inputs {
		result := a.Analyze(in, "science", nil)
		assert.Equal(t, subjects.TypeDefault, result.Type)
		assert.Equal(t, DefaultConfidence, result.Confidence)
	}
}
