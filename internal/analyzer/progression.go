package analyzer

import (
	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/subjects"
)

// progressionRule maps a response-type distribution to a learning stage.
type progressionRule struct {
	stage       string
	confidence  string
	description string
	matches     func(dist map[string]float64) bool
}

var commonProgressionRules = []progressionRule{
	{
		stage:       "struggling",
		confidence:  "high",
		description: "학습에 어려움을 겪는 단계",
		matches: func(d map[string]float64) bool {
			return d[string(subjects.TypeExplorationDeadlock)] > 0.4 ||
				d[string(subjects.TypeFailureReport)] > 0.3
		},
	},
	{
		stage:       "questioning",
		confidence:  "medium",
		description: "적극적으로 질문하는 단계",
		matches: func(d map[string]float64) bool {
			return d[string(subjects.TypeConceptQuestion)] > 0.5
		},
	},
	{
		stage:       "analyzing",
		confidence:  "high",
		description: "분석적 사고를 보이는 단계",
		matches: func(d map[string]float64) bool {
			return d[string(subjects.TypeHypothesisInquiry)] > 0.3 ||
				d[string(subjects.TypeCriticalInquiry)] > 0.3
		},
	},
}

var subjectProgressionRules = map[string][]progressionRule{
	"science": {
		{
			stage:       "experimenting",
			confidence:  "high",
			description: "실험적 탐구 단계",
			matches: func(d map[string]float64) bool {
				return d[string(subjects.TypeSuccessWithoutPrinciple)] > 0.2 &&
					d[string(subjects.TypeHypothesisInquiry)] > 0.1
			},
		},
	},
	"math": {
		{
			stage:       "problem_solving",
			confidence:  "high",
			description: "문제해결 중심 단계",
			matches: func(d map[string]float64) bool {
				return d[string(subjects.TypeProcedureError)] > 0.2 &&
					d[string(subjects.TypeMathematicalReasoning)] > 0.1
			},
		},
	},
}

// actionTable maps a winning response type to suggested tutor actions.
var actionTable = map[subjects.TypeKey][]string{
	subjects.TypeConceptQuestion:         {"provide_scaffolding", "use_analogy", "check_prerequisites"},
	subjects.TypeExplorationDeadlock:     {"suggest_alternatives", "break_down_problem", "encourage"},
	subjects.TypeFailureReport:           {"analyze_error", "find_learning_opportunity", "adjust_approach"},
	subjects.TypeSuccessWithoutPrinciple: {"connect_to_theory", "generalize", "apply_to_new_context"},
	subjects.TypeHypothesisInquiry:       {"validate_hypothesis", "design_test", "explore_implications"},
	subjects.TypeDefault:                 {"assess_understanding", "provide_guidance", "engage_interest"},
}

// buildContext derives the conversation-level annotations for a winning
// classification.
func (a *Analyzer) buildContext(current subjects.TypeKey, history []conversation.Turn, cfg *subjects.Config) Context {
	prev := conversation.PreviousTypes(history)
	return Context{
		IsFirstMessage:     len(history) == 0,
		ConversationLength: len(history),
		PreviousTypes:      prev,
		Progression:        analyzeProgression(history, cfg),
		SuggestedActions:   actionsFor(current, prev),
	}
}

// analyzeProgression infers a learning stage from the distribution of
// recent response types against the rule table.
func analyzeProgression(history []conversation.Turn, cfg *subjects.Config) Progression {
	if len(history) < 2 {
		return Progression{Stage: "beginning", Confidence: "low"}
	}

	dist := typeDistribution(conversation.PreviousTypes(history))

	rules := append(append([]progressionRule{}, commonProgressionRules...),
		subjectProgressionRules[cfg.Subject]...)
	for _, rule := range rules {
		if rule.matches(dist) {
			return Progression{Stage: rule.stage, Confidence: rule.confidence, Description: rule.description}
		}
	}

	return Progression{Stage: "intermediate", Confidence: "medium"}
}

// typeDistribution converts recent labels into per-type frequency ratios.
func typeDistribution(types []string) map[string]float64 {
	dist := make(map[string]float64, len(types))
	if len(types) == 0 {
		return dist
	}
	for _, t := range types {
		dist[t]++
	}
	total := float64(len(types))
	for t := range dist {
		dist[t] /= total
	}
	return dist
}

// actionsFor looks up the static suggestions for the winning type,
// prepending "change_approach" when the student has produced the same type
// three times running (the approach clearly is not landing).
func actionsFor(current subjects.TypeKey, previous []string) []string {
	base := suggestedActions(current)
	actions := make([]string, 0, len(base)+1)

	if len(previous) >= 2 {
		last, secondLast := previous[len(previous)-1], previous[len(previous)-2]
		if last == secondLast && last == string(current) {
			actions = append(actions, "change_approach")
		}
	}

	return append(actions, base...)
}

func suggestedActions(key subjects.TypeKey) []string {
	if actions, ok := actionTable[key]; ok {
		return actions
	}
	return actionTable[subjects.TypeDefault]
}
