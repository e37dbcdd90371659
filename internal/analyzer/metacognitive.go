package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/seonho/tutorkit/internal/conversation"
)

// Pattern families for the metacognitive analysis. These are
// subject-independent conversational signals, compiled once at init.

// executiveRequestPatterns: the student asks to be told the answer outright.
var executiveRequestPatterns = compilePatterns(
	"답(을|만|이 뭐)? (알려|가르쳐|말해)",
	"정답.*(알려|뭐|말해)",
	"그냥 (알려|말해|가르쳐)",
	"빨리 (알려|말해)",
	"어떻게 하는지 (알려|가르쳐|보여)",
	"해결 ?방법.*알려",
)

// vagueProblemPatterns: difficulty described without specifics.
var vagueProblemPatterns = compilePatterns(
	"잘 안 ?(돼요|되요|돼)",
	"뭔가 (이상|안 맞|잘못)",
	"그냥 (안 돼|안돼|어려워)",
	"다 (틀|안 돼|안돼)",
	"어딘가 (문제|잘못)",
	"모르겠.*막막|막막.*모르겠",
)

// selfEvaluationPatterns: the student asks how they are doing.
var selfEvaluationPatterns = compilePatterns(
	"(잘|제대로) (하고 있|한 건가|했나)",
	"(맞게|맞은 건지|맞나)(요| 했)?",
	"이렇게 하는 게 맞",
	"(검사|확인)해 ?주",
	"평가해 ?주",
)

// highAbilityIndicators: phrases suggesting elaborated reasoning.
var highAbilityIndicators = compilePatterns(
	"왜냐하면",
	"그래서 (제|내) 생각",
	"비교(해 보면|하면)",
	"정리(해 보면|하면)",
	"근거(는|로)",
	"가설",
	"반대로 생각하면",
)

// strugglingIndicators: phrases suggesting the student is overwhelmed.
var strugglingIndicators = compilePatterns(
	"모르겠",
	"어려워|어렵",
	"못 하겠|못하겠",
	"헷갈",
	"포기",
	"하나도",
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

// metacognitiveNeeds runs the scaffolding-trigger analysis. normalized is
// the preprocessed message used for pattern matching; raw is the original
// message used for the length-based ability heuristics.
func (a *Analyzer) metacognitiveNeeds(normalized, raw string, history []conversation.Turn) MetacognitiveNeeds {
	needs := MetacognitiveNeeds{
		AbilityLevel: abilityLevel(normalized, raw),
	}

	execConf := MatchConfidence(normalized, executiveRequestPatterns)
	vagueConf := MatchConfidence(normalized, vagueProblemPatterns)
	evalConf := MatchConfidence(normalized, selfEvaluationPatterns)

	needs.RequiresDiagnosisFirst = execConf > a.thresholds.ExecutiveRequest
	needs.RequiresProblemSpecification = vagueConf > a.thresholds.VagueProblem
	// Self-evaluation only makes sense once there is something to evaluate.
	needs.RequiresEvaluationPrompt = evalConf > a.thresholds.SelfEvaluation && len(history) > 0

	switch {
	case needs.RequiresDiagnosisFirst:
		needs.ScaffoldingType = ScaffoldExecutiveRequest
	case needs.RequiresProblemSpecification:
		needs.ScaffoldingType = ScaffoldVagueProblem
	case needs.RequiresEvaluationPrompt:
		needs.ScaffoldingType = ScaffoldSelfEvaluation
	}

	needs.ConsecutiveExecutiveRequests = consecutiveExecutiveRequests(normalized, history, a.thresholds.ExecutiveRequest)
	needs.TurnsSinceLastEvaluation = turnsSinceLastEvaluation(history)

	return needs
}

// abilityLevel scores the student's apparent ability with a small point
// system: +2 per high-ability indicator, -1 per struggling indicator, +1
// for substantial messages, -1 for very short ones.
func abilityLevel(normalized, raw string) AbilityLevel {
	score := 0

	for _, re := range highAbilityIndicators {
		if re.MatchString(normalized) {
			score += 2
		}
	}
	for _, re := range strugglingIndicators {
		if re.MatchString(normalized) {
			score--
		}
	}

	runes := utf8.RuneCountInString(raw)
	words := len(strings.Fields(raw))
	if runes > 50 && words > 10 {
		score++
	}
	if runes < 10 {
		score--
	}

	switch {
	case score >= 3:
		return AbilityHigh
	case score <= -2:
		return AbilityLow
	default:
		return AbilityMedium
	}
}

// consecutiveExecutiveRequests counts how many student turns in a row,
// ending with the current message, look like answer demands.
func consecutiveExecutiveRequests(normalized string, history []conversation.Turn, threshold float64) int {
	count := 0
	if MatchConfidence(normalized, executiveRequestPatterns) > threshold {
		count = 1
	} else {
		return 0
	}

	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]
		if turn.Role != conversation.RoleStudent {
			continue
		}
		if MatchConfidence(Normalize(turn.Text), executiveRequestPatterns) > threshold {
			count++
		} else {
			break
		}
	}
	return count
}

// turnsSinceLastEvaluation counts student turns since the student last
// checked their own understanding. Returns the full student-turn count when
// no evaluation ever happened.
func turnsSinceLastEvaluation(history []conversation.Turn) int {
	count := 0
	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]
		if turn.Role != conversation.RoleStudent {
			continue
		}
		if MatchConfidence(Normalize(turn.Text), selfEvaluationPatterns) > 0.3 {
			return count
		}
		count++
	}
	return count
}
