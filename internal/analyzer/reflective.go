package analyzer

import (
	"regexp"

	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/subjects"
)

// summaryRequestPatterns: the student explicitly asks to recap.
var summaryRequestPatterns = compilePatterns(
	"정리(해|하고|해서|해 ?주)",
	"요약(해|해 ?주)",
	"지금까지 (뭘|무엇을|배운)",
	"다시 (한 ?번 )?설명",
	"복습",
)

// connectionPatterns: the student refers back to earlier material.
var connectionPatterns = compilePatterns(
	"아까 (말한|배운|했던|그)",
	"전에 (배운|말한|했던)",
	"지난번에",
	"그때 (그|배운|말한)",
	"처음에 (배운|말한|했던)",
	"이거랑 (아까|전에|그거)",
)

// reflectionTriggerPatterns: the student steps back from the task itself.
var reflectionTriggerPatterns = compilePatterns(
	"생각해 ?보니",
	"돌아보니|돌이켜",
	"깨달(았|은)",
	"이제 (알|이해)(겠| 되| 돼)",
	"느낀 점",
	"배운 점",
)

// bloomLevels maps conversational keywords to the Bloom taxonomy level they
// signal. Evaluated in order; the highest matching level wins.
var bloomLevels = []struct {
	level    int
	patterns []*regexp.Regexp
}{
	{6, compilePatterns("만들(어|면|고 싶)", "설계", "새로운 (방법|생각)", "직접 해 보")},
	{5, compilePatterns("평가", "판단", "더 (나은|좋은)", "비판", "옳(은|다고)")},
	{4, compilePatterns("비교", "분석", "차이(가|는|점)", "관계", "왜 (그런|그렇)")},
	{3, compilePatterns("적용", "활용", "써 ?보(면|니)", "해 ?보(면|니까)", "예를 들")},
	{2, compilePatterns("이해", "설명해", "무슨 (뜻|말|의미)", "그러니까")},
	{1, compilePatterns("뭐(예요|에요|야|지)", "기억", "외우", "이름이")},
}

// reflectiveNeeds runs the consolidation-trigger analysis against the
// current conversation and the subject's pacing configuration.
func (a *Analyzer) reflectiveNeeds(normalized string, history []conversation.Turn, cfg *subjects.Config) ReflectiveNeeds {
	needs := ReflectiveNeeds{}

	turns := len(history)
	summaryConf := MatchConfidence(normalized, summaryRequestPatterns)
	needs.RequiresSummary = turns >= cfg.SummaryThreshold() || summaryConf > a.thresholds.ExplicitSummary

	for _, re := range connectionPatterns {
		if re.MatchString(normalized) {
			needs.RequiresConnectionMaking = true
			break
		}
	}

	reflectionConf := MatchConfidence(normalized, reflectionTriggerPatterns)
	needs.RequiresMetacognitiveReflection = reflectionConf > a.thresholds.ReflectionCue || turns > a.thresholds.LongConversationTurns

	needs.DepthLevel = depthLevel(normalized, turns)
	needs.TopicProgression = topicProgression(turns)

	return needs
}

// depthLevel estimates the Bloom level of the current message, then biases
// upward for longer conversations on the assumption that sustained dialogue
// moves past recall.
func depthLevel(normalized string, turns int) int {
	level := 1
	for _, entry := range bloomLevels {
		matched := false
		for _, re := range entry.patterns {
			if re.MatchString(normalized) {
				matched = true
				break
			}
		}
		if matched {
			level = entry.level
			break
		}
	}

	switch {
	case turns >= 12:
		level += 2
	case turns >= 6:
		level++
	}
	if level > 6 {
		level = 6
	}
	return level
}

func topicProgression(turns int) string {
	switch {
	case turns < 4:
		return "initial"
	case turns < 10:
		return "deepening"
	default:
		return "exploring"
	}
}
