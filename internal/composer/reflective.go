package composer

import (
	"strconv"
	"strings"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/conversation"
)

const reflectiveFallback = "지금까지의 대화를 되돌아보고 새롭게 알게 된 점을 생각해보세요."

// reflectivePrompt builds the reflective-learning base prompt: the summary,
// connection and reflection blocks for whichever triggers fired, a
// depth-banded follow-up question, and the rules block. Any failure in this
// path degrades to a one-line generic reflective prompt.
func (c *Composer) reflectivePrompt(needs analyzer.ReflectiveNeeds, history []conversation.Turn) string {
	if err := loadBanks(); err != nil {
		c.log.Error("reflective bank unavailable", "error", err)
		return reflectiveFallback
	}

	var b strings.Builder

	if needs.RequiresSummary {
		b.WriteString(c.summaryBlock(history))
	}
	if needs.RequiresConnectionMaking {
		b.WriteString(c.connectionBlock(history))
	}
	if needs.RequiresMetacognitiveReflection {
		b.WriteString(c.reflectionBlock())
	}

	if q := c.depthQuestion(needs.DepthLevel); q != "" {
		b.WriteString(q + "\n\n")
	}

	b.WriteString(reflectiveRules(needs))

	if strings.TrimSpace(b.String()) == "" {
		return "지금까지의 학습 경험을 되돌아보며 깊이 생각해보세요."
	}
	return b.String()
}

// summaryBlock fills a summary template with key concepts and the main
// discovery scanned from recent student turns.
func (c *Composer) summaryBlock(history []conversation.Turn) string {
	tmpl := c.pick(reflBank.SummaryTemplates)
	if tmpl == "" {
		return "지금까지의 대화를 요약하고 가장 중요한 학습 내용을 생각해보세요.\n\n"
	}

	concepts := keyConcepts(history)
	r := strings.NewReplacer(
		"{key_concepts}", strings.Join(concepts, ", "),
		"{main_discovery}", mainDiscovery(history),
		"{learning_progression}", "가설 설정부터 검증까지",
	)
	return r.Replace(tmpl) + "\n\n"
}

// connectionBlock fills a connection template with a previous and current
// topic inferred from the conversation's key concepts.
func (c *Composer) connectionBlock(history []conversation.Turn) string {
	tmpl := c.pick(reflBank.ConnectionTemplates)
	if tmpl == "" {
		return "앞서 나눈 이야기와 지금 상황을 연결해보세요.\n\n"
	}

	previous, current := topicPair(history)
	r := strings.NewReplacer(
		"{previous_topic}", previous,
		"{current_topic}", current,
	)
	return r.Replace(tmpl) + "\n\n"
}

// reflectionBlock pairs one thinking-process-review line with one
// strategy-assessment line.
func (c *Composer) reflectionBlock() string {
	var b strings.Builder
	if line := c.pick(reflBank.ThinkingReview); line != "" {
		b.WriteString(line + " ")
	}
	if line := c.pick(reflBank.StrategyAssessment); line != "" {
		b.WriteString(line + " ")
	}
	if b.Len() == 0 {
		return ""
	}
	return strings.TrimRight(b.String(), " ") + "\n\n"
}

// depthQuestion returns one follow-up question from the bank nearest to,
// but not below, the given depth level.
func (c *Composer) depthQuestion(level int) string {
	if level < 1 {
		level = 1
	}
	for l := level; l <= 6; l++ {
		if q := c.pick(reflBank.DepthQuestions[strconv.Itoa(l)]); q != "" {
			return q
		}
	}
	return ""
}

// reflectiveRules emits the fixed rules block for the fired triggers.
func reflectiveRules(needs analyzer.ReflectiveNeeds) string {
	var b strings.Builder
	b.WriteString("### 성찰적 학습 지침 ###\n")
	b.WriteString("- 연결 사고: 이전 경험과 현재 상황을 연결하여 통합적 이해를 촉진하라\n")
	b.WriteString("- 사고 과정 성찰: 학생이 어떻게 생각하고 문제를 해결했는지 되돌아보도록 안내하라\n")

	if needs.RequiresSummary {
		b.WriteString("- 요약 및 정리: 학습 내용을 체계적으로 정리하여 기억 정착도를 높여라\n")
	}
	if needs.RequiresConnectionMaking {
		b.WriteString("- 개념 연결: 새로운 개념을 기존 지식과 연결하여 의미 있는 학습을 만들어라\n")
	}
	if needs.RequiresMetacognitiveReflection {
		b.WriteString("- 전략 인식: 효과적인 학습 방법을 인식하고 다음에 활용할 수 있도록 지원하라\n")
	}
	if needs.DepthLevel >= 4 {
		b.WriteString("- 심층 분석: 고차원적 사고를 통해 복잡한 개념들을 종합적으로 이해하게 하라\n")
	}

	b.WriteString("\n핵심 원칙: 학생이 스스로 학습 경험을 되돌아보고 의미를 찾을 수 있도록 안내하라.")
	return b.String()
}

// keyConcepts scans recent student turns for the configured concept
// keywords, preserving first-seen order.
func keyConcepts(history []conversation.Turn) []string {
	var concepts []string
	seen := map[string]bool{}

	for _, turn := range conversation.LastN(history, 6) {
		if turn.Role != conversation.RoleStudent {
			continue
		}
		for _, kw := range reflBank.KeyConceptKeywords {
			if strings.Contains(turn.Text, kw) && !seen[kw] {
				seen[kw] = true
				concepts = append(concepts, kw)
			}
		}
	}

	if len(concepts) == 0 {
		return []string{"물리 현상"}
	}
	return concepts
}

// mainDiscovery finds the most recent student turn containing a discovery
// phrase and truncates it for the template slot.
func mainDiscovery(history []conversation.Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]
		if turn.Role != conversation.RoleStudent {
			continue
		}
		for _, indicator := range reflBank.DiscoveryIndicators {
			if strings.Contains(turn.Text, indicator) {
				return truncateRunes(turn.Text, 50)
			}
		}
	}
	return "중요한 원리를 이해하게 되었다는 점"
}

// topicPair infers a previous and current topic from the conversation's
// concept keywords, falling back to generic labels.
func topicPair(history []conversation.Turn) (previous, current string) {
	concepts := keyConcepts(history)
	previous, current = "에너지 변환", "현재 실험"
	if len(concepts) > 0 && concepts[0] != "물리 현상" {
		previous = concepts[0]
	}
	if len(concepts) > 1 {
		current = concepts[len(concepts)-1]
	}
	return previous, current
}
