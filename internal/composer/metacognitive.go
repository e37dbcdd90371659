package composer

import (
	"strings"

	"github.com/seonho/tutorkit/internal/analyzer"
)

const metacognitiveFallback = "학생이 스스로 생각하고 탐구할 수 있도록 안내해주세요."

// metacognitivePrompt builds the scaffolding base prompt: a template picked
// for variety from the bank matching the detected scaffolding type, an
// ability-adapted addition, and the rules block. Any failure in this path
// degrades to a one-line generic scaffolding prompt.
func (c *Composer) metacognitivePrompt(needs analyzer.MetacognitiveNeeds) string {
	if err := loadBanks(); err != nil {
		c.log.Error("metacognitive bank unavailable", "error", err)
		return metacognitiveFallback
	}

	var b strings.Builder

	if tmpl := c.pick(metaBank.Templates[string(needs.ScaffoldingType)]); tmpl != "" {
		b.WriteString(tmpl)
	}

	switch needs.AbilityLevel {
	case analyzer.AbilityHigh:
		if extra := c.pick(metaBank.HighAbility); extra != "" {
			b.WriteString("\n\n" + extra)
		}
	case analyzer.AbilityLow:
		if extra := c.pick(metaBank.Struggling); extra != "" {
			b.WriteString("\n\n" + extra)
		}
	}

	b.WriteString(metacognitiveRules(needs))

	if strings.TrimSpace(b.String()) == "" {
		return "학생의 사고 과정을 이해하고 스스로 답을 찾을 수 있도록 도와주세요."
	}
	return b.String()
}

// metacognitiveRules emits the fixed rules block driven by which triggers
// fired and the two escalation conditions.
func metacognitiveRules(needs analyzer.MetacognitiveNeeds) string {
	var b strings.Builder
	b.WriteString("\n\n### 메타인지 스캐폴딩 지침 ###\n")

	if needs.RequiresDiagnosisFirst {
		b.WriteString("- 진단 우선: 학생이 스스로 문제를 진단하도록 유도한 후 도움을 제공하라\n")
		b.WriteString("- 학생의 현재 이해 상태와 구체적 어려움을 먼저 파악하라\n")
		b.WriteString("- \"무엇이 어려운가요?\" \"어느 부분에서 막혔나요?\" 같은 진단 질문을 활용하라\n")
	}

	if needs.RequiresProblemSpecification {
		b.WriteString("- 구체화 유도: 막연한 문제를 구체적으로 명시하도록 안내하라\n")
		b.WriteString("- \"어떤 실험을 하고 있나요?\" \"예상과 어떻게 달랐나요?\" 같은 질문을 활용하라\n")
		b.WriteString("- 문제를 단계별로 나누어 생각하도록 유도하라\n")
	}

	if needs.RequiresEvaluationPrompt {
		b.WriteString("- 평가 촉진: 응답 후 학생의 이해도와 만족도를 확인하라\n")
		b.WriteString("- \"이해가 되나요?\" \"더 궁금한 점이 있나요?\" 같은 평가 질문을 반드시 포함하라\n")
		b.WriteString("- 학생이 배운 내용을 자신만의 말로 설명하도록 요청하라\n")
	}

	if needs.ConsecutiveExecutiveRequests > 2 {
		b.WriteString("- 접근 방식 변경: 연속된 직접적 요청이 감지되었다, 다른 방식으로 접근하라\n")
		b.WriteString("- 학습자의 좌절감을 인정하고 단계를 더 세분화하라\n")
	}

	if needs.TurnsSinceLastEvaluation > 5 {
		b.WriteString("- 중간 점검: 오랜 대화가 이어졌으니 학습 상태를 재확인하라\n")
		b.WriteString("- 지금까지의 대화 내용을 간단히 요약하고 이해도를 점검하라\n")
	}

	b.WriteString("\n핵심 원칙: 정답을 직접 제공하기보다, 학생이 스스로 발견할 수 있도록 사고 과정을 안내하라.")
	return b.String()
}
