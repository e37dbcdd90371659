package composer

import (
	"fmt"
	"strings"

	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/subjects"
)

// Each layer builder is a pure function of its inputs and returns "" when
// its source data is absent, which drops the layer entirely.

func aiInstructionsLayer(instructions string) string {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("### 수업 목표 및 AI 튜터 핵심 역할 ###\n")
	b.WriteString(instructions)
	b.WriteString("\n\n위의 수업 목표와 맥락을 바탕으로 학생을 가르치는 전문 AI 튜터로서 활동하라.")
	return b.String()
}

// materialsLayer emits exactly one of the two variants: the ranked form when
// relevance-scored materials exist, otherwise the plain listing.
func materialsLayer(ranked []materials.Scored, unranked []materials.Material) string {
	if len(ranked) > 0 {
		return rankedMaterialsLayer(ranked)
	}
	if len(unranked) > 0 {
		return unrankedMaterialsLayer(unranked)
	}
	return ""
}

func rankedMaterialsLayer(ranked []materials.Scored) string {
	var b strings.Builder
	b.WriteString("### 참고 학습 자료 ###\n")
	b.WriteString("학생의 현재 질문과 관련도 높은 자료들이다:\n")

	for i, m := range ranked {
		fmt.Fprintf(&b, "\n%d. %s (관련도: %.0f%%)\n", i+1, m.Material.Title, m.Score*100)
		if m.Extracted.Text != "" {
			fmt.Fprintf(&b, "   핵심 내용: %s\n", truncateRunes(m.Extracted.Text, 150))
		}
		if len(m.BestChunks) > 0 {
			fmt.Fprintf(&b, "   관련 부분: \"%s\"\n", truncateRunes(m.BestChunks[0], 100))
		}
	}

	b.WriteString("\n위 자료의 관련 내용을 바탕으로 학생에게 더 구체적이고 정확한 안내를 제공하라.\n")
	b.WriteString("학생이 2-3회 이상 어려움을 표현할 때만 자료를 제안하고, 자료 내용을 직접 언급하여 학습을 도와라.")
	return b.String()
}

func unrankedMaterialsLayer(list []materials.Material) string {
	var b strings.Builder
	b.WriteString("### 참고 학습 자료 ###\n")
	b.WriteString("교사가 이 수업을 위해 준비한 참고 자료들이 있다:\n")

	for i, m := range list {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, m.Title)
		switch {
		case m.Type == "link" && m.URL != "":
			fmt.Fprintf(&b, "   - URL: %s\n", m.URL)
		case m.Type == "file":
			name := m.FileName
			if name == "" {
				name = m.Title
			}
			fmt.Fprintf(&b, "   - 파일명: %s\n", name)
		}
	}

	b.WriteString("\n학생이 탐구 과정에서 막히거나 추가 학습이 필요할 때, 위 자료를 적절히 안내하라.\n")
	b.WriteString("단, 학생이 스스로 탐구할 기회를 먼저 주고, 2-3회 이상 어려움을 표현할 때 자료를 제안하라.")
	return b.String()
}

func educationalContextLayer(spec *subjects.ResponseTypeSpec, cfg *subjects.Config, targetConcepts []string) string {
	var b strings.Builder

	if principles := cfg.Foundation.EducationalPrinciples; len(principles) > 0 {
		b.WriteString("교육 원칙:\n")
		for _, p := range principles {
			b.WriteString("- " + p + "\n")
		}
	}

	if spec != nil {
		if spec.TheoreticalBasis != "" {
			fmt.Fprintf(&b, "이론적 근거: %s\n", spec.TheoreticalBasis)
		}
		if spec.Strategy != "" {
			fmt.Fprintf(&b, "교수 전략: %s\n", spec.Strategy)
		}
	}

	if len(targetConcepts) > 0 {
		b.WriteString("현재 학습 목표:\n")
		for _, concept := range targetConcepts {
			b.WriteString("- " + concept + "\n")
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return "### 교육학적 맥락 ###\n" + strings.TrimRight(b.String(), "\n")
}

func subjectRulesLayer(cfg *subjects.Config) string {
	if len(cfg.Rules) == 0 && len(cfg.Features.ThinkingSkills) == 0 && len(cfg.Features.AssessmentCriteria) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s 교과 특화 규칙 ###\n", cfg.Name)

	for i, rule := range cfg.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	if skills := cfg.Features.ThinkingSkills; len(skills) > 0 {
		fmt.Fprintf(&b, "중점 사고 기능: %s\n", strings.Join(skills, ", "))
	}
	if criteria := cfg.Features.AssessmentCriteria; len(criteria) > 0 {
		fmt.Fprintf(&b, "평가 중점: %s\n", strings.Join(criteria, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func conversationContextLayer(history []conversation.Turn, cfg *subjects.Config) string {
	var b strings.Builder
	b.WriteString("### 대화 맥락 ###\n")

	if len(history) == 0 {
		b.WriteString("- 첫 번째 대화입니다")
		return b.String()
	}

	fmt.Fprintf(&b, "- 대화 턴 수: %d\n", len(history)+1)

	recent := conversation.PreviousTypes(conversation.LastN(history, cfg.MaxHistory()))
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	if len(recent) > 0 {
		fmt.Fprintf(&b, "- 최근 응답 유형: %s\n", strings.Join(recent, " → "))
	}

	if elements := cfg.Context.ContextElements; len(elements) > 0 {
		fmt.Fprintf(&b, "- 고려할 맥락 요소: %s\n", strings.Join(elements, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func learningEnvironmentLayer(ov Overrides) string {
	if ov.LessonPhase == "" && ov.Topic == "" && ov.GradeLevel == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("### 현재 학습 환경 ###\n")
	if ov.LessonPhase != "" {
		fmt.Fprintf(&b, "- 수업 단계: %s\n", ov.LessonPhase)
	}
	if ov.Topic != "" {
		fmt.Fprintf(&b, "- 학습 주제: %s\n", ov.Topic)
	}
	if ov.GradeLevel != "" {
		fmt.Fprintf(&b, "- 학년 수준: %s\n", ov.GradeLevel)
	}
	return strings.TrimRight(b.String(), "\n")
}

func closingRulesLayer() string {
	return `### 공통 대화 규칙 ###
- 친절하고 격려하는 동료 탐험가 같은 말투를 사용하라
- 한국어로만 대답해야 한다
- 마크다운 문법(*, **, #, ## 등)을 사용하지 말고 순수한 텍스트로만 작성해라
- 답변은 반드시 학생의 다음 생각을 유도하는 '질문' 형태여야 한다`
}
