package materials

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/logging"
)

// relevanceThreshold drops materials the model considers only tangentially
// related. Tuned against the scoring rubric below, where 0.4 already means
// "indirectly helpful".
const relevanceThreshold = 0.3

const maxChunksPerMaterial = 3

// wordPattern extracts the comparable terms of a student question. Single
// characters are too noisy in Korean to count as terms.
var wordPattern = regexp.MustCompile(`[가-힣a-zA-Z0-9]{2,}`)

var relevanceSchema = &llm.Schema{
	Name:        "material-relevance",
	Description: "Relevance of one lesson material to the student's question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "관련성 점수, 0.0에서 1.0 사이",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "한 줄 근거",
			},
		},
		"required": []string{"score"},
	},
}

// Item pairs a material with its extracted content, ready for ranking.
type Item struct {
	Material  Material
	Extracted Extraction
}

// RankContext carries the lesson signals that sharpen the scoring prompt.
type RankContext struct {
	Subject      string
	ResponseType string
	GradeLevel   string
}

// Selector ranks lesson materials against the student's current question.
// Scoring is delegated to the LLM; a per-material keyword-overlap fallback
// keeps ranking functional when the model is unreachable.
type Selector struct {
	provider llm.Provider
	log      *logging.Logger
}

func NewSelector(provider llm.Provider, log *logging.Logger) *Selector {
	if log == nil {
		log = logging.Nop()
	}
	return &Selector{provider: provider, log: log}
}

// Rank scores each successfully extracted material, keeps those above the
// relevance threshold sorted by descending score, and attaches the best
// content chunks per material. Materials whose extraction failed or produced
// no text are skipped entirely.
func (s *Selector) Rank(ctx context.Context, items []Item, question string, rc RankContext) []Scored {
	var scored []Scored
	for _, it := range items {
		if !it.Extracted.Success || it.Extracted.Text == "" {
			continue
		}

		score, err := s.relevance(ctx, question, it, rc)
		if err != nil {
			score = fallbackScore(question, it)
			s.log.Warn("relevance scoring fell back to keyword overlap",
				"material", it.Material.Title,
				"score", score,
				"error", err)
		}

		if score <= relevanceThreshold {
			continue
		}

		scored = append(scored, Scored{
			Material:   it.Material,
			Extracted:  it.Extracted,
			Score:      score,
			BestChunks: selectChunks(it.Extracted.Chunks, question, it.Extracted.Keywords),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// relevance asks the model to grade the question/material pair on a fixed
// rubric and returns the numeric score. Anything else in the response is
// discarded.
func (s *Selector) relevance(ctx context.Context, question string, it Item, rc RankContext) (float64, error) {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "material-relevance"), llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: relevancePrompt(question, it, rc),
		}},
		Schema:      relevanceSchema,
		Temperature: 0.1,
		MaxTokens:   150,
	})
	if err != nil {
		return 0, err
	}

	var graded struct {
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	}
	if err := json.Unmarshal(resp.Content, &graded); err != nil {
		return 0, fmt.Errorf("parse relevance response: %w", err)
	}

	s.log.Debug("material graded",
		"material", it.Material.Title,
		"score", graded.Score,
		"reason", graded.Reason)
	return clamp01(graded.Score), nil
}

func relevancePrompt(question string, it Item, rc RankContext) string {
	var b strings.Builder

	b.WriteString("학생의 질문과 학습 자료 간의 관련성을 0.0에서 1.0 사이의 점수로 평가해주세요.\n\n")

	b.WriteString("### 맥락 정보 ###\n")
	fmt.Fprintf(&b, "- 과목: %s\n", orDefault(rc.Subject, "일반"))
	fmt.Fprintf(&b, "- 학습 단계: %s\n", orDefault(rc.ResponseType, "일반"))
	fmt.Fprintf(&b, "- 학년: %s\n\n", orDefault(rc.GradeLevel, "미지정"))

	fmt.Fprintf(&b, "### 학생 질문 ###\n%q\n\n", question)

	b.WriteString("### 학습 자료 정보 ###\n")
	fmt.Fprintf(&b, "제목: %s\n", it.Material.Title)
	fmt.Fprintf(&b, "키워드: %s\n", strings.Join(it.Extracted.Keywords, ", "))
	fmt.Fprintf(&b, "내용 요약: %s\n\n", excerpt(it.Extracted.Text, 500))

	b.WriteString("### 평가 기준 ###\n")
	b.WriteString("1.0 - 직접적으로 질문에 답할 수 있는 핵심 자료\n")
	b.WriteString("0.8 - 질문과 매우 관련성이 높은 자료\n")
	b.WriteString("0.6 - 질문과 관련성이 있는 보충 자료\n")
	b.WriteString("0.4 - 간접적으로 도움이 될 수 있는 자료\n")
	b.WriteString("0.2 - 약간의 관련성이 있는 자료\n")
	b.WriteString("0.0 - 질문과 전혀 관련 없는 자료")

	return b.String()
}

// fallbackScore grades by keyword overlap when the model is unavailable.
// Title matches count double, keyword-list matches one and a half, body
// matches once, normalized so matching every term in the body alone lands
// at 0.5.
func fallbackScore(question string, it Item) float64 {
	words := wordPattern.FindAllString(question, -1)
	if len(words) == 0 {
		return 0.1
	}

	var matched float64
	for _, w := range words {
		switch {
		case strings.Contains(it.Material.Title, w):
			matched += 2
		case keywordMatch(it.Extracted.Keywords, w):
			matched += 1.5
		case strings.Contains(it.Extracted.Text, w):
			matched += 1
		}
	}

	return clamp01(matched / float64(len(words)*2))
}

func keywordMatch(keywords []string, word string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(kw, word) || strings.Contains(word, kw) {
			return true
		}
	}
	return false
}

// selectChunks keeps the content chunks that actually mention the question's
// terms. Each occurrence of a question word counts once, each material
// keyword hit counts double; chunks that score zero are dropped.
func selectChunks(chunks []string, question string, keywords []string) []string {
	if len(chunks) == 0 {
		return nil
	}

	words := wordPattern.FindAllString(question, -1)

	type rated struct {
		text  string
		score int
	}
	var kept []rated

	for _, chunk := range chunks {
		score := 0
		for _, w := range words {
			score += strings.Count(chunk, w)
		}
		for _, kw := range keywords {
			if kw != "" && strings.Contains(chunk, kw) {
				score += 2
			}
		}
		if score > 0 {
			kept = append(kept, rated{text: chunk, score: score})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > maxChunksPerMaterial {
		kept = kept[:maxChunksPerMaterial]
	}

	out := make([]string, len(kept))
	for i, r := range kept {
		out[i] = r.text
	}
	return out
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
