package composer

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed banks/*.json
var bankFS embed.FS

// metacognitiveBank holds the scaffolding prompt templates, keyed by
// scaffolding type, plus the ability-adapted additions.
type metacognitiveBank struct {
	Templates   map[string][]string `json:"templates"`
	HighAbility []string            `json:"high_ability"`
	Struggling  []string            `json:"struggling"`
}

// reflectiveBank holds the reflective-learning templates. Summary and
// connection templates carry {placeholder} slots filled at composition time.
type reflectiveBank struct {
	SummaryTemplates    []string            `json:"summary_templates"`
	ConnectionTemplates []string            `json:"connection_templates"`
	ThinkingReview      []string            `json:"thinking_process_review"`
	StrategyAssessment  []string            `json:"learning_strategy_assessment"`
	DepthQuestions      map[string][]string `json:"depth_questions"`
	KeyConceptKeywords  []string            `json:"key_concept_keywords"`
	DiscoveryIndicators []string            `json:"discovery_indicators"`
}

var (
	bankOnce  sync.Once
	metaBank  metacognitiveBank
	reflBank  reflectiveBank
	bankError error
)

// loadBanks parses the embedded template banks once per process.
func loadBanks() error {
	bankOnce.Do(func() {
		raw, err := bankFS.ReadFile("banks/metacognitive_scaffolding.json")
		if err != nil {
			bankError = fmt.Errorf("read metacognitive bank: %w", err)
			return
		}
		if err := json.Unmarshal(raw, &metaBank); err != nil {
			bankError = fmt.Errorf("parse metacognitive bank: %w", err)
			return
		}

		raw, err = bankFS.ReadFile("banks/reflective_learning.json")
		if err != nil {
			bankError = fmt.Errorf("read reflective bank: %w", err)
			return
		}
		if err := json.Unmarshal(raw, &reflBank); err != nil {
			bankError = fmt.Errorf("parse reflective bank: %w", err)
		}
	})
	return bankError
}
