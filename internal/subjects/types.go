package subjects

import "regexp"

// TypeKey names a student response category. The common categories are a
// small closed set shared across subjects; configs may additionally declare
// subject-specific keys, so TypeKey stays an open string type with known
// constants rather than a sealed enum.
type TypeKey string

const (
	TypeDefault                 TypeKey = "DEFAULT"
	TypeConceptQuestion         TypeKey = "CONCEPT_QUESTION"
	TypeExplorationDeadlock     TypeKey = "EXPLORATION_DEADLOCK"
	TypeFailureReport           TypeKey = "FAILURE_REPORT"
	TypeSuccessWithoutPrinciple TypeKey = "SUCCESS_WITHOUT_PRINCIPLE"
	TypeHypothesisInquiry       TypeKey = "HYPOTHESIS_INQUIRY"
	TypeCriticalInquiry         TypeKey = "CRITICAL_INQUIRY"
	TypeProcedureError          TypeKey = "PROCEDURE_ERROR"
	TypeMathematicalReasoning   TypeKey = "MATHEMATICAL_REASONING"
	TypeEmotionalSharing        TypeKey = "EMOTIONAL_SHARING"
)

// ResponseTypeSpec describes one response category: how to recognize it and
// which tutoring prompts apply when it wins.
type ResponseTypeSpec struct {
	Key  TypeKey
	Name string

	// RawPatterns are the configured pattern strings, in declaration order.
	RawPatterns []string

	// Patterns are the compiled forms, case-insensitive, compiled once at
	// config load. Index-aligned with RawPatterns.
	Patterns []*regexp.Regexp

	SamplePrompts    []string
	PreferredPrompt  string // optional single ai_tutor_prompt
	Strategy         string // optional short teaching strategy
	TheoreticalBasis string // optional theory note for the educational context layer
}

// TheoreticalFoundation carries the subject's framing text blocks.
type TheoreticalFoundation struct {
	EducationalPrinciples []string `json:"educational_principles"`
	LearningTheory        string   `json:"learning_theory"`
}

// ConversationContext holds per-subject conversation parameters.
type ConversationContext struct {
	// MaxHistory is the number of most recent turns retained when
	// composing a prompt. Defaults to 6 when unset.
	MaxHistory int `json:"max_history"`

	// SummaryTurnThreshold is the conversation length at which a
	// reflective summary becomes due. Defaults to 6 when unset.
	SummaryTurnThreshold int `json:"summary_turn_threshold"`

	ContextElements []string `json:"context_elements"`
}

// DomainFeatures lists optional subject-specific emphasis labels.
type DomainFeatures struct {
	ThinkingSkills     []string `json:"thinking_skills"`
	AssessmentCriteria []string `json:"assessment_criteria"`
}

// PedagogyRules is the numbered rule list for the subject-rules prompt layer.
type PedagogyRules []string

// Config is one subject's full configuration. Owned exclusively by the
// Store; read-only to every other component.
type Config struct {
	Subject    string
	Name       string
	Types      []ResponseTypeSpec // declaration order, preserved from the document
	Foundation TheoreticalFoundation
	Context    ConversationContext
	Features   DomainFeatures
	Rules      PedagogyRules
}

// Type looks up a response type by key. Falls back to DEFAULT when the key
// is unknown; the DEFAULT type is guaranteed by validation.
func (c *Config) Type(key TypeKey) *ResponseTypeSpec {
	for i := range c.Types {
		if c.Types[i].Key == key {
			return &c.Types[i]
		}
	}
	return c.Default()
}

// Default returns the DEFAULT response type.
func (c *Config) Default() *ResponseTypeSpec {
	for i := range c.Types {
		if c.Types[i].Key == TypeDefault {
			return &c.Types[i]
		}
	}
	// Unreachable for validated configs.
	return &c.Types[0]
}

// MaxHistory returns the configured history window with its default applied.
func (c *Config) MaxHistory() int {
	if c.Context.MaxHistory > 0 {
		return c.Context.MaxHistory
	}
	return 6
}

// SummaryThreshold returns the reflective-summary turn threshold with its
// default applied.
func (c *Config) SummaryThreshold() int {
	if c.Context.SummaryTurnThreshold > 0 {
		return c.Context.SummaryTurnThreshold
	}
	return 6
}
