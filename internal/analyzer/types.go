package analyzer

import "github.com/seonho/tutorkit/internal/subjects"

// Result is the full classification of one student utterance. Created fresh
// per message; only the label and confidence are persisted downstream.
type Result struct {
	Type       subjects.TypeKey
	Spec       *subjects.ResponseTypeSpec
	Confidence float64

	Context       Context
	Metacognitive MetacognitiveNeeds
	Reflective    ReflectiveNeeds

	// AnalysisError carries a non-fatal error note when analysis degraded
	// to the DEFAULT classification. Empty on the happy path.
	AnalysisError string
}

// Context annotates the classification with conversation-level signals.
type Context struct {
	IsFirstMessage     bool
	ConversationLength int
	PreviousTypes      []string
	Progression        Progression
	SuggestedActions   []string
}

// Progression describes the inferred learning-progression stage.
type Progression struct {
	Stage       string // beginning, struggling, questioning, analyzing, experimenting, problem_solving, intermediate
	Confidence  string // low, medium, high
	Description string
}

// ScaffoldingType names which metacognitive intervention applies.
type ScaffoldingType string

const (
	ScaffoldExecutiveRequest ScaffoldingType = "EXECUTIVE_REQUEST"
	ScaffoldVagueProblem     ScaffoldingType = "VAGUE_PROBLEM"
	ScaffoldSelfEvaluation   ScaffoldingType = "SELF_EVALUATION_REQUEST"
)

// AbilityLevel is the coarse inferred student ability.
type AbilityLevel string

const (
	AbilityLow    AbilityLevel = "low"
	AbilityMedium AbilityLevel = "medium"
	AbilityHigh   AbilityLevel = "high"
)

// MetacognitiveNeeds captures whether the tutor should scaffold the
// student's thinking about their own thinking before answering.
type MetacognitiveNeeds struct {
	RequiresDiagnosisFirst       bool // student asked for the answer outright
	RequiresProblemSpecification bool // student described difficulty without specifics
	RequiresEvaluationPrompt     bool // student asked how they are doing

	ScaffoldingType ScaffoldingType
	AbilityLevel    AbilityLevel

	ConsecutiveExecutiveRequests int
	TurnsSinceLastEvaluation     int
}

// Any reports whether any scaffolding trigger fired.
func (m MetacognitiveNeeds) Any() bool {
	return m.RequiresDiagnosisFirst || m.RequiresProblemSpecification || m.RequiresEvaluationPrompt
}

// ReflectiveNeeds captures whether the tutor should pivot to reviewing and
// consolidating rather than pushing forward.
type ReflectiveNeeds struct {
	RequiresSummary                 bool
	RequiresConnectionMaking        bool
	RequiresMetacognitiveReflection bool

	// DepthLevel is the Bloom-inspired 1-6 estimate of the cognitive
	// level the student is currently working at.
	DepthLevel int

	TopicProgression string // initial, deepening, exploring
}

// Any reports whether any reflective trigger fired.
func (r ReflectiveNeeds) Any() bool {
	return r.RequiresSummary || r.RequiresConnectionMaking || r.RequiresMetacognitiveReflection
}

// Thresholds holds the hand-tuned heuristic constants. They are behavioural
// policy, not a validated model; keep the defaults for compatibility but
// treat them as configuration.
type Thresholds struct {
	ExecutiveRequest float64 // metacognitive: asked-for-the-answer trigger
	VagueProblem     float64 // metacognitive: unspecific-difficulty trigger
	SelfEvaluation   float64 // metacognitive: how-am-I-doing trigger
	ExplicitSummary  float64 // reflective: explicit summary request
	ReflectionCue    float64 // reflective: reflection trigger patterns

	// LongConversationTurns is the history length beyond which
	// metacognitive reflection is assumed useful.
	LongConversationTurns int
}

// DefaultThresholds returns the tuned values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExecutiveRequest:      0.5,
		VagueProblem:          0.4,
		SelfEvaluation:        0.3,
		ExplicitSummary:       0.4,
		ReflectionCue:         0.3,
		LongConversationTurns: 8,
	}
}
