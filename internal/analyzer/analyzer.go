// Package analyzer classifies student utterances against a subject's
// response-type taxonomy and derives the auxiliary signals (metacognitive
// scaffolding needs, reflective-learning needs, ability and depth
// estimates) that drive prompt composition.
package analyzer

import (
	"fmt"

	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/subjects"
)

// DefaultConfidence is the fixed confidence attached when no pattern
// matched and the DEFAULT type was selected.
const DefaultConfidence = 0.1

// Analyzer classifies messages. Stateless apart from its injected
// collaborators; safe for concurrent use.
type Analyzer struct {
	store      *subjects.Store
	thresholds Thresholds
	log        *logging.Logger
}

// New creates an Analyzer backed by the given subject store.
func New(store *subjects.Store, thresholds Thresholds, log *logging.Logger) *Analyzer {
	if log == nil {
		log = logging.Nop()
	}
	return &Analyzer{store: store, thresholds: thresholds, log: log}
}

// Analyze classifies a student message. It never fails: any error during
// analysis degrades to a DEFAULT classification with an error note, since
// a tutoring turn must always produce some prompt.
func (a *Analyzer) Analyze(message, subjectID string, history []conversation.Turn) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis panicked", "subject", subjectID, "panic", r)
			result = a.degraded(subjectID, history, fmt.Sprintf("panic: %v", r))
		}
	}()

	cfg, err := a.store.Load(subjectID)
	if err != nil {
		a.log.Error("analysis config load failed", "subject", subjectID, "error", err)
		return a.degraded(subjectID, history, err.Error())
	}

	normalized := Normalize(message)

	// Score every response type; the winner is the strictly highest
	// confidence, ties broken by declaration order (first seen wins).
	var winner *subjects.ResponseTypeSpec
	var winnerConf float64
	for i := range cfg.Types {
		spec := &cfg.Types[i]
		conf := MatchConfidence(normalized, spec.Patterns)
		if conf > winnerConf {
			winner = spec
			winnerConf = conf
		}
	}

	if winner == nil {
		winner = cfg.Default()
		winnerConf = DefaultConfidence
	}

	result = Result{
		Type:       winner.Key,
		Spec:       winner,
		Confidence: winnerConf,
	}
	result.Context = a.buildContext(result.Type, history, cfg)
	result.Metacognitive = a.metacognitiveNeeds(normalized, message, history)
	result.Reflective = a.reflectiveNeeds(normalized, history, cfg)

	a.log.Debug("message classified",
		"subject", cfg.Subject,
		"type", result.Type,
		"confidence", fmt.Sprintf("%.3f", result.Confidence),
		"stage", result.Context.Progression.Stage)

	return result
}

// degraded builds the never-throw fallback classification.
func (a *Analyzer) degraded(subjectID string, history []conversation.Turn, note string) Result {
	spec := a.fallbackDefaultSpec(subjectID)
	return Result{
		Type:          subjects.TypeDefault,
		Spec:          spec,
		Confidence:    DefaultConfidence,
		AnalysisError: note,
		Context: Context{
			IsFirstMessage:     len(history) == 0,
			ConversationLength: len(history),
			PreviousTypes:      conversation.PreviousTypes(history),
			Progression:        Progression{Stage: "beginning", Confidence: "low"},
			SuggestedActions:   suggestedActions(subjects.TypeDefault),
		},
		Metacognitive: MetacognitiveNeeds{AbilityLevel: AbilityMedium},
		Reflective:    ReflectiveNeeds{DepthLevel: 1, TopicProgression: "initial"},
	}
}

func (a *Analyzer) fallbackDefaultSpec(subjectID string) *subjects.ResponseTypeSpec {
	if cfg, err := a.store.Load(subjectID); err == nil {
		return cfg.Default()
	}
	if cfg, err := a.store.Load(subjects.DefaultSubject); err == nil {
		return cfg.Default()
	}
	// No subject is loadable at all; synthesize the minimum the composer
	// needs to still produce a prompt.
	return &subjects.ResponseTypeSpec{
		Key:      subjects.TypeDefault,
		Name:     "일반 대화",
		Strategy: "학생과 친근하고 교육적인 대화를 나눈다",
	}
}
