// Package composer assembles the layered system instruction for a tutoring
// turn and formats it, together with windowed conversation history, into the
// message sequence sent to the LLM provider.
package composer

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/seonho/tutorkit/internal/analyzer"
	"github.com/seonho/tutorkit/internal/conversation"
	"github.com/seonho/tutorkit/internal/llm"
	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/materials"
	"github.com/seonho/tutorkit/internal/subjects"
)

// messageHeader labels the student's current utterance inside the first
// composed message.
const messageHeader = "### 학생의 현재 발화 ###"

// fallbackInstruction is the minimal tutor persona used when composition
// fails entirely. The student must still get a response.
const fallbackInstruction = `너는 친근하고 격려하는 교육 튜터야. 학생들이 학습을 통해 스스로 답을 찾을 수 있도록 도와줘.
항상 긍정적이고 호기심을 유발하는 질문을 던져주고, 직접적인 답을 주기보다는 스스로 생각해볼 수 있도록 힌트를 제공해줘.
한국어로만 대답하고, 마크다운 문법을 사용하지 말아줘.`

const genericBasePrompt = "학생과 친근하고 교육적인 대화를 나누어 주세요."

// Overrides carries the teacher-authored customizations for a lesson.
type Overrides struct {
	// Prompts maps a response-type key to the teacher's replacement prompt.
	Prompts map[string]string

	// AIInstructions is the teacher's free-form role instruction block.
	AIInstructions string

	TargetConcepts []string
	LessonPhase    string
	Topic          string
	GradeLevel     string
}

// Input is everything one composition needs.
type Input struct {
	Classification analyzer.Result
	Message        string
	History        []conversation.Turn
	Overrides      Overrides

	// Ranked holds relevance-scored materials. When non-empty it wins over
	// Unranked; exactly one of the two material layer variants is emitted.
	Ranked   []materials.Scored
	Unranked []materials.Material

	Config *subjects.Config
}

// Composer builds message sequences. The injected rand source drives
// template variety only; it never influences which response type or
// confidence the caller computed.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
	log *logging.Logger
}

// New creates a Composer. A nil rng gets a fresh PCG source; a nil log is
// replaced with a no-op logger.
func New(rng *rand.Rand, log *logging.Logger) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Composer{rng: rng, log: log}
}

// Build assembles the full message sequence for one tutoring turn. It never
// fails: any panic during composition degrades to a minimal generic prompt
// carrying the raw student message.
func (c *Composer) Build(in Input) (msgs []llm.Message) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("prompt composition panicked", "panic", r)
			msgs = c.fallback(in.Message)
		}
	}()

	base := c.selectBasePrompt(in)
	instruction := c.combineLayers(in, base)

	return format(instruction, in.Message, in.History, in.Config.MaxHistory())
}

// combineLayers joins the non-empty layers in their fixed order. A layer
// whose source data is absent contributes nothing, never an empty heading.
func (c *Composer) combineLayers(in Input, base string) string {
	layers := []string{
		aiInstructionsLayer(in.Overrides.AIInstructions),
		materialsLayer(in.Ranked, in.Unranked),
		base,
		educationalContextLayer(in.Classification.Spec, in.Config, in.Overrides.TargetConcepts),
		subjectRulesLayer(in.Config),
		conversationContextLayer(in.History, in.Config),
		learningEnvironmentLayer(in.Overrides),
		closingRulesLayer(),
	}

	kept := layers[:0]
	for _, l := range layers {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n\n")
}

// selectBasePrompt picks the base behavioral prompt, first match wins.
func (c *Composer) selectBasePrompt(in Input) string {
	res := in.Classification

	if res.Reflective.Any() {
		return c.reflectivePrompt(res.Reflective, in.History)
	}

	if res.Metacognitive.Any() {
		return c.metacognitivePrompt(res.Metacognitive)
	}

	if p, ok := in.Overrides.Prompts[string(res.Type)]; ok && p != "" {
		return p
	}

	spec := res.Spec
	if spec == nil {
		spec = in.Config.Type(res.Type)
	}

	if spec.PreferredPrompt != "" {
		return spec.PreferredPrompt
	}

	if len(spec.SamplePrompts) > 0 {
		return samplePromptFor(spec.SamplePrompts, res.Context)
	}

	if spec.Strategy != "" {
		return spec.Strategy
	}
	return genericBasePrompt
}

// samplePromptFor picks a sample prompt by keyword affinity to the
// conversation's inferred stage, falling back to the first prompt.
func samplePromptFor(prompts []string, ctx analyzer.Context) string {
	var keywords []string
	switch {
	case ctx.IsFirstMessage:
		keywords = []string{"환영", "함께", "시작"}
	case ctx.Progression.Stage == "struggling":
		keywords = []string{"격려", "천천히", "괜찮"}
	case ctx.Progression.Stage == "analyzing":
		keywords = []string{"훌륭", "더", "발전"}
	default:
		return prompts[0]
	}

	for _, kw := range keywords {
		for _, p := range prompts {
			if strings.Contains(p, kw) {
				return p
			}
		}
	}
	return prompts[0]
}

// format converts the instruction and history into the provider message
// sequence. The instruction travels exactly once, attached to the oldest
// retained turn, so the model stays anchored without the instruction being
// repeated every turn.
func format(instruction, message string, history []conversation.Turn, maxHistory int) []llm.Message {
	if len(history) == 0 {
		return []llm.Message{{
			Role:    llm.RoleUser,
			Content: instruction + "\n\n" + messageHeader + "\n" + message,
		}}
	}

	recent := conversation.LastN(history, maxHistory)
	msgs := make([]llm.Message, 0, len(recent)+1)

	for i, turn := range recent {
		role := llm.RoleUser
		if turn.Role == conversation.RoleTutor {
			role = llm.RoleAssistant
		}
		content := turn.Text
		if i == 0 {
			// The instruction-bearing entry is always a user message,
			// even when windowing leaves a tutor turn first. Providers
			// reject or misread sequences opening with an assistant role.
			role = llm.RoleUser
			content = instruction + "\n\n" + messageHeader + "\n" + turn.Text
		}
		msgs = append(msgs, llm.Message{Role: role, Content: content})
	}

	return append(msgs, llm.Message{Role: llm.RoleUser, Content: message})
}

// fallback is the minimal one-message sequence used when composition fails.
func (c *Composer) fallback(message string) []llm.Message {
	return []llm.Message{{
		Role:    llm.RoleUser,
		Content: fallbackInstruction + "\n\n" + messageHeader + "\n" + message,
	}}
}

// pick returns a random element, serialized because rand.Rand is not safe
// for concurrent use.
func (c *Composer) pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return items[c.rng.IntN(len(items))]
}

// truncateRunes shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
