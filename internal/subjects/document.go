package subjects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// document is the raw JSON shape of a subject configuration. Response types
// are declared as a JSON object; declaration order is significant (it is the
// classifier's tie-break order), so decoding goes through orderedTypes
// instead of a plain map.
type document struct {
	Subject       string                `json:"subject"`
	SubjectName   string                `json:"subject_name"`
	ResponseTypes orderedTypes          `json:"response_types"`
	Foundation    TheoreticalFoundation `json:"theoretical_foundation"`
	Context       ConversationContext   `json:"conversation_context"`
	Features      DomainFeatures        `json:"domain_specific_features"`
	Rules         []string              `json:"pedagogy_rules"`
}

type typeEntry struct {
	Key  string
	Spec rawTypeSpec
}

type rawTypeSpec struct {
	Name             string   `json:"name"`
	Patterns         []string `json:"patterns"`
	SamplePrompts    []string `json:"sample_prompts"`
	AITutorPrompt    string   `json:"ai_tutor_prompt"`
	PromptStrategy   string   `json:"prompt_strategy"`
	TheoreticalBasis string   `json:"theoretical_basis"`
}

// orderedTypes decodes a JSON object while preserving key order. The stdlib
// map decode would discard it.
type orderedTypes []typeEntry

func (o *orderedTypes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("response_types: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var spec rawTypeSpec
		if err := dec.Decode(&spec); err != nil {
			return fmt.Errorf("response type %q: %w", key, err)
		}
		*o = append(*o, typeEntry{Key: key, Spec: spec})
	}

	_, err = dec.Token() // closing '}'
	return err
}

// build converts a decoded document into a Config, compiling every pattern
// exactly once. Pattern compilation failures are load-time errors, never
// per-message ones.
func (d *document) build() (*Config, error) {
	cfg := &Config{
		Subject:    d.Subject,
		Name:       d.SubjectName,
		Foundation: d.Foundation,
		Context:    d.Context,
		Features:   d.Features,
		Rules:      PedagogyRules(d.Rules),
	}

	for _, entry := range d.ResponseTypes {
		spec := ResponseTypeSpec{
			Key:              TypeKey(entry.Key),
			Name:             entry.Spec.Name,
			RawPatterns:      entry.Spec.Patterns,
			SamplePrompts:    entry.Spec.SamplePrompts,
			PreferredPrompt:  entry.Spec.AITutorPrompt,
			Strategy:         entry.Spec.PromptStrategy,
			TheoreticalBasis: entry.Spec.TheoreticalBasis,
		}
		for _, p := range entry.Spec.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("subject %q, type %q: compile pattern %q: %w", d.Subject, entry.Key, p, err)
			}
			spec.Patterns = append(spec.Patterns, re)
		}
		cfg.Types = append(cfg.Types, spec)
	}

	return cfg, nil
}
