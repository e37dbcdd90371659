package subjects

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource serves documents from memory.
type mapSource map[string][]byte

func (m mapSource) Read(subjectID string) ([]byte, error) {
	raw, ok := m[subjectID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, subjectID)
	}
	return raw, nil
}

func minimalDoc(subject string) []byte {
	return fmt.Appendf(nil, `{
		"subject": %q,
		"subject_name": "테스트",
		"response_types": {
			"CONCEPT_QUESTION": {
				"name": "개념 질문",
				"patterns": ["뭐예요"],
				"sample_prompts": ["개념을 질문으로 되돌려줘"]
			},
			"DEFAULT": {
				"name": "일반",
				"patterns": [".^"],
				"sample_prompts": ["친근하게 대화해줘"]
			}
		},
		"theoretical_foundation": {"educational_principles": ["질문으로 유도"]},
		"conversation_context": {"max_history": 4}
	}`, subject)
}

func TestStore_LoadsAndCaches(t *testing.T) {
	store := NewStore(nil, nil)

	cfg, err := store.Load("science")
	require.NoError(t, err)
	assert.Equal(t, "science", cfg.Subject)
	assert.NotEmpty(t, cfg.Name)

	again, err := store.Load("science")
	require.NoError(t, err)
	assert.Same(t, cfg, again, "second load must hit the cache")
}

func TestStore_EveryShippedSubjectLoads(t *testing.T) {
	store := NewStore(nil, nil)
	for _, id := range SupportedSubjects() {
		cfg, err := store.Load(id)
		require.NoError(t, err, "subject %s", id)
		assert.Equal(t, id, cfg.Subject)
		require.NotNil(t, cfg.Default(), "subject %s must define DEFAULT", id)
		assert.Equal(t, TypeDefault, cfg.Default().Key)
		for _, spec := range cfg.Types {
			assert.NotEmpty(t, spec.Name, "%s/%s", id, spec.Key)
			assert.NotEmpty(t, spec.Patterns, "%s/%s", id, spec.Key)
			assert.Len(t, spec.Patterns, len(spec.RawPatterns))
		}
	}
}

func TestStore_FallsBackToDefaultSubject(t *testing.T) {
	src := mapSource{DefaultSubject: minimalDoc(DefaultSubject)}
	store := NewStore(src, nil)

	cfg, err := store.Load("alchemy")
	require.NoError(t, err)
	assert.Equal(t, DefaultSubject, cfg.Subject)
}

func TestStore_BrokenDefaultIsFatal(t *testing.T) {
	store := NewStore(mapSource{}, nil)

	_, err := store.Load(DefaultSubject)
	require.Error(t, err)
	var fatal *FatalConfigError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, DefaultSubject, fatal.Subject)

	// A non-default request also dead-ends in the same fatal error.
	_, err = store.Load("math")
	assert.ErrorAs(t, err, &fatal)
}

func TestStore_RejectsDocumentWithoutDefaultType(t *testing.T) {
	doc := []byte(`{
		"subject": "science",
		"subject_name": "과학",
		"response_types": {
			"CONCEPT_QUESTION": {"name": "개념", "patterns": ["뭐"], "sample_prompts": ["p"]}
		},
		"theoretical_foundation": {},
		"conversation_context": {}
	}`)
	store := NewStore(mapSource{"science": doc}, nil)

	_, err := store.Load("science")
	require.Error(t, err)
	assert.ErrorContains(t, err, "validate config")
}

func TestStore_RejectsTypeWithoutPromptOrStrategy(t *testing.T) {
	doc := []byte(`{
		"subject": "science",
		"subject_name": "과학",
		"response_types": {
			"DEFAULT": {"name": "일반", "patterns": [".^"]}
		},
		"theoretical_foundation": {},
		"conversation_context": {}
	}`)
	store := NewStore(mapSource{"science": doc}, nil)

	_, err := store.Load("science")
	require.Error(t, err)
}

func TestStore_RejectsBadPattern(t *testing.T) {
	doc := []byte(`{
		"subject": "science",
		"subject_name": "과학",
		"response_types": {
			"DEFAULT": {"name": "일반", "patterns": ["(["], "sample_prompts": ["p"]}
		},
		"theoretical_foundation": {},
		"conversation_context": {}
	}`)
	store := NewStore(mapSource{"science": doc}, nil)

	_, err := store.Load("science")
	require.Error(t, err)
	assert.ErrorContains(t, err, "compile pattern")
}

func TestStore_ClearCacheForcesReload(t *testing.T) {
	src := mapSource{"science": minimalDoc("science")}
	store := NewStore(src, nil)

	first, err := store.Load("science")
	require.NoError(t, err)

	store.ClearCache()

	second, err := store.Load("science")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestStore_PreloadAllSurvivesFailures(t *testing.T) {
	// Only the default subject is available; preload must not panic or
	// poison the store.
	src := mapSource{DefaultSubject: minimalDoc(DefaultSubject)}
	store := NewStore(src, nil)

	store.PreloadAll()

	cfg, err := store.Load(DefaultSubject)
	require.NoError(t, err)
	assert.Equal(t, DefaultSubject, cfg.Subject)
}

func TestConfig_TypeDeclarationOrderPreserved(t *testing.T) {
	doc := []byte(`{
		"subject": "science",
		"subject_name": "과학",
		"response_types": {
			"ZEBRA": {"name": "z", "patterns": ["z"], "sample_prompts": ["p"]},
			"ALPHA": {"name": "a", "patterns": ["a"], "sample_prompts": ["p"]},
			"DEFAULT": {"name": "d", "patterns": [".^"], "sample_prompts": ["p"]}
		},
		"theoretical_foundation": {},
		"conversation_context": {}
	}`)
	store := NewStore(mapSource{"science": doc}, nil)

	cfg, err := store.Load("science")
	require.NoError(t, err)

	var keys []TypeKey
	for _, spec := range cfg.Types {
		keys = append(keys, spec.Key)
	}
	assert.Equal(t, []TypeKey{"ZEBRA", "ALPHA", "DEFAULT"}, keys,
		"map iteration must not scramble declaration order")
}

func TestLayeredSource_FallsThroughOnNotFound(t *testing.T) {
	over := mapSource{"math": []byte(`{}`)}
	under := mapSource{"science": []byte(`{"s":1}`)}
	src := LayeredSource{over, under}

	raw, err := src.Read("science")
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":1}`, string(raw))

	_, err = src.Read("alchemy")
	assert.True(t, errors.Is(err, ErrNotFound))
}
