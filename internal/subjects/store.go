// Package subjects loads, validates, and caches per-subject tutoring
// configuration: response-type taxonomies with their match patterns, prompt
// text, theoretical framing, and conversation parameters.
package subjects

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/seonho/tutorkit/internal/logging"
)

// DefaultSubject is the fallback when a requested subject fails to load.
// If the default itself is broken no subject can be served.
const DefaultSubject = "science"

// supportedSubjects is the static enumeration of shipped subjects.
var supportedSubjects = []string{"korean", "math", "science", "social", "counseling"}

// FatalConfigError reports that the default subject configuration is
// unusable. There is no further fallback behind it.
type FatalConfigError struct {
	Subject string
	Err     error
}

func (e *FatalConfigError) Error() string {
	return fmt.Sprintf("default subject %q unusable: %v", e.Subject, e.Err)
}

func (e *FatalConfigError) Unwrap() error { return e.Err }

// Store loads and caches subject configurations. Construct one per process
// and pass it by handle; tests construct isolated instances.
type Store struct {
	source Source
	log    *logging.Logger

	mu    sync.RWMutex
	cache map[string]*Config
}

// NewStore creates a Store backed by the given source. A nil source uses
// the embedded defaults.
func NewStore(source Source, log *logging.Logger) *Store {
	if source == nil {
		source = EmbeddedSource{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		source: source,
		log:    log,
		cache:  make(map[string]*Config),
	}
}

// Load returns the configuration for subjectID, reading and validating it
// on first use and caching it for the process lifetime. On any read or
// validation failure the Store falls back to the default subject so that a
// misconfigured subject never takes tutoring down entirely; only a broken
// default is fatal.
func (s *Store) Load(subjectID string) (*Config, error) {
	s.mu.RLock()
	cached, ok := s.cache[subjectID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	cfg, err := s.load(subjectID)
	if err != nil {
		if subjectID == DefaultSubject {
			return nil, &FatalConfigError{Subject: subjectID, Err: err}
		}
		s.log.Warn("subject config failed, substituting default",
			"subject", subjectID, "default", DefaultSubject, "error", err)
		return s.Load(DefaultSubject)
	}

	s.mu.Lock()
	// A concurrent loader may have beaten us here; re-deriving the same
	// config is harmless, keep the first one for stable pointers.
	if existing, ok := s.cache[subjectID]; ok {
		cfg = existing
	} else {
		s.cache[subjectID] = cfg
	}
	s.mu.Unlock()

	return cfg, nil
}

func (s *Store) load(subjectID string) (*Config, error) {
	raw, err := s.source.Read(subjectID)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err := doc.build()
	if err != nil {
		return nil, err
	}

	s.log.Debug("subject config loaded", "subject", subjectID, "types", len(cfg.Types))
	return cfg, nil
}

// PreloadAll eagerly loads every supported subject. Individual failures are
// logged and skipped; the store stays usable and retries lazily on demand.
func (s *Store) PreloadAll() {
	for _, id := range supportedSubjects {
		if _, err := s.Load(id); err != nil {
			s.log.Error("preload subject config", "subject", id, "error", err)
		}
	}
}

// SupportedSubjects returns the static list of shipped subject ids.
func SupportedSubjects() []string {
	out := make([]string, len(supportedSubjects))
	copy(out, supportedSubjects)
	return out
}

// DisplayName maps a subject id to its human name, falling back to the id.
func (s *Store) DisplayName(subjectID string) string {
	cfg, err := s.Load(subjectID)
	if err != nil {
		return subjectID
	}
	return cfg.Name
}

// ClearCache drops all cached configurations. Testing hook.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]*Config)
	s.mu.Unlock()
}
