package subjects

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed configs/*.json
var embeddedConfigs embed.FS

// ErrNotFound reports that a source has no document for the subject.
var ErrNotFound = errors.New("subject config not found")

// Source reads raw configuration documents by subject id.
type Source interface {
	Read(subjectID string) ([]byte, error)
}

// EmbeddedSource serves the configuration documents compiled into the
// binary. This is the default backing for the Store.
type EmbeddedSource struct{}

func (EmbeddedSource) Read(subjectID string) ([]byte, error) {
	raw, err := embeddedConfigs.ReadFile("configs/" + subjectID + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, subjectID)
		}
		return nil, err
	}
	return raw, nil
}

// DirSource reads configuration documents from a directory of
// <subject>.json files, letting deployments override the embedded defaults.
type DirSource struct {
	Dir string
}

func (s DirSource) Read(subjectID string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(s.Dir, subjectID+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, subjectID)
		}
		return nil, err
	}
	return raw, nil
}

// LayeredSource tries each source in order, falling through on ErrNotFound.
type LayeredSource []Source

func (l LayeredSource) Read(subjectID string) ([]byte, error) {
	var lastErr error = fmt.Errorf("%w: %s", ErrNotFound, subjectID)
	for _, s := range l {
		raw, err := s.Read(subjectID)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
