// Package materials ranks lesson materials by relevance to the student's
// current question and selects the content chunks worth quoting.
package materials

// Material describes one teacher-provided lesson resource.
type Material struct {
	Title string
	URL   string
	Type  string // "link" or "file"

	// FileName is set for uploaded files when it differs from Title.
	FileName string
}

// Locator returns the string identifying the material's source content,
// used as the extraction cache key input.
func (m Material) Locator() string {
	if m.URL != "" {
		return m.URL
	}
	if m.FileName != "" {
		return m.FileName
	}
	return m.Title
}

// Extraction is the result of content extraction for a material.
type Extraction struct {
	Success  bool     `json:"success"`
	Text     string   `json:"text,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Chunks   []string `json:"chunks,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Scored is a material with its relevance score and the content chunks
// most relevant to the student's question.
type Scored struct {
	Material  Material
	Extracted Extraction

	// Score is the relevance in [0,1].
	Score float64

	// BestChunks holds up to three chunks ranked by question-term overlap.
	BestChunks []string
}
