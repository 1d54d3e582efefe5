package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/nerbench/internal/domain/services"
)

// ocrPage is one page of an OCR output file: an array of these per document.
type ocrPage struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// OCRDocument is the text of an OCR'd document plus its page metadata.
type OCRDocument struct {
	Text       string
	Metadata   map[string]any
	TotalPages int
}

// ReadOCRDocument loads an OCR JSON file and concatenates its page texts.
func ReadOCRDocument(path string) (*OCRDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pages []ocrPage
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(pages) == 0 {
		return &OCRDocument{}, nil
	}

	var text strings.Builder
	for _, p := range pages {
		text.WriteString(p.Text)
		text.WriteString("\n\n")
	}

	return &OCRDocument{
		Text:       text.String(),
		Metadata:   pages[0].Metadata,
		TotalPages: len(pages),
	}, nil
}

// SnippetDocument is the output of snippet extraction: the document's
// selected passages, not yet annotated.
type SnippetDocument struct {
	DocumentID string                      `json:"document_id"`
	Metadata   map[string]any              `json:"metadata,omitempty"`
	Snippets   []services.ExtractedSnippet `json:"snippets"`
}

// WriteSnippets writes a snippet file for later annotation.
func WriteSnippets(dir string, doc *SnippetDocument) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snippets directory: %w", err)
	}
	path := filepath.Join(dir, doc.DocumentID+"_snippets.json")
	if err := writeJSON(path, doc); err != nil {
		return "", err
	}
	return path, nil
}
