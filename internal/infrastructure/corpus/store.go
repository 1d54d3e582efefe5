// Package corpus reads and writes annotation files in their on-disk layout.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/domain/ports"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

const (
	goldSuffix = "_gold.json"
	predSuffix = "_pred.json"
)

// Store implements ports.CorpusStore over a directory layout:
//
//	<gold_dir>/<doc>_gold.json
//	<predictions_dir>/<model>/<doc>_pred.json
//
// Files are plain JSON in the shape of entities.Document. The store does not
// validate entity offsets; the evaluation core tolerates malformed spans and
// offset validation belongs to whoever produces the files.
type Store struct {
	goldDir string
	predDir string
}

// NewStore creates a corpus store for the configured layout.
func NewStore(cfg config.CorpusConfig) *Store {
	return &Store{
		goldDir: cfg.GoldDir,
		predDir: cfg.PredictionsDir,
	}
}

// Verify checks the directories an evaluation run depends on, so a run can
// abort before any computation. An empty model skips the prediction check.
func (s *Store) Verify(model string) error {
	if _, err := os.Stat(s.goldDir); err != nil {
		return fmt.Errorf("gold standard directory not found: %s", s.goldDir)
	}
	if model != "" {
		dir := filepath.Join(s.predDir, model)
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("predictions directory not found: %s", dir)
		}
	}
	return nil
}

// GoldDocumentIDs returns the IDs of all documents with a gold file, sorted.
func (s *Store) GoldDocumentIDs() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.goldDir, "*"+goldSuffix))
	if err != nil {
		return nil, fmt.Errorf("listing gold files: %w", err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), goldSuffix))
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadGold loads the gold standard for a document.
func (s *Store) LoadGold(documentID string) (*entities.Document, error) {
	return s.loadDocument(filepath.Join(s.goldDir, documentID+goldSuffix), documentID, entities.SourceGold)
}

// LoadPredictions loads a model's predictions for a document. A missing file
// maps to ports.ErrNoPredictions so callers can skip the document.
func (s *Store) LoadPredictions(model, documentID string) (*entities.Document, error) {
	path := filepath.Join(s.predDir, model, documentID+predSuffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s for %s: %w", model, documentID, ports.ErrNoPredictions)
	}
	return s.loadDocument(path, documentID, entities.SourcePrediction)
}

// SavePredictions writes a model's predictions for a document.
func (s *Store) SavePredictions(model string, doc *entities.Document) error {
	dir := filepath.Join(s.predDir, model)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating predictions directory: %w", err)
	}
	return writeJSON(filepath.Join(dir, doc.ID+predSuffix), doc)
}

func (s *Store) loadDocument(path, documentID string, source entities.Source) (*entities.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc entities.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if doc.ID == "" {
		doc.ID = documentID
	}
	for i := range doc.Snippets {
		for j := range doc.Snippets[i].Entities {
			if doc.Snippets[i].Entities[j].Source == "" {
				doc.Snippets[i].Entities[j].Source = source
			}
		}
	}
	return &doc, nil
}

// writeJSON marshals v with indentation and writes it via a temp file rename
// so readers never observe a partial file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}
