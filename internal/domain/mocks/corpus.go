package mocks

import (
	"fmt"
	"sort"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/domain/ports"
)

// CorpusStore is a mock implementation of ports.CorpusStore backed by maps.
type CorpusStore struct {
	// Gold maps document ID to its gold document.
	Gold map[string]*entities.Document
	// Predictions maps model name to document ID to predictions.
	Predictions map[string]map[string]*entities.Document

	// Errors, when set, are returned by the corresponding method.
	ListErr error
	LoadErr error
	SaveErr error
}

// NewCorpusStore creates an empty mock corpus.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		Gold:        make(map[string]*entities.Document),
		Predictions: make(map[string]map[string]*entities.Document),
	}
}

// GoldDocumentIDs returns the sorted gold document IDs.
func (m *CorpusStore) GoldDocumentIDs() ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	ids := make([]string, 0, len(m.Gold))
	for id := range m.Gold {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadGold returns the configured gold document.
func (m *CorpusStore) LoadGold(documentID string) (*entities.Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	doc, ok := m.Gold[documentID]
	if !ok {
		return nil, fmt.Errorf("gold document %s not found", documentID)
	}
	return doc, nil
}

// LoadPredictions returns the configured predictions or ErrNoPredictions.
func (m *CorpusStore) LoadPredictions(model, documentID string) (*entities.Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	doc, ok := m.Predictions[model][documentID]
	if !ok {
		return nil, fmt.Errorf("%s for %s: %w", model, documentID, ports.ErrNoPredictions)
	}
	return doc, nil
}

// SavePredictions stores predictions in the mock.
func (m *CorpusStore) SavePredictions(model string, doc *entities.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Predictions[model] == nil {
		m.Predictions[model] = make(map[string]*entities.Document)
	}
	m.Predictions[model][doc.ID] = doc
	return nil
}
