package ports

import (
	"errors"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// ErrNoPredictions is returned when a document has a gold file but the model
// under evaluation produced no prediction file for it. Callers skip the
// document with a warning rather than failing the run.
var ErrNoPredictions = errors.New("no predictions for document")

// CorpusStore reads and writes annotated documents in their on-disk layout:
// one gold file per document plus, per model, one snippet-aligned prediction
// file per document.
type CorpusStore interface {
	// GoldDocumentIDs returns the IDs of all documents with a gold file,
	// sorted for deterministic evaluation order.
	GoldDocumentIDs() ([]string, error)

	// LoadGold loads the gold standard for a document.
	LoadGold(documentID string) (*entities.Document, error)

	// LoadPredictions loads a model's predictions for a document.
	// Returns ErrNoPredictions when the prediction file does not exist.
	LoadPredictions(model, documentID string) (*entities.Document, error)

	// SavePredictions writes a model's predictions for a document.
	SavePredictions(model string, doc *entities.Document) error
}
