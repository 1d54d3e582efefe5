package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/nerbench/internal/domain/ports"
	"github.com/ersonp/nerbench/internal/domain/services"
)

// AnnotateResult summarizes a draft-annotation pass over the corpus.
type AnnotateResult struct {
	Documents int
	Snippets  int
	Entities  int
}

// AnnotateHandler generates draft prediction files for every gold document.
type AnnotateHandler struct {
	corpus  ports.CorpusStore
	service *services.AnnotationService
}

// NewAnnotateHandler creates an annotate handler.
func NewAnnotateHandler(corpus ports.CorpusStore, service *services.AnnotationService) *AnnotateHandler {
	return &AnnotateHandler{
		corpus:  corpus,
		service: service,
	}
}

// Handle annotates each gold document's snippets with the configured model
// and stores the resulting prediction files under the model's name.
func (h *AnnotateHandler) Handle(ctx context.Context, model string) (*AnnotateResult, error) {
	ids, err := h.corpus.GoldDocumentIDs()
	if err != nil {
		return nil, fmt.Errorf("listing gold documents: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no gold standard files found")
	}

	result := &AnnotateResult{}
	for _, id := range ids {
		gold, err := h.corpus.LoadGold(id)
		if err != nil {
			return nil, fmt.Errorf("loading gold document %s: %w", id, err)
		}

		pred, err := h.service.AnnotateDocument(ctx, gold)
		if err != nil {
			return nil, err
		}

		if err := h.corpus.SavePredictions(model, pred); err != nil {
			return nil, fmt.Errorf("saving predictions for %s: %w", id, err)
		}

		result.Documents++
		result.Snippets += len(pred.Snippets)
		for i := range pred.Snippets {
			result.Entities += len(pred.Snippets[i].Entities)
		}
	}

	return result, nil
}
