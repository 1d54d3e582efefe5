package services

import (
	"context"
	"fmt"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/domain/ports"
)

// AnnotationService produces draft prediction documents by running a model
// over the snippets of a gold document. The output document mirrors the gold
// document's snippet layout so evaluation can align the two by snippet ID.
type AnnotationService struct {
	annotator ports.Annotator
}

// NewAnnotationService creates an annotation service.
func NewAnnotationService(annotator ports.Annotator) *AnnotationService {
	return &AnnotationService{annotator: annotator}
}

// AnnotateDocument runs the model over every snippet of the gold document
// and returns a prediction document with the same snippet IDs and texts but
// model-produced entities. Gold entities are never copied over.
// The model is called once per snippet: annotation backends operate on
// bounded text windows, so snippets cannot be batched into one call.
func (s *AnnotationService) AnnotateDocument(ctx context.Context, gold *entities.Document) (*entities.Document, error) {
	pred := &entities.Document{
		ID:       gold.ID,
		Metadata: gold.Metadata,
		Snippets: make([]entities.Snippet, 0, len(gold.Snippets)),
	}

	for i := range gold.Snippets {
		goldSnippet := &gold.Snippets[i]

		detected, err := s.annotator.Annotate(ctx, goldSnippet.Text)
		if err != nil {
			return nil, fmt.Errorf("annotating snippet %d of %s: %w", goldSnippet.ID, gold.ID, err)
		}

		for j := range detected {
			detected[j].Source = entities.SourcePrediction
		}

		pred.Snippets = append(pred.Snippets, entities.Snippet{
			ID:        goldSnippet.ID,
			Text:      goldSnippet.Text,
			CharStart: goldSnippet.CharStart,
			CharEnd:   goldSnippet.CharEnd,
			Entities:  detected,
		})
	}

	return pred, nil
}
