// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// Annotator produces draft entity annotations for a piece of snippet text.
// Returned entities carry offsets into the given text and SourcePrediction
// provenance; they are drafts for human review, never gold.
type Annotator interface {
	// Annotate labels the text and returns the detected entities in the
	// order the backend reported them.
	Annotate(ctx context.Context, text string) ([]entities.Entity, error)
}
