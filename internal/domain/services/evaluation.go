package services

import (
	"fmt"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// AlignmentStrategy decides what happens to gold snippets that have no
// counterpart in the prediction file.
type AlignmentStrategy string

// Supported alignment strategies.
const (
	// AlignDrop excludes unaligned gold snippets from all counts. This
	// under-reports recall for the affected document and is the historical
	// behavior of the evaluation pipeline.
	AlignDrop AlignmentStrategy = "drop"
	// AlignCountMissing scores unaligned gold snippets against an empty
	// prediction list, counting every gold entity as a miss.
	AlignCountMissing AlignmentStrategy = "count-missing"
)

// ValidAlignmentStrategy reports whether s is a known strategy.
func ValidAlignmentStrategy(s AlignmentStrategy) bool {
	return s == AlignDrop || s == AlignCountMissing
}

// EvaluationService scores one model's predictions against the gold
// standard, one document at a time. It is stateless apart from the
// configured alignment strategy, and documents are independent of each
// other.
type EvaluationService struct {
	strategy AlignmentStrategy
}

// NewEvaluationService creates an evaluation service. An empty strategy
// defaults to AlignDrop.
func NewEvaluationService(strategy AlignmentStrategy) *EvaluationService {
	if strategy == "" {
		strategy = AlignDrop
	}
	return &EvaluationService{strategy: strategy}
}

// EvaluateDocument aligns the prediction file's snippets with the gold
// file's by snippet ID, flattens both sides into one gold and one predicted
// collection, and computes exact, partial, per-type and per-snippet scores
// plus the error analysis. Inputs are not mutated.
func (s *EvaluationService) EvaluateDocument(gold, predicted *entities.Document) *entities.DocumentResult {
	result := &entities.DocumentResult{DocumentID: gold.ID}

	var allGold, allPred []entities.Entity

	for i := range gold.Snippets {
		goldSnippet := &gold.Snippets[i]
		predSnippet := predicted.SnippetByID(goldSnippet.ID)

		if predSnippet == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no predictions for snippet %d", goldSnippet.ID))
			if s.strategy == AlignDrop {
				continue
			}
			// Count-missing: score the gold entities against nothing.
			predSnippet = &entities.Snippet{ID: goldSnippet.ID}
		}

		allGold = append(allGold, goldSnippet.Entities...)
		allPred = append(allPred, predSnippet.Entities...)

		result.Snippets = append(result.Snippets, entities.SnippetResult{
			SnippetID: goldSnippet.ID,
			Exact:     Match(goldSnippet.Entities, predSnippet.Entities, MatchExact).Score(),
		})
	}

	result.OverallExact = Match(allGold, allPred, MatchExact).Score()
	result.OverallPartial = Match(allGold, allPred, MatchPartial).Score()
	result.Errors = Classify(allGold, allPred)

	perType := MatchPerType(allGold, allPred)
	result.PerType = make(map[entities.EntityType]entities.Scored, len(perType))
	for t, counts := range perType {
		result.PerType[t] = counts.Score()
	}

	return result
}

// Aggregate micro-averages document results into corpus-level scores: counts
// are summed across documents first and the rates computed once from the
// totals. Per-document rates are reported for visibility but never averaged.
func Aggregate(results []*entities.DocumentResult) (exact, partial entities.Scored, perType map[entities.EntityType]entities.Scored) {
	var exactCounts, partialCounts entities.Counts
	typeCounts := make(map[entities.EntityType]entities.Counts)

	for _, r := range results {
		exactCounts.Add(r.OverallExact.Counts)
		partialCounts.Add(r.OverallPartial.Counts)
		for t, scored := range r.PerType {
			c := typeCounts[t]
			c.Add(scored.Counts)
			typeCounts[t] = c
		}
	}

	perType = make(map[entities.EntityType]entities.Scored, len(typeCounts))
	for t, c := range typeCounts {
		perType[t] = c.Score()
	}
	return exactCounts.Score(), partialCounts.Score(), perType
}
