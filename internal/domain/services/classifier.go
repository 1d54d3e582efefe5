package services

import "github.com/ersonp/nerbench/internal/domain/entities"

// Classify derives the four diagnostic error lists from the same two
// collections used for exact matching. The lists preserve input order and
// duplicates.
//
// The lists deliberately overlap in membership: a predicted entity with no
// exact counterpart is a false positive, and if it still overlaps a
// same-typed gold span it also appears as a boundary error; likewise a
// boundary-shifted pair contributes both a false positive and a false
// negative. The lists are diagnostic views and are never reconciled into a
// single accounting, so their cardinalities need not sum to the counts
// reported by Match.
func Classify(gold, predicted []entities.Entity) entities.ErrorAnalysis {
	analysis := entities.ErrorAnalysis{
		FalsePositives: multisetDiff(predicted, gold),
		FalseNegatives: multisetDiff(gold, predicted),
	}

	// Boundary errors: unmatched predictions that still overlap a gold span
	// of the same type. First overlapping gold entity in gold order wins.
	exactGold := make(map[entities.SpanKey]int, len(gold))
	for _, g := range gold {
		exactGold[g.Key()]++
	}
	for _, p := range predicted {
		if exactGold[p.Key()] > 0 {
			continue
		}
		for _, g := range gold {
			if p.PartialMatch(g) {
				analysis.BoundaryErrors = append(analysis.BoundaryErrors, entities.BoundaryError{
					Predicted: p,
					Gold:      g,
				})
				break
			}
		}
	}

	// Type errors: identical boundaries, different label. First such gold
	// entity in gold order wins.
	for _, p := range predicted {
		for _, g := range gold {
			if p.Start == g.Start && p.End == g.End && p.Type != g.Type {
				analysis.TypeErrors = append(analysis.TypeErrors, entities.TypeError{
					Text:          p.Text,
					PredictedType: p.Type,
					GoldType:      g.Type,
				})
				break
			}
		}
	}

	return analysis
}

// multisetDiff returns the entities in from that have no exact-match
// counterpart left in against, consuming one counterpart per match so
// duplicate annotations are kept rather than collapsed.
func multisetDiff(from, against []entities.Entity) []entities.Entity {
	remaining := make(map[entities.SpanKey]int, len(against))
	for _, e := range against {
		remaining[e.Key()]++
	}

	var diff []entities.Entity
	for _, e := range from {
		key := e.Key()
		if remaining[key] > 0 {
			remaining[key]--
			continue
		}
		diff = append(diff, e)
	}
	return diff
}
