// Package services contains domain business logic.
package services

import "github.com/ersonp/nerbench/internal/domain/entities"

// MatchMode selects the matching semantics used to pair gold and predicted
// entities.
type MatchMode string

// Supported match modes.
const (
	// MatchExact pairs entities with identical boundaries and type.
	MatchExact MatchMode = "exact"
	// MatchPartial pairs entities whose spans overlap and whose types agree,
	// assigned greedily in input order.
	MatchPartial MatchMode = "partial"
)

// Match compares a gold collection against a predicted collection and
// returns raw counts. Inputs are never mutated and their order is preserved;
// partial-mode results depend on that order.
//
// Exact mode uses multiset semantics: the gold side is a counted bag keyed
// on (start, end, type) and each predicted entity consumes at most one
// remaining instance. A span annotated twice in gold and once in prediction
// therefore yields one true positive and one false negative, where a
// hash-set intersection would wrongly report neither.
//
// Partial mode is a greedy one-to-one assignment: each predicted entity, in
// its given order, claims the first still-unclaimed gold entity (in gold
// order) whose span overlaps it with the same type. This is a heuristic, not
// a maximum-cardinality matching: an early ambiguous prediction can claim a
// gold entity that a later prediction needed, leaving the later one
// unmatched even though a different assignment would pair both. Changing
// this policy changes reported numbers.
func Match(gold, predicted []entities.Entity, mode MatchMode) entities.Counts {
	var truePositives int
	switch mode {
	case MatchPartial:
		truePositives = matchPartial(gold, predicted)
	default:
		truePositives = matchExact(gold, predicted)
	}

	return entities.Counts{
		TruePositives:  truePositives,
		FalsePositives: len(predicted) - truePositives,
		FalseNegatives: len(gold) - truePositives,
		TotalGold:      len(gold),
		TotalPredicted: len(predicted),
	}
}

// matchExact counts the multiset intersection of the two collections under
// (start, end, type) equality.
func matchExact(gold, predicted []entities.Entity) int {
	remaining := make(map[entities.SpanKey]int, len(gold))
	for _, g := range gold {
		remaining[g.Key()]++
	}

	matched := 0
	for _, p := range predicted {
		key := p.Key()
		if remaining[key] > 0 {
			remaining[key]--
			matched++
		}
	}
	return matched
}

// matchPartial counts greedy overlap claims. Claimed gold entities are
// tracked by index so duplicate gold spans stay individually claimable.
func matchPartial(gold, predicted []entities.Entity) int {
	claimed := make([]bool, len(gold))

	matched := 0
	for _, p := range predicted {
		for i, g := range gold {
			if claimed[i] || !p.PartialMatch(g) {
				continue
			}
			claimed[i] = true
			matched++
			break
		}
	}
	return matched
}

// MatchPerType partitions both collections by entity type and runs exact
// matching independently within each partition. An entity of one type can
// never count against an entity of another, even when spans coincide; such
// pairs surface as a false positive plus a false negative (and as a type
// error in classification).
func MatchPerType(gold, predicted []entities.Entity) map[entities.EntityType]entities.Counts {
	goldByType := make(map[entities.EntityType][]entities.Entity)
	predByType := make(map[entities.EntityType][]entities.Entity)
	for _, g := range gold {
		goldByType[g.Type] = append(goldByType[g.Type], g)
	}
	for _, p := range predicted {
		predByType[p.Type] = append(predByType[p.Type], p)
	}

	results := make(map[entities.EntityType]entities.Counts, len(goldByType))
	for t, g := range goldByType {
		results[t] = Match(g, predByType[t], MatchExact)
	}
	for t, p := range predByType {
		if _, done := results[t]; !done {
			results[t] = Match(nil, p, MatchExact)
		}
	}
	return results
}
