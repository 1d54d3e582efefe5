// Package entities contains core domain data structures.
package entities

// EntityType is the label assigned to an annotated span. It is an open tag:
// the canonical set below covers the curated corpora, but predictions may
// carry labels outside it and those are still counted and reported.
type EntityType string

// Canonical entity types used by the gold standard.
const (
	TypeLocation     EntityType = "LOC"
	TypePerson       EntityType = "PER"
	TypeOrganization EntityType = "ORG"
	TypeMisc         EntityType = "MISC"
)

// CanonicalTypes lists the recognized entity types in display order.
var CanonicalTypes = []EntityType{TypeLocation, TypePerson, TypeOrganization, TypeMisc}

// Source identifies which side of an evaluation an entity came from.
// It is provenance for debugging only and never consulted by matching.
type Source string

// Entity provenance values.
const (
	SourceGold       Source = "gold"
	SourcePrediction Source = "prediction"
)

// Entity represents one labeled text span inside one snippet. Offsets are
// half-open character positions into the snippet text. Entities are read-only
// inputs to the evaluation core and are never mutated by it.
type Entity struct {
	Text       string     `json:"text"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Type       EntityType `json:"type"`
	Source     Source     `json:"source,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// SpanKey is the identity of an entity under exact matching. It deliberately
// excludes Text, Source and Confidence.
type SpanKey struct {
	Start int
	End   int
	Type  EntityType
}

// Key returns the exact-match identity of the entity.
func (e Entity) Key() SpanKey {
	return SpanKey{Start: e.Start, End: e.End, Type: e.Type}
}

// Overlaps reports whether the two spans share at least one character.
// Degenerate spans (start >= end) never overlap anything, so malformed
// offsets fall out of partial matching without special casing.
func (e Entity) Overlaps(other Entity) bool {
	return !(e.End <= other.Start || other.End <= e.Start)
}

// PartialMatch reports whether the spans overlap and carry the same type.
func (e Entity) PartialMatch(other Entity) bool {
	return e.Overlaps(other) && e.Type == other.Type
}
