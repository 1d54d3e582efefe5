package entities

import "time"

// BoundaryError pairs a predicted entity with the gold entity it overlaps
// but does not exactly match.
type BoundaryError struct {
	Predicted Entity `json:"predicted"`
	Gold      Entity `json:"gold"`
}

// TypeError records a predicted span whose boundaries coincide with a gold
// span of a different type.
type TypeError struct {
	Text          string     `json:"text"`
	PredictedType EntityType `json:"predicted_type"`
	GoldType      EntityType `json:"gold_type"`
}

// ErrorAnalysis holds the four diagnostic error lists. The lists are views,
// not an accounting: a predicted entity can appear both as a false positive
// (no exact match) and in a boundary error (it still overlaps a gold span),
// so cardinalities here do not reconcile with match counts.
type ErrorAnalysis struct {
	FalsePositives []Entity        `json:"false_positives"`
	FalseNegatives []Entity        `json:"false_negatives"`
	BoundaryErrors []BoundaryError `json:"boundary_errors"`
	TypeErrors     []TypeError     `json:"type_errors"`
}

// SnippetResult holds exact-match scores for one snippet.
type SnippetResult struct {
	SnippetID int    `json:"snippet_id"`
	Exact     Scored `json:"metrics"`
}

// DocumentResult is the full evaluation of one document.
type DocumentResult struct {
	DocumentID     string                `json:"document_id"`
	OverallExact   Scored                `json:"overall_exact"`
	OverallPartial Scored                `json:"overall_partial"`
	PerType        map[EntityType]Scored `json:"per_type"`
	Snippets       []SnippetResult       `json:"snippet_results"`
	Errors         ErrorAnalysis         `json:"error_analysis"`
	// Warnings records snippet-level gaps (e.g. gold snippets without
	// predictions) so the caller decides how to surface them.
	Warnings []string `json:"warnings,omitempty"`
}

// RunReport is the corpus-level outcome of evaluating one model.
type RunReport struct {
	ModelName      string                `json:"model_name"`
	EvaluationDate time.Time             `json:"evaluation_date"`
	TotalDocuments int                   `json:"total_documents"`
	CorpusExact    Scored                `json:"corpus_exact"`
	CorpusPartial  Scored                `json:"corpus_partial"`
	PerType        map[EntityType]Scored `json:"per_type"`
	Documents      []*DocumentResult     `json:"results"`
	SkippedDocs    []string              `json:"skipped_documents,omitempty"`
}

// Run is a persisted summary of a past evaluation run.
type Run struct {
	ID             string    `json:"id"`
	ModelName      string    `json:"model_name"`
	CreatedAt      time.Time `json:"created_at"`
	TotalDocuments int       `json:"total_documents"`
	Exact          Scored    `json:"exact"`
	Partial        Scored    `json:"partial"`
}
