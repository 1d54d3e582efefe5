package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	warn    = color.New(color.FgYellow)
)

// PrintReport renders the human-readable evaluation tables to w.
func PrintReport(w io.Writer, report *entities.RunReport) {
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(w, "\n%s\n", rule)
	heading.Fprintf(w, "NER EVALUATION REPORT: %s\n", report.ModelName)
	fmt.Fprintf(w, "%s\n\n", rule)

	printOverall(w, "Overall Performance (Exact Match)", report.CorpusExact)
	printOverall(w, "Overall Performance (Partial Match)", report.CorpusPartial)
	printPerType(w, report.PerType)
	printPerDocument(w, report.Documents)

	if len(report.SkippedDocs) > 0 {
		warn.Fprintf(w, "Skipped %d document(s) without predictions: %s\n\n",
			len(report.SkippedDocs), strings.Join(report.SkippedDocs, ", "))
	}

	fmt.Fprintf(w, "%s\n\n", rule)
}

func printOverall(w io.Writer, title string, s entities.Scored) {
	heading.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "  Precision: %.3f\n", s.Precision)
	fmt.Fprintf(w, "  Recall:    %.3f\n", s.Recall)
	fmt.Fprintf(w, "  F1 Score:  %.3f\n", s.F1)
	fmt.Fprintf(w, "\n  True Positives:  %d\n", s.TruePositives)
	fmt.Fprintf(w, "  False Positives: %d\n", s.FalsePositives)
	fmt.Fprintf(w, "  False Negatives: %d\n", s.FalseNegatives)
	fmt.Fprintf(w, "  Total Gold:      %d\n", s.TotalGold)
	fmt.Fprintf(w, "  Total Predicted: %d\n\n", s.TotalPredicted)
}

func printPerType(w io.Writer, perType map[entities.EntityType]entities.Scored) {
	if len(perType) == 0 {
		return
	}

	types := make([]string, 0, len(perType))
	for t := range perType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	heading.Fprintln(w, "Per-Entity-Type Performance:")
	fmt.Fprintf(w, "%-8s %-12s %-12s %-12s %-8s %-8s\n", "Type", "Precision", "Recall", "F1", "Gold", "Pred")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, t := range types {
		s := perType[entities.EntityType(t)]
		fmt.Fprintf(w, "%-8s %-12.3f %-12.3f %-12.3f %-8d %-8d\n",
			t, s.Precision, s.Recall, s.F1, s.TotalGold, s.TotalPredicted)
	}
	fmt.Fprintln(w)
}

func printPerDocument(w io.Writer, docs []*entities.DocumentResult) {
	heading.Fprintln(w, "Per-Document Performance (Exact Match):")
	fmt.Fprintf(w, "%-35s %-12s %-12s %-12s\n", "Document", "Precision", "Recall", "F1")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, d := range docs {
		fmt.Fprintf(w, "%-35s %-12.3f %-12.3f %-12.3f\n",
			d.DocumentID, d.OverallExact.Precision, d.OverallExact.Recall, d.OverallExact.F1)
	}
	fmt.Fprintln(w)
}

// PrintErrorSummary renders the per-document error list cardinalities. The
// lists overlap in membership with the raw false positive/negative counts,
// so totals here are diagnostic and deliberately not reconciled with the
// match counts above.
func PrintErrorSummary(w io.Writer, docs []*entities.DocumentResult) {
	heading.Fprintln(w, "Error Analysis:")
	fmt.Fprintf(w, "%-35s %-10s %-10s %-10s %-10s\n", "Document", "FalsePos", "FalseNeg", "Boundary", "Type")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, d := range docs {
		fmt.Fprintf(w, "%-35s %-10d %-10d %-10d %-10d\n",
			d.DocumentID,
			len(d.Errors.FalsePositives),
			len(d.Errors.FalseNegatives),
			len(d.Errors.BoundaryErrors),
			len(d.Errors.TypeErrors))
	}
	fmt.Fprintln(w)
}
