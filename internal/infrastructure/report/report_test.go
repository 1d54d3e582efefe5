package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

func sampleReport() *entities.RunReport {
	return &entities.RunReport{
		ModelName:      "gpt-4o-mini",
		EvaluationDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalDocuments: 1,
		CorpusExact:    entities.Counts{TruePositives: 2, FalsePositives: 1, TotalGold: 2, TotalPredicted: 3}.Score(),
		CorpusPartial:  entities.Counts{TruePositives: 3, TotalGold: 3, TotalPredicted: 3}.Score(),
		PerType: map[entities.EntityType]entities.Scored{
			entities.TypeLocation: entities.Counts{TruePositives: 2, TotalGold: 2, TotalPredicted: 2}.Score(),
			entities.TypePerson:   entities.Counts{FalsePositives: 1, TotalPredicted: 1}.Score(),
		},
		Documents: []*entities.DocumentResult{
			{
				DocumentID:   "doc-1",
				OverallExact: entities.Counts{TruePositives: 2, FalsePositives: 1}.Score(),
				Errors: entities.ErrorAnalysis{
					FalsePositives: []entities.Entity{{Text: "June", Start: 20, End: 24, Type: entities.TypeMisc}},
				},
			},
		},
		SkippedDocs: []string{"doc-2"},
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eval", "gpt-4o-mini_evaluation.json")

	require.NoError(t, WriteJSON(path, sampleReport()))

	matches, err := filepath.Glob(filepath.Join(dir, "eval", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded entities.RunReport
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "gpt-4o-mini", loaded.ModelName)
	assert.Equal(t, 2, loaded.CorpusExact.TruePositives)
	require.Len(t, loaded.Documents, 1)
	assert.Equal(t, "doc-1", loaded.Documents[0].DocumentID)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("test_dataset", "evaluation", "gpt-4o-mini_evaluation.json"),
		DefaultOutputPath(filepath.Join("test_dataset", "evaluation"), "gpt-4o-mini"))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer

	PrintReport(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "NER EVALUATION REPORT: gpt-4o-mini")
	assert.Contains(t, out, "Overall Performance (Exact Match)")
	assert.Contains(t, out, "Overall Performance (Partial Match)")
	assert.Contains(t, out, "Per-Entity-Type Performance:")
	assert.Contains(t, out, "LOC")
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "Skipped 1 document(s) without predictions: doc-2")
}

func TestPrintReport_NoPerTypeSection(t *testing.T) {
	report := sampleReport()
	report.PerType = nil
	report.SkippedDocs = nil

	var buf bytes.Buffer
	PrintReport(&buf, report)
	out := buf.String()

	assert.NotContains(t, out, "Per-Entity-Type Performance:")
	assert.NotContains(t, out, "Skipped")
}

func TestPrintErrorSummary(t *testing.T) {
	var buf bytes.Buffer

	PrintErrorSummary(&buf, sampleReport().Documents)
	out := buf.String()

	assert.Contains(t, out, "Error Analysis:")
	assert.Contains(t, out, "doc-1")
}
