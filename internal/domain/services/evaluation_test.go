package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

func doc(id string, snippets ...entities.Snippet) *entities.Document {
	return &entities.Document{ID: id, Snippets: snippets}
}

func snippet(id int, ents ...entities.Entity) entities.Snippet {
	return entities.Snippet{ID: id, Entities: ents}
}

func TestValidAlignmentStrategy(t *testing.T) {
	assert.True(t, ValidAlignmentStrategy(AlignDrop))
	assert.True(t, ValidAlignmentStrategy(AlignCountMissing))
	assert.False(t, ValidAlignmentStrategy("ignore"))
	assert.False(t, ValidAlignmentStrategy(""))
}

func TestEvaluateDocument_AlignedSnippets(t *testing.T) {
	gold := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson), ent(10, 15, entities.TypeLocation)),
		snippet(2, ent(0, 3, entities.TypeOrganization)),
	)
	pred := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson)),
		snippet(2, ent(0, 3, entities.TypeOrganization), ent(8, 12, entities.TypeMisc)),
	)

	result := NewEvaluationService(AlignDrop).EvaluateDocument(gold, pred)

	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, 2, result.OverallExact.TruePositives)
	assert.Equal(t, 1, result.OverallExact.FalsePositives)
	assert.Equal(t, 1, result.OverallExact.FalseNegatives)
	assert.InDelta(t, 2.0/3.0, result.OverallExact.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, result.OverallExact.Recall, 1e-9)

	require.Len(t, result.Snippets, 2)
	assert.Equal(t, 1, result.Snippets[0].SnippetID)
	assert.Equal(t, 1, result.Snippets[0].Exact.TruePositives)
	assert.Equal(t, 1, result.Snippets[0].Exact.FalseNegatives)
	assert.Equal(t, 2, result.Snippets[1].SnippetID)
	assert.Equal(t, 1, result.Snippets[1].Exact.TruePositives)
	assert.Equal(t, 1, result.Snippets[1].Exact.FalsePositives)

	assert.Equal(t, 1, result.PerType[entities.TypePerson].TruePositives)
	assert.Equal(t, 1, result.PerType[entities.TypeLocation].FalseNegatives)
	assert.Equal(t, 1, result.PerType[entities.TypeMisc].FalsePositives)
}

func TestEvaluateDocument_DropStrategySkipsUnalignedSnippets(t *testing.T) {
	gold := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson)),
		snippet(2, ent(0, 3, entities.TypeLocation), ent(7, 9, entities.TypeLocation)),
	)
	pred := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson)),
	)

	result := NewEvaluationService(AlignDrop).EvaluateDocument(gold, pred)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "no predictions for snippet 2", result.Warnings[0])

	// The unaligned snippet's gold entities vanish from the counts entirely.
	assert.Equal(t, 1, result.OverallExact.TruePositives)
	assert.Equal(t, 0, result.OverallExact.FalseNegatives)
	require.Len(t, result.Snippets, 1)
	assert.Equal(t, 1, result.Snippets[0].SnippetID)
}

func TestEvaluateDocument_CountMissingScoresUnalignedGoldAsMisses(t *testing.T) {
	gold := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson)),
		snippet(2, ent(0, 3, entities.TypeLocation), ent(7, 9, entities.TypeLocation)),
	)
	pred := doc("doc-1",
		snippet(1, ent(0, 5, entities.TypePerson)),
	)

	result := NewEvaluationService(AlignCountMissing).EvaluateDocument(gold, pred)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "no predictions for snippet 2", result.Warnings[0])

	assert.Equal(t, 1, result.OverallExact.TruePositives)
	assert.Equal(t, 2, result.OverallExact.FalseNegatives)
	require.Len(t, result.Snippets, 2)
	assert.Equal(t, 2, result.Snippets[1].SnippetID)
	assert.Equal(t, 2, result.Snippets[1].Exact.FalseNegatives)
}

func TestNewEvaluationService_DefaultsToDrop(t *testing.T) {
	gold := doc("d", snippet(1, ent(0, 5, entities.TypePerson)))
	pred := doc("d")

	result := NewEvaluationService("").EvaluateDocument(gold, pred)

	assert.Equal(t, 0, result.OverallExact.FalseNegatives)
	assert.Empty(t, result.Snippets)
}

func TestEvaluateDocument_ExactAndPartialDiverge(t *testing.T) {
	gold := doc("doc-1", snippet(1, ent(0, 10, entities.TypePerson)))
	pred := doc("doc-1", snippet(1, ent(2, 8, entities.TypePerson)))

	result := NewEvaluationService(AlignDrop).EvaluateDocument(gold, pred)

	assert.Equal(t, 0, result.OverallExact.TruePositives)
	assert.Equal(t, 1, result.OverallPartial.TruePositives)
}

func TestAggregate_MicroAverages(t *testing.T) {
	results := []*entities.DocumentResult{
		{
			OverallExact: entities.Counts{TruePositives: 2, FalsePositives: 1}.Score(),
			PerType: map[entities.EntityType]entities.Scored{
				entities.TypePerson: entities.Counts{TruePositives: 2, FalsePositives: 1}.Score(),
			},
		},
		{
			OverallExact: entities.Counts{FalseNegatives: 3}.Score(),
			PerType: map[entities.EntityType]entities.Scored{
				entities.TypePerson:   entities.Counts{FalseNegatives: 2}.Score(),
				entities.TypeLocation: entities.Counts{FalseNegatives: 1}.Score(),
			},
		},
	}

	exact, _, perType := Aggregate(results)

	assert.Equal(t, 2, exact.TruePositives)
	assert.Equal(t, 1, exact.FalsePositives)
	assert.Equal(t, 3, exact.FalseNegatives)
	assert.InDelta(t, 2.0/3.0, exact.Precision, 1e-9)
	assert.InDelta(t, 2.0/5.0, exact.Recall, 1e-9)

	person := perType[entities.TypePerson]
	assert.Equal(t, 2, person.TruePositives)
	assert.Equal(t, 2, person.FalseNegatives)
	assert.Equal(t, 1, perType[entities.TypeLocation].FalseNegatives)
}

func TestAggregate_Empty(t *testing.T) {
	exact, partial, perType := Aggregate(nil)

	assert.Zero(t, exact.Counts)
	assert.Zero(t, partial.Counts)
	assert.Empty(t, perType)
}
