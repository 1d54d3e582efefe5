package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

func TestNewAnnotator(t *testing.T) {
	_, err := NewAnnotator(config.AnnotatorConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	a, err := NewAnnotator(config.AnnotatorConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", a.model)
	assert.Nil(t, a.limiter)

	a, err = NewAnnotator(config.AnnotatorConfig{APIKey: "sk-test", Model: "gpt-4o", RequestsPerMinute: 30})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", a.model)
	assert.NotNil(t, a.limiter)
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain json",
			content: `[{"text": "Fort Garry"}]`,
			want:    `[{"text": "Fort Garry"}]`,
		},
		{
			name:    "json code block",
			content: "```json\n[{\"text\": \"Fort Garry\"}]\n```",
			want:    `[{"text": "Fort Garry"}]`,
		},
		{
			name:    "bare code block",
			content: "```\n[]\n```",
			want:    `[]`,
		},
		{
			name:    "surrounding whitespace",
			content: "  \n[]\n  ",
			want:    `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.content))
		})
	}
}

func TestRepairOffsets(t *testing.T) {
	text := "Fort Garry stood near the Red River."

	tests := []struct {
		name      string
		entity    entities.Entity
		wantStart int
		wantEnd   int
	}{
		{
			name:      "correct offsets untouched",
			entity:    entities.Entity{Text: "Fort Garry", Start: 0, End: 10},
			wantStart: 0,
			wantEnd:   10,
		},
		{
			name:      "miscounted offsets repaired by substring search",
			entity:    entities.Entity{Text: "Red River", Start: 20, End: 29},
			wantStart: 26,
			wantEnd:   35,
		},
		{
			name:      "out of range offsets repaired",
			entity:    entities.Entity{Text: "Fort Garry", Start: -3, End: 100},
			wantStart: 0,
			wantEnd:   10,
		},
		{
			name:      "hallucinated text left as-is",
			entity:    entities.Entity{Text: "Winnipeg", Start: 5, End: 13},
			wantStart: 5,
			wantEnd:   13,
		},
		{
			name:      "empty text left as-is",
			entity:    entities.Entity{Text: "", Start: 2, End: 2},
			wantStart: 2,
			wantEnd:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repairOffsets(text, tt.entity)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
			assert.Equal(t, tt.entity.Text, got.Text, "repair never rewrites the text")
		})
	}
}
