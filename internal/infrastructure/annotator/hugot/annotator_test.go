package hugot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  entities.EntityType
	}{
		{label: "LOC", want: entities.TypeLocation},
		{label: "B-LOC", want: entities.TypeLocation},
		{label: "I-PER", want: entities.TypePerson},
		{label: "PERSON", want: entities.TypePerson},
		{label: "GPE", want: entities.TypeLocation},
		{label: "B-ORG", want: entities.TypeOrganization},
		{label: "ORGANIZATION", want: entities.TypeOrganization},
		{label: "NORP", want: entities.TypeMisc},
		{label: "I-MISC", want: entities.TypeMisc},
		// Unknown labels pass through unchanged.
		{label: "DATE", want: entities.EntityType("DATE")},
		{label: "B-DATE", want: entities.EntityType("DATE")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeLabel(tt.label), "label %q", tt.label)
	}
}
