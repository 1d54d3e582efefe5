// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// Annotator is a mock implementation of ports.Annotator.
type Annotator struct {
	// Entities returned for every call when ByText is nil.
	Entities []entities.Entity
	// ByText maps snippet text to the entities returned for it.
	ByText map[string][]entities.Entity
	// Err is returned by every call when set.
	Err error

	// Calls records the texts passed to Annotate, in order.
	Calls []string
}

// Annotate returns the configured entities or error.
func (m *Annotator) Annotate(_ context.Context, text string) ([]entities.Entity, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ByText != nil {
		return m.ByText[text], nil
	}
	return m.Entities, nil
}
