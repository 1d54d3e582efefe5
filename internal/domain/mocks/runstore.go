package mocks

import (
	"context"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// RunStore is a mock implementation of ports.RunStore.
type RunStore struct {
	Runs    []entities.Run
	SaveErr error
	ListErr error
}

// EnsureSchema is a no-op.
func (m *RunStore) EnsureSchema(_ context.Context) error {
	return nil
}

// SaveRun appends the run.
func (m *RunStore) SaveRun(_ context.Context, run *entities.Run) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Runs = append(m.Runs, *run)
	return nil
}

// ListRuns returns runs newest-last insertion order reversed.
func (m *RunStore) ListRuns(_ context.Context, model string, limit int) ([]entities.Run, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var runs []entities.Run
	for i := len(m.Runs) - 1; i >= 0; i-- {
		if model != "" && m.Runs[i].ModelName != model {
			continue
		}
		runs = append(runs, m.Runs[i])
		if limit > 0 && len(runs) >= limit {
			break
		}
	}
	return runs, nil
}

// FindRun returns the run with the given ID, or nil.
func (m *RunStore) FindRun(_ context.Context, id string) (*entities.Run, error) {
	for i := range m.Runs {
		if m.Runs[i].ID == id {
			run := m.Runs[i]
			return &run, nil
		}
	}
	return nil, nil
}

// Close is a no-op.
func (m *RunStore) Close() error {
	return nil
}
