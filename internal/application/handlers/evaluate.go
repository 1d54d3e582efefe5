// Package handlers coordinates domain services for CLI commands.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/domain/ports"
	"github.com/ersonp/nerbench/internal/domain/services"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// ErrNoDocuments is returned when every gold document was skipped, typically
// because the model produced no prediction files at all.
var ErrNoDocuments = errors.New("no documents were evaluated")

// EvaluateHandler runs a full corpus evaluation for one model.
type EvaluateHandler struct {
	corpus  ports.CorpusStore
	runs    ports.RunStore
	service *services.EvaluationService
}

// NewEvaluateHandler creates an evaluate handler. The run store may be nil,
// in which case runs are not persisted.
func NewEvaluateHandler(corpus ports.CorpusStore, runs ports.RunStore, service *services.EvaluationService) *EvaluateHandler {
	return &EvaluateHandler{
		corpus:  corpus,
		runs:    runs,
		service: service,
	}
}

// Handle evaluates the model against every gold document in the corpus.
// Documents without a prediction file are skipped and recorded in the
// report; zero gold files or zero evaluated documents are errors. Corpus
// totals are micro-averaged: counts summed across documents, rates computed
// once from the totals.
func (h *EvaluateHandler) Handle(ctx context.Context, model string) (*entities.RunReport, error) {
	ids, err := h.corpus.GoldDocumentIDs()
	if err != nil {
		return nil, fmt.Errorf("listing gold documents: %w", err)
	}
	if len(ids) == 0 {
		return nil, errors.New("no gold standard files found")
	}

	report := &entities.RunReport{
		ModelName:      model,
		EvaluationDate: timeNow(),
	}

	for _, id := range ids {
		gold, err := h.corpus.LoadGold(id)
		if err != nil {
			return nil, fmt.Errorf("loading gold document %s: %w", id, err)
		}

		pred, err := h.corpus.LoadPredictions(model, id)
		if errors.Is(err, ports.ErrNoPredictions) {
			report.SkippedDocs = append(report.SkippedDocs, id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading predictions for %s: %w", id, err)
		}

		report.Documents = append(report.Documents, h.service.EvaluateDocument(gold, pred))
	}

	if len(report.Documents) == 0 {
		return nil, ErrNoDocuments
	}

	report.TotalDocuments = len(report.Documents)
	report.CorpusExact, report.CorpusPartial, report.PerType = services.Aggregate(report.Documents)

	if h.runs != nil {
		if err := h.saveRun(ctx, report); err != nil {
			return nil, fmt.Errorf("saving run: %w", err)
		}
	}

	return report, nil
}

func (h *EvaluateHandler) saveRun(ctx context.Context, report *entities.RunReport) error {
	run := &entities.Run{
		ID:             uuid.New().String(),
		ModelName:      report.ModelName,
		CreatedAt:      report.EvaluationDate,
		TotalDocuments: report.TotalDocuments,
		Exact:          report.CorpusExact,
		Partial:        report.CorpusPartial,
	}
	return h.runs.SaveRun(ctx, run)
}
