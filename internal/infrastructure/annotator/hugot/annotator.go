// Package hugot provides an Annotator implementation running a local ONNX
// token-classification model.
package hugot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

// labelMap normalizes model label schemes onto the canonical tags. Covers
// the CoNLL-style labels emitted by distilbert-NER and the longer names some
// models use. Unknown labels pass through unchanged: type is an open tag.
var labelMap = map[string]entities.EntityType{
	"LOC":          entities.TypeLocation,
	"GPE":          entities.TypeLocation,
	"FAC":          entities.TypeLocation,
	"PER":          entities.TypePerson,
	"PERSON":       entities.TypePerson,
	"ORG":          entities.TypeOrganization,
	"ORGANIZATION": entities.TypeOrganization,
	"MISC":         entities.TypeMisc,
	"NORP":         entities.TypeMisc,
	"EVENT":        entities.TypeMisc,
	"LAW":          entities.TypeMisc,
}

// Annotator implements ports.Annotator with a hugot NER pipeline.
type Annotator struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewAnnotator downloads the configured model if needed and builds the NER
// pipeline.
func NewAnnotator(cfg config.AnnotatorConfig) (*Annotator, error) {
	modelPath, err := prepareModel(cfg.Model, cfg.ModelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("creating hugot session: %w", err)
	}

	pipelineCfg := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-annotator",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}),
		},
	}
	pipeline, err := hugot.NewPipeline(session, pipelineCfg)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("creating NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("creating NER pipeline: %w", err)
	}

	return &Annotator{
		session:  session,
		pipeline: pipeline,
	}, nil
}

// Annotate runs the NER pipeline over the text. Offsets come straight from
// the tokenizer and are already character positions into the input.
func (a *Annotator) Annotate(ctx context.Context, text string) ([]entities.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := a.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("running NER pipeline: %w", err)
	}
	if len(result.Entities) == 0 {
		return nil, nil
	}

	var detected []entities.Entity
	for _, e := range result.Entities[0] {
		detected = append(detected, entities.Entity{
			Text:       strings.TrimSpace(e.Word),
			Start:      int(e.Start),
			End:        int(e.End),
			Type:       normalizeLabel(e.Entity),
			Confidence: float64(e.Score),
		})
	}
	return detected, nil
}

// Close destroys the hugot session.
func (a *Annotator) Close() error {
	return a.session.Destroy()
}

// normalizeLabel strips BIO prefixes and maps the label onto the canonical
// tag set where possible.
func normalizeLabel(label string) entities.EntityType {
	label = strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")
	if mapped, ok := labelMap[label]; ok {
		return mapped
	}
	return entities.EntityType(label)
}

// prepareModel downloads the model into modelDir unless it is already
// cached, and returns the local model path.
func prepareModel(modelName, modelDir string) (string, error) {
	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))

	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		if err := os.MkdirAll(modelDir, 0755); err != nil {
			return "", fmt.Errorf("creating model directory: %w", err)
		}
		opts := hugot.NewDownloadOptions()
		opts.OnnxFilePath = "model.onnx"
		downloaded, err := hugot.DownloadModel(modelName, modelDir, opts)
		if err != nil {
			return "", fmt.Errorf("downloading model %s: %w", modelName, err)
		}
		modelPath = downloaded
	}

	return modelPath, nil
}
