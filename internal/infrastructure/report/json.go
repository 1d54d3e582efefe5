// Package report renders evaluation results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// WriteJSON writes the full run report to path, creating parent directories
// as needed. The file is written via a temp file rename so a crashed run
// never leaves a partial report behind.
func WriteJSON(path string, report *entities.RunReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming report: %w", err)
	}
	return nil
}

// DefaultOutputPath returns the conventional report location for a model.
func DefaultOutputPath(evaluationDir, model string) string {
	return filepath.Join(evaluationDir, model+"_evaluation.json")
}
