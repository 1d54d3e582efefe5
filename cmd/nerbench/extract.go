package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/nerbench/internal/domain/services"
	"github.com/ersonp/nerbench/internal/infrastructure/corpus"
)

func newExtractCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "extract <ocr-dir>",
		Short: "Extract annotation snippets from OCR documents",
		Long: "Selects entity-dense passages from OCR JSON files and writes snippet " +
			"files ready for annotation. Small documents are kept whole; larger ones " +
			"contribute a size-dependent number of snippets.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", filepath.Join("test_dataset", "snippets"), "Directory for snippet files")

	return cmd
}

func runExtract(ocrDir, outputDir string) error {
	matches, err := filepath.Glob(filepath.Join(ocrDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing OCR files: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no OCR files found in %s", ocrDir)
	}

	service := services.NewSnippetService()
	extracted := 0

	for _, path := range matches {
		docID := strings.TrimSuffix(filepath.Base(path), ".json")

		doc, err := corpus.ReadOCRDocument(path)
		if err != nil {
			return err
		}

		if len(strings.TrimSpace(doc.Text)) < 50 {
			fmt.Fprintf(os.Stderr, "WARNING: %s has insufficient text, skipped\n", docID)
			continue
		}

		wordCount := len(strings.Fields(doc.Text))
		budget, strategy := service.SnippetBudget(wordCount)
		snippets := service.Extract(doc.Text, budget)

		metadata := map[string]any{
			"word_count":          wordCount,
			"char_count":          len(doc.Text),
			"total_pages":         doc.TotalPages,
			"extraction_strategy": strategy,
			"num_snippets":        len(snippets),
		}

		out, err := corpus.WriteSnippets(outputDir, &corpus.SnippetDocument{
			DocumentID: docID,
			Metadata:   metadata,
			Snippets:   snippets,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d snippet(s) (%s) -> %s\n", docID, len(snippets), strategy, out)
		extracted++
	}

	if extracted == 0 {
		return fmt.Errorf("no documents with usable text in %s", ocrDir)
	}

	fmt.Printf("\nExtracted snippets from %d document(s).\n", extracted)
	return nil
}
