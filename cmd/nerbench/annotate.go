package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/nerbench/internal/application/handlers"
	"github.com/ersonp/nerbench/internal/domain/services"
)

func newAnnotateCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "annotate <model>",
		Short: "Generate draft predictions for the gold corpus",
		Long: "Runs the configured NER backend over every gold snippet and writes " +
			"snippet-aligned prediction files under the given model name. The drafts " +
			"are meant for human review before being promoted to gold, or for " +
			"evaluating the backend itself.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, args[0], backend)
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "Annotator backend (hugot, openai; default: from config)")

	return cmd
}

func runAnnotate(cmd *cobra.Command, model string, backend string) error {
	ctx := cmd.Context()

	d, err := loadDeps()
	if err != nil {
		return err
	}
	if backend != "" {
		d.Config.Annotator.Backend = backend
	}

	if err := d.Corpus.Verify(""); err != nil {
		return err
	}

	annotator, cleanup, err := d.buildAnnotator()
	if err != nil {
		return err
	}
	defer cleanup()

	handler := handlers.NewAnnotateHandler(d.Corpus, services.NewAnnotationService(annotator))

	fmt.Printf("Annotating gold corpus with %s (%s backend)...\n", model, d.Config.Annotator.Backend)

	result, err := handler.Handle(ctx, model)
	if err != nil {
		return err
	}

	fmt.Printf("Annotated %d document(s), %d snippet(s), %d entities.\n",
		result.Documents, result.Snippets, result.Entities)
	fmt.Printf("Predictions written under %s/%s\n", d.Config.Corpus.PredictionsDir, model)

	return nil
}
