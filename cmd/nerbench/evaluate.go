package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/nerbench/internal/application/handlers"
	"github.com/ersonp/nerbench/internal/domain/ports"
	"github.com/ersonp/nerbench/internal/domain/services"
	"github.com/ersonp/nerbench/internal/infrastructure/corpus"
	"github.com/ersonp/nerbench/internal/infrastructure/report"
)

type evaluateFlags struct {
	goldDir  string
	predDir  string
	output   string
	strategy string
	noStore  bool
}

func newEvaluateCmd() *cobra.Command {
	var flags evaluateFlags

	cmd := &cobra.Command{
		Use:   "evaluate <model>",
		Short: "Evaluate a model's predictions against the gold standard",
		Long: "Scores a model's prediction files against the gold standard and writes a " +
			"JSON report with exact, partial, per-type and per-snippet metrics plus " +
			"categorized error lists.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.goldDir, "gold-dir", "", "Directory with gold files (default: from config)")
	cmd.Flags().StringVar(&flags.predDir, "pred-dir", "", "Directory with per-model prediction directories (default: from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output JSON file for detailed results")
	cmd.Flags().StringVar(&flags.strategy, "strategy", string(services.AlignDrop),
		"Handling of gold snippets without predictions (drop, count-missing)")
	cmd.Flags().BoolVar(&flags.noStore, "no-store", false, "Do not record this run in the run history")

	return cmd
}

func runEvaluate(cmd *cobra.Command, model string, flags evaluateFlags) error {
	ctx := cmd.Context()

	strategy := services.AlignmentStrategy(flags.strategy)
	if !services.ValidAlignmentStrategy(strategy) {
		return fmt.Errorf("invalid strategy %q (valid: %s, %s)", flags.strategy, services.AlignDrop, services.AlignCountMissing)
	}

	d, err := loadDeps()
	if err != nil {
		return err
	}
	if flags.goldDir != "" {
		d.Config.Corpus.GoldDir = flags.goldDir
	}
	if flags.predDir != "" {
		d.Config.Corpus.PredictionsDir = flags.predDir
	}
	d.Corpus = corpus.NewStore(d.Config.Corpus)

	// Fatal conditions are checked up front so nothing is computed or
	// written for a run that cannot succeed.
	if err := d.Corpus.Verify(model); err != nil {
		return err
	}

	var runStore ports.RunStore
	if !flags.noStore {
		store, err := d.openRunStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
		runStore = store
	}

	handler := handlers.NewEvaluateHandler(d.Corpus, runStore, services.NewEvaluationService(strategy))

	fmt.Printf("Evaluating %s...\n", model)
	fmt.Printf("Gold standard: %s\n", d.Config.Corpus.GoldDir)
	fmt.Printf("Predictions:   %s\n\n", d.Config.Corpus.PredictionsDir)

	result, err := handler.Handle(ctx, model)
	if err != nil {
		return err
	}

	for _, doc := range result.Documents {
		for _, warning := range doc.Warnings {
			fmt.Fprintf(os.Stderr, "WARNING: %s: %s\n", doc.DocumentID, warning)
		}
	}
	for _, id := range result.SkippedDocs {
		fmt.Fprintf(os.Stderr, "WARNING: no predictions found for %s, skipped\n", id)
	}

	report.PrintReport(os.Stdout, result)
	report.PrintErrorSummary(os.Stdout, result.Documents)

	output := flags.output
	if output == "" {
		output = report.DefaultOutputPath(d.Config.Corpus.EvaluationDir, model)
	}
	if err := report.WriteJSON(output, result); err != nil {
		return err
	}
	fmt.Printf("Detailed results saved to: %s\n", output)

	return nil
}
