package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DefaultRunsLimit bounds how many runs are listed by default.
const DefaultRunsLimit = 20

func newRunsCmd() *cobra.Command {
	var (
		model string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past evaluation runs",
		Long:  "Lists stored evaluation runs, newest first, for comparing models over time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, model, limit)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Filter by model name")
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultRunsLimit, "Maximum number of runs to display")

	return cmd
}

func runRuns(cmd *cobra.Command, model string, limit int) error {
	ctx := cmd.Context()

	d, err := loadDeps()
	if err != nil {
		return err
	}

	store, err := d.openRunStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(ctx, model, limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-36s %-20s %-20s %-6s %-8s %-8s %-8s\n", "Run", "Model", "Date", "Docs", "P", "R", "F1")
	for _, run := range runs {
		fmt.Printf("%-36s %-20s %-20s %-6d %-8.3f %-8.3f %-8.3f\n",
			run.ID,
			run.ModelName,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.TotalDocuments,
			run.Exact.Precision,
			run.Exact.Recall,
			run.Exact.F1,
		)
	}

	return nil
}
