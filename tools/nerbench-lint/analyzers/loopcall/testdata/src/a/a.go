package a

import "context"

type RunStore interface {
	SaveRun(ctx context.Context, id string) error
}

type Pipeline interface {
	RunPipeline(texts []string) error
}

func bad(ctx context.Context, ids []string, store RunStore, p Pipeline) {
	for _, id := range ids {
		store.SaveRun(ctx, id)      // want "potential N\\+1: SaveRun called inside loop"
		p.RunPipeline([]string{id}) // want "potential N\\+1: RunPipeline called inside loop"
	}
}

func good(ctx context.Context, ids []string) {
	// No external calls - should not flag
	for _, id := range ids {
		_ = len(id)
	}
}
