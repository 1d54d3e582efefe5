package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/nerbench/internal/domain/ports"
	hugotannotator "github.com/ersonp/nerbench/internal/infrastructure/annotator/hugot"
	openaiannotator "github.com/ersonp/nerbench/internal/infrastructure/annotator/openai"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
	"github.com/ersonp/nerbench/internal/infrastructure/corpus"
	"github.com/ersonp/nerbench/internal/infrastructure/runstore/sqlite"
)

// deps holds shared dependencies for commands.
type deps struct {
	Config *config.Config
	Corpus *corpus.Store
}

// loadDeps loads config and builds the corpus store. Commands that need the
// run store or an annotator build them on top, since those carry extra
// setup cost (database file, model download).
func loadDeps() (*deps, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &deps{
		Config: cfg,
		Corpus: corpus.NewStore(cfg.Corpus),
	}, nil
}

// openRunStore opens the run history database and ensures its schema.
func (d *deps) openRunStore(ctx context.Context) (*sqlite.Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: d.Config.SQLitePath(cwd)})
	if err != nil {
		return nil, fmt.Errorf("opening run store: %w", err)
	}

	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ensuring run store schema: %w", err)
	}
	return store, nil
}

// buildAnnotator constructs the configured annotation backend. The returned
// cleanup function releases backend resources and may be nil-safe to call.
func (d *deps) buildAnnotator() (ports.Annotator, func(), error) {
	cfg := d.Config.Annotator

	switch cfg.Backend {
	case "", "hugot":
		a, err := hugotannotator.NewAnnotator(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("creating hugot annotator: %w", err)
		}
		return a, func() { _ = a.Close() }, nil
	case "openai":
		a, err := openaiannotator.NewAnnotator(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("creating openai annotator: %w", err)
		}
		return a, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown annotator backend %q (valid: hugot, openai)", cfg.Backend)
	}
}
