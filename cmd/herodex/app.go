package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/herodex/internal/catalog"
	"github.com/HerbHall/herodex/internal/config"
	pkgcatalog "github.com/HerbHall/herodex/pkg/catalog"
)

// newLogger builds the process logger from log.development.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.GetBool("log.development") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildEngine loads the dataset named by catalog.path (the embedded one when
// empty) and builds the store and query engine over it.
func buildEngine(cfg *config.Config) (*catalog.Engine, error) {
	ds := pkgcatalog.NewDataset()
	if path := cfg.GetString("catalog.path"); path != "" {
		var err error
		if ds, err = pkgcatalog.LoadFile(path); err != nil {
			return nil, err
		}
	}

	heroes, err := ds.Heroes()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := catalog.NewStore(heroes, cfg.GetInt("catalog.page_size"))
	if err != nil {
		return nil, fmt.Errorf("build catalog (%s): %w", ds.Source(), err)
	}
	return catalog.NewEngine(store), nil
}
