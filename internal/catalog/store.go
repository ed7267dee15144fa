// Package catalog implements the hero catalog: the paged in-memory store,
// the query engine that validates page numbers and filters by name, and the
// HTTP handler that renders both as JSON.
package catalog

import (
	"errors"
	"fmt"

	"github.com/HerbHall/herodex/pkg/models"
)

// DefaultPageSize is the number of heroes per page when none is configured.
const DefaultPageSize = 3

// ErrEmptyCatalog is returned by NewStore when the dataset has no heroes.
var ErrEmptyCatalog = errors.New("catalog: dataset contains no heroes")

// Store is the read-only, page-partitioned hero collection. It is immutable
// after NewStore returns, so it may be shared across goroutines freely.
type Store struct {
	heroes    []models.Hero
	pageSize  int
	pageCount int
}

// NewStore builds a Store over heroes, cut into pages of pageSize entries.
// The slice is copied.
func NewStore(heroes []models.Hero, pageSize int) (*Store, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("catalog: page size must be positive, got %d", pageSize)
	}
	if len(heroes) == 0 {
		return nil, ErrEmptyCatalog
	}

	cp := make([]models.Hero, len(heroes))
	copy(cp, heroes)

	return &Store{
		heroes:    cp,
		pageSize:  pageSize,
		pageCount: (len(cp) + pageSize - 1) / pageSize,
	}, nil
}

// PageCount returns the number of pages.
func (s *Store) PageCount() int {
	return s.pageCount
}

// PageSize returns the configured number of heroes per page.
func (s *Store) PageSize() int {
	return s.pageSize
}

// Len returns the total number of heroes.
func (s *Store) Len() int {
	return len(s.heroes)
}

// EntitiesOnPage returns the heroes on 1-based page k. Callers must validate
// k first: a page outside [1, PageCount()] panics.
func (s *Store) EntitiesOnPage(k int) []models.Hero {
	if k < 1 || k > s.pageCount {
		panic(fmt.Sprintf("catalog: page %d outside [1, %d]", k, s.pageCount))
	}
	start := (k - 1) * s.pageSize
	end := min(start+s.pageSize, len(s.heroes))

	out := make([]models.Hero, end-start)
	copy(out, s.heroes[start:end])
	return out
}

// AllEntities returns every hero in catalog order.
func (s *Store) AllEntities() []models.Hero {
	out := make([]models.Hero, len(s.heroes))
	copy(out, s.heroes)
	return out
}
