package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/HerbHall/herodex/pkg/models"
)

// PageResult is one validated page of the catalog.
type PageResult struct {
	Page     int
	Heroes   []models.Hero
	PrevPage *int // nil on the first page
	NextPage *int // nil on the last page
}

// Engine answers page and name-search queries against a Store. It has no
// mutable state and is safe for concurrent use.
type Engine struct {
	store *Store
	now   func() time.Time

	// folded holds the case-folded hero names, index-aligned with the store.
	folded []string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock sets the time source used for the lastUpdated stamp.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a query engine backed by the given store.
func NewEngine(store *Store, opts ...EngineOption) *Engine {
	e := &Engine{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	heroes := store.AllEntities()
	e.folded = make([]string, len(heroes))
	for i := range heroes {
		e.folded[i] = foldCase(heroes[i].Name)
	}
	return e
}

// foldCase maps every rune of s to one representative of its case class, one
// rune at a time, so s keeps its rune count and a substring of the result is
// a case-insensitive substring of s. ß and ﬁ stay single runes and never
// match "ss" or "fi".
func foldCase(s string) string {
	return strings.Map(func(r rune) rune {
		return unicode.ToLower(unicode.ToUpper(r))
	}, s)
}

// Store returns the store the engine reads from.
func (e *Engine) Store() *Store {
	return e.store
}

// Page resolves a raw page parameter. present is false when the caller did
// not supply one at all, which selects page 1. A present but malformed value
// yields ErrInvalidFormat; a number outside the catalog yields ErrNotFound.
func (e *Engine) Page(raw string, present bool) (PageResult, error) {
	page := 1
	if present {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return PageResult{}, ErrInvalidFormat.withCause(err)
		}
		page = n
	}
	return e.PageNumber(page)
}

// PageNumber returns page n, or ErrNotFound when n is outside the catalog.
func (e *Engine) PageNumber(n int) (PageResult, error) {
	total := e.store.PageCount()
	if n < 1 || n > total {
		return PageResult{}, ErrNotFound
	}

	res := PageResult{
		Page:   n,
		Heroes: e.store.EntitiesOnPage(n),
	}
	if n > 1 {
		prev := n - 1
		res.PrevPage = &prev
	}
	if n < total {
		next := n + 1
		res.NextPage = &next
	}
	return res, nil
}

// Search returns every hero whose name contains query, ignoring case, in
// catalog order. An empty or blank query matches nothing.
func (e *Engine) Search(query string) []models.Hero {
	heroes, _ := e.search(query)
	return heroes
}

// search is Search plus the outcome label of the query.
func (e *Engine) search(query string) ([]models.Hero, string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Hero{}, OutcomeEmptyQuery
	}

	needle := foldCase(query)
	heroes := e.store.AllEntities()
	out := make([]models.Hero, 0)
	for i := range heroes {
		if strings.Contains(e.folded[i], needle) {
			out = append(out, heroes[i])
		}
	}
	if len(out) == 0 {
		return out, OutcomeNoMatch
	}
	return out, OutcomeOK
}

// Response is a rendered answer to a catalog query.
type Response struct {
	Status int
	Body   APIResponse

	// Outcome is one of the Outcome* labels.
	Outcome string

	// Err is the rejection cause, nil on success.
	Err error
}

// RespondPage runs the pagination path and renders its result.
func (e *Engine) RespondPage(raw string, present bool) Response {
	res, err := e.Page(raw, present)
	if err != nil {
		return Response{
			Status:  errorStatus(err),
			Body:    NewErrorResponse(err),
			Outcome: errorOutcome(err),
			Err:     err,
		}
	}
	return Response{
		Status:  http.StatusOK,
		Body:    NewPageResponse(res, e.now()),
		Outcome: OutcomeOK,
	}
}

// RespondSearch runs the search path and renders its result. Search never
// fails.
func (e *Engine) RespondSearch(query string) Response {
	heroes, outcome := e.search(query)
	return Response{
		Status:  http.StatusOK,
		Body:    NewSearchResponse(heroes),
		Outcome: outcome,
	}
}

func errorOutcome(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidFormat):
		return OutcomeInvalidFormat
	default:
		return OutcomeError
	}
}
