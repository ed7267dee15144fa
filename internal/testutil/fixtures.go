package testutil

import (
	"fmt"

	"github.com/HerbHall/herodex/pkg/models"
)

// NewHero returns a Hero with sensible defaults, suitable for test fixtures.
// Override individual fields with options.
func NewHero(opts ...func(*models.Hero)) models.Hero {
	h := models.Hero{
		ID:          1,
		Name:        "Test Hero",
		Image:       "/images/test.jpg",
		About:       "A hero used in tests.",
		Rating:      4.5,
		Power:       90,
		Month:       "Jan",
		Day:         "1st",
		Family:      []string{},
		Abilities:   []string{"Testing"},
		NatureTypes: []string{"Fire"},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// WithID sets the hero id.
func WithID(id int) func(*models.Hero) {
	return func(h *models.Hero) { h.ID = id }
}

// WithName sets the hero name.
func WithName(name string) func(*models.Hero) {
	return func(h *models.Hero) { h.Name = name }
}

// Heroes returns n heroes with ids 1..n named "hero-1".."hero-n".
func Heroes(n int) []models.Hero {
	out := make([]models.Hero, n)
	for i := range out {
		out[i] = NewHero(WithID(i+1), WithName(fmt.Sprintf("hero-%d", i+1)))
	}
	return out
}

// NamedHeroes returns one hero per name, with ids assigned in order.
func NamedHeroes(names ...string) []models.Hero {
	out := make([]models.Hero, len(names))
	for i, name := range names {
		out[i] = NewHero(WithID(i+1), WithName(name))
	}
	return out
}
