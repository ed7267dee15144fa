package catalog

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/HerbHall/herodex/internal/testutil"
	"github.com/HerbHall/herodex/pkg/models"
)

var (
	heroNameGen = rapid.StringMatching(`[a-zA-Z]{1,8}`)
	queryGen    = rapid.StringMatching(`[a-zA-Z]{1,3}`)
)

// genEngine draws a non-empty catalog and page size and returns an engine
// over them.
func genEngine(t *rapid.T) *Engine {
	names := rapid.SliceOfN(heroNameGen, 1, 40).Draw(t, "names")
	pageSize := rapid.IntRange(1, 10).Draw(t, "pageSize")

	store, err := NewStore(testutil.NamedHeroes(names...), pageSize)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewEngine(store)
}

func TestProperty_Pages_ConcatenateToCatalog(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		store := engine.Store()

		var got []models.Hero
		for k := 1; k <= store.PageCount(); k++ {
			res, err := engine.PageNumber(k)
			if err != nil {
				t.Fatalf("PageNumber(%d): %v", k, err)
			}
			if k < store.PageCount() && len(res.Heroes) != store.PageSize() {
				t.Fatalf("page %d has %d heroes, want %d", k, len(res.Heroes), store.PageSize())
			}
			got = append(got, res.Heroes...)
		}

		all := store.AllEntities()
		if len(got) != len(all) {
			t.Fatalf("pages hold %d heroes, catalog has %d", len(got), len(all))
		}
		for i := range all {
			if got[i].ID != all[i].ID {
				t.Fatalf("position %d: id %d, want %d", i, got[i].ID, all[i].ID)
			}
		}
	})
}

func TestProperty_Page_NeighbourLinks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		total := engine.Store().PageCount()
		k := rapid.IntRange(1, total).Draw(t, "page")

		res, err := engine.PageNumber(k)
		if err != nil {
			t.Fatalf("PageNumber(%d): %v", k, err)
		}
		if (k == 1) != (res.PrevPage == nil) {
			t.Fatalf("page %d: prevPage presence wrong", k)
		}
		if res.PrevPage != nil && *res.PrevPage != k-1 {
			t.Fatalf("page %d: prevPage = %d", k, *res.PrevPage)
		}
		if (k == total) != (res.NextPage == nil) {
			t.Fatalf("page %d of %d: nextPage presence wrong", k, total)
		}
		if res.NextPage != nil && *res.NextPage != k+1 {
			t.Fatalf("page %d: nextPage = %d", k, *res.NextPage)
		}
	})
}

func TestProperty_Page_OutOfRangeIsNotFound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		total := engine.Store().PageCount()
		k := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(total+1, total+1000),
		).Draw(t, "page")

		_, err := engine.Page(strconv.Itoa(k), true)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Page(%d) err = %v, want ErrNotFound", k, err)
		}
	})
}

func TestProperty_Search_SubsequenceOfCatalog(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		query := queryGen.Draw(t, "query")

		results := engine.Search(query)
		all := engine.Store().AllEntities()

		j := 0
		for _, r := range results {
			for j < len(all) && all[j].ID != r.ID {
				j++
			}
			if j == len(all) {
				t.Fatalf("result %d not in catalog order", r.ID)
			}
			j++
		}
	})
}

func TestProperty_Search_MatchesExactlyContainingNames(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		query := queryGen.Draw(t, "query")

		matched := make(map[int]bool)
		for _, h := range engine.Search(query) {
			matched[h.ID] = true
		}
		for _, h := range engine.Store().AllEntities() {
			want := strings.Contains(strings.ToLower(h.Name), strings.ToLower(query))
			if matched[h.ID] != want {
				t.Fatalf("hero %q with query %q: matched = %v, want %v", h.Name, query, matched[h.ID], want)
			}
		}
	})
}

func TestProperty_Search_CaseInsensitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		query := queryGen.Draw(t, "query")

		lower := engine.Search(strings.ToLower(query))
		upper := engine.Search(strings.ToUpper(query))
		if len(lower) != len(upper) {
			t.Fatalf("query %q: %d lower-case results, %d upper-case", query, len(lower), len(upper))
		}
		for i := range lower {
			if lower[i].ID != upper[i].ID {
				t.Fatalf("query %q: result %d differs", query, i)
			}
		}
	})
}

func TestProperty_Search_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := genEngine(t)
		query := queryGen.Draw(t, "query")

		first := engine.Search(query)
		second := engine.Search(query)
		if len(first) != len(second) {
			t.Fatalf("query %q: %d then %d results", query, len(first), len(second))
		}
	})
}
