package catalog

import (
	"errors"
	"testing"

	"github.com/HerbHall/herodex/internal/testutil"
)

func TestNewStore_PageCount(t *testing.T) {
	tests := []struct {
		name     string
		heroes   int
		pageSize int
		want     int
	}{
		{"exact fit", 15, 3, 5},
		{"partial last page", 16, 3, 6},
		{"single page", 2, 3, 1},
		{"page size one", 4, 1, 4},
		{"page larger than catalog", 5, 100, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStore(testutil.Heroes(tc.heroes), tc.pageSize)
			if err != nil {
				t.Fatalf("NewStore: %v", err)
			}
			if got := s.PageCount(); got != tc.want {
				t.Errorf("PageCount() = %d, want %d", got, tc.want)
			}
			if got := s.Len(); got != tc.heroes {
				t.Errorf("Len() = %d, want %d", got, tc.heroes)
			}
		})
	}
}

func TestNewStore_Rejects(t *testing.T) {
	if _, err := NewStore(nil, 3); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty catalog: err = %v, want ErrEmptyCatalog", err)
	}
	if _, err := NewStore(testutil.Heroes(3), 0); err == nil {
		t.Error("page size 0: expected error")
	}
}

func TestStore_EntitiesOnPage_LastPagePartial(t *testing.T) {
	s, err := NewStore(testutil.Heroes(7), 3)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if got := len(s.EntitiesOnPage(1)); got != 3 {
		t.Errorf("page 1 size = %d, want 3", got)
	}
	last := s.EntitiesOnPage(3)
	if len(last) != 1 {
		t.Fatalf("page 3 size = %d, want 1", len(last))
	}
	if last[0].ID != 7 {
		t.Errorf("page 3 hero id = %d, want 7", last[0].ID)
	}
}

func TestStore_EntitiesOnPage_OutOfRangePanics(t *testing.T) {
	s, err := NewStore(testutil.Heroes(3), 3)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, k := range []int{0, -1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("EntitiesOnPage(%d): expected panic", k)
				}
			}()
			s.EntitiesOnPage(k)
		}()
	}
}

func TestStore_CopiesInput(t *testing.T) {
	heroes := testutil.Heroes(3)
	s, err := NewStore(heroes, 3)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	heroes[0].Name = "mutated"

	page := s.EntitiesOnPage(1)
	if page[0].Name != "hero-1" {
		t.Errorf("store shares caller slice: name = %q", page[0].Name)
	}
	page[1].Name = "mutated"
	if s.AllEntities()[1].Name != "hero-2" {
		t.Error("EntitiesOnPage result aliases store contents")
	}
}

func TestStore_PagesReconstructCatalog(t *testing.T) {
	s, err := NewStore(testutil.Heroes(11), 4)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	var ids []int
	for k := 1; k <= s.PageCount(); k++ {
		for _, h := range s.EntitiesOnPage(k) {
			ids = append(ids, h.ID)
		}
	}
	if len(ids) != 11 {
		t.Fatalf("reconstructed %d heroes, want 11", len(ids))
	}
	for i, id := range ids {
		if id != i+1 {
			t.Errorf("ids[%d] = %d, want %d", i, id, i+1)
		}
	}
}
