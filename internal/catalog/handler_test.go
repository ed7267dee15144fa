package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/herodex/internal/testutil"
)

func newTestMux(t *testing.T) (*http.ServeMux, *Metrics, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock()
	engine := newTestEngine(t, WithClock(clock.Now))
	metrics := NewMetrics(prometheus.NewRegistry())
	metrics.SetCatalogSize(engine.Store())

	mux := http.NewServeMux()
	NewHandler(engine, metrics, testutil.Logger(t)).RegisterRoutes(mux)
	return mux, metrics, clock
}

func doGet(t *testing.T, mux http.Handler, target string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return rec, resp
}

func TestHandleListHeroes_AllPages(t *testing.T) {
	mux, _, clock := newTestMux(t)

	for page := 1; page <= 5; page++ {
		t.Run(fmt.Sprintf("page %d", page), func(t *testing.T) {
			rec, resp := doGet(t, mux, fmt.Sprintf("/catalog/entities?page=%d", page))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.True(t, resp.Success)
			assert.Equal(t, MessageFetched, resp.Message)
			require.Len(t, resp.Heroes, 3)
			assert.Equal(t, (page-1)*3+1, resp.Heroes[0].ID)

			if page == 1 {
				assert.Nil(t, resp.PrevPage)
			} else {
				require.NotNil(t, resp.PrevPage)
				assert.Equal(t, page-1, *resp.PrevPage)
			}
			if page == 5 {
				assert.Nil(t, resp.NextPage)
			} else {
				require.NotNil(t, resp.NextPage)
				assert.Equal(t, page+1, *resp.NextPage)
			}
			require.NotNil(t, resp.LastUpdated)
			assert.Equal(t, clock.Now().UnixMilli(), *resp.LastUpdated)
		})
	}
}

func TestHandleListHeroes_NoPageParam(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec, resp := doGet(t, mux, "/catalog/entities")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Heroes, 3)
	assert.Equal(t, "Sasuke", resp.Heroes[0].Name)
	assert.Nil(t, resp.PrevPage)
}

func TestHandleListHeroes_NullPagingFieldsPresent(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec, _ := doGet(t, mux, "/catalog/entities?page=1")
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	prev, ok := raw["prevPage"]
	require.True(t, ok, "prevPage key missing")
	assert.Equal(t, "null", string(prev))
	assert.Contains(t, raw, "nextPage")
	assert.Contains(t, raw, "lastUpdated")
}

func TestHandleListHeroes_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"past last page", "page=6", MessageNotFound},
		{"zero", "page=0", MessageNotFound},
		{"negative", "page=-3", MessageNotFound},
		{"not a number", "page=invalid", MessageInvalidPage},
		{"empty value", "page=", MessageInvalidPage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mux, _, _ := newTestMux(t)
			rec, resp := doGet(t, mux, "/catalog/entities?"+tc.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
			assert.Empty(t, resp.Heroes)
			assert.NotNil(t, resp.Heroes)
			assert.Nil(t, resp.PrevPage)
			assert.Nil(t, resp.NextPage)
			assert.Nil(t, resp.LastUpdated)
		})
	}
}

func TestHandleListHeroes_LegacyPath(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec, resp := doGet(t, mux, "/boruto/heroes?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Heroes, 3)
	assert.Equal(t, 4, resp.Heroes[0].ID)
}

func TestHandleSearchHeroes(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"name=kak", []string{"Kakashi"}},
		{"name=SASUKE", []string{"Sasuke"}},
		{"name=shiki", []string{"Isshiki", "Momoshiki", "Kinshiki"}},
		{"name=", []string{}},
		{"", []string{}},
		{"name=kavrin", []string{}},
		{"name=%C3%9F", []string{}},
		{"name=%E1%BA%9E", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			mux, _, _ := newTestMux(t)
			rec, resp := doGet(t, mux, "/catalog/entities/search?"+tc.query)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, resp.Success)
			assert.Equal(t, MessageSearchOK, resp.Message)
			assert.Nil(t, resp.LastUpdated)

			names := make([]string, 0, len(resp.Heroes))
			for _, h := range resp.Heroes {
				names = append(names, h.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestHandleSearchHeroes_MatchesA(t *testing.T) {
	mux, _, _ := newTestMux(t)

	_, resp := doGet(t, mux, "/boruto/heroes/search?name=a")
	assert.Len(t, resp.Heroes, 9)
}

func TestHandleSearchHeroes_EmptyIsArray(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec, _ := doGet(t, mux, "/catalog/entities/search?name=")
	assert.True(t, strings.Contains(rec.Body.String(), `"heroes":[]`), "body: %s", rec.Body.String())
}

func TestHandler_RejectsNonGet(t *testing.T) {
	mux, _, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/catalog/entities", http.NoBody)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_RecordsMetrics(t *testing.T) {
	mux, metrics, _ := newTestMux(t)

	doGet(t, mux, "/catalog/entities?page=1")
	doGet(t, mux, "/catalog/entities?page=2")
	doGet(t, mux, "/catalog/entities?page=9")
	doGet(t, mux, "/catalog/entities?page=x")
	doGet(t, mux, "/catalog/entities/search?name=kak")
	doGet(t, mux, "/catalog/entities/search?name=")
	doGet(t, mux, "/catalog/entities/search?name=zzz")

	q := metrics.queries
	assert.InDelta(t, 2, promtestutil.ToFloat64(q.WithLabelValues("page", OutcomeOK)), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(q.WithLabelValues("page", OutcomeNotFound)), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(q.WithLabelValues("page", OutcomeInvalidFormat)), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(q.WithLabelValues("search", OutcomeOK)), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(q.WithLabelValues("search", OutcomeEmptyQuery)), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(q.WithLabelValues("search", OutcomeNoMatch)), 0)

	assert.InDelta(t, 15, promtestutil.ToFloat64(metrics.heroes), 0)
	assert.InDelta(t, 5, promtestutil.ToFloat64(metrics.pages), 0)
}

func TestHandler_NilMetrics(t *testing.T) {
	engine := newTestEngine(t)
	mux := http.NewServeMux()
	NewHandler(engine, nil, testutil.Logger(t)).RegisterRoutes(mux)

	rec, resp := doGet(t, mux, "/catalog/entities?page=6")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MessageNotFound, resp.Message)
}
