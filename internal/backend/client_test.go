package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscy/oscy-web/internal/cache"
)

const ceremonyJSON = `{
  "editions": [{
    "id": 96, "iteration": 96, "official_year": "2023", "ceremony_date": "2024-03-10",
    "categories": [{
      "category_id": 1, "short_name": "Picture",
      "nominees": [{"winner": true, "pending": false, "is_person": false,
        "titles": [{"id": 7, "title": "Oppenheimer", "imdb_id": "tt15398776", "title_winner": true}],
        "people": []}]
    }]
  }],
  "stats": {
    "title_stats": [{"id": 7, "imdb_id": "tt15398776", "title": "Oppenheimer", "noms": 13, "wins": 7}],
    "entity_stats": [{"id": 3, "imdb_id": "nm0634240", "aliases": ["Christopher Nolan"], "total_noms": 3, "total_wins": 2}]
  }
}`

func newTestServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Query().Get("start_edition") {
		case "96":
			w.Write([]byte(ceremonyJSON))
		case "0":
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.Write([]byte(`{"editions": [], "stats": {"title_stats": [], "entity_stats": []}}`))
		}
	})
	mux.HandleFunc("GET /ceremonies", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"id": 1, "award": 0, "iteration": 1, "official_year": "1927/28", "ceremony_date": "1929-05-16"}]`))
	})
	mux.HandleFunc("GET /categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.PathValue("id") {
		case "1":
			w.Write([]byte(`{"category_id": 1, "category": "Picture", "category_names": [{"common_name": "Picture", "ranges": [[1, 96]]}], "nominations": {"editions": [], "stats": {}}}`))
		case "404":
			w.Write([]byte(`null`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCeremony(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 100)

	n, err := c.Ceremony(context.Background(), 96)
	require.NoError(t, err)
	require.Len(t, n.Editions, 1)
	assert.Equal(t, "Picture", n.Editions[0].Categories[0].ShortName)
	assert.Equal(t, 7, n.Stats.TitleStats[0].Wins)
	assert.Equal(t, []string{"Christopher Nolan"}, n.Stats.EntityStats[0].Aliases)
}

func TestCeremonyNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 100)

	_, err := c.Ceremony(context.Background(), 120)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Ceremony(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategory(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 100)

	cat, err := c.Category(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Picture", cat.Category)
	assert.Equal(t, [][2]int{{1, 96}}, cat.CategoryNames[0].Ranges)

	_, err = c.Category(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Category(context.Background(), 500)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "boom")
}

func TestResponsesAreCached(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	cc := cache.New(true)
	defer cc.Close()
	c := NewClient(srv.URL, 100, WithCache(cc))

	for range 3 {
		got, err := c.Ceremonies(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1927/28", got[0].OfficialYear)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestTTLForPending(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 100)

	n, err := c.Ceremony(context.Background(), 96)
	require.NoError(t, err)
	assert.Equal(t, cache.TTLDecided, ttlFor(n.Editions))

	n.Editions[0].Categories[0].Nominees[0].Pending = true
	assert.Equal(t, cache.TTLPending, ttlFor(n.Editions))
}
