package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oscy/oscy-web/internal/statstable"
)

// StatsView is a rendered statistics table.
type StatsView[R statstable.Record] struct {
	State   statstable.State    `json:"state"`
	Columns []statstable.Column `json:"columns"`
	Rows    []Row[R]            `json:"rows"`
	Total   int                 `json:"total"`
	Empty   bool                `json:"empty"`
}

// Row is one table row with its 1-based position in the current view.
type Row[R statstable.Record] struct {
	Rank    int     `json:"rank"`
	IMDbURL *string `json:"imdb_url"`
	Stats   R       `json:"stats"`
}

// tableQuery is the parsed table view request. Column and Direction fall
// back to the table's default state.
type tableQuery struct {
	column    *int
	direction *statstable.Direction
	query     string
	selected  *int
}

func parseTableQuery(q url.Values) (tableQuery, error) {
	var tq tableQuery
	if raw := q.Get("col"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return tq, badRequestf("col must be an integer, got %q", raw)
		}
		tq.column = &n
	}
	if raw := q.Get("dir"); raw != "" {
		d, err := statstable.ParseDirection(raw)
		if err != nil {
			return tq, badRequestf("dir must be asc or desc, got %q", raw)
		}
		tq.direction = &d
	}
	if raw := q.Get("select"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return tq, badRequestf("select must be an integer, got %q", raw)
		}
		tq.selected = &n
	}
	tq.query = q.Get("q")
	return tq, nil
}

// key returns a canonical cache key suffix for the table state. The search
// text is left out; see serve.
func (tq tableQuery) key() string {
	v := url.Values{}
	if tq.column != nil {
		v.Set("col", strconv.Itoa(*tq.column))
	}
	if tq.direction != nil {
		v.Set("dir", string(*tq.direction))
	}
	if tq.selected != nil {
		v.Set("select", strconv.Itoa(*tq.selected))
	}
	return v.Encode()
}

// serve picks the cached writer for plain table states and the uncached one
// for searches.
func (h *Handler) serve(tq tableQuery) func(http.ResponseWriter, *http.Request, string, func(context.Context) (any, time.Duration, error)) {
	if strings.TrimSpace(tq.query) != "" {
		return h.serveFresh
	}
	return h.serveCached
}

// renderTable builds a table over records and applies tq: the passed state
// first, then the optional column selection.
func renderTable[R statstable.Record](records []R, cols []statstable.Column, searchKey string, tq tableQuery) (*StatsView[R], error) {
	tbl, err := statstable.New(records, cols, searchKey)
	if err != nil {
		return nil, err
	}

	state := tbl.State()
	if tq.column != nil {
		state.Column = *tq.column
	}
	if tq.direction != nil {
		state.Direction = *tq.direction
	}
	state.Query = tq.query
	if err := tbl.SetState(state); err != nil {
		return nil, err
	}
	if tq.selected != nil {
		if _, _, err := tbl.Select(*tq.selected); err != nil {
			return nil, err
		}
	}

	rows := tbl.Rows()
	view := &StatsView[R]{
		State:   tbl.State(),
		Columns: tbl.Columns(),
		Rows:    make([]Row[R], 0, len(rows)),
		Total:   tbl.Len(),
		Empty:   tbl.Empty(),
	}
	for i, rec := range rows {
		id, _ := rec.Field("imdb_id")
		u, err := imdbURL(statstable.String(id))
		if err != nil {
			return nil, err
		}
		view.Rows = append(view.Rows, Row[R]{Rank: i + 1, IMDbURL: u, Stats: rec})
	}
	return view, nil
}

// GetCeremonyStats returns a ceremony statistics table.
// @Summary Get ceremony statistics
// @Description Returns the title or people statistics of a ceremony, filtered by q and sorted by col/dir. select applies the column selection protocol to the passed state: a new column takes its default direction, the active column toggles.
// @Tags ceremonies
// @Produce json
// @Param iteration path int true "Ceremony iteration"
// @Param table path string true "Table" Enums(titles, people)
// @Param col query int false "Active column index"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param q query string false "Search query"
// @Param select query int false "Column to select"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /view/ceremonies/{iteration}/stats/{table} [get]
func (h *Handler) GetCeremonyStats(w http.ResponseWriter, r *http.Request) {
	iteration, err := pathInt(r, "iteration")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	table := chi.URLParam(r, "table")
	if table != "titles" && table != "people" {
		h.writeError(w, r, badRequestf("table must be titles or people, got %q", table))
		return
	}
	tq, err := parseTableQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key := fmt.Sprintf("view:ceremony:%d:%s?%s", iteration, table, tq.key())
	h.serve(tq)(w, r, key, func(ctx context.Context) (any, time.Duration, error) {
		n, err := h.backend.Ceremony(ctx, iteration)
		if err != nil {
			return nil, 0, upstream(err)
		}
		ttl := ttlFor(n.Editions)
		if table == "titles" {
			view, err := renderTable(n.Stats.TitleStats, statstable.CeremonyTitleColumns, "title", tq)
			return view, ttl, err
		}
		view, err := renderTable(n.Stats.EntityStats, statstable.CeremonyEntityColumns, "aliases", tq)
		return view, ttl, err
	})
}

// GetCategoryStats returns the people statistics of a category's history.
// @Summary Get category statistics
// @Description Returns career statistics of everyone nominated in the category, filtered by q and sorted by col/dir.
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Param col query int false "Active column index"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param q query string false "Search query"
// @Param select query int false "Column to select"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /view/categories/{id}/stats [get]
func (h *Handler) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	tq, err := parseTableQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key := fmt.Sprintf("view:category:%d:people?%s", id, tq.key())
	h.serve(tq)(w, r, key, func(ctx context.Context) (any, time.Duration, error) {
		detail, err := h.backend.Category(ctx, id)
		if err != nil {
			return nil, 0, upstream(err)
		}
		view, err := renderTable(detail.Nominations.Stats.EntityStats, statstable.CategoryEntityColumns, "aliases", tq)
		return view, ttlFor(detail.Nominations.Editions), err
	})
}
