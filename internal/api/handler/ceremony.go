package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/cache"
	"github.com/oscy/oscy-web/internal/topfive"
)

// CeremonyOption is one entry of the ceremony navigator.
type CeremonyOption struct {
	Iteration int    `json:"iteration"`
	Name      string `json:"name"`
	Date      string `json:"date"`
}

// CeremonyView is the ceremony page model.
type CeremonyView struct {
	Iteration    int               `json:"iteration"`
	Ordinal      string            `json:"ordinal"`
	OfficialYear string            `json:"official_year"`
	CeremonyDate string            `json:"ceremony_date"`
	Date         string            `json:"date"`
	EditionNoms  int               `json:"edition_noms"`
	EditionWins  int               `json:"edition_wins"`
	Pending      bool              `json:"pending"`
	TopFive      []*Card           `json:"top_five"`
	Categories   []CategorySummary `json:"categories"`
}

// CategorySummary is one category of a ceremony with its winner.
type CategorySummary struct {
	Index      int    `json:"index"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name"`
	Pending    bool   `json:"pending"`
	Winner     string `json:"winner"`
}

// ListCeremonies returns the ceremony navigator options, newest first.
// @Summary List ceremonies
// @Description Returns every ceremony as "official_year (ordinal)", newest first.
// @Tags ceremonies
// @Produce json
// @Success 200 {array} CeremonyOption
// @Failure 502 {object} respond.ErrorResponse
// @Router /view/ceremonies [get]
func (h *Handler) ListCeremonies(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "view:ceremonies", func(ctx context.Context) (any, time.Duration, error) {
		list, err := h.backend.Ceremonies(ctx)
		if err != nil {
			return nil, 0, upstream(err)
		}
		out := make([]CeremonyOption, 0, len(list))
		for _, c := range slices.Backward(list) {
			out = append(out, CeremonyOption{
				Iteration: c.Iteration,
				Name:      fmt.Sprintf("%s (%s)", c.OfficialYear, awards.Ordinal(c.Iteration)),
				Date:      awards.FormatDate(c.CeremonyDate),
			})
		}
		return out, cache.TTLCeremonyList, nil
	})
}

// GetCeremony returns the ceremony page model.
// @Summary Get ceremony
// @Description Returns the ceremony header, its categories and the top five cards. Pending ceremonies have an empty top five and pending=true.
// @Tags ceremonies
// @Produce json
// @Param iteration path int true "Ceremony iteration, 1 for the 1927/28 ceremony"
// @Success 200 {object} CeremonyView
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /view/ceremonies/{iteration} [get]
func (h *Handler) GetCeremony(w http.ResponseWriter, r *http.Request) {
	iteration, err := pathInt(r, "iteration")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key := fmt.Sprintf("view:ceremony:%d", iteration)
	h.serveCached(w, r, key, func(ctx context.Context) (any, time.Duration, error) {
		n, err := h.backend.Ceremony(ctx, iteration)
		if err != nil {
			return nil, 0, upstream(err)
		}
		view, err := h.ceremonyView(ctx, n)
		if err != nil {
			return nil, 0, err
		}
		return view, ttlFor(n.Editions), nil
	})
}

func (h *Handler) ceremonyView(ctx context.Context, n *awards.Nominations) (*CeremonyView, error) {
	ed := n.Editions[0]
	view := &CeremonyView{
		Iteration:    ed.Iteration,
		Ordinal:      awards.Ordinal(ed.Iteration),
		OfficialYear: ed.OfficialYear,
		CeremonyDate: ed.CeremonyDate,
		Date:         awards.FormatDate(ed.CeremonyDate),
		EditionNoms:  ed.EditionNoms,
		EditionWins:  ed.EditionWins,
		TopFive:      []*Card{},
		Categories:   make([]CategorySummary, 0, len(ed.Categories)),
	}
	for i, c := range ed.Categories {
		s := CategorySummary{
			Index:      i,
			CategoryID: c.CategoryID,
			Name:       c.CommonName,
			ShortName:  c.ShortName,
			Pending:    c.Pending(),
		}
		if winner, ok := c.Winner(); ok && !s.Pending {
			s.Winner = winnerLabel(c, winner)
		}
		view.Categories = append(view.Categories, s)
	}

	tf, err := topfive.Ceremony(*n)
	switch {
	case errors.Is(err, topfive.ErrPending):
		view.Pending = true
		h.metrics.RecordPendingCeremony()
		return view, nil
	case err != nil:
		return nil, err
	}

	view.TopFive, err = h.cards(ctx, tf, ed.Categories, nil)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, badRequestf("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}
