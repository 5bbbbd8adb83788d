package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/topfive"
)

// CategoryView is the category page model.
type CategoryView struct {
	CategoryID    int                   `json:"category_id"`
	Name          string                `json:"name"`
	CategoryGroup string                `json:"category_group"`
	CeremonyCount int                   `json:"ceremony_count"`
	FirstYear     int                   `json:"first_year,omitempty"`
	LastYear      int                   `json:"last_year,omitempty"`
	Timeline      []awards.TimelineItem `json:"timeline"`
	TopFive       []*Card               `json:"top_five"`
}

// GetCategory returns the category page model.
// @Summary Get category
// @Description Returns the category's naming timeline, ceremony count and its five most recent decided winners.
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} CategoryView
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /view/categories/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key := fmt.Sprintf("view:category:%d", id)
	h.serveCached(w, r, key, func(ctx context.Context) (any, time.Duration, error) {
		detail, err := h.backend.Category(ctx, id)
		if err != nil {
			return nil, 0, upstream(err)
		}
		view, err := h.categoryView(ctx, detail)
		if err != nil {
			return nil, 0, err
		}
		return view, ttlFor(detail.Nominations.Editions), nil
	})
}

func (h *Handler) categoryView(ctx context.Context, detail *awards.CategoryDetail) (*CategoryView, error) {
	timeline := awards.Timeline(detail.CategoryNames)
	view := &CategoryView{
		CategoryID:    detail.CategoryID,
		Name:          detail.DisplayName(),
		CategoryGroup: detail.CategoryGroup,
		CeremonyCount: awards.CeremonyCount(detail.CategoryNames),
		Timeline:      timeline,
	}
	for i, item := range timeline {
		if i == 0 || item.StartYear < view.FirstYear {
			view.FirstYear = item.StartYear
		}
		view.LastYear = max(view.LastYear, item.EndYear)
	}

	editions := detail.Nominations.Editions
	cats := awards.NewestFirst(editions)
	cards, err := h.cards(ctx, topfive.Categories(cats), cats, editionLocator(editions))
	if err != nil {
		return nil, err
	}
	view.TopFive = cards
	return view, nil
}

// editionLocator maps an index into awards.NewestFirst(editions) back to its
// edition.
func editionLocator(editions []awards.Edition) func(int) *awards.Edition {
	return func(index int) *awards.Edition {
		for i := len(editions) - 1; i >= 0; i-- {
			n := len(editions[i].Categories)
			if index < n {
				return &editions[i]
			}
			index -= n
		}
		return nil
	}
}
