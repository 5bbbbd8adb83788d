package handler

import (
	"context"
	"strings"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/topfive"
)

// Card is one top-five entry as rendered on ceremony and category pages.
type Card struct {
	Slot          int     `json:"slot"`
	CategoryIndex int     `json:"category_index"`
	CategoryID    int     `json:"category_id"`
	Category      string  `json:"category"`
	Iteration     int     `json:"iteration,omitempty"`
	OfficialYear  string  `json:"official_year,omitempty"`
	Winner        string  `json:"winner"`
	IMDbID        string  `json:"imdb_id"`
	IMDbURL       *string `json:"imdb_url"`
	ImageURL      *string `json:"image_url"`
}

// cards renders tf against cats. Absent slots stay nil so positional
// variants keep their length. edition, when set, locates the edition a
// category index belongs to.
func (h *Handler) cards(ctx context.Context, tf topfive.TopFive, cats []awards.Category, edition func(int) *awards.Edition) ([]*Card, error) {
	images := h.images.ResolveAll(ctx, tf.IMDbIDs())
	out := make([]*Card, len(tf.Entries))
	for slot, e := range tf.Entries {
		if e == nil {
			continue
		}
		c := cats[e.Index]
		winner, _ := c.Winner()
		u, err := imdbURL(e.IMDbID)
		if err != nil {
			return nil, err
		}
		card := &Card{
			Slot:          slot,
			CategoryIndex: e.Index,
			CategoryID:    c.CategoryID,
			Category:      c.CommonName,
			Winner:        winnerLabel(c, winner),
			IMDbID:        e.IMDbID,
			IMDbURL:       u,
			ImageURL:      images[slot],
		}
		if edition != nil {
			if ed := edition(e.Index); ed != nil {
				card.Iteration = ed.Iteration
				card.OfficialYear = ed.OfficialYear
			}
		}
		out[slot] = card
	}
	return out, nil
}

// winnerLabel names the nominee the way the card image is chosen: people
// first for person categories and Director, titles first otherwise.
func winnerLabel(c awards.Category, n awards.Nominee) string {
	people := make([]string, 0, len(n.People))
	for _, p := range n.People {
		people = append(people, p.Name)
	}
	titles := make([]string, 0, len(n.Titles))
	for _, t := range n.Titles {
		titles = append(titles, t.Title)
	}
	first, second := titles, people
	if n.IsPerson || c.ShortName == "Director" {
		first, second = people, titles
	}
	if len(first) == 0 {
		first = second
	}
	if len(first) == 0 {
		return n.Statement
	}
	return strings.Join(first, ", ")
}
