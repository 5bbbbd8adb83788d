// Package topfive picks the headline categories shown as cards on the
// ceremony and category pages, together with the IMDb id whose image
// represents each winner.
package topfive

import (
	"cmp"
	"errors"
	"slices"

	"github.com/oscy/oscy-web/internal/awards"
)

// Size is the number of cards.
const Size = 5

var (
	// ErrPending is returned for a ceremony whose results are not decided.
	ErrPending = errors.New("topfive: ceremony results pending")

	// ErrNoEdition is returned when the nominations payload has no edition.
	ErrNoEdition = errors.New("topfive: no edition")
)

// Slot assignment by category short name. Director and Unique and Artistic
// Picture never appear in the same ceremony.
var slotByShortName = map[string]int{
	"Picture":                     0,
	"Director":                    1,
	"Unique and Artistic Picture": 1,
	"Actor":                       2,
	"Actress":                     3,
}

// WritingSlot is the slot filled by the best performing writing category.
const WritingSlot = 4

var writingCategories = map[string]bool{
	"Adapted Screenplay":  true,
	"Original Screenplay": true,
	"Screenplay":          true,
	"Story":               true,
}

// Entry is one card: a category position in the input and the IMDb id of
// the image to show for its winner.
type Entry struct {
	Index  int    `json:"index"`
	IMDbID string `json:"imdb_id"`
}

// TopFive is an ordered list of cards. In the ceremony variant Entries has
// exactly Size positions and absent slots are nil.
type TopFive struct {
	Entries []*Entry `json:"entries"`
}

// Indices returns the category index of every present entry.
func (t TopFive) Indices() []int {
	out := make([]int, 0, len(t.Entries))
	for _, e := range t.Entries {
		if e != nil {
			out = append(out, e.Index)
		}
	}
	return out
}

// IMDbIDs returns the image key of every entry, "" for absent slots, in
// slot order.
func (t TopFive) IMDbIDs() []string {
	out := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		if e != nil {
			out[i] = e.IMDbID
		}
	}
	return out
}

// Ceremony picks the five headline categories of the first edition in n:
// Picture, Director (or Unique and Artistic Picture), Actor, Actress and the
// writing category whose winning film did best overall.
func Ceremony(n awards.Nominations) (TopFive, error) {
	if len(n.Editions) == 0 {
		return TopFive{}, ErrNoEdition
	}
	cats := n.Editions[0].Categories
	if len(cats) > 0 && cats[0].Pending() {
		return TopFive{}, ErrPending
	}

	out := TopFive{Entries: make([]*Entry, Size)}
	writingByTitle := make(map[int]int)
	for i, c := range cats {
		winner, ok := c.Winner()
		if !ok {
			continue
		}
		if slot, ok := slotByShortName[c.ShortName]; ok {
			out.Entries[slot] = &Entry{Index: i, IMDbID: imageKey(c, winner)}
		}
		if writingCategories[c.ShortName] && len(winner.Titles) > 0 {
			writingByTitle[winner.Titles[0].ID] = i
		}
	}

	ranked := slices.Clone(n.Stats.TitleStats)
	slices.SortStableFunc(ranked, ByWinsThenNoms)
	for _, t := range ranked {
		if i, ok := writingByTitle[t.ID]; ok {
			out.Entries[WritingSlot] = &Entry{Index: i, IMDbID: t.IMDbID}
			break
		}
	}
	return out, nil
}

// ByWinsThenNoms orders title statistics by wins descending, then
// nominations descending.
func ByWinsThenNoms(a, b awards.TitleStats) int {
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	return cmp.Compare(b.Noms, a.Noms)
}

// Categories picks up to Size decided categories from a newest-first list
// spanning several ceremonies, in encounter order. Pending categories are
// skipped.
func Categories(cats []awards.Category) TopFive {
	out := TopFive{Entries: make([]*Entry, 0, Size)}
	for i, c := range cats {
		if len(out.Entries) == Size {
			break
		}
		if c.Pending() {
			continue
		}
		winner, ok := c.Winner()
		if !ok {
			continue
		}
		out.Entries = append(out.Entries, &Entry{Index: i, IMDbID: imageKey(c, winner)})
	}
	return out
}

// imageKey prefers the person for person categories and Director, the title
// otherwise, and falls back to the other when the preferred one is missing.
func imageKey(c awards.Category, n awards.Nominee) string {
	person, title := n.PersonIMDbID(), n.TitleIMDbID()
	if n.IsPerson || c.ShortName == "Director" {
		return cmp.Or(person, title)
	}
	return cmp.Or(title, person)
}
