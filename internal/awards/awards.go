// Package awards defines the award ceremony data served by the oscy backend
// API: editions, categories, nominees and the per-ceremony statistics.
package awards

import "strings"

// Ceremony is one entry of the backend's ceremony list.
type Ceremony struct {
	ID           int    `json:"id"`
	Award        int    `json:"award"`
	Iteration    int    `json:"iteration"`
	OfficialYear string `json:"official_year"`
	CeremonyDate string `json:"ceremony_date"`
}

// Nominations is the backend's nominations payload: one or more editions
// plus aggregated statistics over them.
type Nominations struct {
	Editions []Edition `json:"editions"`
	Stats    AllStats  `json:"stats"`
}

// AllStats holds the title and entity statistics for a nominations payload.
type AllStats struct {
	TitleStats  []TitleStats  `json:"title_stats"`
	EntityStats []EntityStats `json:"entity_stats"`
}

// Edition is a single ceremony with its categories.
type Edition struct {
	ID           int        `json:"id"`
	Iteration    int        `json:"iteration"`
	OfficialYear string     `json:"official_year"`
	CeremonyDate string     `json:"ceremony_date"`
	EditionNoms  int        `json:"edition_noms"`
	EditionWins  int        `json:"edition_wins"`
	Categories   []Category `json:"categories"`
}

// Category is one award category within an edition. Nominees are ordered
// with the winner first.
type Category struct {
	CategoryID    int       `json:"category_id"`
	CategoryGroup string    `json:"category_group"`
	OfficialName  string    `json:"official_name"`
	CommonName    string    `json:"common_name"`
	ShortName     string    `json:"short_name"`
	CategoryNoms  int       `json:"category_noms"`
	CategoryWins  int       `json:"category_wins"`
	Nominees      []Nominee `json:"nominees"`
}

// Top returns the category's first nominee, or false when there is none.
func (c Category) Top() (Nominee, bool) {
	if len(c.Nominees) == 0 {
		return Nominee{}, false
	}
	return c.Nominees[0], true
}

// Winner returns the first nominee marked as winner. Categories where no
// winner is flagged fall back to the first nominee.
func (c Category) Winner() (Nominee, bool) {
	for _, n := range c.Nominees {
		if n.Winner {
			return n, true
		}
	}
	return c.Top()
}

// Pending reports whether the category's result has not been decided yet.
func (c Category) Pending() bool {
	top, ok := c.Top()
	return ok && top.Pending
}

// HasPending reports whether any category of editions is still pending.
func HasPending(editions []Edition) bool {
	for _, e := range editions {
		for _, c := range e.Categories {
			if c.Pending() {
				return true
			}
		}
	}
	return false
}

// Nominee is a single nomination.
type Nominee struct {
	Winner    bool     `json:"winner"`
	Titles    []Title  `json:"titles"`
	People    []Person `json:"people"`
	Statement string   `json:"statement"`
	IsPerson  bool     `json:"is_person"`
	Note      string   `json:"note"`
	Official  bool     `json:"official"`
	Stat      bool     `json:"stat"`
	Pending   bool     `json:"pending"`
}

// PersonIMDbID returns the first person's IMDb id, or "".
func (n Nominee) PersonIMDbID() string {
	if len(n.People) == 0 {
		return ""
	}
	return n.People[0].IMDbID
}

// TitleIMDbID returns the first title's IMDb id, or "".
func (n Nominee) TitleIMDbID() string {
	if len(n.Titles) == 0 {
		return ""
	}
	return n.Titles[0].IMDbID
}

// Person is a nominated person or company.
type Person struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	IMDbID       string `json:"imdb_id"`
	StatementInd int    `json:"statement_ind"`
}

// Title is a nominated film.
type Title struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	IMDbID      string   `json:"imdb_id"`
	Detail      []string `json:"detail"`
	TitleWinner bool     `json:"title_winner"`
}

// CategoryDetail is the backend's category payload: the category's naming
// history plus its nominations across every ceremony.
type CategoryDetail struct {
	CategoryID      int            `json:"category_id"`
	Category        string         `json:"category"`
	CategoryGroupID int            `json:"category_group_id"`
	CategoryGroup   string         `json:"category_group"`
	CategoryNames   []CategoryName `json:"category_names"`
	Nominations     Nominations    `json:"nominations"`
}

// DisplayName returns the category name as shown in headings.
func (c CategoryDetail) DisplayName() string {
	if strings.HasPrefix(c.Category, "Unique") {
		return c.Category
	}
	return "Best " + c.Category
}

// CategoryName is one historical name of a category together with the
// inclusive iteration ranges it was used for.
type CategoryName struct {
	CategoryNameID int      `json:"category_name_id"`
	OfficialName   string   `json:"official_name"`
	CommonName     string   `json:"common_name"`
	Ranges         [][2]int `json:"ranges"`
}
