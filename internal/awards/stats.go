package awards

// TitleStats is a film's nomination and win count within a nominations
// payload.
type TitleStats struct {
	ID     int    `json:"id"`
	IMDbID string `json:"imdb_id"`
	Title  string `json:"title"`
	Noms   int    `json:"noms"`
	Wins   int    `json:"wins"`
}

// StatID implements statstable.Record.
func (t TitleStats) StatID() int { return t.ID }

// Field implements statstable.Record, keyed by JSON field name.
func (t TitleStats) Field(key string) (any, bool) {
	switch key {
	case "id":
		return t.ID, true
	case "imdb_id":
		return t.IMDbID, true
	case "title":
		return t.Title, true
	case "noms":
		return t.Noms, true
	case "wins":
		return t.Wins, true
	}
	return nil, false
}

// EntityStats is a person's or company's counts within a nominations
// payload. The backend emits one row per (entity, category), so the same id
// can appear more than once.
type EntityStats struct {
	ID                 int      `json:"id"`
	IMDbID             string   `json:"imdb_id"`
	Aliases            []string `json:"aliases"`
	CategoryID         int      `json:"category_id"`
	CategoryNoms       int      `json:"category_noms"`
	CategoryWins       int      `json:"category_wins"`
	TotalNoms          int      `json:"total_noms"`
	TotalWins          int      `json:"total_wins"`
	CareerCategoryNoms int      `json:"career_category_noms"`
	CareerCategoryWins int      `json:"career_category_wins"`
	CareerTotalNoms    int      `json:"career_total_noms"`
	CareerTotalWins    int      `json:"career_total_wins"`
}

// Name returns the entity's primary alias.
func (e EntityStats) Name() string {
	if len(e.Aliases) == 0 {
		return ""
	}
	return e.Aliases[0]
}

// StatID implements statstable.Record.
func (e EntityStats) StatID() int { return e.ID }

// Field implements statstable.Record, keyed by JSON field name. "name" is
// the primary alias.
func (e EntityStats) Field(key string) (any, bool) {
	switch key {
	case "id":
		return e.ID, true
	case "imdb_id":
		return e.IMDbID, true
	case "name":
		return e.Name(), true
	case "aliases":
		return e.Aliases, true
	case "category_id":
		return e.CategoryID, true
	case "category_noms":
		return e.CategoryNoms, true
	case "category_wins":
		return e.CategoryWins, true
	case "total_noms":
		return e.TotalNoms, true
	case "total_wins":
		return e.TotalWins, true
	case "career_category_noms":
		return e.CareerCategoryNoms, true
	case "career_category_wins":
		return e.CareerCategoryWins, true
	case "career_total_noms":
		return e.CareerTotalNoms, true
	case "career_total_wins":
		return e.CareerTotalWins, true
	}
	return nil, false
}
