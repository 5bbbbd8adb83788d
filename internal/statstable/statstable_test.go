package statstable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/statstable"
)

func titleRows() []awards.TitleStats {
	return []awards.TitleStats{
		{ID: 1, Title: "Z", Noms: 3, Wins: 1},
		{ID: 2, Title: "A", Noms: 5, Wins: 2},
		{ID: 1, Title: "Z", Noms: 3, Wins: 1},
	}
}

func ids[R statstable.Record](rows []R) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.StatID()
	}
	return out
}

func TestDedupe(t *testing.T) {
	in := titleRows()
	got := statstable.Dedupe(in)
	assert.Equal(t, []int{1, 2}, ids(got))
	assert.Len(t, in, 3, "input untouched")

	assert.Equal(t, got, statstable.Dedupe(got), "idempotent")
	assert.Empty(t, statstable.Dedupe([]awards.TitleStats{}))
}

func TestSortNumericFieldsNaturally(t *testing.T) {
	rows := []awards.TitleStats{
		{ID: 1, Noms: 2},
		{ID: 2, Noms: 10},
		{ID: 3, Noms: 1},
	}
	col := statstable.CeremonyTitleColumns[1]

	assert.Equal(t, []int{3, 1, 2}, ids(statstable.Sort(rows, col, statstable.Asc)))
	assert.Equal(t, []int{2, 1, 3}, ids(statstable.Sort(rows, col, statstable.Desc)))
}

func TestSortStableAndIdempotent(t *testing.T) {
	rows := []awards.TitleStats{
		{ID: 1, Title: "b", Wins: 1},
		{ID: 2, Title: "a", Wins: 2},
		{ID: 3, Title: "c", Wins: 1},
		{ID: 4, Title: "d", Wins: 2},
	}
	col := statstable.CeremonyTitleColumns[2]

	desc := statstable.Sort(rows, col, statstable.Desc)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(desc), "equal keys keep input order")
	assert.Equal(t, desc, statstable.Sort(desc, col, statstable.Desc))

	asc := statstable.Sort(rows, col, statstable.Asc)
	assert.Equal(t, []int{1, 3, 2, 4}, ids(asc))
	assert.ElementsMatch(t, rows, asc)
}

func TestExampleDedupeThenSortByNoms(t *testing.T) {
	deduped := statstable.Dedupe(titleRows())
	got := statstable.Sort(deduped, statstable.CeremonyTitleColumns[1], statstable.Desc)
	assert.Equal(t, []int{2, 1}, ids(got))
}

func TestFilter(t *testing.T) {
	rows := []awards.TitleStats{
		{ID: 1, Title: "The Godfather"},
		{ID: 2, Title: "Casablanca"},
		{ID: 3, Title: "The Godfather Part II"},
	}

	assert.Equal(t, []int{1, 3}, ids(statstable.Filter(rows, "title", "  GODFATHER ")))
	assert.Equal(t, []int{1, 2, 3}, ids(statstable.Filter(rows, "title", "")))
	assert.Equal(t, []int{1, 2, 3}, ids(statstable.Filter(rows, "title", "   ")))
	assert.Empty(t, statstable.Filter(rows, "title", "vertigo"))
	assert.NotNil(t, statstable.Filter(rows, "title", "vertigo"))
}

func TestFilterMissingFieldIsEmpty(t *testing.T) {
	rows := []awards.TitleStats{{ID: 1, Title: "Up"}}
	assert.Empty(t, statstable.Filter(rows, "no_such_field", "up"))
	assert.Len(t, statstable.Filter(rows, "no_such_field", ""), 1)
}

func TestFilterAliases(t *testing.T) {
	rows := []awards.EntityStats{
		{ID: 1, Aliases: []string{"Walt Disney", "Walter Elias Disney"}},
		{ID: 2, Aliases: []string{"Meryl Streep"}},
		{ID: 3, Aliases: nil},
	}

	assert.Equal(t, []int{1}, ids(statstable.Filter(rows, "aliases", "elias")))
	assert.Equal(t, []int{1}, ids(statstable.Filter(rows, "aliases", "disney,walter")), "joined form")
	assert.Equal(t, []int{2}, ids(statstable.Filter(rows, "aliases", "streep")))
}

func TestValidate(t *testing.T) {
	require.NoError(t, statstable.Validate[awards.TitleStats](statstable.CeremonyTitleColumns, "title"))
	require.NoError(t, statstable.Validate[awards.EntityStats](statstable.CeremonyEntityColumns, "aliases"))
	require.NoError(t, statstable.Validate[awards.EntityStats](statstable.CategoryEntityColumns, "aliases"))

	err := statstable.Validate[awards.TitleStats](statstable.CeremonyEntityColumns, "title")
	assert.ErrorIs(t, err, statstable.ErrUnknownKey)

	err = statstable.Validate[awards.TitleStats](statstable.CeremonyTitleColumns, "aliases")
	assert.ErrorIs(t, err, statstable.ErrUnknownKey)

	err = statstable.Validate[awards.TitleStats](nil, "title")
	assert.ErrorIs(t, err, statstable.ErrNoColumns)
}

func TestParseDirection(t *testing.T) {
	d, err := statstable.ParseDirection(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, statstable.Desc, d)

	_, err = statstable.ParseDirection("up")
	assert.Error(t, err)
}
