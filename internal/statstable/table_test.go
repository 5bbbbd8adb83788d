package statstable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/statstable"
)

func newTitleTable(t *testing.T, rows []awards.TitleStats) *statstable.Table[awards.TitleStats] {
	t.Helper()
	tbl, err := statstable.New(rows, statstable.CeremonyTitleColumns, "title")
	require.NoError(t, err)
	return tbl
}

func TestNewDefaultView(t *testing.T) {
	tbl := newTitleTable(t, titleRows())

	assert.Equal(t, statstable.State{Column: 1, Direction: statstable.Desc}, tbl.State())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []int{2, 1}, ids(tbl.Rows()))
	assert.False(t, tbl.Empty())
}

func TestNewRejectsUnknownKeys(t *testing.T) {
	_, err := statstable.New([]awards.TitleStats{}, statstable.CategoryEntityColumns, "title")
	assert.ErrorIs(t, err, statstable.ErrUnknownKey)
}

func TestSelectProtocol(t *testing.T) {
	tbl := newTitleTable(t, titleRows())

	// New column: its default direction, not a toggle.
	dir, rows, err := tbl.Select(0)
	require.NoError(t, err)
	assert.Equal(t, statstable.Asc, dir)
	assert.Equal(t, []int{2, 1}, ids(rows), "A before Z")

	// Same column: toggle.
	dir, rows, err = tbl.Select(0)
	require.NoError(t, err)
	assert.Equal(t, statstable.Desc, dir)
	assert.Equal(t, []int{1, 2}, ids(rows))

	// Third time: back to the original direction.
	dir, _, err = tbl.Select(0)
	require.NoError(t, err)
	assert.Equal(t, statstable.Asc, dir)

	// Switching to a desc-default column ignores the current direction.
	dir, _, err = tbl.Select(2)
	require.NoError(t, err)
	assert.Equal(t, statstable.Desc, dir)
}

func TestSelectOutOfRange(t *testing.T) {
	tbl := newTitleTable(t, titleRows())
	before := tbl.State()

	_, _, err := tbl.Select(7)
	assert.ErrorIs(t, err, statstable.ErrColumnIndex)
	assert.Equal(t, before, tbl.State())
}

func TestSearchRecomputes(t *testing.T) {
	tbl := newTitleTable(t, []awards.TitleStats{
		{ID: 1, Title: "Oppenheimer", Noms: 13},
		{ID: 2, Title: "Poor Things", Noms: 11},
		{ID: 3, Title: "Killers of the Flower Moon", Noms: 10},
	})

	assert.Equal(t, []int{1, 2, 3}, ids(tbl.Search("o")))
	assert.Equal(t, []int{2}, ids(tbl.Search("things")))

	assert.Empty(t, tbl.Search("barbie"))
	assert.True(t, tbl.Empty())

	// Sorting still applies to the filtered view.
	_, rows, err := tbl.Select(1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.Len(t, tbl.Search(""), 3)
	assert.Equal(t, []int{3, 2, 1}, ids(tbl.Rows()), "toggled to ascending")
}

func TestSetState(t *testing.T) {
	tbl := newTitleTable(t, titleRows())

	require.NoError(t, tbl.SetState(statstable.State{Column: 0, Direction: statstable.Desc, Query: "z"}))
	assert.Equal(t, []int{1}, ids(tbl.Rows()))

	assert.ErrorIs(t, tbl.SetState(statstable.State{Column: 3, Direction: statstable.Asc}), statstable.ErrColumnIndex)
	assert.Error(t, tbl.SetState(statstable.State{Column: 0, Direction: "sideways"}))
}

func TestEmptyTable(t *testing.T) {
	tbl, err := statstable.New[awards.EntityStats](nil, statstable.CeremonyEntityColumns, "aliases")
	require.NoError(t, err)
	assert.True(t, tbl.Empty())
	assert.NotNil(t, tbl.Rows())
}

func TestEntityTableSortsByAliases(t *testing.T) {
	tbl, err := statstable.New([]awards.EntityStats{
		{ID: 1, Aliases: []string{"Meryl Streep"}, CareerCategoryNoms: 17},
		{ID: 2, Aliases: []string{"Katharine Hepburn"}, CareerCategoryNoms: 12},
		{ID: 1, Aliases: []string{"Meryl Streep"}, CareerCategoryNoms: 17},
	}, statstable.CategoryEntityColumns, "aliases")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, ids(tbl.Rows()))

	_, rows, err := tbl.Select(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, ids(rows))
}
