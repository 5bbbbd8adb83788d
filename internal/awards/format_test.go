package awards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 93: "93rd",
		101: "101st", 111: "111th", 112: "112th",
	}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n), "ordinal of %d", n)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "March 10, 2024", FormatDate("2024-03-10"))
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestTimeline(t *testing.T) {
	names := []CategoryName{
		{CommonName: "Actor in a Leading Role", Ranges: [][2]int{{50, 96}}},
		{CommonName: "Actor", Ranges: [][2]int{{1, 20}, {22, 49}}},
	}

	got := Timeline(names)
	assert.Equal(t, []TimelineItem{
		{StartYear: 1977, StartIteration: 50, EndYear: 2023, EndIteration: 96, Name: "Actor in a Leading Role"},
		{StartYear: 1949, StartIteration: 22, EndYear: 1976, EndIteration: 49, Name: "Actor"},
		{StartYear: 1928, StartIteration: 1, EndYear: 1947, EndIteration: 20, Name: "Actor"},
	}, got)
	assert.Equal(t, 95, CeremonyCount(names))
}

func TestNewestFirst(t *testing.T) {
	eds := []Edition{
		{Iteration: 1, Categories: []Category{{ShortName: "a"}, {ShortName: "b"}}},
		{Iteration: 2, Categories: []Category{{ShortName: "c"}}},
	}
	got := NewestFirst(eds)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ShortName, got[1].ShortName, got[2].ShortName})
	assert.Equal(t, 1, eds[0].Iteration, "input untouched")
}

func TestCategoryHelpers(t *testing.T) {
	c := Category{Nominees: []Nominee{{Winner: false, Pending: true}, {Winner: true, People: []Person{{IMDbID: "nm1"}}}}}
	assert.True(t, c.Pending())
	w, ok := c.Winner()
	assert.True(t, ok)
	assert.Equal(t, "nm1", w.PersonIMDbID())
	assert.Equal(t, "", w.TitleIMDbID())

	assert.False(t, Category{}.Pending())

	assert.Equal(t, "Best Picture", CategoryDetail{Category: "Picture"}.DisplayName())
	assert.Equal(t, "Unique and Artistic Picture", CategoryDetail{Category: "Unique and Artistic Picture"}.DisplayName())
}
