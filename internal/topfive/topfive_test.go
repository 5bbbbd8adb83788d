package topfive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscy/oscy-web/internal/awards"
)

func personCategory(short, imdbID string) awards.Category {
	return awards.Category{
		ShortName: short,
		Nominees: []awards.Nominee{{
			Winner:   true,
			IsPerson: true,
			People:   []awards.Person{{IMDbID: imdbID}},
			Titles:   []awards.Title{{ID: 900, IMDbID: "tt0000900"}},
		}},
	}
}

func titleCategory(short string, titleID int, imdbID string) awards.Category {
	return awards.Category{
		ShortName: short,
		Nominees: []awards.Nominee{{
			Winner: true,
			Titles: []awards.Title{{ID: titleID, IMDbID: imdbID}},
			People: []awards.Person{{IMDbID: "nm0000999"}},
		}},
	}
}

func ceremony(cats ...awards.Category) awards.Nominations {
	return awards.Nominations{Editions: []awards.Edition{{Iteration: 96, Categories: cats}}}
}

func TestCeremonySlots(t *testing.T) {
	n := ceremony(
		titleCategory("Picture", 1, "tt0000001"),
		// Director is a person slot even when the nominee is not flagged as one.
		awards.Category{ShortName: "Director", Nominees: []awards.Nominee{{
			Winner: true,
			People: []awards.Person{{IMDbID: "nm0000002"}},
			Titles: []awards.Title{{ID: 1, IMDbID: "tt0000001"}},
		}}},
		personCategory("Actor", "nm0000003"),
		personCategory("Actress", "nm0000004"),
		titleCategory("Adapted Screenplay", 5, "tt0000005"),
		titleCategory("Original Screenplay", 6, "tt0000006"),
	)
	n.Stats.TitleStats = []awards.TitleStats{
		{ID: 6, IMDbID: "tt0000006", Noms: 8, Wins: 1},
		{ID: 5, IMDbID: "tt0000005", Noms: 4, Wins: 3},
	}

	got, err := Ceremony(n)
	require.NoError(t, err)
	require.Len(t, got.Entries, Size)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got.Indices())
	assert.Equal(t, []string{"tt0000001", "nm0000002", "nm0000003", "nm0000004", "tt0000005"}, got.IMDbIDs())
}

func TestCeremonyWritingTieBrokenByNoms(t *testing.T) {
	n := ceremony(
		titleCategory("Screenplay", 10, "tt0000010"),
		titleCategory("Story", 11, "tt0000011"),
	)
	n.Stats.TitleStats = []awards.TitleStats{
		{ID: 10, IMDbID: "tt0000010", Noms: 2, Wins: 2},
		{ID: 11, IMDbID: "tt0000011", Noms: 5, Wins: 2},
	}

	got, err := Ceremony(n)
	require.NoError(t, err)
	require.NotNil(t, got.Entries[WritingSlot])
	assert.Equal(t, 1, got.Entries[WritingSlot].Index)
	assert.Equal(t, "tt0000011", got.Entries[WritingSlot].IMDbID)
}

func TestCeremonyUniquePictureTakesDirectorSlot(t *testing.T) {
	n := ceremony(
		titleCategory("Picture", 1, "tt0000001"),
		titleCategory("Unique and Artistic Picture", 2, "tt0000002"),
	)

	got, err := Ceremony(n)
	require.NoError(t, err)
	require.NotNil(t, got.Entries[1])
	assert.Equal(t, 1, got.Entries[1].Index)
	assert.Equal(t, "tt0000002", got.Entries[1].IMDbID)
	assert.Nil(t, got.Entries[2], "missing slots stay absent")
	assert.Nil(t, got.Entries[WritingSlot])
}

func TestCeremonyPending(t *testing.T) {
	n := ceremony(
		awards.Category{ShortName: "Picture", Nominees: []awards.Nominee{{Pending: true}}},
		personCategory("Actor", "nm0000003"),
	)

	_, err := Ceremony(n)
	assert.ErrorIs(t, err, ErrPending)
}

func TestCeremonyNoEdition(t *testing.T) {
	_, err := Ceremony(awards.Nominations{})
	assert.ErrorIs(t, err, ErrNoEdition)
}

func TestCeremonyDeterministic(t *testing.T) {
	n := ceremony(
		titleCategory("Picture", 1, "tt0000001"),
		titleCategory("Adapted Screenplay", 5, "tt0000005"),
	)
	n.Stats.TitleStats = []awards.TitleStats{{ID: 5, IMDbID: "tt0000005", Wins: 1}}

	a, err := Ceremony(n)
	require.NoError(t, err)
	b, err := Ceremony(n)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 5, n.Stats.TitleStats[0].ID, "input untouched")
}

func TestCategoriesSkipsPending(t *testing.T) {
	cats := []awards.Category{
		personCategory("Actor", "nm0000001"),
		{ShortName: "Actor", Nominees: []awards.Nominee{{Pending: true, IsPerson: true}}},
		personCategory("Actor", "nm0000003"),
		personCategory("Actor", "nm0000004"),
		personCategory("Actor", "nm0000005"),
		personCategory("Actor", "nm0000006"),
		personCategory("Actor", "nm0000007"),
	}

	got := Categories(cats)
	assert.Equal(t, []int{0, 2, 3, 4, 5}, got.Indices())
	assert.Equal(t, []string{"nm0000001", "nm0000003", "nm0000004", "nm0000005", "nm0000006"}, got.IMDbIDs())
}

func TestCategoriesImageFallback(t *testing.T) {
	cats := []awards.Category{
		{ShortName: "Actress", Nominees: []awards.Nominee{{
			IsPerson: true,
			Titles:   []awards.Title{{IMDbID: "tt0000001"}},
		}}},
		{ShortName: "Picture", Nominees: []awards.Nominee{{
			People: []awards.Person{{IMDbID: "co0000002"}},
		}}},
	}

	got := Categories(cats)
	assert.Equal(t, []string{"tt0000001", "co0000002"}, got.IMDbIDs())
}

func TestCategoriesShortList(t *testing.T) {
	got := Categories([]awards.Category{personCategory("Director", "nm0000001")})
	assert.Len(t, got.Entries, 1)

	assert.Empty(t, Categories(nil).Entries)
}

func TestByWinsThenNoms(t *testing.T) {
	a := awards.TitleStats{Wins: 3, Noms: 1}
	b := awards.TitleStats{Wins: 1, Noms: 9}
	c := awards.TitleStats{Wins: 1, Noms: 4}
	assert.Negative(t, ByWinsThenNoms(a, b))
	assert.Negative(t, ByWinsThenNoms(b, c))
	assert.Zero(t, ByWinsThenNoms(c, c))
}
