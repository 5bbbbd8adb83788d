package natsort

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNumericRuns(t *testing.T) {
	assert.Equal(t, -1, Compare("2", "10"))
	assert.Equal(t, 1, Compare("10", "9"))
	assert.Equal(t, 0, Compare("42", "42"))
	assert.Equal(t, -1, Compare("Film 2", "Film 10"))
	assert.Equal(t, -1, Compare("A1", "a2"), "case only breaks full ties")
}

func TestCompareText(t *testing.T) {
	assert.Equal(t, -1, Compare("apple", "Banana"))
	assert.Equal(t, 1, Compare("banana", "Apple"))
	assert.Equal(t, -1, Compare("a", "A"), "lower case first on a base letter tie")
	assert.Equal(t, -1, Compare("Z", "Zz"))
	assert.Equal(t, 0, Compare("", ""))
	assert.Equal(t, -1, Compare("", "a"))
}

func TestCompareAccentedNames(t *testing.T) {
	assert.Equal(t, -1, Compare("José Ferrer", "Joseph Cotten"))
	assert.Equal(t, -1, Compare("Émile Zola", "Zoe Kazan"))
	assert.Equal(t, 1, Compare("Zoe Kazan", "Émile Zola"))
}

func TestComparePunctuation(t *testing.T) {
	assert.Equal(t, -1, Compare("(500) Days of Summer", "12 Angry Men"))
	assert.True(t, Less("9", "a"), "digits before letters")
	assert.False(t, Less("a", "9"))
}

func TestSortOrder(t *testing.T) {
	in := []string{"Zoe Kazan", "10", "2", "Émile Zola", "1", "Actor 12", "actor 3", "Actress", "(500) Days of Summer"}
	slices.SortStableFunc(in, Compare)
	assert.Equal(t, []string{"(500) Days of Summer", "1", "2", "10", "actor 3", "Actor 12", "Actress", "Émile Zola", "Zoe Kazan"}, in)
}

func TestCompareAntisymmetric(t *testing.T) {
	values := []string{"", "1", "9", "10", "a", "A", "a1", "A1", "a10", "b", "B2", "é", "José"}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "%q vs %q", a, b)
		}
	}
}

func TestCompareConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.Equal(t, -1, Compare("Film 2", "Film 10"))
			}
		}()
	}
	wg.Wait()
}
