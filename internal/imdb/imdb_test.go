package imdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	u, err := URL("nm0000138")
	require.NoError(t, err)
	assert.Equal(t, "https://www.imdb.com/name/nm0000138", u)

	u, err = URL("tt15398776")
	require.NoError(t, err)
	assert.Equal(t, "https://www.imdb.com/title/tt15398776", u)

	u, err = URL("co0023400")
	require.NoError(t, err)
	assert.Equal(t, "https://www.imdb.com/search/title/?companies=co0023400", u)
}

func TestURLUnrecognized(t *testing.T) {
	for _, id := range []string{"", "ch0000001", "123"} {
		_, err := URL(id)
		assert.ErrorIs(t, err, ErrUnrecognizedKind, id)
	}
}

func TestKindOf(t *testing.T) {
	k, err := KindOf("tt0068646")
	require.NoError(t, err)
	assert.Equal(t, KindTitle, k)
	assert.Equal(t, "title", k.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
