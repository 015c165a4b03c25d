package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsForThemeKnownKey(t *testing.T) {
	suggestions := SuggestionsForTheme("paz")

	require.Len(t, suggestions, 5)
	assert.Equal(t, "João 14:27", suggestions[0].VerseReference)
}

func TestSuggestionsForThemeSubstringMatch(t *testing.T) {
	suggestions := SuggestionsForTheme("  Preciso de muita FÉ hoje ")

	require.Len(t, suggestions, 5)
	assert.Equal(t, "Hebreus 11:1", suggestions[0].VerseReference)
}

func TestSuggestionsForThemeUnknownUsesGenericPool(t *testing.T) {
	suggestions := SuggestionsForTheme("programação de computadores")

	require.Len(t, suggestions, 5)
	seen := map[string]bool{}
	for _, s := range suggestions {
		assert.NotEmpty(t, s.VerseText)
		assert.NotEmpty(t, s.VerseReference)
		assert.False(t, seen[s.VerseReference+s.VerseText], "duplicate suggestion in pool draw")
		seen[s.VerseReference+s.VerseText] = true
	}
}

func TestSuggestionsForThemeDoesNotMutateDictionary(t *testing.T) {
	first := SuggestionsForTheme("amor")
	first[0].VerseText = "changed"

	second := SuggestionsForTheme("amor")
	assert.NotEqual(t, "changed", second[0].VerseText)
}

func TestRandomCompleteVerse(t *testing.T) {
	verse := RandomCompleteVerse()

	assert.NotEmpty(t, verse.ID)
	assert.NotEmpty(t, verse.VerseText)
	assert.NotEmpty(t, verse.VerseReference)
	assert.NotEmpty(t, verse.Explanation)
	assert.True(t, strings.HasPrefix(verse.ImageURL, "https://"))
	assert.False(t, verse.CreatedAt.IsZero())
	assert.False(t, verse.IsFavorite)
}

func TestRandomCompleteVerseFreshIDs(t *testing.T) {
	a := RandomCompleteVerse()
	b := RandomCompleteVerse()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRandomImage(t *testing.T) {
	url := RandomImage()
	assert.True(t, strings.HasPrefix(url, "https://images.unsplash.com/"))
}
