package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palavradiaria/palavra-api/internal/domain"
)

func TestShareCaption(t *testing.T) {
	caption := ShareCaption(domain.VerseResult{
		VerseText:      "Tudo posso naquele que me fortalece.",
		VerseReference: "Filipenses 4:13",
		Explanation:    "Nossa força vem de Deus.",
	})

	assert.Contains(t, caption, `"Tudo posso naquele que me fortalece."`)
	assert.Contains(t, caption, "Filipenses 4:13")
	assert.Contains(t, caption, "Nossa força vem de Deus.")
	assert.Contains(t, caption, "A Palavra Diária")
}

func TestShareCaptionWithoutExplanation(t *testing.T) {
	caption := ShareCaption(domain.VerseResult{
		VerseText:      "A",
		VerseReference: "B 1:1",
	})

	assert.NotContains(t, caption, "\n\n\n")
	assert.Contains(t, caption, "B 1:1")
}
