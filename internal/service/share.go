package service

import (
	"fmt"
	"strings"

	"github.com/palavradiaria/palavra-api/internal/domain"
)

// appTag closes every share caption. Image compositing happens on the
// client; the caption is the text half of the share payload.
const appTag = "Compartilhado do app A Palavra Diária 🙏"

// ShareCaption builds the shareable text for a card: the quoted verse, its
// reference, the explanation when present, and the app tag.
func ShareCaption(verse domain.VerseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%q\n%s", verse.VerseText, verse.VerseReference)
	if verse.Explanation != "" {
		fmt.Fprintf(&b, "\n\n%s", verse.Explanation)
	}
	fmt.Fprintf(&b, "\n\n%s", appTag)

	return b.String()
}
