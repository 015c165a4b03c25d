package gemini

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/palavradiaria/palavra-api/internal/generation"
)

// System instructions sent with each text call. Kept in Portuguese because
// the product serves Brazilian Portuguese content end to end.
const (
	suggestionSystemInstruction = "Você é um assistente teológico especializado na Bíblia Sagrada em Português do Brasil. " +
		"Responda sempre em JSON válido seguindo o schema fornecido. " +
		"Use traduções consagradas (NVI ou Almeida) e referências no formato 'Livro Capítulo:Versículo'."

	randomVerseSystemInstruction = "Você é um assistente teológico criativo especializado na Bíblia Sagrada em Português do Brasil. " +
		"Escolha versículos variados e menos óbvios, evitando repetir sempre os mesmos versículos famosos. " +
		"Responda sempre em JSON válido seguindo o schema fornecido."

	explanationSystemInstruction = "Você é um escritor devocional em Português do Brasil. " +
		"Escreva explicações curtas, acolhedoras e edificantes, sem jargão acadêmico. " +
		"Responda sempre em JSON válido seguindo o schema fornecido."
)

// buildSuggestionPrompt renders the user prompt for a suggestion query. The
// query dimensions compose: chapter listings, themed lists scoped to a book,
// or a generic inspirational list when everything is empty.
func buildSuggestionPrompt(query generation.SuggestionQuery) string {
	var b strings.Builder

	switch {
	case query.Book != "" && query.Chapter != "":
		fmt.Fprintf(&b, "Liste 5 versículos marcantes do capítulo %s do livro de %s.", query.Chapter, query.Book)
		if query.Verse != "" {
			fmt.Fprintf(&b, " Dê prioridade ao versículo %s e aos versículos próximos a ele.", query.Verse)
		}
	case query.Theme != "" && query.Book != "":
		fmt.Fprintf(&b, "Sugira 5 versículos bíblicos do livro de %s sobre o tema %q.", query.Book, query.Theme)
	case query.Theme != "":
		fmt.Fprintf(&b, "Sugira 5 versículos bíblicos sobre o tema %q.", query.Theme)
	case query.Book != "":
		fmt.Fprintf(&b, "Sugira 5 versículos marcantes do livro de %s.", query.Book)
	default:
		b.WriteString("Sugira 5 versículos bíblicos inspiradores para meditação diária.")
	}

	b.WriteString(" Cada item deve ter o texto completo do versículo e a referência exata.")
	return b.String()
}

// buildRandomVersePrompt renders the random-verse prompt. The nonce defeats
// response caching and nudges variety between otherwise identical requests.
func buildRandomVersePrompt(nonce int) string {
	return fmt.Sprintf(
		"Escolha um único versículo bíblico inspirador e pouco óbvio para o versículo do dia. "+
			"Evite os versículos mais citados. Retorne o texto completo e a referência exata. "+
			"(sorteio: %d)", nonce)
}

// buildExplanationPrompt renders the devotional explanation prompt.
func buildExplanationPrompt(verseText, verseReference string) string {
	return fmt.Sprintf(
		"Escreva uma explicação devocional curta (2 a 3 frases) sobre o versículo %q (%s). "+
			"Foque na aplicação prática para a vida diária, em tom acolhedor.",
		verseText, verseReference)
}

// Visual variation vocabularies for image prompts. One entry of each is
// drawn per request so consecutive cards do not look alike.
var (
	lightingStyles = []string{
		"luz dourada do amanhecer",
		"luz suave do entardecer",
		"raios de sol atravessando nuvens",
		"luz difusa e etérea",
		"céu estrelado ao anoitecer",
	}
	cameraAngles = []string{
		"vista panorâmica ampla",
		"perspectiva baixa olhando para o céu",
		"vista aérea distante",
		"enquadramento próximo de detalhes naturais",
	}
	sceneryTypes = []string{
		"montanhas majestosas",
		"campo aberto com flores silvestres",
		"floresta serena com neblina",
		"oceano calmo ao horizonte",
		"vale verdejante com um riacho",
		"deserto com dunas suaves",
	}
)

// buildImagePrompt composes the background-image prompt for a verse. The
// constraints section is enumerated explicitly because the image model
// ignores soft phrasing of negatives. Modifier draws use the top-level rand
// functions, which are safe for concurrent requests.
func buildImagePrompt(verseText, verseReference string) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Crie uma imagem fotorrealista de natureza inspiradora para servir de fundo a um cartão com o versículo %q (%s). ",
		verseText, verseReference)
	fmt.Fprintf(&b, "Cenário: %s. Iluminação: %s. Composição: %s. ",
		sceneryTypes[rand.Intn(len(sceneryTypes))],
		lightingStyles[rand.Intn(len(lightingStyles))],
		cameraAngles[rand.Intn(len(cameraAngles))])

	b.WriteString("Proporção 9:16 vertical, estilo de fotografia profissional. ")
	b.WriteString("Restrições obrigatórias: ")
	b.WriteString("1) NENHUMA pessoa, rosto ou mão na imagem. ")
	b.WriteString("2) NENHUM texto, letra ou número. ")
	b.WriteString("3) NENHUM ambiente interno. ")
	b.WriteString("4) NENHUM prédio ou construção. ")
	b.WriteString("5) NENHUM animal em destaque. ")
	b.WriteString("Apenas paisagem natural.")

	return b.String()
}
