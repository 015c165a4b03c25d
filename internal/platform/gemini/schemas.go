package gemini

import "google.golang.org/genai"

// verseSuggestionSchema describes one suggestion object.
var verseSuggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"verseText": {
			Type:        genai.TypeString,
			Description: "Texto completo do versículo em Português do Brasil",
		},
		"verseReference": {
			Type:        genai.TypeString,
			Description: "Referência no formato 'Livro Capítulo:Versículo'",
		},
	},
	Required: []string{"verseText", "verseReference"},
}

// verseSuggestionsSchema wraps the suggestion list in an object so the model
// cannot answer with a bare array, which some model versions still do; the
// parser tolerates both shapes.
var verseSuggestionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"verses": {
			Type:  genai.TypeArray,
			Items: verseSuggestionSchema,
		},
	},
	Required: []string{"verses"},
}

// explanationSchema holds a single explanation string.
var explanationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"explanation": {
			Type:        genai.TypeString,
			Description: "Explicação devocional curta do versículo",
		},
	},
	Required: []string{"explanation"},
}
