package api

import (
	"github.com/palavradiaria/palavra-api/internal/domain"
)

// SuggestionsRequest asks for a verse listing. All fields optional: theme
// alone, theme+book, book+chapter (verse as hint), or nothing for a generic
// list.
type SuggestionsRequest struct {
	Theme   string `json:"theme"   validate:"max=200"`
	Book    string `json:"book"    validate:"max=100"`
	Chapter string `json:"chapter" validate:"max=10"`
	Verse   string `json:"verse"   validate:"max=10"`
}

// SuggestionsResponse carries the resulting list.
type SuggestionsResponse struct {
	Verses []domain.VerseSuggestion `json:"verses"`
}

// CreateCardRequest turns a chosen suggestion into a card.
type CreateCardRequest struct {
	VerseText      string `json:"verseText"      validate:"required"`
	VerseReference string `json:"verseReference" validate:"required"`

	// ImageSource is auto, pexels or pixabay; empty defaults to auto.
	ImageSource string `json:"imageSource" validate:"omitempty,oneof=auto pexels pixabay"`
}

// FavoriteRequest toggles the favorite flag.
type FavoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

// RegenerateImageRequest replaces a card's image. Prompt only applies to the
// auto source.
type RegenerateImageRequest struct {
	ImageSource string `json:"imageSource" validate:"omitempty,oneof=auto pexels pixabay"`
	Prompt      string `json:"prompt"      validate:"max=2000"`
}

// CaptionResponse carries the share caption text.
type CaptionResponse struct {
	Caption string `json:"caption"`
}
