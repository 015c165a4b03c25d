package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Verse-specific validation errors
var (
	// ErrVerseIDEmpty is returned when a verse result has no ID.
	ErrVerseIDEmpty = errors.New("verse ID cannot be empty")

	// ErrVerseTextEmpty is returned when a verse has no text.
	ErrVerseTextEmpty = errors.New("verse text cannot be empty")

	// ErrVerseReferenceEmpty is returned when a verse has no reference.
	ErrVerseReferenceEmpty = errors.New("verse reference cannot be empty")

	// ErrInvalidImageSource is returned when an image source selector is not
	// one of the supported values.
	ErrInvalidImageSource = errors.New("invalid image source")
)

// VerseSuggestion is a candidate verse returned by the suggestion service.
// It is ephemeral: suggestions live only until the user picks one.
type VerseSuggestion struct {
	VerseText      string `json:"verseText"`
	VerseReference string `json:"verseReference"`
}

// Validate checks that the suggestion carries both text and reference.
func (s VerseSuggestion) Validate() error {
	if s.VerseText == "" {
		return ErrVerseTextEmpty
	}
	if s.VerseReference == "" {
		return ErrVerseReferenceEmpty
	}
	return nil
}

// ImageSource selects where card images come from.
type ImageSource string

const (
	// ImageSourceAuto tries the generative image model first and falls back
	// to the stock providers in order.
	ImageSourceAuto ImageSource = "auto"

	// ImageSourcePexels fetches exclusively from Pexels.
	ImageSourcePexels ImageSource = "pexels"

	// ImageSourcePixabay fetches exclusively from Pixabay.
	ImageSourcePixabay ImageSource = "pixabay"
)

// Validate checks that the source is one of the supported selectors.
func (s ImageSource) Validate() error {
	switch s {
	case ImageSourceAuto, ImageSourcePexels, ImageSourcePixabay:
		return nil
	}
	return ErrInvalidImageSource
}

// VerseResult is a fully generated card: a verse, its explanation and a
// background image. Results are owned by the gallery once created.
//
// IDs are plain strings rather than UUIDs: entries written by early client
// versions carry ad-hoc ids that must survive loading unchanged.
type VerseResult struct {
	ID             string
	VerseText      string
	VerseReference string
	Explanation    string
	ImageURL       string
	IsFavorite     bool
	CreatedAt      time.Time
}

// NewVerseResult builds a result from a chosen suggestion plus the generated
// explanation and image. It assigns a fresh ID and a UTC creation timestamp.
// Returns an error if validation fails.
func NewVerseResult(suggestion VerseSuggestion, explanation, imageURL string) (*VerseResult, error) {
	result := &VerseResult{
		ID:             uuid.NewString(),
		VerseText:      suggestion.VerseText,
		VerseReference: suggestion.VerseReference,
		Explanation:    explanation,
		ImageURL:       imageURL,
		IsFavorite:     false,
		CreatedAt:      time.Now().UTC(),
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// Validate checks if the VerseResult has valid data.
// Returns an error if any field fails validation.
func (v *VerseResult) Validate() error {
	if v.ID == "" {
		return ErrVerseIDEmpty
	}
	if v.VerseText == "" {
		return ErrVerseTextEmpty
	}
	if v.VerseReference == "" {
		return ErrVerseReferenceEmpty
	}
	return nil
}

// verseResultJSON is the wire shape shared with the client app. Timestamps
// are Unix milliseconds because that is what existing stored galleries hold.
type verseResultJSON struct {
	ID             string `json:"id,omitempty"`
	VerseText      string `json:"verseText"`
	VerseReference string `json:"verseReference"`
	Explanation    string `json:"explanation,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	IsFavorite     bool   `json:"isFavorite"`
	CreatedAt      int64  `json:"createdAt,omitempty"`
}

// MarshalJSON serializes the result in the client's legacy format.
func (v VerseResult) MarshalJSON() ([]byte, error) {
	out := verseResultJSON{
		ID:             v.ID,
		VerseText:      v.VerseText,
		VerseReference: v.VerseReference,
		Explanation:    v.Explanation,
		ImageURL:       v.ImageURL,
		IsFavorite:     v.IsFavorite,
	}
	if !v.CreatedAt.IsZero() {
		out.CreatedAt = v.CreatedAt.UnixMilli()
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the client's legacy format. Entries written before
// ids and timestamps existed simply leave those fields zero; stores migrate
// them on load.
func (v *VerseResult) UnmarshalJSON(data []byte) error {
	var in verseResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	v.ID = in.ID
	v.VerseText = in.VerseText
	v.VerseReference = in.VerseReference
	v.Explanation = in.Explanation
	v.ImageURL = in.ImageURL
	v.IsFavorite = in.IsFavorite
	if in.CreatedAt > 0 {
		v.CreatedAt = time.UnixMilli(in.CreatedAt).UTC()
	} else {
		v.CreatedAt = time.Time{}
	}
	return nil
}

// VerseOfDayEntry is the cached verse of the day. Date is the local calendar
// day the entry was generated on, formatted as YYYY-MM-DD; the cache is valid
// only while that string equals the current local date.
type VerseOfDayEntry struct {
	Verse VerseResult `json:"verse"`
	Date  string      `json:"date"`
}
