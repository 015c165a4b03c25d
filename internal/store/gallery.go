package store

import (
	"context"

	"github.com/palavradiaria/palavra-api/internal/domain"
)

// GalleryStore defines the interface for gallery persistence.
//
// The gallery is an ordered collection of verse results, newest first,
// unique by ID. Implementations must migrate legacy entries on load: any
// entry missing an ID or creation timestamp gets one synthesized in memory.
// The migration is one-way and is not written back until the next natural
// save triggered by a mutation.
type GalleryStore interface {
	// List returns every gallery item, newest first, fully migrated.
	List(ctx context.Context) ([]domain.VerseResult, error)

	// Get retrieves a single item by ID.
	// Returns ErrVerseNotFound if no item has that ID.
	Get(ctx context.Context, id string) (*domain.VerseResult, error)

	// Add prepends a new item to the gallery and persists the collection.
	Add(ctx context.Context, result domain.VerseResult) error

	// Remove deletes the item with the given ID and persists the collection.
	// Returns ErrVerseNotFound if no item has that ID.
	Remove(ctx context.Context, id string) error

	// SetFavorite updates the favorite flag of the item with the given ID
	// and persists the collection. Returns ErrVerseNotFound if absent.
	SetFavorite(ctx context.Context, id string, favorite bool) error

	// ReplaceImage swaps the image URL of the item with the given ID and
	// persists the collection. Returns ErrVerseNotFound if absent.
	ReplaceImage(ctx context.Context, id string, imageURL string) error
}

// VerseOfDayStore defines the interface for the verse-of-the-day cache.
type VerseOfDayStore interface {
	// LoadVerseOfDay returns the cached entry.
	// Returns ErrNotFound when nothing is cached.
	LoadVerseOfDay(ctx context.Context) (*domain.VerseOfDayEntry, error)

	// SaveVerseOfDay overwrites the cached entry.
	SaveVerseOfDay(ctx context.Context, entry domain.VerseOfDayEntry) error

	// ClearVerseOfDay removes the cached entry. Clearing an empty cache is
	// not an error.
	ClearVerseOfDay(ctx context.Context) error
}
