// Package localstore persists the gallery and the verse-of-the-day cache as
// JSON blobs on disk, mirroring the fixed-key local-storage format the
// client app originally owned. One file per key, in a configurable
// directory.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// File names match the storage keys used by existing client galleries.
const (
	galleryFile    = "galleryItems.json"
	verseOfDayFile = "verseOfTheDay.json"
)

// Store is a file-backed implementation of store.GalleryStore and
// store.VerseOfDayStore. All operations serialize the full collection on
// every mutation; a mutex guards concurrent handler access.
type Store struct {
	dir    string
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// List implements store.GalleryStore.
func (s *Store) List(ctx context.Context) ([]domain.VerseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadGallery()
}

// Get implements store.GalleryStore.
func (s *Store) Get(ctx context.Context, id string) (*domain.VerseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadGallery()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, store.ErrVerseNotFound
}

// Add implements store.GalleryStore. New items are prepended so the gallery
// stays newest first.
func (s *Store) Add(ctx context.Context, result domain.VerseResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadGallery()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == result.ID {
			return fmt.Errorf("%w: verse %s", store.ErrDuplicate, result.ID)
		}
	}

	items = append([]domain.VerseResult{result}, items...)
	return s.saveGallery(items)
}

// Remove implements store.GalleryStore.
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.mutate(id, func(items []domain.VerseResult, idx int) []domain.VerseResult {
		return append(items[:idx], items[idx+1:]...)
	})
}

// SetFavorite implements store.GalleryStore.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) error {
	return s.mutate(id, func(items []domain.VerseResult, idx int) []domain.VerseResult {
		items[idx].IsFavorite = favorite
		return items
	})
}

// ReplaceImage implements store.GalleryStore.
func (s *Store) ReplaceImage(ctx context.Context, id string, imageURL string) error {
	return s.mutate(id, func(items []domain.VerseResult, idx int) []domain.VerseResult {
		items[idx].ImageURL = imageURL
		return items
	})
}

// mutate loads the gallery, applies fn to the item with the given ID and
// saves the whole collection back.
func (s *Store) mutate(id string, fn func(items []domain.VerseResult, idx int) []domain.VerseResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadGallery()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			return s.saveGallery(fn(items, i))
		}
	}
	return store.ErrVerseNotFound
}

// loadGallery reads and migrates the stored collection. Entries missing an
// ID or creation timestamp get one synthesized; the migrated form is only
// written back on the next mutation, never here.
func (s *Store) loadGallery() ([]domain.VerseResult, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, galleryFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.VerseResult{}, nil
		}
		return nil, fmt.Errorf("failed to read gallery: %w", err)
	}

	var items []domain.VerseResult
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: gallery: %v", store.ErrCorruptData, err)
	}

	migrated := 0
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
			migrated++
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = time.Now().UTC()
		}
	}
	if migrated > 0 {
		s.logger.Info("migrated legacy gallery entries", "count", migrated)
	}

	return items, nil
}

func (s *Store) saveGallery(items []domain.VerseResult) error {
	return s.writeJSON(galleryFile, items)
}

// LoadVerseOfDay implements store.VerseOfDayStore.
func (s *Store) LoadVerseOfDay(ctx context.Context) (*domain.VerseOfDayEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, verseOfDayFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read verse of the day: %w", err)
	}

	var entry domain.VerseOfDayEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: verse of the day: %v", store.ErrCorruptData, err)
	}
	return &entry, nil
}

// SaveVerseOfDay implements store.VerseOfDayStore.
func (s *Store) SaveVerseOfDay(ctx context.Context, entry domain.VerseOfDayEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(verseOfDayFile, entry)
}

// ClearVerseOfDay implements store.VerseOfDayStore.
func (s *Store) ClearVerseOfDay(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, verseOfDayFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear verse of the day: %w", err)
	}
	return nil
}

// writeJSON writes atomically via a temp file so a crash mid-write cannot
// corrupt the stored collection.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
