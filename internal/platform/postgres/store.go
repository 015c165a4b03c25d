// Package postgres implements the gallery and verse-of-the-day stores on
// PostgreSQL. It is the multi-instance alternative to the file-backed store:
// ordering and uniqueness are enforced by the schema instead of in memory.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// Store implements store.GalleryStore and store.VerseOfDayStore on a
// PostgreSQL database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure Store satisfies the store interfaces.
var (
	_ store.GalleryStore    = (*Store)(nil)
	_ store.VerseOfDayStore = (*Store)(nil)
)

// NewStore creates a PostgreSQL-backed store.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("component", "postgres_store"),
	}
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// List implements store.GalleryStore. Rows come back newest first, matching
// the prepend semantics of the file store.
func (s *Store) List(ctx context.Context) ([]domain.VerseResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, verse_text, verse_reference, explanation, image_url, is_favorite, created_at
		FROM gallery_items
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery items: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	var results []domain.VerseResult
	for rows.Next() {
		var item domain.VerseResult
		if err := rows.Scan(
			&item.ID,
			&item.VerseText,
			&item.VerseReference,
			&item.Explanation,
			&item.ImageURL,
			&item.IsFavorite,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gallery items: %w", err)
	}
	if results == nil {
		results = []domain.VerseResult{}
	}
	return results, nil
}

// Get implements store.GalleryStore.
func (s *Store) Get(ctx context.Context, id string) (*domain.VerseResult, error) {
	var item domain.VerseResult
	err := s.db.QueryRowContext(ctx, `
		SELECT id, verse_text, verse_reference, explanation, image_url, is_favorite, created_at
		FROM gallery_items
		WHERE id = $1`, id).Scan(
		&item.ID,
		&item.VerseText,
		&item.VerseReference,
		&item.Explanation,
		&item.ImageURL,
		&item.IsFavorite,
		&item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrVerseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}
	return &item, nil
}

// Add implements store.GalleryStore.
func (s *Store) Add(ctx context.Context, result domain.VerseResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gallery_items (id, verse_text, verse_reference, explanation, image_url, is_favorite, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ID,
		result.VerseText,
		result.VerseReference,
		result.Explanation,
		result.ImageURL,
		result.IsFavorite,
		result.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("gallery item %s: %w", result.ID, store.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}
	s.logger.Debug("added gallery item", "id", result.ID)
	return nil
}

// Remove implements store.GalleryStore.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	return s.requireRowAffected(res, id)
}

// SetFavorite implements store.GalleryStore.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gallery_items SET is_favorite = $2 WHERE id = $1`, id, favorite)
	if err != nil {
		return fmt.Errorf("failed to update favorite flag: %w", err)
	}
	return s.requireRowAffected(res, id)
}

// ReplaceImage implements store.GalleryStore.
func (s *Store) ReplaceImage(ctx context.Context, id string, imageURL string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gallery_items SET image_url = $2 WHERE id = $1`, id, imageURL)
	if err != nil {
		return fmt.Errorf("failed to update image URL: %w", err)
	}
	return s.requireRowAffected(res, id)
}

// requireRowAffected converts a zero-row write into ErrVerseNotFound.
func (s *Store) requireRowAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("gallery item %s: %w", id, store.ErrVerseNotFound)
	}
	return nil
}

// LoadVerseOfDay implements store.VerseOfDayStore. The cache is a single
// row holding the verse as JSON plus its calendar date.
func (s *Store) LoadVerseOfDay(ctx context.Context) (*domain.VerseOfDayEntry, error) {
	var verseJSON []byte
	var date string
	err := s.db.QueryRowContext(ctx,
		`SELECT verse, date FROM verse_of_day WHERE id = 1`).Scan(&verseJSON, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load verse of the day: %w", err)
	}

	var entry domain.VerseOfDayEntry
	if err := json.Unmarshal(verseJSON, &entry.Verse); err != nil {
		return nil, fmt.Errorf("%w: verse of the day: %v", store.ErrCorruptData, err)
	}
	entry.Date = date
	return &entry, nil
}

// SaveVerseOfDay implements store.VerseOfDayStore.
func (s *Store) SaveVerseOfDay(ctx context.Context, entry domain.VerseOfDayEntry) error {
	verseJSON, err := json.Marshal(entry.Verse)
	if err != nil {
		return fmt.Errorf("failed to encode verse of the day: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO verse_of_day (id, verse, date)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET verse = EXCLUDED.verse, date = EXCLUDED.date`,
		verseJSON, entry.Date)
	if err != nil {
		return fmt.Errorf("failed to save verse of the day: %w", err)
	}
	s.logger.Debug("saved verse of the day", "date", entry.Date)
	return nil
}

// ClearVerseOfDay implements store.VerseOfDayStore.
func (s *Store) ClearVerseOfDay(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM verse_of_day WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear verse of the day: %w", err)
	}
	return nil
}
