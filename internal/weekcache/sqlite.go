package weekcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zapponejosh/candybar/internal/candybar"
	"github.com/zapponejosh/candybar/internal/database"
)

// SQLStore is a candybar.Cache backed by the week_tables table.
type SQLStore struct {
	db *database.DB
}

// NewSQLStore returns a store over a migrated database.
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func tableKey(key candybar.CacheKey) database.WeekTableKey {
	return database.WeekTableKey{
		System:      key.System.String(),
		Year:        key.Year,
		WeeksBefore: key.WeeksBefore,
		WeeksAfter:  key.WeeksAfter,
	}
}

func (s *SQLStore) Get(ctx context.Context, key candybar.CacheKey) (*candybar.CacheEntry, error) {
	wt, err := s.db.GetWeekTable(ctx, tableKey(key))
	if errors.Is(err, database.ErrNotFound) {
		return nil, candybar.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var weeks []candybar.AnnotatedWeek
	if err := json.Unmarshal(wt.Payload, &weeks); err != nil {
		return nil, fmt.Errorf("decode week table %s: %w", key, err)
	}
	return &candybar.CacheEntry{SchemaVersion: wt.SchemaVersion, Weeks: weeks}, nil
}

func (s *SQLStore) Put(ctx context.Context, key candybar.CacheKey, entry candybar.CacheEntry) error {
	payload, err := json.Marshal(entry.Weeks)
	if err != nil {
		return fmt.Errorf("encode week table %s: %w", key, err)
	}

	k := tableKey(key)
	return s.db.UpsertWeekTable(ctx, &database.WeekTable{
		System:        k.System,
		Year:          k.Year,
		WeeksBefore:   k.WeeksBefore,
		WeeksAfter:    k.WeeksAfter,
		SchemaVersion: entry.SchemaVersion,
		Payload:       payload,
	})
}

// Delete removes the row for key. Deleting a missing entry is not an error.
func (s *SQLStore) Delete(ctx context.Context, key candybar.CacheKey) error {
	err := s.db.DeleteWeekTable(ctx, tableKey(key))
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return err
	}
	return nil
}

// List returns every stored table without its weeks.
func (s *SQLStore) List(ctx context.Context) ([]Entry, error) {
	tables, err := s.db.ListWeekTables(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(tables))
	for _, wt := range tables {
		system, err := candybar.ParseSystem(wt.System)
		if err != nil {
			return nil, fmt.Errorf("week table %d: %w", wt.ID, err)
		}
		entries = append(entries, Entry{
			Key: candybar.CacheKey{
				System:      system,
				Year:        wt.Year,
				WeeksBefore: wt.WeeksBefore,
				WeeksAfter:  wt.WeeksAfter,
			},
			SchemaVersion: wt.SchemaVersion,
			UpdatedAt:     wt.UpdatedAt,
		})
	}
	sortEntries(entries)
	return entries, nil
}

// Purge drops rows written under an older schema version.
func (s *SQLStore) Purge(ctx context.Context) (int64, error) {
	return s.db.PurgeStaleWeekTables(ctx, candybar.SchemaVersion)
}
