package weekcache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/zapponejosh/candybar/internal/candybar"
	"github.com/zapponejosh/candybar/internal/config"
	"github.com/zapponejosh/candybar/internal/database"
)

// Entry describes one stored week table.
type Entry struct {
	Key           candybar.CacheKey
	SchemaVersion int
	UpdatedAt     time.Time
}

// Manager is implemented by caches whose entries can be listed and removed.
// Both FileStore and SQLStore are Managers.
type Manager interface {
	Delete(ctx context.Context, key candybar.CacheKey) error
	List(ctx context.Context) ([]Entry, error)
}

var (
	_ Manager = (*FileStore)(nil)
	_ Manager = (*SQLStore)(nil)
)

// sortEntries orders entries by year, system, then padding.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Key, entries[j].Key
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.System != b.System {
			return a.System.String() < b.System.String()
		}
		if a.WeeksBefore != b.WeeksBefore {
			return a.WeeksBefore < b.WeeksBefore
		}
		return a.WeeksAfter < b.WeeksAfter
	})
}

// Open returns the cache selected by cfg.CacheBackend and a function that
// releases it. The "none" backend yields a nil cache.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (candybar.Cache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.CacheBackend {
	case config.CacheNone:
		return nil, noop, nil
	case config.CacheFile:
		return NewFileStore(cfg.CacheDir), noop, nil
	case config.CacheSQLite:
		db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), logger)
		if err != nil {
			return nil, noop, err
		}
		if _, err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migrate week cache: %w", err)
		}
		store := NewSQLStore(db)
		if n, err := store.Purge(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("purge week cache: %w", err)
		} else if n > 0 {
			logger.Info("purged stale week tables", slog.Int64("rows", n))
		}
		return store, db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
