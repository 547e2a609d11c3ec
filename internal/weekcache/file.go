// Package weekcache persists annotated week tables so the Chinese calendar,
// the expensive one, is computed once per span. FileStore keeps one JSON
// file per span; SQLStore keeps rows in SQLite.
package weekcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zapponejosh/candybar/internal/candybar"
)

// envelope is the on-disk layout of a cache file.
type envelope struct {
	SchemaVersion int                      `json:"schema_version"`
	System        candybar.System          `json:"system"`
	Year          int                      `json:"year"`
	WeeksBefore   int                      `json:"weeks_before"`
	WeeksAfter    int                      `json:"weeks_after"`
	CreatedAt     time.Time                `json:"created_at"`
	Weeks         []candybar.AnnotatedWeek `json:"weeks"`
}

// FileStore is a candybar.Cache backed by a directory of JSON files.
// It does no locking; one process per directory.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore returns a store rooted at dir. The directory is created on
// the first Put.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

// Path returns the file that holds key.
func (s *FileStore) Path(key candybar.CacheKey) string {
	name := fmt.Sprintf("%s_lunar_%d_b%d_a%d.json", key.System, key.Year, key.WeeksBefore, key.WeeksAfter)
	return filepath.Join(s.dir, name)
}

// Get reads the entry for key. A missing file is candybar.ErrCacheMiss;
// unreadable JSON is an error naming the file.
func (s *FileStore) Get(_ context.Context, key candybar.CacheKey) (*candybar.CacheEntry, error) {
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, candybar.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if env.System != key.System || env.Year != key.Year ||
		env.WeeksBefore != key.WeeksBefore || env.WeeksAfter != key.WeeksAfter {
		return nil, fmt.Errorf("%s holds %s/%d/b%d/a%d, not %s",
			path, env.System, env.Year, env.WeeksBefore, env.WeeksAfter, key)
	}

	return &candybar.CacheEntry{SchemaVersion: env.SchemaVersion, Weeks: env.Weeks}, nil
}

// Put writes the entry atomically: a temp file in the same directory is
// renamed over the target, so readers never see a partial file.
func (s *FileStore) Put(_ context.Context, key candybar.CacheKey, entry candybar.CacheEntry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.Marshal(envelope{
		SchemaVersion: entry.SchemaVersion,
		System:        key.System,
		Year:          key.Year,
		WeeksBefore:   key.WeeksBefore,
		WeeksAfter:    key.WeeksAfter,
		CreatedAt:     s.now().UTC(),
		Weeks:         entry.Weeks,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".weekcache-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path(key), err)
	}
	return nil
}

// header is an envelope without its weeks.
type header struct {
	SchemaVersion int             `json:"schema_version"`
	System        candybar.System `json:"system"`
	Year          int             `json:"year"`
	WeeksBefore   int             `json:"weeks_before"`
	WeeksAfter    int             `json:"weeks_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

// List reads the header of every cache file in the directory. A directory
// that does not exist yet holds no entries.
func (s *FileStore) List(_ context.Context) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*_lunar_*.json"))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var h header
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		entries = append(entries, Entry{
			Key: candybar.CacheKey{
				System:      h.System,
				Year:        h.Year,
				WeeksBefore: h.WeeksBefore,
				WeeksAfter:  h.WeeksAfter,
			},
			SchemaVersion: h.SchemaVersion,
			UpdatedAt:     h.CreatedAt,
		})
	}
	sortEntries(entries)
	return entries, nil
}

// Delete removes the file for key. Deleting a missing entry is not an error.
func (s *FileStore) Delete(_ context.Context, key candybar.CacheKey) error {
	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
