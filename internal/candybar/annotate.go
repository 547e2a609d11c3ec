package candybar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zapponejosh/candybar/internal/calendar"
)

// Cache stores annotated weeks between runs. Get returns ErrCacheMiss
// when it holds nothing for the key.
type Cache interface {
	Get(ctx context.Context, key CacheKey) (*CacheEntry, error)
	Put(ctx context.Context, key CacheKey, entry CacheEntry) error
}

// Annotator converts grid weeks into a calendar system.
type Annotator struct {
	provider Provider
	cache    Cache
	logger   *slog.Logger
}

// NewAnnotator returns an annotator. Only Chinese weeks are cached; a nil
// cache disables caching and a nil logger uses slog.Default.
func NewAnnotator(p Provider, cache Cache, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{provider: p, cache: cache, logger: logger}
}

// Annotate returns one AnnotatedWeek per grid week, in grid order.
func (a *Annotator) Annotate(ctx context.Context, grid *Grid, moons NewMoons, system System) ([]AnnotatedWeek, error) {
	if !system.Valid() {
		return nil, &UnsupportedCalendarSystemError{Name: system.String(), Year: grid.Year}
	}
	if system != Chinese || a.cache == nil {
		return a.annotate(ctx, grid, moons, system)
	}

	key := CacheKey{System: system, Year: grid.Year, WeeksBefore: grid.WeeksBefore, WeeksAfter: grid.WeeksAfter}
	entry, err := a.cache.Get(ctx, key)
	switch {
	case err == nil && entry.SchemaVersion == SchemaVersion:
		a.logger.Debug("week cache hit", slog.String("key", key.String()))
		return entry.Weeks, nil
	case err == nil:
		a.logger.Warn("stale week cache entry",
			slog.String("key", key.String()),
			slog.Int("schema_version", entry.SchemaVersion),
			slog.Int("want", SchemaVersion),
		)
	case errors.Is(err, ErrCacheMiss):
		a.logger.Debug("week cache miss", slog.String("key", key.String()))
	default:
		return nil, fmt.Errorf("read week cache %s: %w", key, err)
	}

	weeks, err := a.annotate(ctx, grid, moons, system)
	if err != nil {
		return nil, err
	}
	if err := a.cache.Put(ctx, key, CacheEntry{SchemaVersion: SchemaVersion, Weeks: weeks}); err != nil {
		return nil, fmt.Errorf("write week cache %s: %w", key, err)
	}
	return weeks, nil
}

func (a *Annotator) annotate(ctx context.Context, grid *Grid, moons NewMoons, system System) ([]AnnotatedWeek, error) {
	weeks := make([]AnnotatedWeek, len(grid.Weeks))
	for i, raw := range grid.Weeks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		aw := AnnotatedWeek{
			ISO: a.provider.ISOFromFixed(raw.Monday()).Week,
			Raw: raw,
		}
		for j, d := range raw {
			aw.Days[j] = a.convert(system, d.Fixed)
			event, ok := moons[d.Fixed]
			if !ok {
				continue
			}
			if aw.NewMoon != nil {
				return nil, fmt.Errorf("%w: year %d, %s, ISO week %d (%s and %s)",
					ErrMultipleNewMoons, grid.Year, system, aw.ISO, aw.NewMoon.Gregorian, event.Gregorian)
			}
			date := aw.Days[j]
			aw.NewMoon = &event
			aw.NewMoonDate = &date
		}

		if system == Hebrew && aw.NewMoon != nil {
			sunday := a.provider.HebrewFromFixed(raw[6].Fixed)
			molad := a.provider.Molad(sunday.Month, sunday.Year)
			date := a.convert(Hebrew, molad.Fixed())
			aw.Molad = &molad
			aw.MoladDate = &date
		}

		if system == Chinese {
			a.logger.Debug("annotated week",
				slog.Int("year", grid.Year),
				slog.String("system", system.String()),
				slog.Int("week", i+1),
				slog.Int("of", len(grid.Weeks)),
			)
		}
		weeks[i] = aw
	}
	return weeks, nil
}

// convert expresses a fixed date in the system.
func (a *Annotator) convert(system System, date calendar.Fixed) Date {
	switch system {
	case Gregorian:
		g := a.provider.GregorianFromFixed(date)
		return Date{Year: g.Year, Month: g.Month, Day: g.Day}
	case Hebrew:
		h := a.provider.HebrewFromFixed(date)
		return Date{Year: h.Year, Month: h.Month, Day: h.Day}
	case Islamic:
		i := a.provider.IslamicFromFixed(date)
		return Date{Year: i.Year, Month: i.Month, Day: i.Day}
	case Chinese:
		c := a.provider.ChineseFromFixed(date)
		return Date{Cycle: c.Cycle, Year: c.Year, Month: c.Month, Leap: c.Leap, Day: c.Day}
	default:
		panic(fmt.Sprintf("candybar: convert called with %s", system))
	}
}
