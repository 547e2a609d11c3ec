package candybar

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Options selects the span and calendars of a table.
type Options struct {
	Year        int
	WeeksBefore int
	WeeksAfter  int
	Fudge       int

	// Systems defaults to every supported calendar.
	Systems []System
}

// Table is a full candybar: the grid, its new moons, and the grid in each
// requested calendar.
type Table struct {
	Grid     *Grid
	NewMoons NewMoons
	Systems  []System
	Weeks    map[System][]AnnotatedWeek
}

// Build runs the grid, new moon and annotation steps for opts.
func Build(ctx context.Context, a *Annotator, opts Options) (*Table, error) {
	start := time.Now()
	systems := opts.Systems
	if len(systems) == 0 {
		systems = Systems
	}

	grid, err := BuildGrid(a.provider, opts.Year, opts.WeeksBefore, opts.WeeksAfter)
	if err != nil {
		return nil, err
	}
	moons := LocateNewMoons(a.provider, grid, opts.Fudge)
	a.logger.Info("grid built",
		slog.Int("year", opts.Year),
		slog.Int("weeks", len(grid.Weeks)),
		slog.Int("new_moons", len(moons)),
	)

	t := &Table{
		Grid:     grid,
		NewMoons: moons,
		Systems:  systems,
		Weeks:    make(map[System][]AnnotatedWeek, len(systems)),
	}
	for _, s := range systems {
		weeks, err := a.Annotate(ctx, grid, moons, s)
		if err != nil {
			return nil, fmt.Errorf("annotate %d in %s: %w", opts.Year, s, err)
		}
		t.Weeks[s] = weeks
	}

	a.logger.Info("table built",
		slog.Int("year", opts.Year),
		slog.Int("systems", len(systems)),
		slog.Duration("duration", time.Since(start)),
	)
	return t, nil
}
