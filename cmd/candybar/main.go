// Command candybar prints a year of ISO weeks side by side in the
// Gregorian, Hebrew, Islamic and Chinese calendars, with new moons marked.
//
// Usage:
//
//	go run ./cmd/candybar -year 2020                   # text table on stdout
//	go run ./cmd/candybar -year 2020 -system chinese   # Chinese day numbers
//	go run ./cmd/candybar -year 2020 -format latex      # writes cal_2020.tex
//	go run ./cmd/candybar -year 2020 -format svg        # writes candybar_2020.svg
//	go run ./cmd/candybar -year 2020 -format csv -system hebrew
//	go run ./cmd/candybar -list-cache                  # stored week tables
//	go run ./cmd/candybar -year 2020 -clear-cache      # rebuild the cached weeks
//
// Defaults come from the environment (see internal/config); flags override.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/zapponejosh/candybar/internal/calendar"
	"github.com/zapponejosh/candybar/internal/candybar"
	"github.com/zapponejosh/candybar/internal/config"
	"github.com/zapponejosh/candybar/internal/logger"
	"github.com/zapponejosh/candybar/internal/render"
	"github.com/zapponejosh/candybar/internal/weekcache"
)

const (
	formatText  = "text"
	formatLaTeX = "latex"
	formatSVG   = "svg"
	formatCSV   = "csv"
)

type options struct {
	format     string
	system     candybar.System
	out        string
	noColor    bool
	listCache  bool
	clearCache bool
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Parse command line flags over the configured defaults
	flag.IntVar(&cfg.Year, "year", cfg.Year, "Gregorian year to tabulate")
	flag.IntVar(&cfg.WeeksBefore, "weeks-before", cfg.WeeksBefore, "Extra weeks before ISO week 1")
	flag.IntVar(&cfg.WeeksAfter, "weeks-after", cfg.WeeksAfter, "Extra weeks after the last ISO week")
	flag.IntVar(&cfg.NewMoonFudge, "fudge", cfg.NewMoonFudge, "Extra lunations searched past each end of the grid")
	flag.StringVar(&cfg.ThemePath, "theme", cfg.ThemePath, "YAML theme for SVG output")
	format := flag.String("format", formatText, "Output format: text, latex, svg, csv")
	systemName := flag.String("system", candybar.Gregorian.String(), "Calendar for text and csv output")
	out := flag.String("out", "", "Output file, or - for stdout (default depends on format)")
	noColor := flag.Bool("no-color", false, "Disable colour in text output")
	listCache := flag.Bool("list-cache", false, "List the stored week tables and exit")
	clearCache := flag.Bool("clear-cache", false, "Drop the stored weeks for this span before building")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	system, err := candybar.ParseSystem(*systemName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithYear(ctx, cfg.Year)

	opts := options{
		format:     *format,
		system:     system,
		out:        *out,
		noColor:    *noColor,
		listCache:  *listCache,
		clearCache: *clearCache,
	}
	if err := run(ctx, cfg, opts, log); err != nil {
		logger.Error(ctx, "candybar failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, log *slog.Logger) error {
	var systems []candybar.System
	switch opts.format {
	case formatText, formatCSV:
		systems = []candybar.System{opts.system}
	case formatLaTeX:
		systems = candybar.Systems
	case formatSVG:
		systems = render.DefaultSVGSystems
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	// =========================================================================
	// Step 1: Open the week cache
	// =========================================================================
	cache, closeCache, err := weekcache.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open week cache: %w", err)
	}
	defer closeCache()
	logger.Debug(ctx, "week cache opened", slog.String("backend", cfg.CacheBackend))

	if opts.listCache || opts.clearCache {
		m, ok := cache.(weekcache.Manager)
		switch {
		case !ok:
			logger.Warn(ctx, "week cache is disabled", slog.String("backend", cfg.CacheBackend))
			if opts.listCache {
				return nil
			}
		case opts.listCache:
			return listEntries(ctx, m, os.Stdout)
		default:
			if err := clearSpan(ctx, m, cfg); err != nil {
				return fmt.Errorf("clear week cache: %w", err)
			}
		}
	}

	// =========================================================================
	// Step 2: Build the table
	// =========================================================================
	a := candybar.NewAnnotator(calendar.Standard{}, cache, log)
	table, err := candybar.Build(ctx, a, candybar.Options{
		Year:        cfg.Year,
		WeeksBefore: cfg.WeeksBefore,
		WeeksAfter:  cfg.WeeksAfter,
		Fudge:       cfg.NewMoonFudge,
		Systems:     systems,
	})
	if err != nil {
		return err
	}

	// =========================================================================
	// Step 3: Render
	// =========================================================================
	switch opts.format {
	case formatText:
		color := !opts.noColor && (opts.out == "" || opts.out == "-") &&
			term.IsTerminal(int(os.Stdout.Fd()))
		return output(ctx, opts.out, "", func(w io.Writer) error {
			return render.Text(w, table.Weeks[opts.system], opts.system, render.TextOptions{Color: color})
		})

	case formatCSV:
		return output(ctx, opts.out, "", func(w io.Writer) error {
			return render.CSV(w, table.Weeks[opts.system], opts.system)
		})

	case formatLaTeX:
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("cal_%d.tex", cfg.Year))
		return output(ctx, opts.out, path, func(w io.Writer) error {
			return render.Document(w, table)
		})

	default: // formatSVG
		theme := render.DefaultTheme()
		if cfg.ThemePath != "" {
			theme, err = render.LoadTheme(cfg.ThemePath)
			if err != nil {
				return fmt.Errorf("load theme: %w", err)
			}
		}
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("candybar_%d.svg", cfg.Year))
		return output(ctx, opts.out, path, func(w io.Writer) error {
			return render.SVG(w, table, theme)
		})
	}
}

// listEntries prints one line per stored week table.
func listEntries(ctx context.Context, m weekcache.Manager, w io.Writer) error {
	entries, err := m.List(ctx)
	if err != nil {
		return fmt.Errorf("list week cache: %w", err)
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-24s schema %d  %s\n", e.Key, e.SchemaVersion, e.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "%d cached\n", len(entries))
	return nil
}

// clearSpan drops every system's weeks for the configured span.
func clearSpan(ctx context.Context, m weekcache.Manager, cfg *config.Config) error {
	for _, s := range candybar.Systems {
		key := candybar.CacheKey{System: s, Year: cfg.Year, WeeksBefore: cfg.WeeksBefore, WeeksAfter: cfg.WeeksAfter}
		if err := m.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	logger.Info(ctx, "cleared week cache",
		slog.Int("weeks_before", cfg.WeeksBefore),
		slog.Int("weeks_after", cfg.WeeksAfter),
	)
	return nil
}

// output sends write to the -out target. An empty target means
// defaultPath, and stdout when that is empty too.
func output(ctx context.Context, target, defaultPath string, write func(io.Writer) error) error {
	if target == "" {
		target = defaultPath
	}
	if target == "" || target == "-" {
		return write(os.Stdout)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info(ctx, "wrote output", slog.String("path", target))
	return nil
}
