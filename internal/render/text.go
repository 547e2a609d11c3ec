package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zapponejosh/candybar/internal/candybar"
)

// TextOptions controls terminal output.
type TextOptions struct {
	// Color adds ANSI colour to the ISO column and the NM marker.
	Color bool
}

type textStyle struct {
	iso *color.Color
	nm  *color.Color
}

func newTextStyle(opts TextOptions) textStyle {
	s := textStyle{
		iso: color.New(color.Faint),
		nm:  color.New(color.FgYellow, color.Bold),
	}
	if opts.Color {
		s.iso.EnableColor()
		s.nm.EnableColor()
	} else {
		s.iso.DisableColor()
		s.nm.DisableColor()
	}
	return s
}

// Text writes one line per week: the ISO week number, a tab, then the
// seven day numbers. Gregorian weeks mark the new moon with NM.
func Text(w io.Writer, weeks []candybar.AnnotatedWeek, system candybar.System, opts TextOptions) error {
	style := newTextStyle(opts)
	for i := range weeks {
		if _, err := fmt.Fprintln(w, textWeek(&weeks[i], system, style)); err != nil {
			return err
		}
	}
	return nil
}

// TextWeek formats a single week without colour.
func TextWeek(aw candybar.AnnotatedWeek, system candybar.System) string {
	return textWeek(&aw, system, newTextStyle(TextOptions{}))
}

func textWeek(aw *candybar.AnnotatedWeek, system candybar.System, style textStyle) string {
	nm := -1
	if system == candybar.Gregorian {
		nm = aw.NewMoonIndex()
	}

	days := make([]string, len(aw.Days))
	for j, d := range aw.Days {
		switch {
		case j == nm:
			days[j] = style.nm.Sprint("NM")
		case d.Day == 0:
			days[j] = "  "
		default:
			days[j] = fmt.Sprintf("%2d", d.Day)
		}
	}

	return style.iso.Sprintf("%2d", aw.ISO) + "\t" + strings.Join(days, " ")
}
